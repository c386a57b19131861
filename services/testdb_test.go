package services

import (
	"testing"
	"time"

	"salonbook-backend/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test. The pool is
// capped at one connection so concurrent transactions serialize the
// way they would on a real server.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Salon{},
		&models.Customer{},
		&models.Employee{},
		&models.AvailabilityRule{},
		&models.TimeBlock{},
		&models.Service{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Booking{},
		&models.Appointment{},
		&models.CancelPolicy{},
		&models.NoShowPolicy{},
		&models.LoyaltyProgram{},
		&models.LoyaltyAccount{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

type testEnv struct {
	db           *gorm.DB
	audit        *AuditService
	availability *AvailabilityService
	scheduling   *SchedulingService
	policy       *PolicyService
	booking      *BookingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	audit := NewAuditService(db)
	availability := NewAvailabilityService(db)
	scheduling := NewSchedulingService(db, availability, audit)
	policy := NewPolicyService(db, audit)
	booking := NewBookingService(db, scheduling, policy, audit)

	return &testEnv{
		db:           db,
		audit:        audit,
		availability: availability,
		scheduling:   scheduling,
		policy:       policy,
		booking:      booking,
	}
}

// testDay is a Friday (weekday 5 under the 0=Sunday convention).
var testDay = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

func at(t *testing.T, hour, min int) time.Time {
	t.Helper()
	return time.Date(2025, 1, 10, hour, min, 0, 0, time.UTC)
}

func (e *testEnv) createSalon(t *testing.T) *models.Salon {
	t.Helper()
	salon := models.Salon{ID: uuid.New(), Name: "Jade Boutique"}
	if err := e.db.Create(&salon).Error; err != nil {
		t.Fatalf("failed to create salon: %v", err)
	}
	return &salon
}

func (e *testEnv) createCustomer(t *testing.T) *models.Customer {
	t.Helper()
	customer := models.Customer{Name: "Dana", Phone: "+1555" + uuid.NewString()[:8]}
	if err := e.db.Create(&customer).Error; err != nil {
		t.Fatalf("failed to create customer: %v", err)
	}
	return &customer
}

// createEmployee seeds an active employee working 08:00-17:00 on the
// test day's weekday.
func (e *testEnv) createEmployee(t *testing.T, salon *models.Salon) *models.Employee {
	t.Helper()
	employee := models.Employee{SalonID: salon.ID, FirstName: "Alex"}
	if err := e.db.Create(&employee).Error; err != nil {
		t.Fatalf("failed to create employee: %v", err)
	}
	rule := models.AvailabilityRule{
		EmployeeID:    employee.ID,
		Weekday:       5,
		StartTime:     "08:00",
		EndTime:       "17:00",
		EffectiveFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := e.db.Create(&rule).Error; err != nil {
		t.Fatalf("failed to create availability rule: %v", err)
	}
	return &employee
}

func (e *testEnv) createService(t *testing.T, salon *models.Salon, price float64, duration int) *models.Service {
	t.Helper()
	service := models.Service{
		SalonID:  salon.ID,
		Name:     "Haircut",
		Price:    price,
		Duration: duration,
		IsActive: true,
	}
	if err := e.db.Create(&service).Error; err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return &service
}

func (e *testEnv) auditEntries(t *testing.T, entity, rowPK string) []models.AuditLog {
	t.Helper()
	entries, err := e.audit.Trail(entity, rowPK, nil, nil)
	if err != nil {
		t.Fatalf("failed to read audit trail: %v", err)
	}
	return entries
}
