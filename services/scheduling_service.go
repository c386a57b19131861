// services/scheduling_service.go
package services

import (
	"sync"
	"time"

	"salonbook-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// keyedLocks hands out one mutex per key. Keys are never evicted; the
// table grows with the number of distinct employees seen by this
// process, which is bounded and small.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (k *keyedLocks) get(id uuid.UUID) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	l, ok := k.locks[id]
	if !ok {
		l = &sync.Mutex{}
		k.locks[id] = l
	}
	return l
}

// SchedulingService owns the no-double-booking invariant. The overlap
// check and the insert of a new appointment run under a per-employee
// exclusive lock held for the whole check-then-write, so two
// simultaneous requests for the same employee cannot both succeed.
// This process is the sole writer of appointment rows.
type SchedulingService struct {
	db           *gorm.DB
	availability *AvailabilityService
	audit        *AuditService
	locks        *keyedLocks
}

func NewSchedulingService(db *gorm.DB, availability *AvailabilityService, audit *AuditService) *SchedulingService {
	return &SchedulingService{
		db:           db,
		availability: availability,
		audit:        audit,
		locks:        newKeyedLocks(),
	}
}

// LockEmployee takes the reservation lock for an employee and returns
// the release func. Callers that reserve inside their own transaction
// must hold the lock until that transaction commits.
func (s *SchedulingService) LockEmployee(employeeID uuid.UUID) func() {
	l := s.locks.get(employeeID)
	l.Lock()
	return l.Unlock
}

// Reserve books [start, end) for the employee, snapshotting the
// service's current price. Fails fast with ErrOutsideAvailability or
// ErrSlotTaken; nothing is retried here, retry policy belongs to the
// caller.
func (s *SchedulingService) Reserve(salonID, customerID, employeeID, serviceID uuid.UUID, start, end time.Time) (*models.Appointment, error) {
	unlock := s.LockEmployee(employeeID)
	defer unlock()

	var appointment *models.Appointment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		appointment, err = s.ReserveTx(tx, salonID, customerID, employeeID, serviceID, start, end)
		return err
	})
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

// ReserveTx performs the reservation inside the caller's transaction.
// The caller must hold the employee's reservation lock (LockEmployee)
// across the transaction.
func (s *SchedulingService) ReserveTx(tx *gorm.DB, salonID, customerID, employeeID, serviceID uuid.UUID, start, end time.Time) (*models.Appointment, error) {
	if !start.Before(end) {
		return nil, ErrInvalidWindow
	}

	windows, err := s.availability.resolveWindows(tx, employeeID, start)
	if err != nil {
		return nil, err
	}
	requested := Interval{Start: start, End: end}
	contained := false
	for _, w := range windows {
		if w.Contains(requested) {
			contained = true
			break
		}
	}
	if !contained {
		return nil, ErrOutsideAvailability
	}

	var conflicts int64
	if err := tx.Model(&models.Appointment{}).
		Where("employee_id = ? AND status = ?", employeeID, models.AppointmentBooked).
		Where("start_at < ? AND end_at > ?", end, start).
		Count(&conflicts).Error; err != nil {
		return nil, err
	}
	if conflicts > 0 {
		return nil, ErrSlotTaken
	}

	var service models.Service
	if err := tx.First(&service, "id = ?", serviceID).Error; err != nil {
		return nil, err
	}

	appointment := models.Appointment{
		ID:          uuid.New(),
		SalonID:     salonID,
		CustomerID:  customerID,
		EmployeeID:  employeeID,
		ServiceID:   serviceID,
		StartAt:     start,
		EndAt:       end,
		Status:      models.AppointmentBooked,
		PriceAtBook: service.Price,
	}
	if err := tx.Create(&appointment).Error; err != nil {
		return nil, err
	}

	if err := s.audit.Record(tx, "appointment", appointment.ID.String(), models.AuditInsert, nil, appointmentSnapshot(&appointment)); err != nil {
		return nil, err
	}

	return &appointment, nil
}
