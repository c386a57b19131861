package services

import (
	"errors"
	"testing"
	"time"

	"salonbook-backend/models"
)

func TestResolveWindowsNoRule(t *testing.T) {
	env := newTestEnv(t)
	salon := env.createSalon(t)
	employee := models.Employee{SalonID: salon.ID, FirstName: "Sam"}
	if err := env.db.Create(&employee).Error; err != nil {
		t.Fatalf("failed to create employee: %v", err)
	}

	windows, err := env.availability.ResolveWindows(employee.ID, testDay)
	if err != nil {
		t.Fatalf("ResolveWindows: %v", err)
	}
	if len(windows) != 0 {
		t.Fatalf("expected no windows without a rule, got %+v", windows)
	}
}

func TestResolveWindowsFullDayRule(t *testing.T) {
	env := newTestEnv(t)
	salon := env.createSalon(t)
	employee := env.createEmployee(t, salon)

	windows, err := env.availability.ResolveWindows(employee.ID, testDay)
	if err != nil {
		t.Fatalf("ResolveWindows: %v", err)
	}
	if len(windows) != 1 {
		t.Fatalf("expected 1 window, got %d", len(windows))
	}
	if !windows[0].Start.Equal(at(t, 8, 0)) || !windows[0].End.Equal(at(t, 17, 0)) {
		t.Fatalf("unexpected window %+v", windows[0])
	}
}

func TestResolveWindowsEmployeeBlackoutSplits(t *testing.T) {
	env := newTestEnv(t)
	salon := env.createSalon(t)
	employee := env.createEmployee(t, salon)

	block := models.TimeBlock{
		EmployeeID: &employee.ID,
		StartAt:    at(t, 12, 0),
		EndAt:      at(t, 13, 0),
		Reason:     "lunch",
	}
	if err := env.db.Create(&block).Error; err != nil {
		t.Fatalf("failed to create time block: %v", err)
	}

	windows, err := env.availability.ResolveWindows(employee.ID, testDay)
	if err != nil {
		t.Fatalf("ResolveWindows: %v", err)
	}
	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d: %+v", len(windows), windows)
	}
	if !windows[0].End.Equal(at(t, 12, 0)) || !windows[1].Start.Equal(at(t, 13, 0)) {
		t.Fatalf("blackout not carved out: %+v", windows)
	}
	if windows[0].Overlaps(windows[1]) {
		t.Fatalf("resolved windows overlap: %+v", windows)
	}
}

func TestResolveWindowsSalonBlackoutApplies(t *testing.T) {
	env := newTestEnv(t)
	salon := env.createSalon(t)
	employee := env.createEmployee(t, salon)

	// Salon-wide closure covers every employee there.
	block := models.TimeBlock{
		SalonID: &salon.ID,
		StartAt: at(t, 8, 0),
		EndAt:   at(t, 10, 0),
		Reason:  "renovation",
	}
	if err := env.db.Create(&block).Error; err != nil {
		t.Fatalf("failed to create time block: %v", err)
	}

	windows, err := env.availability.ResolveWindows(employee.ID, testDay)
	if err != nil {
		t.Fatalf("ResolveWindows: %v", err)
	}
	if len(windows) != 1 || !windows[0].Start.Equal(at(t, 10, 0)) {
		t.Fatalf("expected single window starting at 10:00, got %+v", windows)
	}
}

func TestResolveWindowsConflictingRules(t *testing.T) {
	env := newTestEnv(t)
	salon := env.createSalon(t)
	employee := env.createEmployee(t, salon)

	// Second rule effective on the same weekday and date.
	dup := models.AvailabilityRule{
		EmployeeID:    employee.ID,
		Weekday:       5,
		StartTime:     "10:00",
		EndTime:       "18:00",
		EffectiveFrom: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := env.db.Create(&dup).Error; err != nil {
		t.Fatalf("failed to create duplicate rule: %v", err)
	}

	_, err := env.availability.ResolveWindows(employee.ID, testDay)
	if !errors.Is(err, ErrConflictingAvailability) {
		t.Fatalf("expected ErrConflictingAvailability, got %v", err)
	}
}

func TestResolveWindowsDisabledEmployee(t *testing.T) {
	env := newTestEnv(t)
	salon := env.createSalon(t)
	employee := env.createEmployee(t, salon)

	if err := env.db.Model(employee).
		Update("employment_status", models.EmploymentDisabled).Error; err != nil {
		t.Fatalf("failed to disable employee: %v", err)
	}

	windows, err := env.availability.ResolveWindows(employee.ID, testDay)
	if err != nil {
		t.Fatalf("ResolveWindows: %v", err)
	}
	if len(windows) != 0 {
		t.Fatalf("disabled employee must have no windows, got %+v", windows)
	}
}

func TestResolveWindowsExpiredRule(t *testing.T) {
	env := newTestEnv(t)
	salon := env.createSalon(t)
	employee := env.createEmployee(t, salon)

	expiry := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	if err := env.db.Model(&models.AvailabilityRule{}).
		Where("employee_id = ?", employee.ID).
		Update("effective_to", expiry).Error; err != nil {
		t.Fatalf("failed to expire rule: %v", err)
	}

	windows, err := env.availability.ResolveWindows(employee.ID, testDay)
	if err != nil {
		t.Fatalf("ResolveWindows: %v", err)
	}
	if len(windows) != 0 {
		t.Fatalf("expired rule must yield no windows, got %+v", windows)
	}

	// But the rule still applies on a date inside its effective range.
	windows, err = env.availability.ResolveWindows(employee.ID, time.Date(2024, 12, 27, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("ResolveWindows: %v", err)
	}
	if len(windows) != 1 {
		t.Fatalf("expected 1 window inside effective range, got %+v", windows)
	}
}
