package services

import (
	"testing"
	"time"

	"salonbook-backend/models"

	"github.com/google/uuid"
)

func seedAppointment(t *testing.T, env *testEnv, salonID uuid.UUID, status models.AppointmentStatus, start time.Time) *models.Appointment {
	t.Helper()
	appt := models.Appointment{
		SalonID:    salonID,
		CustomerID: uuid.New(),
		EmployeeID: uuid.New(),
		ServiceID:  uuid.New(),
		StartAt:    start,
		EndAt:      start.Add(time.Hour),
		Status:     status,
	}
	if err := env.db.Create(&appt).Error; err != nil {
		t.Fatalf("failed to seed appointment: %v", err)
	}
	return &appt
}

func TestSweepFlagsOnlyOverdueBooked(t *testing.T) {
	env := newTestEnv(t)
	salon := env.createSalon(t)

	now := time.Now()
	overdue := seedAppointment(t, env, salon.ID, models.AppointmentBooked, now.Add(-2*time.Hour))
	upcoming := seedAppointment(t, env, salon.ID, models.AppointmentBooked, now.Add(2*time.Hour))
	cancelled := seedAppointment(t, env, salon.ID, models.AppointmentCancelled, now.Add(-2*time.Hour))

	sweeper := NewNoShowSweeper(env.db, env.booking)
	sweeper.Sweep()

	var reloaded models.Appointment
	if err := env.db.First(&reloaded, "id = ?", overdue.ID).Error; err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if reloaded.Status != models.AppointmentNoShow {
		t.Fatalf("overdue appointment not flagged, status %s", reloaded.Status)
	}

	reloaded = models.Appointment{}
	if err := env.db.First(&reloaded, "id = ?", upcoming.ID).Error; err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if reloaded.Status != models.AppointmentBooked {
		t.Fatalf("upcoming appointment touched, status %s", reloaded.Status)
	}

	reloaded = models.Appointment{}
	if err := env.db.First(&reloaded, "id = ?", cancelled.ID).Error; err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if reloaded.Status != models.AppointmentCancelled {
		t.Fatalf("cancelled appointment touched, status %s", reloaded.Status)
	}
}

// An overdue appointment still inside its grace window survives the
// sweep and is picked up by a later run.
func TestSweepRespectsGraceWindow(t *testing.T) {
	env := newTestEnv(t)
	salon := env.createSalon(t)

	policy := models.NoShowPolicy{SalonID: salon.ID, GraceMin: 60, Fee: 25}
	if err := env.db.Create(&policy).Error; err != nil {
		t.Fatalf("failed to create policy: %v", err)
	}

	// Started 10 minutes ago; grace runs for another 50.
	appt := seedAppointment(t, env, salon.ID, models.AppointmentBooked, time.Now().Add(-10*time.Minute))

	sweeper := NewNoShowSweeper(env.db, env.booking)
	sweeper.Sweep()

	var reloaded models.Appointment
	if err := env.db.First(&reloaded, "id = ?", appt.ID).Error; err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if reloaded.Status != models.AppointmentBooked {
		t.Fatalf("appointment inside grace was flagged, status %s", reloaded.Status)
	}
}
