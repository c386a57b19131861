// services/noshow_sweeper.go
package services

import (
	"errors"
	"log"
	"os"
	"time"

	"salonbook-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// NoShowSweeper periodically flags booked appointments whose grace
// period has lapsed. It sits outside the booking core and only calls
// its public entry points; MarkNoShow does all grace and state
// checking, so an appointment still inside its grace window is simply
// skipped until the next run.
type NoShowSweeper struct {
	db      *gorm.DB
	booking *BookingService
}

func NewNoShowSweeper(db *gorm.DB, booking *BookingService) *NoShowSweeper {
	return &NoShowSweeper{db: db, booking: booking}
}

func (s *NoShowSweeper) StartScheduler() {
	spec := os.Getenv("NOSHOW_SWEEP_CRON")
	if spec == "" {
		spec = "@every 10m"
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, s.Sweep); err != nil {
		log.Printf("Failed to schedule no-show sweep: %v", err)
		return
	}

	c.Start()
	log.Println("No-show sweeper started")
}

// Sweep walks overdue booked appointments and asks the booking core to
// flag each one. ErrInvalidTransition means the grace period has not
// elapsed yet (or another writer got there first) and is not an error
// here.
func (s *NoShowSweeper) Sweep() {
	now := time.Now()

	var overdue []models.Appointment
	if err := s.db.
		Where("status = ? AND start_at < ?", models.AppointmentBooked, now).
		Find(&overdue).Error; err != nil {
		log.Printf("No-show sweep query failed: %v", err)
		return
	}

	flagged := 0
	for _, appointment := range overdue {
		if _, err := s.booking.MarkNoShow(appointment.ID, now); err != nil {
			if errors.Is(err, ErrInvalidTransition) {
				continue
			}
			log.Printf("No-show sweep: appointment %s: %v", appointment.ID, err)
			continue
		}
		flagged++
	}

	if flagged > 0 {
		log.Printf("No-show sweep flagged %d appointment(s)", flagged)
	}
}
