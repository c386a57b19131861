package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentStatus string

const (
	AppointmentBooked    AppointmentStatus = "BOOKED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
	AppointmentNoShow    AppointmentStatus = "NO_SHOW"
	AppointmentDone      AppointmentStatus = "DONE"
)

// Terminal reports whether no further transition is permitted from s.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentCancelled || s == AppointmentNoShow || s == AppointmentDone
}

// Appointment holds a [StartAt, EndAt) slot for one employee. Price is
// snapshotted at booking time and never recomputed from the live
// service price. FeeCharged is set when a cancellation or no-show fee
// applies.
type Appointment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID    uuid.UUID `gorm:"type:uuid;index:idx_appt_salon;not null"`
	CustomerID uuid.UUID `gorm:"type:uuid;index:idx_appt_customer;not null"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index:idx_appt_employee;not null"`
	ServiceID  uuid.UUID `gorm:"type:uuid;not null"`

	StartAt time.Time         `gorm:"not null;index:idx_appt_employee;index:idx_appt_customer;index:idx_appt_salon"`
	EndAt   time.Time         `gorm:"not null"`
	Status  AppointmentStatus `gorm:"type:varchar(10);not null;index"`

	PriceAtBook float64 `gorm:"type:decimal(10,2);not null"`
	FeeCharged  float64 `gorm:"type:decimal(10,2);default:0"`
	Notes       string  `gorm:"type:text"`

	Salon    *Salon    `gorm:"foreignKey:SalonID"`
	Customer *Customer `gorm:"foreignKey:CustomerID"`
	Employee *Employee `gorm:"foreignKey:EmployeeID"`
	Service  *Service  `gorm:"foreignKey:ServiceID"`

	gorm.Model
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
