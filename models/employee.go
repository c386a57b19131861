package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EmploymentActive   = "active"
	EmploymentDisabled = "disabled"
)

// Employees are soft-disabled on employment status change, never hard
// deleted while they have historical appointments.
type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID   uuid.UUID `gorm:"type:uuid;index;not null"`
	FirstName string    `gorm:"not null"`
	LastName  string
	Email     string
	Phone     string

	EmploymentStatus string `gorm:"type:varchar(20);not null;default:'active'"`
	Role             string `gorm:"type:varchar(30)"`

	Salon             Salon              `gorm:"foreignKey:SalonID"`
	AvailabilityRules []AvailabilityRule `gorm:"foreignKey:EmployeeID"`
	Appointments      []Appointment      `gorm:"foreignKey:EmployeeID"`

	gorm.Model
}

func (e *Employee) BeforeCreate(tx *gorm.DB) (err error) {
	e.ID = uuid.New()
	return
}
