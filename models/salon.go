package models

import (
	"github.com/google/uuid"
)

type Salon struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"not null"`
	Address      string
	Phone        string
	WorkingHours JSONB `gorm:"type:jsonb;default:'{}'"`

	Users     []User     `gorm:"foreignKey:SalonID"`
	Employees []Employee `gorm:"foreignKey:SalonID"`
	Services  []Service  `gorm:"foreignKey:SalonID"`
	Products  []Product  `gorm:"foreignKey:SalonID"`
}
