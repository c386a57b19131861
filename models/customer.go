package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customers are platform-wide; the same customer can hold loyalty
// accounts at any number of salons.
type Customer struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Name  string    `gorm:"not null"`
	Phone string    `gorm:"uniqueIndex"`
	Email string

	Birthday  *time.Time
	Notes     string
	LastVisit *time.Time
	IsActive  bool `gorm:"default:true"`

	LoyaltyAccounts []LoyaltyAccount `gorm:"foreignKey:CustomerID"`
	Appointments    []Appointment    `gorm:"foreignKey:CustomerID"`

	gorm.Model
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	c.ID = uuid.New()
	return
}
