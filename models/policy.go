package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CancelPolicy: cancellations later than CutoffHours before the
// appointment start incur Fee.
type CancelPolicy struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID     uuid.UUID `gorm:"type:uuid;index;not null"`
	CutoffHours int       `gorm:"not null"`
	Fee         float64   `gorm:"type:decimal(10,2);not null"`

	gorm.Model
}

func (CancelPolicy) TableName() string { return "cancel_policies" }

func (p *CancelPolicy) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}

// NoShowPolicy: an appointment may be flagged no-show once GraceMin
// minutes have elapsed past its start; the flag incurs Fee.
type NoShowPolicy struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID  uuid.UUID `gorm:"type:uuid;index;not null"`
	GraceMin int       `gorm:"not null"`
	Fee      float64   `gorm:"type:decimal(10,2);not null"`

	gorm.Model
}

func (NoShowPolicy) TableName() string { return "noshow_policies" }

func (p *NoShowPolicy) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}
