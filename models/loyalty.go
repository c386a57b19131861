package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoyaltyProgram struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	SalonID         uuid.UUID `gorm:"type:uuid;index;not null"`
	Active          bool      `gorm:"default:true"`
	VisitsForReward int       `gorm:"not null"`
	RewardType      string    `gorm:"type:varchar(20)"` // discount | free_service
	RewardValue     float64   `gorm:"type:decimal(10,2)"`

	gorm.Model
}

func (p *LoyaltyProgram) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}

// LoyaltyAccount is unique per (customer, salon). The index is the
// race backstop; account creation itself goes through the serialized
// get-or-create in the policy service.
type LoyaltyAccount struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_loyalty_account,priority:1"`
	SalonID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_loyalty_account,priority:2"`
	Points     int       `gorm:"not null;default:0"`

	gorm.Model
}

func (a *LoyaltyAccount) BeforeCreate(tx *gorm.DB) (err error) {
	a.ID = uuid.New()
	return
}
