package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityRule is one recurring weekly working window for an
// employee. Weekday follows the 0=Sunday .. 6=Saturday convention.
// Start/end are wall-clock times in "HH:MM" form. At most one rule may
// be effective for a weekday on any calendar date; the index below is
// only a storage hint, resolution enforces the invariant itself.
type AvailabilityRule struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_avail,priority:1"`
	Weekday    int       `gorm:"type:smallint;not null;uniqueIndex:uq_avail,priority:2"`
	StartTime  string    `gorm:"type:varchar(5);not null"`
	EndTime    string    `gorm:"type:varchar(5);not null"`

	EffectiveFrom time.Time  `gorm:"type:date;not null;uniqueIndex:uq_avail,priority:3"`
	EffectiveTo   *time.Time `gorm:"type:date"`

	Employee Employee `gorm:"foreignKey:EmployeeID"`

	gorm.Model
}

func (AvailabilityRule) TableName() string { return "availability_rules" }

func (a *AvailabilityRule) BeforeCreate(tx *gorm.DB) (err error) {
	a.ID = uuid.New()
	return
}

// TimeBlock is a temporary blackout. It belongs to either a salon
// (applies to every employee there) or a single employee, and always
// wins over a recurring rule it overlaps.
type TimeBlock struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	SalonID    *uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;index"`

	StartAt time.Time `gorm:"not null"`
	EndAt   time.Time `gorm:"not null"`
	Reason  string    `gorm:"type:text"`

	gorm.Model
}

func (TimeBlock) TableName() string { return "time_blocks" }

func (t *TimeBlock) BeforeCreate(tx *gorm.DB) (err error) {
	t.ID = uuid.New()
	return
}
