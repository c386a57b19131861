// services/availability_service.go
package services

import (
	"time"

	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityService derives bookable time windows for an employee
// on a given date from weekly recurring rules minus blackout blocks.
// Pure read; it never mutates anything.
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// ResolveWindows returns the ordered, disjoint bookable intervals for
// the employee on the date's calendar day.
func (s *AvailabilityService) ResolveWindows(employeeID uuid.UUID, date time.Time) ([]Interval, error) {
	return s.resolveWindows(s.db, employeeID, date)
}

func (s *AvailabilityService) resolveWindows(tx *gorm.DB, employeeID uuid.UUID, date time.Time) ([]Interval, error) {
	var employee models.Employee
	if err := tx.First(&employee, "id = ?", employeeID).Error; err != nil {
		return nil, err
	}
	// Disabled employees have no bookable time.
	if employee.EmploymentStatus != models.EmploymentActive {
		return nil, nil
	}

	day := utils.BeginningOfDay(date)
	weekday := utils.Weekday(date)

	var rules []models.AvailabilityRule
	if err := tx.
		Where("employee_id = ? AND weekday = ?", employeeID, weekday).
		Where("effective_from <= ?", day).
		Where("(effective_to IS NULL OR effective_to >= ?)", day).
		Find(&rules).Error; err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, nil
	}
	// More than one effective rule for the same weekday is a data
	// integrity violation; refuse to pick one silently.
	if len(rules) > 1 {
		return nil, ErrConflictingAvailability
	}
	rule := rules[0]

	start, err := utils.AtClock(day, rule.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := utils.AtClock(day, rule.EndTime)
	if err != nil {
		return nil, err
	}
	window := Interval{Start: start, End: end}
	if window.empty() {
		return nil, nil
	}

	// Blackouts at either the employee or the salon level win over the
	// recurring rule wherever they overlap it.
	dayEnd := utils.EndOfDay(date)
	var timeBlocks []models.TimeBlock
	if err := tx.
		Where("(employee_id = ? OR salon_id = ?)", employeeID, employee.SalonID).
		Where("start_at < ? AND end_at > ?", dayEnd, day).
		Find(&timeBlocks).Error; err != nil {
		return nil, err
	}

	blocks := make([]Interval, 0, len(timeBlocks))
	for _, b := range timeBlocks {
		blocks = append(blocks, Interval{Start: b.StartAt, End: b.EndAt})
	}

	return subtractAll([]Interval{window}, blocks), nil
}
