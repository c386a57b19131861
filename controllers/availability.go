// controllers/availability.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityRuleInput defines the expected JSON structure for creating a rule
type AvailabilityRuleInput struct {
	Weekday       int     `json:"weekday" binding:"min=0,max=6"`
	StartTime     string  `json:"startTime" binding:"required"`
	EndTime       string  `json:"endTime" binding:"required"`
	EffectiveFrom string  `json:"effectiveFrom" binding:"required"` // YYYY-MM-DD
	EffectiveTo   *string `json:"effectiveTo"`
}

// TimeBlockInput defines the expected JSON structure for creating a blackout block
type TimeBlockInput struct {
	SalonID    *uuid.UUID `json:"salonId"`
	EmployeeID *uuid.UUID `json:"employeeId"`
	StartAt    time.Time  `json:"startAt" binding:"required"`
	EndAt      time.Time  `json:"endAt" binding:"required"`
	Reason     string     `json:"reason"`
}

// GetEmployeeAvailability lists the recurring availability rules for an employee
func GetEmployeeAvailability(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	var employee models.Employee
	if err := config.DB.First(&employee, "id = ?", employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var rules []models.AvailabilityRule
	if err := config.DB.Where("employee_id = ?", employeeID).Find(&rules).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, rules)
}

// GetAvailableTimes calculates bookable start times for an employee,
// date and service duration, stepped at 15-minute increments
func GetAvailableTimes(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing or invalid 'date' (YYYY-MM-DD)")
		return
	}

	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing or invalid 'duration' (in minutes)")
		return
	}
	if duration <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "'duration' must be positive")
		return
	}

	windows, err := availabilitySvc.ResolveWindows(employeeID, date)
	if err != nil {
		if errors.Is(err, services.ErrConflictingAvailability) {
			utils.RespondWithError(c, http.StatusConflict, "Conflicting availability rules; fix salon configuration")
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Booked appointments occupy time inside the resolved windows.
	var busy []models.Appointment
	if err := config.DB.
		Where("employee_id = ? AND status = ?", employeeID, models.AppointmentBooked).
		Where("start_at < ? AND end_at > ?", utils.EndOfDay(date), utils.BeginningOfDay(date)).
		Find(&busy).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	serviceDuration := time.Duration(duration) * time.Minute
	slotIncrement := 15 * time.Minute

	availableSlots := []string{}
	for _, window := range windows {
		for start := window.Start; !start.Add(serviceDuration).After(window.End); start = start.Add(slotIncrement) {
			slot := services.Interval{Start: start, End: start.Add(serviceDuration)}
			taken := false
			for _, appt := range busy {
				if slot.Overlaps(services.Interval{Start: appt.StartAt, End: appt.EndAt}) {
					taken = true
					break
				}
			}
			if !taken {
				availableSlots = append(availableSlots, start.Format("15:04"))
			}
		}
	}

	c.JSON(http.StatusOK, availableSlots)
}

// CreateAvailabilityRule adds a recurring weekly working window for an employee
func CreateAvailabilityRule(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID format")
		return
	}

	var input AvailabilityRuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateClock(input.StartTime) || !utils.ValidateClock(input.EndTime) {
		utils.RespondWithError(c, http.StatusBadRequest, "startTime/endTime must be HH:MM")
		return
	}

	effectiveFrom, err := time.Parse("2006-01-02", input.EffectiveFrom)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "effectiveFrom must be YYYY-MM-DD")
		return
	}

	var effectiveTo *time.Time
	if input.EffectiveTo != nil {
		t, err := time.Parse("2006-01-02", *input.EffectiveTo)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "effectiveTo must be YYYY-MM-DD")
			return
		}
		effectiveTo = &t
	}

	var employee models.Employee
	if err := config.DB.First(&employee, "id = ?", employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Employee not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Refuse a rule whose effective range would overlap an existing
	// rule for the same weekday; that would make resolution ambiguous.
	var count int64
	if err := config.DB.Model(&models.AvailabilityRule{}).
		Where("employee_id = ? AND weekday = ?", employeeID, input.Weekday).
		Where("effective_from <= ?", orDistantFuture(effectiveTo)).
		Where("(effective_to IS NULL OR effective_to >= ?)", effectiveFrom).
		Count(&count).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if count > 0 {
		utils.RespondWithError(c, http.StatusConflict, "An availability rule already covers this weekday and date range")
		return
	}

	rule := models.AvailabilityRule{
		EmployeeID:    employeeID,
		Weekday:       input.Weekday,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		EffectiveFrom: effectiveFrom,
		EffectiveTo:   effectiveTo,
	}
	if err := config.DB.Create(&rule).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create rule")
		return
	}

	c.JSON(http.StatusCreated, rule)
}

func orDistantFuture(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
}

// CreateTimeBlock adds a blackout block for a salon or an employee
func CreateTimeBlock(c *gin.Context) {
	var input TimeBlockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.SalonID == nil && input.EmployeeID == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Either salonId or employeeId is required")
		return
	}
	if !input.StartAt.Before(input.EndAt) {
		utils.RespondWithError(c, http.StatusBadRequest, "startAt must be before endAt")
		return
	}

	block := models.TimeBlock{
		SalonID:    input.SalonID,
		EmployeeID: input.EmployeeID,
		StartAt:    input.StartAt,
		EndAt:      input.EndAt,
		Reason:     input.Reason,
	}
	if err := config.DB.Create(&block).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create time block")
		return
	}

	c.JSON(http.StatusCreated, block)
}
