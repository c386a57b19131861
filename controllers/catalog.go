// controllers/catalog.go
package controllers

import (
	"errors"
	"net/http"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSalonServices lists the active services of a salon
func GetSalonServices(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var salon models.Salon
	if err := config.DB.First(&salon, "id = ?", salonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var services []models.Service
	if err := config.DB.Where("salon_id = ? AND is_active = ?", salonID, true).Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetSalonEmployees lists the employees of a salon
func GetSalonEmployees(c *gin.Context) {
	salonID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid salon ID format")
		return
	}

	var salon models.Salon
	if err := config.DB.First(&salon, "id = ?", salonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Salon not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var employees []models.Employee
	if err := config.DB.Where("salon_id = ?", salonID).Find(&employees).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	results := make([]gin.H, 0, len(employees))
	for _, emp := range employees {
		results = append(results, gin.H{
			"id":               emp.ID,
			"firstName":        emp.FirstName,
			"lastName":         emp.LastName,
			"employmentStatus": emp.EmploymentStatus,
			"role":             emp.Role,
		})
	}

	c.JSON(http.StatusOK, results)
}
