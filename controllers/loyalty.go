// controllers/loyalty.go
package controllers

import (
	"errors"
	"net/http"

	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLoyaltyBalance returns the customer's point balance at a salon
func GetLoyaltyBalance(c *gin.Context) {
	customerID, err := uuid.Parse(c.Query("customerId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing or invalid 'customerId'")
		return
	}
	salonID, err := uuid.Parse(c.Query("salonId"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Missing or invalid 'salonId'")
		return
	}

	account, err := policySvc.LoyaltyBalance(customerID, salonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No completed visits yet: report a zero balance rather
			// than an error.
			c.JSON(http.StatusOK, gin.H{
				"customerId": customerID,
				"salonId":    salonID,
				"points":     0,
			})
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customerId": account.CustomerID,
		"salonId":    account.SalonID,
		"points":     account.Points,
	})
}
