// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddToCartInput defines the expected JSON structure for adding a service to the cart
type AddToCartInput struct {
	CustomerID uuid.UUID `json:"customerId" binding:"required"`
	ServiceID  uuid.UUID `json:"serviceId" binding:"required"`
	Quantity   int       `json:"quantity" binding:"min=0"`
}

// CheckoutInput defines the expected JSON structure for checking out a cart
type CheckoutInput struct {
	CustomerID uuid.UUID `json:"customerId" binding:"required"`
}

// CreateBookingInput defines the expected JSON structure for booking an order item
type CreateBookingInput struct {
	OrderItemID uuid.UUID  `json:"orderItemId" binding:"required"`
	EmployeeID  uuid.UUID  `json:"employeeId" binding:"required"`
	StartAt     time.Time  `json:"startAt" binding:"required"`
	EndAt       *time.Time `json:"endAt"` // defaults to startAt + service duration
}

// AddServiceToCart adds a service line to the customer's cart
func AddServiceToCart(c *gin.Context) {
	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	item, err := bookingSvc.AddServiceToCart(input.CustomerID, input.ServiceID, input.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		case errors.Is(err, services.ErrInactiveService):
			utils.RespondWithError(c, http.StatusBadRequest, "Service is not active")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusCreated, item)
}

// Checkout converts the customer's cart into an order
func Checkout(c *gin.Context) {
	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	order, err := bookingSvc.Checkout(input.CustomerID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			utils.RespondWithError(c, http.StatusBadRequest, "Cart is empty")
		case errors.Is(err, services.ErrMixedSalonCart):
			utils.RespondWithError(c, http.StatusBadRequest, "Cart items span more than one salon")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

// CreateBooking reserves a slot for a service order item
func CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := bookingSvc.Book(input.OrderItemID, input.EmployeeID, input.StartAt, input.EndAt)
	if err != nil {
		respondWithBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"bookingId":   booking.ID,
		"appointment": booking.Appointment,
	})
}

// CancelAppointment cancels a booked appointment and reports any fee
func CancelAppointment(c *gin.Context) {
	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	appointment, err := bookingSvc.Cancel(appointmentID, time.Now())
	if err != nil {
		respondWithBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointment": appointment,
		"feeCharged":  appointment.FeeCharged,
	})
}

// MarkNoShow flags a booked appointment as a no-show
func MarkNoShow(c *gin.Context) {
	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	appointment, err := bookingSvc.MarkNoShow(appointmentID, time.Now())
	if err != nil {
		respondWithBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointment": appointment,
		"feeCharged":  appointment.FeeCharged,
	})
}

// CompleteAppointment marks a booked appointment as done
func CompleteAppointment(c *gin.Context) {
	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	appointment, rewardEarned, err := bookingSvc.Complete(appointmentID, time.Now())
	if err != nil {
		respondWithBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"appointment":  appointment,
		"rewardEarned": rewardEarned,
	})
}

// GetUpcomingAppointments lists a customer's future appointments
func GetUpcomingAppointments(c *gin.Context) {
	listCustomerAppointments(c, true)
}

// GetPreviousAppointments lists a customer's completed past appointments
func GetPreviousAppointments(c *gin.Context) {
	listCustomerAppointments(c, false)
}

func listCustomerAppointments(c *gin.Context, upcoming bool) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	now := time.Now()
	q := config.DB.Preload("Salon").Preload("Employee").Preload("Service").
		Where("customer_id = ?", customerID)
	if upcoming {
		q = q.Where("start_at > ?", now).Order("start_at ASC")
	} else {
		q = q.Where("start_at < ? AND status = ?", now, models.AppointmentDone).Order("start_at DESC")
	}

	var appointments []models.Appointment
	if err := q.Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// respondWithBookingError maps booking core errors onto HTTP statuses
func respondWithBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrSlotTaken):
		utils.RespondWithError(c, http.StatusConflict, "Slot already taken; choose another window")
	case errors.Is(err, services.ErrOutsideAvailability):
		utils.RespondWithError(c, http.StatusConflict, "Requested window is outside employee availability")
	case errors.Is(err, services.ErrConflictingAvailability):
		utils.RespondWithError(c, http.StatusConflict, "Conflicting availability rules; fix salon configuration")
	case errors.Is(err, services.ErrInvalidTransition):
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "Invalid appointment state transition")
	case errors.Is(err, services.ErrInvalidWindow):
		utils.RespondWithError(c, http.StatusBadRequest, "startAt must be before endAt")
	case errors.Is(err, services.ErrNotBookable):
		utils.RespondWithError(c, http.StatusBadRequest, "Order item is not bookable")
	case errors.Is(err, services.ErrAlreadyBooked):
		utils.RespondWithError(c, http.StatusConflict, "Order item already has a booking")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
	}
}
