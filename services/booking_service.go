// services/booking_service.go
package services

import (
	"errors"
	"time"

	"salonbook-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrMixedSalonCart  = errors.New("cart items span more than one salon")
	ErrAlreadyBooked   = errors.New("order item already has a booking")
	ErrInactiveService = errors.New("service is not active")
)

// BookingService orchestrates the cart item → order item → booking →
// appointment transition graph. It is the only writer of appointment,
// booking and order item state; every mutation goes through one
// transaction together with its audit entry.
type BookingService struct {
	db         *gorm.DB
	scheduling *SchedulingService
	policy     *PolicyService
	audit      *AuditService
}

func NewBookingService(db *gorm.DB, scheduling *SchedulingService, policy *PolicyService, audit *AuditService) *BookingService {
	return &BookingService{db: db, scheduling: scheduling, policy: policy, audit: audit}
}

// AddServiceToCart puts a service line into the customer's cart,
// snapshotting the current price. The cart is created lazily.
func (s *BookingService) AddServiceToCart(customerID, serviceID uuid.UUID, qty int) (*models.CartItem, error) {
	if qty < 1 {
		qty = 1
	}

	var item *models.CartItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var service models.Service
		if err := tx.First(&service, "id = ?", serviceID).Error; err != nil {
			return err
		}
		if !service.IsActive {
			return ErrInactiveService
		}

		var cart models.Cart
		err := tx.Where("customer_id = ?", customerID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = models.Cart{CustomerID: customerID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		item = &models.CartItem{
			CartID:    cart.ID,
			Kind:      models.ItemKindService,
			ServiceID: &serviceID,
			Qty:       qty,
			Price:     service.Price,
		}
		return tx.Create(item).Error
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Checkout turns the customer's cart items into an order with order
// items, emptying the cart. Order items of kind 'service' come out
// payable but unscheduled; Book attaches them to appointments later.
func (s *BookingService) Checkout(customerID uuid.UUID) (*models.Order, error) {
	var order *models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items").Where("customer_id = ?", customerID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmptyCart
			}
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		salonID, err := cartSalon(tx, cart.Items)
		if err != nil {
			return err
		}

		order = &models.Order{CustomerID: customerID, SalonID: salonID}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		total := 0.0
		for _, ci := range cart.Items {
			lineTotal := ci.Price * float64(ci.Qty)
			item := models.OrderItem{
				OrderID:   order.ID,
				Kind:      ci.Kind,
				ServiceID: ci.ServiceID,
				ProductID: ci.ProductID,
				Qty:       ci.Qty,
				UnitPrice: ci.Price,
				LineTotal: lineTotal,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			if err := s.audit.Record(tx, "order_item", item.ID.String(), models.AuditInsert, nil, orderItemSnapshot(&item)); err != nil {
				return err
			}
			order.Items = append(order.Items, item)
			total += lineTotal
		}
		if err := tx.Model(order).UpdateColumn("total", total).Error; err != nil {
			return err
		}
		order.Total = total

		return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// cartSalon resolves the single salon all cart items belong to.
func cartSalon(tx *gorm.DB, items []models.CartItem) (uuid.UUID, error) {
	var salonID uuid.UUID
	for _, ci := range items {
		var itemSalon uuid.UUID
		switch {
		case ci.ServiceID != nil:
			var service models.Service
			if err := tx.First(&service, "id = ?", *ci.ServiceID).Error; err != nil {
				return uuid.Nil, err
			}
			itemSalon = service.SalonID
		case ci.ProductID != nil:
			var product models.Product
			if err := tx.First(&product, "id = ?", *ci.ProductID).Error; err != nil {
				return uuid.Nil, err
			}
			itemSalon = product.SalonID
		}
		if salonID == uuid.Nil {
			salonID = itemSalon
		} else if salonID != itemSalon {
			return uuid.Nil, ErrMixedSalonCart
		}
	}
	return salonID, nil
}

// Book reserves a slot for a service order item and links the two with
// a booking row. On ErrSlotTaken or ErrOutsideAvailability the order
// item stays unbooked and the caller retries with another window;
// nothing is retried here.
func (s *BookingService) Book(orderItemID, employeeID uuid.UUID, start time.Time, end *time.Time) (*models.Booking, error) {
	unlock := s.scheduling.LockEmployee(employeeID)
	defer unlock()

	var booking *models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item models.OrderItem
		if err := tx.Preload("Order").First(&item, "id = ?", orderItemID).Error; err != nil {
			return err
		}
		if item.Kind != models.ItemKindService || item.ServiceID == nil {
			return ErrNotBookable
		}

		var existing int64
		if err := tx.Model(&models.Booking{}).Where("order_item_id = ?", item.ID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyBooked
		}

		endAt := time.Time{}
		if end != nil {
			endAt = *end
		} else {
			var service models.Service
			if err := tx.First(&service, "id = ?", *item.ServiceID).Error; err != nil {
				return err
			}
			endAt = start.Add(time.Duration(service.Duration) * time.Minute)
		}

		appointment, err := s.scheduling.ReserveTx(tx,
			item.Order.SalonID, item.Order.CustomerID, employeeID, *item.ServiceID, start, endAt)
		if err != nil {
			return err
		}

		booking = &models.Booking{
			OrderItemID:   item.ID,
			AppointmentID: appointment.ID,
		}
		if err := tx.Create(booking).Error; err != nil {
			return err
		}
		booking.Appointment = appointment

		return s.audit.Record(tx, "booking", booking.ID.String(), models.AuditInsert, nil, bookingSnapshot(booking))
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Cancel transitions a booked appointment to CANCELLED and charges the
// salon's cancellation fee when the cutoff has passed.
func (s *BookingService) Cancel(appointmentID uuid.UUID, now time.Time) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&appointment, "id = ?", appointmentID).Error; err != nil {
			return err
		}
		if appointment.Status != models.AppointmentBooked {
			return ErrInvalidTransition
		}

		fee, err := s.policy.CancellationFee(tx, &appointment, now)
		if err != nil {
			return err
		}

		return s.transition(tx, &appointment, models.AppointmentCancelled, fee)
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// MarkNoShow transitions a booked appointment to NO_SHOW once the
// salon's grace period past the start has elapsed.
func (s *BookingService) MarkNoShow(appointmentID uuid.UUID, now time.Time) (*models.Appointment, error) {
	var appointment models.Appointment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&appointment, "id = ?", appointmentID).Error; err != nil {
			return err
		}
		if appointment.Status != models.AppointmentBooked {
			return ErrInvalidTransition
		}

		grace, err := s.policy.NoShowGrace(tx, appointment.SalonID)
		if err != nil {
			return err
		}
		if !now.After(appointment.StartAt.Add(grace)) {
			return ErrInvalidTransition
		}

		fee, err := s.policy.NoShowFee(tx, appointment.SalonID)
		if err != nil {
			return err
		}

		return s.transition(tx, &appointment, models.AppointmentNoShow, fee)
	})
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// Complete transitions a booked appointment to DONE once it has ended
// and accrues one loyalty visit in the same transaction.
func (s *BookingService) Complete(appointmentID uuid.UUID, now time.Time) (*models.Appointment, bool, error) {
	var appointment models.Appointment
	rewardEarned := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&appointment, "id = ?", appointmentID).Error; err != nil {
			return err
		}
		if appointment.Status != models.AppointmentBooked {
			return ErrInvalidTransition
		}
		if now.Before(appointment.EndAt) {
			return ErrInvalidTransition
		}

		if err := s.transition(tx, &appointment, models.AppointmentDone, 0); err != nil {
			return err
		}

		var err error
		rewardEarned, err = s.policy.AccrueLoyalty(tx, appointment.CustomerID, appointment.SalonID)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return &appointment, rewardEarned, nil
}

// transition applies a terminal status change plus fee and writes the
// paired audit entry inside tx.
func (s *BookingService) transition(tx *gorm.DB, appointment *models.Appointment, status models.AppointmentStatus, fee float64) error {
	before := appointmentSnapshot(appointment)

	appointment.Status = status
	appointment.FeeCharged = fee
	if err := tx.Model(appointment).Updates(map[string]interface{}{
		"status":      status,
		"fee_charged": fee,
	}).Error; err != nil {
		return err
	}

	return s.audit.Record(tx, "appointment", appointment.ID.String(), models.AuditUpdate, before, appointmentSnapshot(appointment))
}
