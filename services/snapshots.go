// services/snapshots.go
package services

import (
	"time"

	"salonbook-backend/models"
)

// Structured before/after snapshots stored in audit entries. Only the
// fields that matter for dispute resolution are captured.

func appointmentSnapshot(a *models.Appointment) models.JSONB {
	return models.JSONB{
		"salon_id":      a.SalonID.String(),
		"customer_id":   a.CustomerID.String(),
		"employee_id":   a.EmployeeID.String(),
		"service_id":    a.ServiceID.String(),
		"start_at":      a.StartAt.Format(time.RFC3339),
		"end_at":        a.EndAt.Format(time.RFC3339),
		"status":        string(a.Status),
		"price_at_book": a.PriceAtBook,
		"fee_charged":   a.FeeCharged,
	}
}

func bookingSnapshot(b *models.Booking) models.JSONB {
	return models.JSONB{
		"order_item_id":  b.OrderItemID.String(),
		"appointment_id": b.AppointmentID.String(),
	}
}

func orderItemSnapshot(i *models.OrderItem) models.JSONB {
	snap := models.JSONB{
		"order_id":   i.OrderID.String(),
		"kind":       i.Kind,
		"qty":        i.Qty,
		"unit_price": i.UnitPrice,
		"line_total": i.LineTotal,
	}
	if i.ServiceID != nil {
		snap["service_id"] = i.ServiceID.String()
	}
	if i.ProductID != nil {
		snap["product_id"] = i.ProductID.String()
	}
	return snap
}

func loyaltySnapshot(a *models.LoyaltyAccount) models.JSONB {
	return models.JSONB{
		"customer_id": a.CustomerID.String(),
		"salon_id":    a.SalonID.String(),
		"points":      a.Points,
	}
}
