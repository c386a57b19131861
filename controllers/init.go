// controllers/init.go
package controllers

import (
	"salonbook-backend/services"

	"gorm.io/gorm"
)

var (
	auditSvc        *services.AuditService
	availabilitySvc *services.AvailabilityService
	schedulingSvc   *services.SchedulingService
	policySvc       *services.PolicyService
	bookingSvc      *services.BookingService
)

// InitServices wires the booking core once the DB connection exists.
func InitServices(db *gorm.DB) {
	auditSvc = services.NewAuditService(db)
	availabilitySvc = services.NewAvailabilityService(db)
	schedulingSvc = services.NewSchedulingService(db, availabilitySvc, auditSvc)
	policySvc = services.NewPolicyService(db, auditSvc)
	bookingSvc = services.NewBookingService(db, schedulingSvc, policySvc, auditSvc)
}

// BookingService exposes the lifecycle controller to collaborators
// outside the HTTP surface (the no-show sweeper).
func BookingService() *services.BookingService {
	return bookingSvc
}
