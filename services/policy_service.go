// services/policy_service.go
package services

import (
	"errors"
	"log"
	"math"
	"time"

	"salonbook-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roundFee rounds half away from zero to whole cents. Fees are rounded
// exactly once, at the point they are computed.
func roundFee(fee float64) float64 {
	return math.Round(fee*100) / 100
}

// PolicyService looks up per-salon cancellation, no-show and loyalty
// rules and applies them on terminal state transitions. Missing
// configuration always fails open: no policy on file means no fee, so
// customers are never blocked on salon misconfiguration.
type PolicyService struct {
	db    *gorm.DB
	audit *AuditService
}

func NewPolicyService(db *gorm.DB, audit *AuditService) *PolicyService {
	return &PolicyService{db: db, audit: audit}
}

// CancellationFee is zero when now is earlier than start minus the
// salon's cutoff, or when the salon has no cancellation policy.
func (s *PolicyService) CancellationFee(tx *gorm.DB, appointment *models.Appointment, now time.Time) (float64, error) {
	var policy models.CancelPolicy
	err := tx.Where("salon_id = ?", appointment.SalonID).
		Order("updated_at DESC").
		First(&policy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	cutoff := appointment.StartAt.Add(-time.Duration(policy.CutoffHours) * time.Hour)
	if now.Before(cutoff) {
		return 0, nil
	}
	return roundFee(policy.Fee), nil
}

// NoShowGrace returns how long past the appointment start a customer
// is given before a no-show may be flagged. No policy means no grace.
func (s *PolicyService) NoShowGrace(tx *gorm.DB, salonID uuid.UUID) (time.Duration, error) {
	var policy models.NoShowPolicy
	err := tx.Where("salon_id = ?", salonID).
		Order("updated_at DESC").
		First(&policy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return time.Duration(policy.GraceMin) * time.Minute, nil
}

// NoShowFee is the salon's configured fee, or zero without a policy.
// The grace period check already gated entry into the no-show state.
func (s *PolicyService) NoShowFee(tx *gorm.DB, salonID uuid.UUID) (float64, error) {
	var policy models.NoShowPolicy
	err := tx.Where("salon_id = ?", salonID).
		Order("updated_at DESC").
		First(&policy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return roundFee(policy.Fee), nil
}

// AccrueLoyalty credits one visit to the customer's account at the
// salon, creating the account lazily exactly once. The increment is a
// single UPDATE so concurrent completions serialize on the row lock
// and never lose a point; the unique (customer, salon) index is the
// backstop for concurrent first visits. When the program threshold is
// crossed the counter wraps modulo the threshold and a reward-earned
// signal is emitted for downstream redemption.
func (s *PolicyService) AccrueLoyalty(tx *gorm.DB, customerID, salonID uuid.UUID) (rewardEarned bool, err error) {
	var account models.LoyaltyAccount
	err = tx.Where("customer_id = ? AND salon_id = ?", customerID, salonID).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		account = models.LoyaltyAccount{CustomerID: customerID, SalonID: salonID}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}, {Name: "salon_id"}},
			DoNothing: true,
		}).Create(&account).Error; err != nil {
			return false, err
		}
		// Re-read: a concurrent first visit may have won the insert.
		if err := tx.Where("customer_id = ? AND salon_id = ?", customerID, salonID).First(&account).Error; err != nil {
			return false, err
		}
	} else if err != nil {
		return false, err
	}
	before := loyaltySnapshot(&account)

	if err := tx.Model(&models.LoyaltyAccount{}).
		Where("id = ?", account.ID).
		UpdateColumn("points", gorm.Expr("points + 1")).Error; err != nil {
		return false, err
	}
	if err := tx.First(&account, "id = ?", account.ID).Error; err != nil {
		return false, err
	}

	var program models.LoyaltyProgram
	err = tx.Where("salon_id = ? AND active = ?", salonID, true).
		Order("updated_at DESC").
		First(&program).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	if err == nil && program.VisitsForReward > 0 && account.Points >= program.VisitsForReward {
		account.Points = account.Points % program.VisitsForReward
		if err := tx.Model(&models.LoyaltyAccount{}).
			Where("id = ?", account.ID).
			UpdateColumn("points", account.Points).Error; err != nil {
			return false, err
		}
		rewardEarned = true
		log.Printf("Loyalty reward earned: customer %s at salon %s (%s %.2f)",
			customerID, salonID, program.RewardType, program.RewardValue)
	}

	if err := s.audit.Record(tx, "loyalty_account", account.ID.String(), models.AuditUpdate, before, loyaltySnapshot(&account)); err != nil {
		return false, err
	}
	return rewardEarned, nil
}

// LoyaltyBalance is the read-only entry point for balance lookups.
func (s *PolicyService) LoyaltyBalance(customerID, salonID uuid.UUID) (*models.LoyaltyAccount, error) {
	var account models.LoyaltyAccount
	if err := s.db.Where("customer_id = ? AND salon_id = ?", customerID, salonID).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
