package services

import (
	"sync"
	"testing"
	"time"

	"salonbook-backend/models"

	"gorm.io/gorm"
)

func TestRoundFee(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{20, 20},
		{35.99, 35.99},
		{10.005, 10.01},
		{10.004, 10},
		{-10.005, -10.01},
	}
	for _, c := range cases {
		if got := roundFee(c.in); got != c.want {
			t.Fatalf("roundFee(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestCancellationFeeBoundary(t *testing.T) {
	env := newTestEnv(t)
	salon := env.createSalon(t)

	policy := models.CancelPolicy{SalonID: salon.ID, CutoffHours: 24, Fee: 20}
	if err := env.db.Create(&policy).Error; err != nil {
		t.Fatalf("failed to create policy: %v", err)
	}

	appt := &models.Appointment{SalonID: salon.ID, StartAt: at(t, 10, 0)}
	cutoff := appt.StartAt.Add(-24 * time.Hour)

	fee, err := env.policy.CancellationFee(env.db, appt, cutoff.Add(-time.Second))
	if err != nil {
		t.Fatalf("CancellationFee: %v", err)
	}
	if fee != 0 {
		t.Fatalf("one second before cutoff: expected 0, got %.2f", fee)
	}

	// Exactly at the cutoff the fee already applies.
	fee, err = env.policy.CancellationFee(env.db, appt, cutoff)
	if err != nil {
		t.Fatalf("CancellationFee: %v", err)
	}
	if fee != 20 {
		t.Fatalf("at cutoff: expected 20, got %.2f", fee)
	}
}

func TestNoShowPolicyFailsOpen(t *testing.T) {
	env := newTestEnv(t)
	salon := env.createSalon(t)

	grace, err := env.policy.NoShowGrace(env.db, salon.ID)
	if err != nil {
		t.Fatalf("NoShowGrace: %v", err)
	}
	if grace != 0 {
		t.Fatalf("expected zero grace without policy, got %v", grace)
	}

	fee, err := env.policy.NoShowFee(env.db, salon.ID)
	if err != nil {
		t.Fatalf("NoShowFee: %v", err)
	}
	if fee != 0 {
		t.Fatalf("expected zero fee without policy, got %.2f", fee)
	}
}

func TestLoyaltyBalanceMissingAccount(t *testing.T) {
	env := newTestEnv(t)
	salon := env.createSalon(t)
	customer := env.createCustomer(t)

	_, err := env.policy.LoyaltyBalance(customer.ID, salon.ID)
	if err != gorm.ErrRecordNotFound {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

// Concurrent completions for the same customer must not lose points.
func TestAccrueLoyaltyConcurrent(t *testing.T) {
	env := newTestEnv(t)
	salon := env.createSalon(t)
	customer := env.createCustomer(t)

	const visits = 8
	var wg sync.WaitGroup
	errs := make(chan error, visits)
	for i := 0; i < visits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- env.db.Transaction(func(tx *gorm.DB) error {
				_, err := env.policy.AccrueLoyalty(tx, customer.ID, salon.ID)
				return err
			})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("AccrueLoyalty: %v", err)
		}
	}

	account, err := env.policy.LoyaltyBalance(customer.ID, salon.ID)
	if err != nil {
		t.Fatalf("LoyaltyBalance: %v", err)
	}
	if account.Points != visits {
		t.Fatalf("expected %d points, got %d", visits, account.Points)
	}

	// Exactly one account row exists despite the racing first visits.
	var accounts int64
	if err := env.db.Model(&models.LoyaltyAccount{}).
		Where("customer_id = ? AND salon_id = ?", customer.ID, salon.ID).
		Count(&accounts).Error; err != nil {
		t.Fatalf("failed to count accounts: %v", err)
	}
	if accounts != 1 {
		t.Fatalf("expected 1 loyalty account, got %d", accounts)
	}
}
