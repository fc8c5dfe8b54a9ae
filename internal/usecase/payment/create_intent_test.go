package payment

import (
	"context"
	"testing"

	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/models"
	"github.com/northpeaklabs/marketing-ops/internal/payment/stripe"
)

func TestCreateIntent(t *testing.T) {
	repo := newFakeRepo()
	b := repo.addBooking(models.Booking{Status: "pending"})

	provider := &fakeProvider{intent: &stripe.Intent{
		ID:           "pi_123",
		ClientSecret: "pi_123_secret",
		Status:       "requires_payment_method",
	}}

	uc := NewCreateIntent(repo, provider, testDispatcher())

	out, err := uc.Execute(context.Background(), CreateIntentInput{
		BookingID: b.ID,
		Amount:    150,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if out.ClientSecret != "pi_123_secret" {
		t.Errorf("ClientSecret = %q", out.ClientSecret)
	}
	if out.Payment.Status != "pending" {
		t.Errorf("payment status = %q, want pending", out.Payment.Status)
	}
	if out.Payment.Currency != "usd" {
		t.Errorf("currency = %q, want usd default", out.Payment.Currency)
	}
	if out.Payment.IntentID != "pi_123" {
		t.Errorf("IntentID = %q", out.Payment.IntentID)
	}
}

func TestCreateIntent_BookingMissing(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateIntent(repo, &fakeProvider{}, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateIntentInput{BookingID: 99, Amount: 150})
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("Execute() error = %v, want booking_not_found", err)
	}
}

func TestCreateIntent_OpenPaymentBlocks(t *testing.T) {
	repo := newFakeRepo()
	b := repo.addBooking(models.Booking{Status: "pending"})
	repo.addPayment(models.Payment{BookingID: b.ID, IntentID: "pi_old", Status: "pending"})

	provider := &fakeProvider{intent: &stripe.Intent{ID: "pi_new"}}
	uc := NewCreateIntent(repo, provider, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateIntentInput{BookingID: b.ID, Amount: 150})
	if !httperr.IsBusiness(err, "payment_in_progress") {
		t.Fatalf("Execute() error = %v, want payment_in_progress", err)
	}
	if provider.calls != 0 {
		t.Errorf("provider called %d times, want 0", provider.calls)
	}
}

func TestCreateIntent_FailedPaymentDoesNotBlock(t *testing.T) {
	repo := newFakeRepo()
	b := repo.addBooking(models.Booking{Status: "pending"})
	repo.addPayment(models.Payment{BookingID: b.ID, IntentID: "pi_old", Status: "failed"})

	provider := &fakeProvider{intent: &stripe.Intent{ID: "pi_new", ClientSecret: "s"}}
	uc := NewCreateIntent(repo, provider, testDispatcher())

	if _, err := uc.Execute(context.Background(), CreateIntentInput{BookingID: b.ID, Amount: 150}); err != nil {
		t.Fatalf("Execute() error = %v, want retry allowed after failure", err)
	}
}

func TestCreateIntent_InvalidAmount(t *testing.T) {
	repo := newFakeRepo()
	b := repo.addBooking(models.Booking{Status: "pending"})

	uc := NewCreateIntent(repo, &fakeProvider{}, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateIntentInput{BookingID: b.ID, Amount: 0})
	if !httperr.IsBusiness(err, "invalid_amount") {
		t.Fatalf("Execute() error = %v, want invalid_amount", err)
	}
}
