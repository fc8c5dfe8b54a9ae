package payment

import (
	"context"

	"github.com/northpeaklabs/marketing-ops/internal/audit"
	domain "github.com/northpeaklabs/marketing-ops/internal/domain/payment"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/models"
	"github.com/northpeaklabs/marketing-ops/internal/payment/stripe"
)

// Provider creates payment intents at the card processor.
type Provider interface {
	CreateIntent(ctx context.Context, in stripe.CreateIntentInput) (*stripe.Intent, error)
}

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateIntentInput struct {
	BookingID uint
	Amount    float64
	Currency  string
}

type CreateIntentOutput struct {
	Payment      *models.Payment
	ClientSecret string
}

// ======================================================
// USE CASE
// ======================================================

type CreateIntent struct {
	repo     domain.Repository
	provider Provider
	audit    *audit.Dispatcher
}

func NewCreateIntent(
	repo domain.Repository,
	provider Provider,
	audit *audit.Dispatcher,
) *CreateIntent {
	return &CreateIntent{
		repo:     repo,
		provider: provider,
		audit:    audit,
	}
}

func (uc *CreateIntent) Execute(
	ctx context.Context,
	in CreateIntentInput,
) (*CreateIntentOutput, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if in.Amount <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	// One open intent per booking. A failed or succeeded payment does
	// not block a new attempt; a pending or processing one does.
	open, err := uc.repo.HasOpenPayment(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, httperr.ErrBusiness("payment_in_progress")
	}

	currency := in.Currency
	if currency == "" {
		currency = "usd"
	}

	// Provider first, then persist. If the insert fails the intent is
	// orphaned at the provider and never captured, which is safe.
	intent, err := uc.provider.CreateIntent(ctx, stripe.CreateIntentInput{
		Amount:    in.Amount,
		Currency:  currency,
		BookingID: b.ID,
	})
	if err != nil {
		return nil, err
	}

	p := &models.Payment{
		BookingID: b.ID,
		Amount:    in.Amount,
		Currency:  currency,
		IntentID:  intent.ID,
		Status:    string(domain.StatusPending),
	}
	if err := uc.repo.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "payment_intent_created",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	return &CreateIntentOutput{
		Payment:      p,
		ClientSecret: intent.ClientSecret,
	}, nil
}
