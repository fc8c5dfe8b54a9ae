package payment

import (
	"context"

	"github.com/northpeaklabs/marketing-ops/internal/models"
)

type Repository interface {
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	SaveBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Payment --------
	CreatePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	GetPaymentByIntentID(
		ctx context.Context,
		intentID string,
	) (*models.Payment, error)

	SavePayment(
		ctx context.Context,
		p *models.Payment,
	) error

	// HasOpenPayment reports whether the booking already has a payment that
	// still awaits a provider outcome.
	HasOpenPayment(
		ctx context.Context,
		bookingID uint,
	) (bool, error)

	// -------- Webhook events --------

	// RecordEvent inserts the provider event. A redelivered event id returns
	// httperr.ErrBusiness("duplicate_event") and must not be processed again.
	RecordEvent(
		ctx context.Context,
		ev *models.WebhookEvent,
	) error

	MarkEventProcessed(
		ctx context.Context,
		ev *models.WebhookEvent,
		processingErr error,
	) error
}
