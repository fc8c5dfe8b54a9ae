package booking

import (
	"context"

	"github.com/northpeaklabs/marketing-ops/internal/models"
)

type Repository interface {
	// -------- Slot --------
	GetSlot(
		ctx context.Context,
		id uint,
	) (*models.ConsultationSlot, error)

	// -------- Lead --------
	GetLead(
		ctx context.Context,
		id uint,
	) (*models.Lead, error)

	GetOrCreateLeadByEmail(
		ctx context.Context,
		email string,
		defaults *models.Lead,
	) (*models.Lead, error)

	// -------- Booking (create / slot hold) --------

	// CreateBookingHoldingSlot creates the booking and flips the slot
	// unavailable in one transaction, locking the slot row so concurrent
	// attempts fail with slot_not_available instead of racing.
	CreateBookingHoldingSlot(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	SaveBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// SaveBookingReleasingSlot persists the cancelled booking and flips the
	// slot back to available in the same transaction.
	SaveBookingReleasingSlot(
		ctx context.Context,
		b *models.Booking,
	) error
}
