package booking

import (
	"context"
	"time"

	"github.com/northpeaklabs/marketing-ops/internal/audit"
	domain "github.com/northpeaklabs/marketing-ops/internal/domain/booking"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache SlotCache
	now   func() time.Time
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache SlotCache,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
		now:   time.Now,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
	reason string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Cancel(b, uc.now().UTC(), reason); err != nil {
		return nil, err
	}

	// Cancelling is a separate administrative action from refunding; no
	// refund is triggered here.
	if err := uc.repo.SaveBookingReleasingSlot(ctx, b); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateAvailable(ctx)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
