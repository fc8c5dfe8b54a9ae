package booking

import (
	"context"
	"strings"
	"time"

	"github.com/northpeaklabs/marketing-ops/internal/audit"
	domain "github.com/northpeaklabs/marketing-ops/internal/domain/booking"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/models"
	"github.com/northpeaklabs/marketing-ops/internal/validators"
)

// SlotCache is invalidated whenever slot availability changes.
type SlotCache interface {
	InvalidateAvailable(ctx context.Context)
}

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	SlotID uint

	// Either an existing lead id, or fields to create one.
	LeadID *uint

	LeadName    string
	LeadEmail   string
	LeadPhone   string
	LeadCompany string

	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache SlotCache
	now   func() time.Time
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	cache SlotCache,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		cache: cache,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Slot sanity (availability is re-checked under lock)
	// --------------------------------------------------
	slot, err := uc.repo.GetSlot(ctx, in.SlotID)
	if err != nil {
		return nil, httperr.ErrBusiness("slot_not_available")
	}
	if slot.StartTime.Before(uc.now().UTC()) {
		return nil, httperr.ErrBusiness("slot_in_past")
	}

	// --------------------------------------------------
	// 2. Lead (existing by id, or get-or-create by email)
	// --------------------------------------------------
	var lead *models.Lead

	if in.LeadID != nil {
		found, err := uc.repo.GetLead(ctx, *in.LeadID)
		if err != nil {
			return nil, httperr.ErrBusiness("lead_not_found")
		}
		lead = found
	} else {
		email := strings.ToLower(strings.TrimSpace(in.LeadEmail))
		if email == "" {
			return nil, httperr.ErrBusiness("email_required")
		}
		if !validators.HasEmailShape(email) {
			return nil, httperr.ErrBusiness("invalid_email")
		}

		found, err := uc.repo.GetOrCreateLeadByEmail(ctx, email, &models.Lead{
			Name:    in.LeadName,
			Phone:   in.LeadPhone,
			Company: in.LeadCompany,
			Source:  "consultation",
			Status:  "new",
		})
		if err != nil {
			return nil, err
		}
		lead = found
	}

	// --------------------------------------------------
	// 3. Booking + slot hold (atomic, row-locked)
	// --------------------------------------------------
	b := &models.Booking{
		LeadID: lead.ID,
		SlotID: in.SlotID,
		Status: string(domain.InitialStatus()),
		Notes:  in.Notes,
	}

	if err := uc.repo.CreateBookingHoldingSlot(ctx, b); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateAvailable(ctx)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
