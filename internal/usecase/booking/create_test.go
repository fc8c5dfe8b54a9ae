package booking

import (
	"context"
	"testing"
	"time"

	"github.com/northpeaklabs/marketing-ops/internal/audit"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/models"
)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nil)
}

func futureSlot() models.ConsultationSlot {
	return models.ConsultationSlot{
		StartTime:           time.Now().UTC().Add(72 * time.Hour),
		DurationMinutes:     60,
		IsAvailable:         true,
		CommunicationMethod: "zoom",
	}
}

func TestCreateBooking_NewLead(t *testing.T) {
	repo := newFakeRepo()
	slot := repo.addSlot(futureSlot())

	uc := NewCreateBooking(repo, testDispatcher(), nil)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		SlotID:    slot.ID,
		LeadName:  "Dana Whitfield",
		LeadEmail: "  Dana@Example.com ",
		Notes:     "wants a site audit",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if b.Status != "pending" {
		t.Errorf("Status = %q, want pending", b.Status)
	}
	if repo.slots[slot.ID].IsAvailable {
		t.Error("slot still available after booking")
	}

	lead, err := repo.GetLead(context.Background(), b.LeadID)
	if err != nil {
		t.Fatalf("lead not created: %v", err)
	}
	if lead.Email != "dana@example.com" {
		t.Errorf("lead email = %q, want normalized lowercase", lead.Email)
	}
	if lead.Source != "consultation" {
		t.Errorf("lead source = %q, want consultation", lead.Source)
	}
}

func TestCreateBooking_ExistingLeadByEmail(t *testing.T) {
	repo := newFakeRepo()
	slot := repo.addSlot(futureSlot())
	existing := repo.addLead(models.Lead{Email: "dana@example.com", Source: "website"})

	uc := NewCreateBooking(repo, testDispatcher(), nil)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		SlotID:    slot.ID,
		LeadEmail: "dana@example.com",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if b.LeadID != existing.ID {
		t.Errorf("LeadID = %d, want existing lead %d", b.LeadID, existing.ID)
	}
	if len(repo.leads) != 1 {
		t.Errorf("leads = %d, want 1 (no duplicate)", len(repo.leads))
	}
}

func TestCreateBooking_SlotTaken(t *testing.T) {
	repo := newFakeRepo()
	taken := futureSlot()
	taken.IsAvailable = false
	slot := repo.addSlot(taken)

	uc := NewCreateBooking(repo, testDispatcher(), nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		SlotID:    slot.ID,
		LeadEmail: "dana@example.com",
	})
	if !httperr.IsBusiness(err, "slot_not_available") {
		t.Fatalf("Execute() error = %v, want slot_not_available", err)
	}

	if len(repo.bookings) != 0 {
		t.Errorf("bookings = %d, want 0", len(repo.bookings))
	}
}

func TestCreateBooking_SlotInPast(t *testing.T) {
	repo := newFakeRepo()
	past := futureSlot()
	past.StartTime = time.Now().UTC().Add(-time.Hour)
	slot := repo.addSlot(past)

	uc := NewCreateBooking(repo, testDispatcher(), nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		SlotID:    slot.ID,
		LeadEmail: "dana@example.com",
	})
	if !httperr.IsBusiness(err, "slot_in_past") {
		t.Fatalf("Execute() error = %v, want slot_in_past", err)
	}
}

func TestCreateBooking_MissingEmail(t *testing.T) {
	repo := newFakeRepo()
	slot := repo.addSlot(futureSlot())

	uc := NewCreateBooking(repo, testDispatcher(), nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{SlotID: slot.ID})
	if !httperr.IsBusiness(err, "email_required") {
		t.Fatalf("Execute() error = %v, want email_required", err)
	}
}

func TestCreateBooking_BadEmail(t *testing.T) {
	repo := newFakeRepo()
	slot := repo.addSlot(futureSlot())

	uc := NewCreateBooking(repo, testDispatcher(), nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		SlotID:    slot.ID,
		LeadEmail: "not-an-email",
	})
	if !httperr.IsBusiness(err, "invalid_email") {
		t.Fatalf("Execute() error = %v, want invalid_email", err)
	}
}

func TestCreateBooking_UnknownLeadID(t *testing.T) {
	repo := newFakeRepo()
	slot := repo.addSlot(futureSlot())
	missing := uint(999)

	uc := NewCreateBooking(repo, testDispatcher(), nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		SlotID: slot.ID,
		LeadID: &missing,
	})
	if !httperr.IsBusiness(err, "lead_not_found") {
		t.Fatalf("Execute() error = %v, want lead_not_found", err)
	}
}
