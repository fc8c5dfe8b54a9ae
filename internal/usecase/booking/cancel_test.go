package booking

import (
	"context"
	"testing"
	"time"

	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/models"
)

func TestCancelBooking_ReleasesSlot(t *testing.T) {
	repo := newFakeRepo()
	slot := repo.addSlot(futureSlot())

	createUC := NewCreateBooking(repo, testDispatcher(), nil)
	b, err := createUC.Execute(context.Background(), CreateBookingInput{
		SlotID:    slot.ID,
		LeadEmail: "dana@example.com",
	})
	if err != nil {
		t.Fatalf("setup booking: %v", err)
	}

	fixed := time.Date(2026, 4, 2, 11, 30, 0, 0, time.UTC)
	uc := NewCancelBooking(repo, testDispatcher(), nil)
	uc.now = func() time.Time { return fixed }

	cancelled, err := uc.Execute(context.Background(), 7, b.ID, "rescheduling")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if cancelled.Status != "cancelled" {
		t.Errorf("Status = %q, want cancelled", cancelled.Status)
	}
	if cancelled.CancelledAt == nil || !cancelled.CancelledAt.Equal(fixed) {
		t.Errorf("CancelledAt = %v, want %v", cancelled.CancelledAt, fixed)
	}
	if cancelled.CancellationReason != "rescheduling" {
		t.Errorf("CancellationReason = %q", cancelled.CancellationReason)
	}
	if !repo.slots[slot.ID].IsAvailable {
		t.Error("slot not released after cancel")
	}
}

func TestCancelBooking_AlreadyCancelled(t *testing.T) {
	repo := newFakeRepo()
	slot := repo.addSlot(futureSlot())

	b := &models.Booking{SlotID: slot.ID, Status: "cancelled"}
	repo.nextID++
	b.ID = repo.nextID
	repo.bookings[b.ID] = b

	uc := NewCancelBooking(repo, testDispatcher(), nil)

	_, err := uc.Execute(context.Background(), 7, b.ID, "")
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("Execute() error = %v, want invalid_state", err)
	}
}

func TestCancelBooking_NotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCancelBooking(repo, testDispatcher(), nil)

	_, err := uc.Execute(context.Background(), 7, 42, "")
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("Execute() error = %v, want booking_not_found", err)
	}
}

func TestCompleteBooking(t *testing.T) {
	repo := newFakeRepo()
	slot := repo.addSlot(futureSlot())

	b := &models.Booking{SlotID: slot.ID, Status: "confirmed"}
	repo.nextID++
	b.ID = repo.nextID
	repo.bookings[b.ID] = b

	fixed := time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)
	uc := NewCompleteBooking(repo, testDispatcher())
	uc.now = func() time.Time { return fixed }

	done, err := uc.Execute(context.Background(), 7, b.ID)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if done.Status != "completed" {
		t.Errorf("Status = %q, want completed", done.Status)
	}
	if done.CompletedAt == nil || !done.CompletedAt.Equal(fixed) {
		t.Errorf("CompletedAt = %v, want %v", done.CompletedAt, fixed)
	}
}

func TestMarkNoShow_RequiresConfirmed(t *testing.T) {
	repo := newFakeRepo()
	slot := repo.addSlot(futureSlot())

	b := &models.Booking{SlotID: slot.ID, Status: "pending"}
	repo.nextID++
	b.ID = repo.nextID
	repo.bookings[b.ID] = b

	uc := NewMarkNoShow(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), 7, b.ID)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("Execute() error = %v, want invalid_state", err)
	}
}
