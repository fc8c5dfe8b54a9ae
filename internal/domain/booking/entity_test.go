package booking

import (
	"testing"
	"time"

	"github.com/northpeaklabs/marketing-ops/internal/models"
)

func TestConfirm(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}

	if err := Confirm(b, 150); err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}

	if b.Status != string(StatusConfirmed) {
		t.Errorf("Status = %q, want confirmed", b.Status)
	}
	if !b.Paid {
		t.Error("Paid = false, want true")
	}
	if b.AmountPaid != 150 {
		t.Errorf("AmountPaid = %v, want 150", b.AmountPaid)
	}

	if err := Confirm(b, 150); err == nil {
		t.Error("second Confirm() succeeded, want error")
	}
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	b := &models.Booking{Status: string(StatusConfirmed)}

	if err := Cancel(b, now, "client request"); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}

	if b.Status != string(StatusCancelled) {
		t.Errorf("Status = %q, want cancelled", b.Status)
	}
	if b.CancelledAt == nil || !b.CancelledAt.Equal(now) {
		t.Errorf("CancelledAt = %v, want %v", b.CancelledAt, now)
	}
	if b.CancellationReason != "client request" {
		t.Errorf("CancellationReason = %q", b.CancellationReason)
	}
}

func TestComplete(t *testing.T) {
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	b := &models.Booking{Status: string(StatusConfirmed)}

	if err := Complete(b, now); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if b.Status != string(StatusCompleted) {
		t.Errorf("Status = %q, want completed", b.Status)
	}
	if b.CompletedAt == nil || !b.CompletedAt.Equal(now) {
		t.Errorf("CompletedAt = %v, want %v", b.CompletedAt, now)
	}
}
