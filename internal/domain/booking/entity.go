package booking

import (
	"time"

	"github.com/northpeaklabs/marketing-ops/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Confirm is the payment-success cascade on the booking side.
func Confirm(b *models.Booking, amountPaid float64) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	b.Paid = true
	b.AmountPaid = amountPaid
	return nil
}

func Cancel(b *models.Booking, now time.Time, reason string) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	b.CancellationReason = reason
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

func MarkNoShow(b *models.Booking) error {
	if err := CanMarkNoShow(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusNoShow)
	return nil
}
