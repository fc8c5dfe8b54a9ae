package payment

import (
	"time"

	"github.com/northpeaklabs/marketing-ops/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func MarkSucceeded(p *models.Payment, now time.Time) error {
	if err := CanSucceed(Status(p.Status)); err != nil {
		return err
	}

	p.Status = string(StatusSucceeded)
	p.PaidAt = &now
	return nil
}

func MarkFailed(p *models.Payment) error {
	if err := CanFail(Status(p.Status)); err != nil {
		return err
	}

	p.Status = string(StatusFailed)
	return nil
}

// ApplyRefund records a full or partial refund. A refund covering the whole
// amount lands on refunded, anything less on partially_refunded.
func ApplyRefund(p *models.Payment, amount float64, reason string, now time.Time) error {
	if err := CanRefund(Status(p.Status)); err != nil {
		return err
	}

	p.Refunded = true
	p.RefundedAt = &now
	p.RefundAmount = amount
	p.RefundReason = reason

	if amount >= p.Amount {
		p.Status = string(StatusRefunded)
	} else {
		p.Status = string(StatusPartiallyRefunded)
	}
	return nil
}
