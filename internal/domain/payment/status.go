package payment

import "github.com/northpeaklabs/marketing-ops/internal/httperr"

// ===============================
// Payment Status
// ===============================

type Status string

const (
	StatusPending           Status = "pending"
	StatusProcessing        Status = "processing"
	StatusSucceeded         Status = "succeeded"
	StatusFailed            Status = "failed"
	StatusRefunded          Status = "refunded"
	StatusPartiallyRefunded Status = "partially_refunded"
)

// pending -> processing -> succeeded
// pending|processing -> failed
// succeeded -> refunded|partially_refunded
// No other transition leaves a terminal state.

func CanSucceed(current Status) error {
	if current != StatusPending && current != StatusProcessing {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanFail(current Status) error {
	if current != StatusPending && current != StatusProcessing {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanRefund(current Status) error {
	if current != StatusSucceeded {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// IsOpen reports whether the payment still awaits a provider outcome.
func IsOpen(current Status) bool {
	return current == StatusPending || current == StatusProcessing
}
