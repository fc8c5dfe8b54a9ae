package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/northpeaklabs/marketing-ops/internal/httperr"
)

var businessMessages = map[string]string{
	"slot_not_available":           "This slot is no longer available.",
	"slot_in_past":                 "This slot has already started.",
	"lead_not_found":               "Lead not found.",
	"booking_not_found":            "Booking not found.",
	"payment_not_found":            "Payment not found.",
	"payment_in_progress":          "A payment for this booking is already in progress.",
	"email_required":               "An email address is required.",
	"invalid_email":                "The email address is not valid.",
	"invalid_amount":               "The amount must be greater than zero.",
	"invalid_status":               "Unknown status value.",
	"invalid_state":                "The record is not in a state that allows this action.",
	"unknown_communication_method": "Unknown communication method.",
}

// mapBusinessError writes the matching 4xx for a business rule failure and
// reports whether it handled the error.
func mapBusinessError(c *gin.Context, err error) bool {
	be, ok := httperr.AsBusiness(err)
	if !ok {
		return false
	}

	msg := businessMessages[be.Code]
	if msg == "" {
		msg = "Request could not be completed."
	}

	switch {
	case strings.HasSuffix(be.Code, "_not_found"):
		httperr.NotFound(c, be.Code, msg)
	case be.Code == "payment_in_progress" || be.Code == "invalid_state":
		httperr.Write(c, 409, be.Code, msg)
	default:
		httperr.BadRequest(c, be.Code, msg)
	}

	return true
}
