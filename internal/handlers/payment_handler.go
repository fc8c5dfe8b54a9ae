package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/payment/stripe"
	"github.com/northpeaklabs/marketing-ops/internal/usecase/payment"
)

type PaymentHandler struct {
	createIntent *payment.CreateIntent
	processor    *payment.Processor
}

func NewPaymentHandler(
	createIntent *payment.CreateIntent,
	processor *payment.Processor,
) *PaymentHandler {
	return &PaymentHandler{
		createIntent: createIntent,
		processor:    processor,
	}
}

// --------- Requests ---------

type CreateIntentRequest struct {
	BookingID uint    `json:"booking_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Currency  string  `json:"currency"`
}

type ConfirmPaymentRequest struct {
	IntentID string `json:"intent_id" binding:"required"`
}

// ======================================================
// CREATE INTENT (PUBLIC CHECKOUT)
// ======================================================

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Booking id and amount are required.")
		return
	}

	out, err := h.createIntent.Execute(c.Request.Context(), payment.CreateIntentInput{
		BookingID: req.BookingID,
		Amount:    req.Amount,
		Currency:  req.Currency,
	})
	if err != nil {
		if mapBusinessError(c, err) {
			return
		}

		// Provider rejections carry a message safe to show the payer.
		var pe *stripe.ProviderError
		if errors.As(err, &pe) {
			httperr.BadRequest(c, "provider_rejected", pe.Message)
			return
		}

		httperr.Internal(c, "failed_to_create_intent", "Could not start the payment.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"payment_id":    out.Payment.ID,
		"intent_id":     out.Payment.IntentID,
		"client_secret": out.ClientSecret,
		"amount":        out.Payment.Amount,
		"currency":      out.Payment.Currency,
	})
}

// ======================================================
// CONFIRM (CLIENT CALLBACK AFTER CHECKOUT)
// ======================================================

// Confirm and the webhook race each other; both funnel into the same
// settle path, so whichever lands second is a no-op.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Intent id is required.")
		return
	}

	p, err := h.processor.MarkPaid(c.Request.Context(), req.IntentID)
	if err != nil {
		if mapBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_confirm_payment", "Could not confirm the payment.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payment_id": p.ID,
		"status":     p.Status,
		"paid_at":    p.PaidAt,
	})
}
