package handlers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/northpeaklabs/marketing-ops/internal/config"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/payment/stripe"
	"github.com/northpeaklabs/marketing-ops/internal/usecase/payment"
)

// Caps webhook bodies well above any real event size.
const maxWebhookBody = 1 << 20

type WebhookHandler struct {
	secret    string
	processor *payment.Processor
}

func NewWebhookHandler(cfg *config.Config, processor *payment.Processor) *WebhookHandler {
	return &WebhookHandler{
		secret:    cfg.StripeWebhookSecret,
		processor: processor,
	}
}

// HandleStripe verifies the signature over the raw body, then hands the
// event to the processor. Bad signatures get a 400 so the provider keeps
// the event in its retry queue; everything else is acknowledged.
func (h *WebhookHandler) HandleStripe(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.BadRequest(c, "unreadable_body", "Could not read the request body.")
		return
	}

	ev, err := stripe.ParseEvent(
		payload,
		c.GetHeader(stripe.SignatureHeader),
		h.secret,
		time.Now().UTC(),
	)
	if err != nil {
		httperr.BadRequest(c, "invalid_signature", "Webhook signature verification failed.")
		return
	}

	if err := h.processor.HandleEvent(c.Request.Context(), ev, payload); err != nil {
		httperr.Internal(c, "webhook_processing_failed", "Event could not be processed.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
