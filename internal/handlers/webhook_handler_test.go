package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/northpeaklabs/marketing-ops/internal/audit"
	"github.com/northpeaklabs/marketing-ops/internal/config"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/mailer"
	"github.com/northpeaklabs/marketing-ops/internal/models"
	"github.com/northpeaklabs/marketing-ops/internal/payment/stripe"
	"github.com/northpeaklabs/marketing-ops/internal/usecase/payment"
)

// dropRepo treats every event as already recorded, so the handler path can
// be exercised without a database.
type dropRepo struct{}

func (dropRepo) GetBooking(context.Context, uint) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}
func (dropRepo) SaveBooking(context.Context, *models.Booking) error { return nil }
func (dropRepo) CreatePayment(context.Context, *models.Payment) error {
	return nil
}
func (dropRepo) GetPaymentByIntentID(context.Context, string) (*models.Payment, error) {
	return nil, errors.New("not implemented")
}
func (dropRepo) SavePayment(context.Context, *models.Payment) error { return nil }
func (dropRepo) HasOpenPayment(context.Context, uint) (bool, error) { return false, nil }
func (dropRepo) RecordEvent(context.Context, *models.WebhookEvent) error {
	return httperr.ErrBusiness("duplicate_event")
}
func (dropRepo) MarkEventProcessed(context.Context, *models.WebhookEvent, error) error {
	return nil
}

type noopLinker struct{}

func (noopLinker) Generate(*models.ConsultationSlot) (string, error) { return "", nil }

func newWebhookRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	processor := payment.NewProcessor(
		dropRepo{},
		noopLinker{},
		mailer.NewLogMailer(),
		audit.NewDispatcher(nil),
	)

	h := NewWebhookHandler(&config.Config{StripeWebhookSecret: secret}, processor)

	r := gin.New()
	r.POST("/api/webhooks/stripe", h.HandleStripe)
	return r
}

func TestHandleStripe_RejectsMissingSignature(t *testing.T) {
	r := newWebhookRouter("whsec_test")

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe",
		bytes.NewReader([]byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleStripe_RejectsBadSignature(t *testing.T) {
	r := newWebhookRouter("whsec_test")

	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)
	sig := stripe.Sign(payload, "whsec_wrong", time.Now())

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set(stripe.SignatureHeader, sig)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestHandleStripe_AcknowledgesDuplicate(t *testing.T) {
	r := newWebhookRouter("whsec_test")

	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1"}}}`)
	sig := stripe.Sign(payload, "whsec_test", time.Now())

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set(stripe.SignatureHeader, sig)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 for replayed event", w.Code)
	}
}
