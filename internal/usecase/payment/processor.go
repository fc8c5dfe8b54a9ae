package payment

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/northpeaklabs/marketing-ops/internal/audit"
	bookingdomain "github.com/northpeaklabs/marketing-ops/internal/domain/booking"
	domain "github.com/northpeaklabs/marketing-ops/internal/domain/payment"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/mailer"
	"github.com/northpeaklabs/marketing-ops/internal/models"
	"github.com/northpeaklabs/marketing-ops/internal/payment/stripe"
)

// MeetingLinker builds the meeting link for a confirmed booking.
type MeetingLinker interface {
	Generate(slot *models.ConsultationSlot) (string, error)
}

// ======================================================
// PROCESSOR
// ======================================================

// Processor applies provider events to payments and bookings. Each
// event is recorded before any side effect runs, so replays become
// no-ops.
type Processor struct {
	repo     domain.Repository
	meetings MeetingLinker
	mail     mailer.Mailer
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewProcessor(
	repo domain.Repository,
	meetings MeetingLinker,
	mail mailer.Mailer,
	audit *audit.Dispatcher,
) *Processor {
	return &Processor{
		repo:     repo,
		meetings: meetings,
		mail:     mail,
		audit:    audit,
		now:      time.Now,
	}
}

// ======================================================
// EVENT DISPATCH
// ======================================================

func (pr *Processor) HandleEvent(
	ctx context.Context,
	ev *stripe.Event,
	payload []byte,
) error {

	rec := &models.WebhookEvent{
		Provider:  "stripe",
		EventID:   ev.ID,
		EventType: ev.Type,
		Payload:   string(payload),
	}

	if err := pr.repo.RecordEvent(ctx, rec); err != nil {
		if httperr.IsBusiness(err, "duplicate_event") {
			// Already seen. Acknowledge without reprocessing.
			log.Printf("[webhook] duplicate event %s ignored", ev.ID)
			return nil
		}
		return err
	}

	var procErr error

	switch ev.Type {
	case stripe.EventPaymentSucceeded:
		var obj stripe.PaymentIntentObject
		if err := json.Unmarshal(ev.Data.Object, &obj); err != nil {
			procErr = err
			break
		}
		_, procErr = pr.MarkPaid(ctx, obj.ID)

	case stripe.EventPaymentFailed:
		var obj stripe.PaymentIntentObject
		if err := json.Unmarshal(ev.Data.Object, &obj); err != nil {
			procErr = err
			break
		}
		procErr = pr.markFailed(ctx, obj.ID)

	case stripe.EventChargeRefunded:
		var obj stripe.ChargeObject
		if err := json.Unmarshal(ev.Data.Object, &obj); err != nil {
			procErr = err
			break
		}
		if obj.PaymentIntent == "" {
			log.Printf("[webhook] refund event %s without intent id", ev.ID)
			break
		}
		// Wire amounts are cents.
		procErr = pr.applyRefund(ctx, obj.PaymentIntent, float64(obj.AmountRefunded)/100)

	default:
		// Unknown types are acknowledged and recorded, nothing else.
		log.Printf("[webhook] ignoring event type %s", ev.Type)
	}

	if err := pr.repo.MarkEventProcessed(ctx, rec, procErr); err != nil {
		log.Printf("[webhook] failed to mark event %s processed: %v", ev.ID, err)
	}

	if procErr != nil {
		// Business failures (unknown intent, bad state) are logged and
		// acknowledged so the provider stops retrying. Anything else
		// bubbles up as a 500 to get a retry.
		if _, ok := httperr.AsBusiness(procErr); ok {
			log.Printf("[webhook] event %s: %v", ev.ID, procErr)
			return nil
		}
		return procErr
	}

	return nil
}

// ======================================================
// TRANSITIONS
// ======================================================

// MarkPaid settles a payment and confirms its booking. It is shared by
// the webhook path and the client confirm endpoint, and is idempotent
// on already settled payments.
func (pr *Processor) MarkPaid(
	ctx context.Context,
	intentID string,
) (*models.Payment, error) {

	p, err := pr.repo.GetPaymentByIntentID(ctx, intentID)
	if err != nil {
		return nil, httperr.ErrBusiness("payment_not_found")
	}

	if p.Status == string(domain.StatusSucceeded) {
		return p, nil
	}

	if err := domain.MarkSucceeded(p, pr.now().UTC()); err != nil {
		return nil, err
	}
	if err := pr.repo.SavePayment(ctx, p); err != nil {
		return nil, err
	}

	b, err := pr.repo.GetBooking(ctx, p.BookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := bookingdomain.Confirm(b, p.Amount); err != nil {
		// Booking already moved on (confirmed or cancelled). Payment
		// stays settled either way.
		log.Printf("[payment] booking %d not confirmable: %v", b.ID, err)
	} else {
		if link, lerr := pr.meetings.Generate(&b.Slot); lerr != nil {
			log.Printf("[payment] meeting link for booking %d: %v", b.ID, lerr)
		} else {
			b.MeetingLink = link
		}
		if err := pr.repo.SaveBooking(ctx, b); err != nil {
			return nil, err
		}
		if merr := pr.mail.SendBookingConfirmation(ctx, b, &b.Lead, &b.Slot); merr != nil {
			log.Printf("[payment] confirmation mail for booking %d: %v", b.ID, merr)
		}
	}

	pr.audit.Dispatch(audit.Event{
		Action:   "payment_succeeded",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	return p, nil
}

func (pr *Processor) markFailed(ctx context.Context, intentID string) error {
	p, err := pr.repo.GetPaymentByIntentID(ctx, intentID)
	if err != nil {
		return httperr.ErrBusiness("payment_not_found")
	}

	if err := domain.MarkFailed(p); err != nil {
		return err
	}
	if err := pr.repo.SavePayment(ctx, p); err != nil {
		return err
	}

	pr.audit.Dispatch(audit.Event{
		Action:   "payment_failed",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	return nil
}

func (pr *Processor) applyRefund(
	ctx context.Context,
	intentID string,
	amount float64,
) error {

	p, err := pr.repo.GetPaymentByIntentID(ctx, intentID)
	if err != nil {
		return httperr.ErrBusiness("payment_not_found")
	}

	if err := domain.ApplyRefund(p, amount, "provider refund event", pr.now().UTC()); err != nil {
		return err
	}
	if err := pr.repo.SavePayment(ctx, p); err != nil {
		return err
	}

	pr.audit.Dispatch(audit.Event{
		Action:   "payment_refunded",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	return nil
}
