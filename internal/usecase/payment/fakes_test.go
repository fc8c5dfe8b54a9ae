package payment

import (
	"context"
	"errors"

	"github.com/northpeaklabs/marketing-ops/internal/audit"
	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/models"
	"github.com/northpeaklabs/marketing-ops/internal/payment/stripe"
)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nil)
}

// ----------------------------------------------------
// repository fake
// ----------------------------------------------------

type fakeRepo struct {
	bookings map[uint]*models.Booking
	payments map[string]*models.Payment
	events   map[string]*models.WebhookEvent
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bookings: make(map[uint]*models.Booking),
		payments: make(map[string]*models.Payment),
		events:   make(map[string]*models.WebhookEvent),
	}
}

func (f *fakeRepo) addBooking(b models.Booking) *models.Booking {
	f.nextID++
	b.ID = f.nextID
	f.bookings[b.ID] = &b
	return &b
}

func (f *fakeRepo) addPayment(p models.Payment) *models.Payment {
	f.nextID++
	p.ID = f.nextID
	f.payments[p.IntentID] = &p
	return &p
}

func (f *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return b, nil
}

func (f *fakeRepo) SaveBooking(_ context.Context, b *models.Booking) error {
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeRepo) CreatePayment(_ context.Context, p *models.Payment) error {
	f.nextID++
	p.ID = f.nextID
	f.payments[p.IntentID] = p
	return nil
}

func (f *fakeRepo) GetPaymentByIntentID(_ context.Context, intentID string) (*models.Payment, error) {
	p, ok := f.payments[intentID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (f *fakeRepo) SavePayment(_ context.Context, p *models.Payment) error {
	f.payments[p.IntentID] = p
	return nil
}

func (f *fakeRepo) HasOpenPayment(_ context.Context, bookingID uint) (bool, error) {
	for _, p := range f.payments {
		if p.BookingID == bookingID && (p.Status == "pending" || p.Status == "processing") {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) RecordEvent(_ context.Context, ev *models.WebhookEvent) error {
	if _, seen := f.events[ev.EventID]; seen {
		return httperr.ErrBusiness("duplicate_event")
	}
	f.nextID++
	ev.ID = f.nextID
	f.events[ev.EventID] = ev
	return nil
}

func (f *fakeRepo) MarkEventProcessed(_ context.Context, ev *models.WebhookEvent, processingErr error) error {
	if processingErr != nil {
		ev.ProcessingError = processingErr.Error()
	}
	return nil
}

// ----------------------------------------------------
// collaborator fakes
// ----------------------------------------------------

type fakeMailer struct {
	sent int
}

func (m *fakeMailer) SendBookingConfirmation(
	_ context.Context,
	_ *models.Booking,
	_ *models.Lead,
	_ *models.ConsultationSlot,
) error {
	m.sent++
	return nil
}

type fakeLinker struct {
	generated int
}

func (l *fakeLinker) Generate(_ *models.ConsultationSlot) (string, error) {
	l.generated++
	return "https://zoom.us/j/test1234", nil
}

type fakeProvider struct {
	intent *stripe.Intent
	err    error
	calls  int
}

func (p *fakeProvider) CreateIntent(_ context.Context, _ stripe.CreateIntentInput) (*stripe.Intent, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.intent, nil
}
