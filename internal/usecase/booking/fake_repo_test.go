package booking

import (
	"context"
	"errors"
	"strings"

	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/models"
)

// fakeRepo is an in-memory stand-in for the gorm repository. The slot hold
// and release behave like the row-locked transactions: the slot flips
// atomically with the booking write.
type fakeRepo struct {
	slots    map[uint]*models.ConsultationSlot
	leads    map[uint]*models.Lead
	bookings map[uint]*models.Booking
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		slots:    make(map[uint]*models.ConsultationSlot),
		leads:    make(map[uint]*models.Lead),
		bookings: make(map[uint]*models.Booking),
	}
}

func (f *fakeRepo) addSlot(s models.ConsultationSlot) *models.ConsultationSlot {
	f.nextID++
	s.ID = f.nextID
	f.slots[s.ID] = &s
	return &s
}

func (f *fakeRepo) addLead(l models.Lead) *models.Lead {
	f.nextID++
	l.ID = f.nextID
	f.leads[l.ID] = &l
	return &l
}

func (f *fakeRepo) GetSlot(_ context.Context, id uint) (*models.ConsultationSlot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return s, nil
}

func (f *fakeRepo) GetLead(_ context.Context, id uint) (*models.Lead, error) {
	l, ok := f.leads[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return l, nil
}

func (f *fakeRepo) GetOrCreateLeadByEmail(_ context.Context, email string, defaults *models.Lead) (*models.Lead, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, l := range f.leads {
		if l.Email == email {
			return l, nil
		}
	}

	f.nextID++
	lead := *defaults
	lead.ID = f.nextID
	lead.Email = email
	f.leads[lead.ID] = &lead
	return &lead, nil
}

func (f *fakeRepo) CreateBookingHoldingSlot(_ context.Context, b *models.Booking) error {
	slot, ok := f.slots[b.SlotID]
	if !ok || !slot.IsAvailable {
		return httperr.ErrBusiness("slot_not_available")
	}

	f.nextID++
	b.ID = f.nextID
	stored := *b
	f.bookings[b.ID] = &stored

	slot.IsAvailable = false
	return nil
}

func (f *fakeRepo) GetBooking(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return b, nil
}

func (f *fakeRepo) SaveBooking(_ context.Context, b *models.Booking) error {
	stored := *b
	f.bookings[b.ID] = &stored
	return nil
}

func (f *fakeRepo) SaveBookingReleasingSlot(ctx context.Context, b *models.Booking) error {
	if err := f.SaveBooking(ctx, b); err != nil {
		return err
	}
	if slot, ok := f.slots[b.SlotID]; ok {
		slot.IsAvailable = true
	}
	return nil
}
