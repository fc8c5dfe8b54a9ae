package slotgen

import (
	"context"
	"testing"
	"time"

	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/models"
)

type fakeStore struct {
	created []models.ConsultationSlot
	seen    map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{seen: make(map[string]bool)}
}

func (s *fakeStore) CreateSlot(_ context.Context, slot *models.ConsultationSlot) error {
	key := slot.StartTime.Format(time.RFC3339)
	if s.seen[key] {
		return httperr.ErrBusiness("slot_exists")
	}
	s.seen[key] = true
	s.created = append(s.created, *slot)
	return nil
}

func TestGenerate_WeekdaysOnly(t *testing.T) {
	store := newFakeStore()

	// A Thursday; the next 7 days contain 5 weekdays.
	start := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)

	res, err := Generate(context.Background(), store, Options{
		Days:            7,
		StartHour:       9,
		EndHour:         12,
		DurationMinutes: 60,
		Start:           start,
		Location:        time.UTC,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	// 5 weekdays x 3 hourly slots.
	if res.Created != 15 {
		t.Errorf("Created = %d, want 15", res.Created)
	}
	if res.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", res.Skipped)
	}

	for _, slot := range store.created {
		wd := slot.StartTime.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			t.Errorf("slot generated on %v", wd)
		}
		if h := slot.StartTime.Hour(); h < 9 || h >= 12 {
			t.Errorf("slot at hour %d outside window", h)
		}
	}
}

func TestGenerate_RerunSkipsExisting(t *testing.T) {
	store := newFakeStore()
	start := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)

	opts := Options{
		Days:      3,
		StartHour: 9,
		EndHour:   11,
		Start:     start,
		Location:  time.UTC,
	}

	first, err := Generate(context.Background(), store, opts)
	if err != nil {
		t.Fatalf("first run error = %v", err)
	}

	second, err := Generate(context.Background(), store, opts)
	if err != nil {
		t.Fatalf("second run error = %v", err)
	}

	if second.Created != 0 {
		t.Errorf("second run Created = %d, want 0", second.Created)
	}
	if second.Skipped != first.Created {
		t.Errorf("second run Skipped = %d, want %d", second.Skipped, first.Created)
	}
}

func TestGenerate_PaidSlots(t *testing.T) {
	store := newFakeStore()
	start := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)

	_, err := Generate(context.Background(), store, Options{
		Days:          1,
		StartHour:     9,
		EndHour:       10,
		PaymentAmount: 150,
		Start:         start,
		Location:      time.UTC,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, slot := range store.created {
		if !slot.RequiresPayment {
			t.Error("RequiresPayment = false, want true for priced slots")
		}
		if slot.PaymentAmount != 150 {
			t.Errorf("PaymentAmount = %v, want 150", slot.PaymentAmount)
		}
	}
}

func TestGenerate_RotatesCommunicationMethods(t *testing.T) {
	store := newFakeStore()
	start := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)

	_, err := Generate(context.Background(), store, Options{
		Days:      1,
		StartHour: 9,
		EndHour:   13,
		Start:     start,
		Location:  time.UTC,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	methods := make(map[string]bool)
	for _, slot := range store.created {
		methods[slot.CommunicationMethod] = true
	}
	if len(methods) < 2 {
		t.Errorf("communication methods = %v, want rotation across hours", methods)
	}
}
