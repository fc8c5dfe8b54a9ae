package slotgen

import (
	"context"
	"time"

	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/models"
)

// Store persists generated slots. An already existing
// (start_time, duration) pair returns httperr.ErrBusiness("slot_exists").
type Store interface {
	CreateSlot(ctx context.Context, slot *models.ConsultationSlot) error
}

// Options controls a generation run.
type Options struct {
	// Days ahead of Start to fill, weekends excluded.
	Days int

	// Working hours, [StartHour, EndHour) in Location.
	StartHour int
	EndHour   int

	DurationMinutes int

	// PaymentAmount > 0 marks the slots as paid consultations.
	PaymentAmount float64

	Start    time.Time
	Location *time.Location
}

// Result reports how a run went. Existing slots are skipped, so re-running
// with the same options is harmless.
type Result struct {
	Created int
	Skipped int
}

var methodRotation = []string{"zoom", "google_meet", "teams", "direct_call"}

// Generate fills the calendar with hourly consultation slots on weekdays.
func Generate(ctx context.Context, store Store, opts Options) (Result, error) {
	var res Result

	if opts.Days <= 0 {
		opts.Days = 14
	}
	if opts.StartHour == 0 && opts.EndHour == 0 {
		opts.StartHour, opts.EndHour = 9, 17
	}
	if opts.DurationMinutes <= 0 {
		opts.DurationMinutes = 60
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}

	start := opts.Start.In(opts.Location)

	for day := 1; day <= opts.Days; day++ {
		date := start.AddDate(0, 0, day)

		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		for hour := opts.StartHour; hour < opts.EndHour; hour++ {
			slotStart := time.Date(
				date.Year(), date.Month(), date.Day(),
				hour, 0, 0, 0,
				opts.Location,
			)

			slot := &models.ConsultationSlot{
				StartTime:           slotStart.UTC(),
				DurationMinutes:     opts.DurationMinutes,
				IsAvailable:         true,
				CommunicationMethod: methodRotation[(hour-opts.StartHour)%len(methodRotation)],
				RequiresPayment:     opts.PaymentAmount > 0,
				PaymentAmount:       opts.PaymentAmount,
				Price:               opts.PaymentAmount,
			}

			if err := store.CreateSlot(ctx, slot); err != nil {
				if httperr.IsBusiness(err, "slot_exists") {
					res.Skipped++
					continue
				}
				return res, err
			}

			res.Created++
		}
	}

	return res, nil
}
