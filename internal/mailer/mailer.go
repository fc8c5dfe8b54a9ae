package mailer

import (
	"context"
	"log"

	"github.com/northpeaklabs/marketing-ops/internal/models"
)

// Mailer is the boundary to the email delivery collaborator. Delivery
// failures are the caller's to log; they never roll back payment state.
type Mailer interface {
	SendBookingConfirmation(
		ctx context.Context,
		b *models.Booking,
		lead *models.Lead,
		slot *models.ConsultationSlot,
	) error
}

// LogMailer writes the would-be email to the process log. Stands in until
// the delivery service is wired up.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) SendBookingConfirmation(
	ctx context.Context,
	b *models.Booking,
	lead *models.Lead,
	slot *models.ConsultationSlot,
) error {

	log.Printf(
		"mail: booking confirmation to %s for %s (%d min, %s)",
		lead.Email,
		slot.StartTime.Format("2006-01-02 15:04"),
		slot.DurationMinutes,
		b.MeetingLink,
	)
	return nil
}
