package meeting

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/models"
)

// Generator synthesizes join links per communication method. Real
// conferencing APIs slot in behind the same interface later; for now the
// links are placeholders built from a fresh meeting id.
type Generator struct {
	businessPhone string
}

func NewGenerator(businessPhone string) *Generator {
	return &Generator{businessPhone: businessPhone}
}

func (g *Generator) Generate(slot *models.ConsultationSlot) (string, error) {
	meetingID := uuid.NewString()[:8]

	switch slot.CommunicationMethod {
	case "zoom":
		return fmt.Sprintf("https://zoom.us/j/%s", meetingID), nil
	case "teams":
		return fmt.Sprintf("https://teams.microsoft.com/l/meetup-join/%s", meetingID), nil
	case "google_meet":
		return fmt.Sprintf("https://meet.google.com/%s", meetingID), nil
	case "direct_call":
		return "tel:" + g.businessPhone, nil
	}

	return "", httperr.ErrBusiness("unknown_communication_method")
}
