package lead

import (
	"time"

	"github.com/northpeaklabs/marketing-ops/internal/httperr"
	"github.com/northpeaklabs/marketing-ops/internal/models"
)

type Status string

const (
	StatusNew          Status = "new"
	StatusContacted    Status = "contacted"
	StatusQualified    Status = "qualified"
	StatusProposalSent Status = "proposal_sent"
	StatusNegotiation  Status = "negotiation"
	StatusWon          Status = "won"
	StatusLost         Status = "lost"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified,
		StatusProposalSent, StatusNegotiation, StatusWon, StatusLost:
		return true
	}
	return false
}

// ApplyStatus moves a lead to the next status and stamps the matching
// response-time timestamp on the first transition into that state only.
// Replays of the same status never overwrite an existing stamp.
func ApplyStatus(l *models.Lead, next Status, now time.Time) error {
	if !IsValidStatus(next) {
		return httperr.ErrBusiness("invalid_status")
	}

	prev := Status(l.Status)
	l.Status = string(next)

	if prev == StatusNew && next == StatusContacted && l.FirstContactedAt == nil {
		l.FirstContactedAt = &now
	}
	if prev != StatusQualified && next == StatusQualified && l.QualifiedAt == nil {
		l.QualifiedAt = &now
	}
	if prev != StatusWon && next == StatusWon && l.ConvertedAt == nil {
		l.ConvertedAt = &now
	}

	return nil
}
