package lead

import (
	"testing"
	"time"

	"github.com/northpeaklabs/marketing-ops/internal/models"
)

func TestIsValidStatus(t *testing.T) {
	valid := []Status{
		StatusNew, StatusContacted, StatusQualified,
		StatusProposalSent, StatusNegotiation, StatusWon, StatusLost,
	}
	for _, s := range valid {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = false, want true", s)
		}
	}

	if IsValidStatus("archived") {
		t.Error(`IsValidStatus("archived") = true, want false`)
	}
}

func TestApplyStatus_StampsOnce(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(48 * time.Hour)

	l := &models.Lead{Status: string(StatusNew)}

	if err := ApplyStatus(l, StatusContacted, t0); err != nil {
		t.Fatalf("ApplyStatus(contacted) error = %v", err)
	}
	if l.FirstContactedAt == nil || !l.FirstContactedAt.Equal(t0) {
		t.Fatalf("FirstContactedAt = %v, want %v", l.FirstContactedAt, t0)
	}

	if err := ApplyStatus(l, StatusQualified, t1); err != nil {
		t.Fatalf("ApplyStatus(qualified) error = %v", err)
	}
	if l.QualifiedAt == nil || !l.QualifiedAt.Equal(t1) {
		t.Fatalf("QualifiedAt = %v, want %v", l.QualifiedAt, t1)
	}

	// Bouncing back and forth must not move the stamps.
	if err := ApplyStatus(l, StatusContacted, t1); err != nil {
		t.Fatalf("ApplyStatus(contacted again) error = %v", err)
	}
	if err := ApplyStatus(l, StatusQualified, t1.Add(time.Hour)); err != nil {
		t.Fatalf("ApplyStatus(qualified again) error = %v", err)
	}
	if !l.QualifiedAt.Equal(t1) {
		t.Errorf("QualifiedAt moved to %v, want %v", l.QualifiedAt, t1)
	}
}

func TestApplyStatus_ConvertedAt(t *testing.T) {
	now := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)

	l := &models.Lead{Status: string(StatusNegotiation)}
	if err := ApplyStatus(l, StatusWon, now); err != nil {
		t.Fatalf("ApplyStatus(won) error = %v", err)
	}
	if l.ConvertedAt == nil || !l.ConvertedAt.Equal(now) {
		t.Errorf("ConvertedAt = %v, want %v", l.ConvertedAt, now)
	}
}

func TestApplyStatus_Invalid(t *testing.T) {
	l := &models.Lead{Status: string(StatusNew)}
	if err := ApplyStatus(l, "archived", time.Now()); err == nil {
		t.Error("ApplyStatus(archived) succeeded, want error")
	}
	if l.Status != string(StatusNew) {
		t.Errorf("Status changed to %q on invalid transition", l.Status)
	}
}
