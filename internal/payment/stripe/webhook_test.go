package stripe

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "whsec_test"

var testPayload = []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1"}}}`)

func TestParseEvent(t *testing.T) {
	now := time.Date(2026, 4, 3, 10, 0, 0, 0, time.UTC)

	sig := Sign(testPayload, testSecret, now)

	ev, err := ParseEvent(testPayload, sig, testSecret, now)
	if err != nil {
		t.Fatalf("ParseEvent() error = %v", err)
	}
	if ev.ID != "evt_1" {
		t.Errorf("ID = %q, want evt_1", ev.ID)
	}
	if ev.Type != EventPaymentSucceeded {
		t.Errorf("Type = %q, want %q", ev.Type, EventPaymentSucceeded)
	}
}

func TestParseEvent_MissingSignature(t *testing.T) {
	_, err := ParseEvent(testPayload, "", testSecret, time.Now())
	if !errors.Is(err, ErrMissingSignature) {
		t.Fatalf("error = %v, want ErrMissingSignature", err)
	}
}

func TestParseEvent_WrongSecret(t *testing.T) {
	now := time.Now()
	sig := Sign(testPayload, "whsec_other", now)

	_, err := ParseEvent(testPayload, sig, testSecret, now)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("error = %v, want ErrInvalidSignature", err)
	}
}

func TestParseEvent_TamperedPayload(t *testing.T) {
	now := time.Now()
	sig := Sign(testPayload, testSecret, now)

	tampered := []byte(`{"id":"evt_1","type":"payment_intent.succeeded","data":{"object":{"id":"pi_2"}}}`)

	_, err := ParseEvent(tampered, sig, testSecret, now)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("error = %v, want ErrInvalidSignature", err)
	}
}

func TestParseEvent_StaleTimestamp(t *testing.T) {
	signedAt := time.Date(2026, 4, 3, 10, 0, 0, 0, time.UTC)
	sig := Sign(testPayload, testSecret, signedAt)

	_, err := ParseEvent(testPayload, sig, testSecret, signedAt.Add(6*time.Minute))
	if !errors.Is(err, ErrStaleSignature) {
		t.Fatalf("error = %v, want ErrStaleSignature", err)
	}

	// A small skew in either direction is fine.
	if _, err := ParseEvent(testPayload, sig, testSecret, signedAt.Add(4*time.Minute)); err != nil {
		t.Fatalf("error = %v, want accepted inside tolerance", err)
	}
}

func TestParseEvent_GarbageHeader(t *testing.T) {
	_, err := ParseEvent(testPayload, "v1=zzzz", testSecret, time.Now())
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("error = %v, want ErrInvalidSignature", err)
	}
}
