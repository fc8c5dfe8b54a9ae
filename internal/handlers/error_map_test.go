package handlers

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/northpeaklabs/marketing-ops/internal/httperr"
)

func TestMapBusinessError_StatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		code string
		want int
	}{
		{"slot_not_available", 400},
		{"slot_in_past", 400},
		{"email_required", 400},
		{"invalid_email", 400},
		{"invalid_amount", 400},
		{"lead_not_found", 404},
		{"booking_not_found", 404},
		{"payment_not_found", 404},
		{"payment_in_progress", 409},
		{"invalid_state", 409},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			if !mapBusinessError(c, httperr.ErrBusiness(tc.code)) {
				t.Fatal("mapBusinessError() = false, want handled")
			}
			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestMapBusinessError_IgnoresNonBusiness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	if mapBusinessError(c, errors.New("connection reset")) {
		t.Error("mapBusinessError() = true for a non-business error")
	}
}
