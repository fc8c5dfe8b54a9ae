package repository

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestIsRecordMissing(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"not found", gorm.ErrRecordNotFound, true},
		{"wrapped not found", fmt.Errorf("lead lookup: %w", gorm.ErrRecordNotFound), true},
		{"connection failure", errors.New("dial tcp: connection refused"), false},
		{"invalid transaction", gorm.ErrInvalidTransaction, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isRecordMissing(tc.err); got != tc.want {
				t.Errorf("isRecordMissing(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}
