package validators

import "testing"

func TestHasEmailShape(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"dana@example.com", true},
		{"dana.whitfield+tag@sub.example.co", true},
		{"", false},
		{"dana", false},
		{"dana@", false},
		{"@example.com", false},
		{"dana@nodot", false},
		{"dana example@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := HasEmailShape(tt.email); got != tt.want {
				t.Errorf("HasEmailShape(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}
