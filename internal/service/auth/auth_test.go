package auth

import (
	"errors"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"national mobile", "20123456", "+21620123456", false},
		{"national with spaces", "20 123 456", "+21620123456", false},
		{"already e164", "+21620123456", "+21620123456", false},
		{"foreign e164 kept", "+33612345678", "+33612345678", false},
		{"too short", "123", "", true},
		{"letters", "abcdefgh", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizePhone(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPhone) {
					t.Fatalf("normalizePhone(%q) err = %v, want ErrInvalidPhone", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizePhone(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("normalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNationalIDPattern(t *testing.T) {
	valid := []string{"12345678", "00000000", "98765432"}
	for _, id := range valid {
		if !reNationalID.MatchString(id) {
			t.Errorf("expected %q to be a valid CIN", id)
		}
	}

	invalid := []string{"", "1234567", "123456789", "1234567a", "abcdefgh", "1234 5678"}
	for _, id := range invalid {
		if reNationalID.MatchString(id) {
			t.Errorf("expected %q to be rejected", id)
		}
	}
}
