package provider

import (
	"errors"
	"testing"
)

func TestProviderTypeFor(t *testing.T) {
	tests := []struct {
		requestType string
		want        string
	}{
		{"prescription", "pharmacy"},
		{"lab_result", "laboratory"},
		{"imaging", "radiology"},
	}

	for _, tt := range tests {
		t.Run(tt.requestType, func(t *testing.T) {
			got, err := ProviderTypeFor(tt.requestType)
			if err != nil {
				t.Fatalf("ProviderTypeFor(%q) unexpected error: %v", tt.requestType, err)
			}
			if got != tt.want {
				t.Errorf("ProviderTypeFor(%q) = %q, want %q", tt.requestType, got, tt.want)
			}
		})
	}
}

func TestProviderTypeForUnknown(t *testing.T) {
	for _, rt := range []string{"", "appointment", "PRESCRIPTION"} {
		if _, err := ProviderTypeFor(rt); !errors.Is(err, ErrUnknownRequestType) {
			t.Errorf("ProviderTypeFor(%q) err = %v, want ErrUnknownRequestType", rt, err)
		}
	}
}
