package outbox

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestEventSubject(t *testing.T) {
	id := uuid.MustParse("01923456-7890-7abc-8def-0123456789ab")
	evt := Event{Type: EventRequestConfirmed, RequestID: id}

	want := "sehatynet.request.confirmed." + id.String()
	if got := evt.Subject(); got != want {
		t.Errorf("Subject() = %q, want %q", got, want)
	}
}

func TestBackoff(t *testing.T) {
	tests := []struct {
		name        string
		attempts    int
		baseSeconds int
		want        time.Duration
	}{
		{"first attempt", 1, 5, 5 * time.Second},
		{"second attempt doubles", 2, 5, 10 * time.Second},
		{"third attempt doubles again", 3, 5, 20 * time.Second},
		{"capped at ten minutes", 20, 5, 10 * time.Minute},
		{"one second base", 4, 1, 8 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := backoff(tt.attempts, tt.baseSeconds); got != tt.want {
				t.Errorf("backoff(%d, %d) = %v, want %v", tt.attempts, tt.baseSeconds, got, tt.want)
			}
		})
	}
}

func TestDecodePayloadRoundTrip(t *testing.T) {
	data, err := encodePayload(map[string]any{"request_id": "abc", "status": "confirmed"})
	if err != nil {
		t.Fatalf("encodePayload: %v", err)
	}

	m, err := DecodePayload(data)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if m["status"] != "confirmed" {
		t.Errorf("status = %v, want confirmed", m["status"])
	}
}

func TestDecodePayloadInvalid(t *testing.T) {
	if _, err := DecodePayload([]byte("{not json")); err == nil {
		t.Error("expected error for malformed payload")
	}
}
