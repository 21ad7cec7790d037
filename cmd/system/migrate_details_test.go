package system

import (
	"testing"

	entreq "github.com/Bemyself19/sehatynet_backend/internal/repo/medicalrequest"
	entitem "github.com/Bemyself19/sehatynet_backend/internal/repo/requestitem"
)

func TestDerivedItemStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    entreq.Status
		available bool
		want      entitem.ItemStatus
	}{
		{"unavailable always wins", entreq.StatusReadyForPickup, false, entitem.ItemStatusUnavailable},
		{"confirmed", entreq.StatusConfirmed, true, entitem.ItemStatusConfirmed},
		{"partial offer", entreq.StatusPendingPatientConfirmation, true, entitem.ItemStatusConfirmed},
		{"partially fulfilled", entreq.StatusPartiallyFulfilled, true, entitem.ItemStatusConfirmed},
		{"out of stock", entreq.StatusOutOfStock, true, entitem.ItemStatusUnavailable},
		{"ready", entreq.StatusReadyForPickup, true, entitem.ItemStatusReadyForPickup},
		{"completed", entreq.StatusCompleted, true, entitem.ItemStatusCollected},
		{"cancelled stays pending", entreq.StatusCancelled, true, entitem.ItemStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := derivedItemStatus(tt.status, tt.available); got != tt.want {
				t.Errorf("derivedItemStatus(%s, %t) = %s, want %s", tt.status, tt.available, got, tt.want)
			}
		})
	}
}
