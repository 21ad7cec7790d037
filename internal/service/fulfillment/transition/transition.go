// Package transition is the single authority on fulfillment status
// transitions. Every surface that mutates a request status — the HTTP API
// and the offline fix commands alike — must go through this table; no
// caller writes a raw status string.
package transition

// Status is the lifecycle state of a medical request.
type Status string

const (
	StatusPending                    Status = "pending"
	StatusConfirmed                  Status = "confirmed"
	StatusPendingPatientConfirmation Status = "pending_patient_confirmation"
	StatusPartiallyFulfilled         Status = "partially_fulfilled"
	StatusOutOfStock                 Status = "out_of_stock"
	StatusReadyForPickup             Status = "ready_for_pickup"
	StatusCompleted                  Status = "completed"
	StatusCancelled                  Status = "cancelled"
)

// ItemStatus is the per-line-item state within a request.
type ItemStatus string

const (
	ItemPending        ItemStatus = "pending"
	ItemConfirmed      ItemStatus = "confirmed"
	ItemUnavailable    ItemStatus = "unavailable"
	ItemReadyForPickup ItemStatus = "ready_for_pickup"
	ItemCollected      ItemStatus = "collected"
)

// allowed maps each status to the set of statuses it may move to.
// pending appearing as a target encodes reassignment resets.
var allowed = map[Status]map[Status]struct{}{
	StatusPending: {
		StatusConfirmed:                  {},
		StatusPendingPatientConfirmation: {},
		StatusOutOfStock:                 {},
		StatusCancelled:                  {},
	},
	StatusConfirmed: {
		StatusReadyForPickup: {},
	},
	StatusPendingPatientConfirmation: {
		StatusPartiallyFulfilled: {},
		StatusPending:            {},
		StatusCancelled:          {},
	},
	StatusPartiallyFulfilled: {
		StatusReadyForPickup: {},
		StatusPending:        {},
		StatusCancelled:      {},
	},
	StatusOutOfStock: {
		StatusPending:   {},
		StatusCancelled: {},
	},
	StatusReadyForPickup: {
		StatusCompleted: {},
		StatusCancelled: {},
	},
	StatusCompleted: {},
	StatusCancelled: {},
}

// Allowed reports whether a request may move from one status to another.
func Allowed(from, to Status) bool {
	targets, ok := allowed[from]
	if !ok {
		return false
	}
	_, ok = targets[to]
	return ok
}

// Terminal reports whether a status has no outgoing transitions.
func Terminal(s Status) bool {
	return len(allowed[s]) == 0
}

// Derive aggregates per-item availability into the fulfillment outcome:
// every item available means confirmed, none available means out_of_stock,
// and a mix means the patient has to decide (pending_patient_confirmation).
func Derive(available []bool) (Status, error) {
	if len(available) == 0 {
		return "", ErrNoItems
	}

	availCount := 0
	for _, a := range available {
		if a {
			availCount++
		}
	}

	switch availCount {
	case len(available):
		return StatusConfirmed, nil
	case 0:
		return StatusOutOfStock, nil
	default:
		return StatusPendingPatientConfirmation, nil
	}
}

// RequiresFeedback reports whether entering a status needs a provider note
// for the patient.
func RequiresFeedback(to Status) bool {
	return to == StatusOutOfStock || to == StatusPendingPatientConfirmation
}

// CancellableFrom reports whether a request in the given status may still
// be cancelled by the patient.
func CancellableFrom(s Status) bool {
	return Allowed(s, StatusCancelled)
}

// ReassignableFrom reports whether a request may be moved to a different
// provider. Reassignment resets the request to pending.
func ReassignableFrom(s Status) bool {
	switch s {
	case StatusPendingPatientConfirmation, StatusPartiallyFulfilled, StatusOutOfStock:
		return true
	default:
		return false
	}
}

// ItemStatusFor maps provider-reported availability to the item status
// written during fulfillment.
func ItemStatusFor(available bool) ItemStatus {
	if available {
		return ItemConfirmed
	}
	return ItemUnavailable
}
