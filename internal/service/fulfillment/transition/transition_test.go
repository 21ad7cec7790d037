package transition

import "testing"

func TestAllowed(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to out_of_stock", StatusPending, StatusOutOfStock, true},
		{"pending to pending_patient_confirmation", StatusPending, StatusPendingPatientConfirmation, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed skips pickup", StatusPending, StatusCompleted, false},
		{"pending to ready_for_pickup skips fulfillment", StatusPending, StatusReadyForPickup, false},

		{"confirmed to ready_for_pickup", StatusConfirmed, StatusReadyForPickup, true},
		{"confirmed to completed skips pickup", StatusConfirmed, StatusCompleted, false},

		{"partial offer accepted", StatusPendingPatientConfirmation, StatusPartiallyFulfilled, true},
		{"partial offer reassigned", StatusPendingPatientConfirmation, StatusPending, true},
		{"partial offer cancelled", StatusPendingPatientConfirmation, StatusCancelled, true},
		{"partial offer straight to ready", StatusPendingPatientConfirmation, StatusReadyForPickup, false},

		{"partially_fulfilled to ready_for_pickup", StatusPartiallyFulfilled, StatusReadyForPickup, true},
		{"partially_fulfilled reassigned", StatusPartiallyFulfilled, StatusPending, true},

		{"out_of_stock reassigned", StatusOutOfStock, StatusPending, true},
		{"out_of_stock cancelled", StatusOutOfStock, StatusCancelled, true},
		{"out_of_stock to confirmed", StatusOutOfStock, StatusConfirmed, false},

		{"ready_for_pickup to completed", StatusReadyForPickup, StatusCompleted, true},
		{"ready_for_pickup to cancelled", StatusReadyForPickup, StatusCancelled, true},

		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"unknown status", Status("bogus"), StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.from, tt.to); got != tt.want {
				t.Errorf("Allowed(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

// Completed must be reachable from ready_for_pickup and nowhere else.
func TestCompletedOnlyViaReadyForPickup(t *testing.T) {
	all := []Status{
		StatusPending, StatusConfirmed, StatusPendingPatientConfirmation,
		StatusPartiallyFulfilled, StatusOutOfStock, StatusReadyForPickup,
		StatusCompleted, StatusCancelled,
	}

	for _, from := range all {
		got := Allowed(from, StatusCompleted)
		want := from == StatusReadyForPickup
		if got != want {
			t.Errorf("Allowed(%q, completed) = %v, want %v", from, got, want)
		}
	}
}

func TestTerminal(t *testing.T) {
	if !Terminal(StatusCompleted) {
		t.Error("completed should be terminal")
	}
	if !Terminal(StatusCancelled) {
		t.Error("cancelled should be terminal")
	}
	if Terminal(StatusPending) {
		t.Error("pending should not be terminal")
	}
	if Terminal(StatusReadyForPickup) {
		t.Error("ready_for_pickup should not be terminal")
	}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		name      string
		available []bool
		want      Status
		wantErr   error
	}{
		{"all available", []bool{true, true, true}, StatusConfirmed, nil},
		{"single available", []bool{true}, StatusConfirmed, nil},
		{"none available", []bool{false, false}, StatusOutOfStock, nil},
		{"single unavailable", []bool{false}, StatusOutOfStock, nil},
		{"mixed", []bool{true, false, true}, StatusPendingPatientConfirmation, nil},
		{"mostly unavailable still mixed", []bool{false, false, true}, StatusPendingPatientConfirmation, nil},
		{"no items", nil, "", ErrNoItems},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Derive(tt.available)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("Derive() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Derive() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Derive(%v) = %q, want %q", tt.available, got, tt.want)
			}
		})
	}
}

// An all-unavailable report can never yield anything but out_of_stock, for
// any item count.
func TestDeriveAllUnavailable(t *testing.T) {
	for n := 1; n <= 10; n++ {
		avail := make([]bool, n)
		got, err := Derive(avail)
		if err != nil {
			t.Fatalf("Derive with %d items: %v", n, err)
		}
		if got != StatusOutOfStock {
			t.Errorf("Derive with %d unavailable items = %q, want out_of_stock", n, got)
		}
	}
}

func TestRequiresFeedback(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusOutOfStock, true},
		{StatusPendingPatientConfirmation, true},
		{StatusConfirmed, false},
		{StatusPending, false},
		{StatusReadyForPickup, false},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		if got := RequiresFeedback(tt.status); got != tt.want {
			t.Errorf("RequiresFeedback(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestCancellableFrom(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, true},
		{StatusPendingPatientConfirmation, true},
		{StatusPartiallyFulfilled, true},
		{StatusOutOfStock, true},
		{StatusReadyForPickup, true},
		{StatusConfirmed, false},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		if got := CancellableFrom(tt.status); got != tt.want {
			t.Errorf("CancellableFrom(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestReassignableFrom(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPendingPatientConfirmation, true},
		{StatusPartiallyFulfilled, true},
		{StatusOutOfStock, true},
		{StatusPending, false},
		{StatusConfirmed, false},
		{StatusReadyForPickup, false},
		{StatusCompleted, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		if got := ReassignableFrom(tt.status); got != tt.want {
			t.Errorf("ReassignableFrom(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}

	// Every reassignable status must be allowed to move back to pending.
	for _, s := range []Status{StatusPendingPatientConfirmation, StatusPartiallyFulfilled, StatusOutOfStock} {
		if !Allowed(s, StatusPending) {
			t.Errorf("reassignable status %q cannot transition back to pending", s)
		}
	}
}

func TestItemStatusFor(t *testing.T) {
	if got := ItemStatusFor(true); got != ItemConfirmed {
		t.Errorf("ItemStatusFor(true) = %q, want confirmed", got)
	}
	if got := ItemStatusFor(false); got != ItemUnavailable {
		t.Errorf("ItemStatusFor(false) = %q, want unavailable", got)
	}
}
