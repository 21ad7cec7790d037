package fulfillment

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Bemyself19/sehatynet_backend/internal/repo"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/enttest"
	entreq "github.com/Bemyself19/sehatynet_backend/internal/repo/medicalrequest"
	entitem "github.com/Bemyself19/sehatynet_backend/internal/repo/requestitem"
	entuser "github.com/Bemyself19/sehatynet_backend/internal/repo/user"
	"github.com/Bemyself19/sehatynet_backend/internal/service/provider"
)

func newTestService(t *testing.T) (*repo.Client, Service) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return client, New(client, provider.New(client))
}

func seedPatient(t *testing.T, client *repo.Client) *repo.User {
	t.Helper()
	u, err := client.User.Create().
		SetRole(entuser.RolePatient).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return u
}

func seedPharmacy(t *testing.T, client *repo.Client) *repo.User {
	t.Helper()
	u, err := client.User.Create().
		SetRole(entuser.RoleProvider).
		SetProviderType(entuser.ProviderTypePharmacy).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed pharmacy: %v", err)
	}
	return u
}

func createRequest(t *testing.T, svc Service, patientID, providerID uuid.UUID, itemNames ...string) *repo.MedicalRequest {
	t.Helper()
	items := make([]ItemInput, 0, len(itemNames))
	for _, name := range itemNames {
		items = append(items, ItemInput{Name: name})
	}
	r, err := svc.Create(context.Background(), CreateRequest{
		PatientID:  patientID,
		ProviderID: providerID,
		Type:       "prescription",
		Title:      "Ordonnance",
		Items:      items,
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	return r
}

// reload fetches the request with items, bypassing viewer scoping.
func reload(t *testing.T, svc Service, id uuid.UUID) *repo.MedicalRequest {
	t.Helper()
	r, err := svc.GetByID(context.Background(), Viewer{Unrestricted: true}, id)
	if err != nil {
		t.Fatalf("reload request: %v", err)
	}
	return r
}

// availabilityByPosition maps each line item's ID to the availability flag at
// its position.
func availabilityByPosition(t *testing.T, r *repo.MedicalRequest, avail []bool) map[uuid.UUID]bool {
	t.Helper()
	if len(r.Edges.Items) != len(avail) {
		t.Fatalf("request has %d items, availability covers %d", len(r.Edges.Items), len(avail))
	}
	m := make(map[uuid.UUID]bool, len(avail))
	for _, item := range r.Edges.Items {
		m[item.ID] = avail[item.Position]
	}
	return m
}

func strptr(s string) *string { return &s }

func TestFulfillDerivesStatusAndGatesFeedback(t *testing.T) {
	client, svc := newTestService(t)
	ctx := context.Background()

	patient := seedPatient(t, client)
	pharmacy := seedPharmacy(t, client)

	tests := []struct {
		name       string
		avail      []bool
		feedback   *string
		wantErr    error
		wantStatus entreq.Status
	}{
		{
			name:     "mixed availability without feedback is rejected",
			avail:    []bool{true, false},
			feedback: nil,
			wantErr:  ErrFeedbackRequired,
		},
		{
			name:     "all unavailable without feedback is rejected",
			avail:    []bool{false, false},
			feedback: nil,
			wantErr:  ErrFeedbackRequired,
		},
		{
			name:       "mixed availability becomes a partial offer",
			avail:      []bool{true, false},
			feedback:   strptr("Paracétamol en rupture"),
			wantStatus: entreq.StatusPendingPatientConfirmation,
		},
		{
			name:       "all unavailable becomes out of stock",
			avail:      []bool{false, false},
			feedback:   strptr("Rien en stock cette semaine"),
			wantStatus: entreq.StatusOutOfStock,
		},
		{
			name:       "all available confirms without feedback",
			avail:      []bool{true, true},
			wantStatus: entreq.StatusConfirmed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := createRequest(t, svc, patient.ID, pharmacy.ID, "Doliprane 1g", "Amoxicilline 500mg")
			r = reload(t, svc, r.ID)

			got, err := svc.Fulfill(ctx, r.ID, FulfillRequest{
				ProviderID:   pharmacy.ID,
				Availability: availabilityByPosition(t, r, tt.avail),
				Feedback:     tt.feedback,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Fulfill error = %v, want %v", err, tt.wantErr)
				}
				// The rejection must leave the request untouched.
				after := reload(t, svc, r.ID)
				if after.Status != entreq.StatusPending {
					t.Fatalf("status after rejected fulfill = %s, want pending", after.Status)
				}
				return
			}

			if err != nil {
				t.Fatalf("Fulfill: %v", err)
			}
			if got.Status != tt.wantStatus {
				t.Fatalf("status = %s, want %s", got.Status, tt.wantStatus)
			}
			for _, item := range got.Edges.Items {
				want := entitem.ItemStatusConfirmed
				if !tt.avail[item.Position] {
					want = entitem.ItemStatusUnavailable
				}
				if item.ItemStatus != want {
					t.Errorf("item %d status = %s, want %s", item.Position, item.ItemStatus, want)
				}
			}
		})
	}
}

func TestFulfillByUnassignedProvider(t *testing.T) {
	client, svc := newTestService(t)
	ctx := context.Background()

	patient := seedPatient(t, client)
	pharmacy := seedPharmacy(t, client)
	other := seedPharmacy(t, client)

	r := createRequest(t, svc, patient.ID, pharmacy.ID, "Doliprane 1g")
	r = reload(t, svc, r.ID)

	_, err := svc.Fulfill(ctx, r.ID, FulfillRequest{
		ProviderID:   other.ID,
		Availability: availabilityByPosition(t, r, []bool{true}),
	})
	if !errors.Is(err, ErrNotAssigned) {
		t.Fatalf("Fulfill by unassigned provider error = %v, want ErrNotAssigned", err)
	}
}

func TestReassignResetsRequest(t *testing.T) {
	client, svc := newTestService(t)
	ctx := context.Background()

	patient := seedPatient(t, client)
	pharmacy := seedPharmacy(t, client)
	replacement := seedPharmacy(t, client)

	r := createRequest(t, svc, patient.ID, pharmacy.ID, "Doliprane 1g", "Amoxicilline 500mg")
	r = reload(t, svc, r.ID)

	if _, err := svc.Fulfill(ctx, r.ID, FulfillRequest{
		ProviderID:   pharmacy.ID,
		Availability: availabilityByPosition(t, r, []bool{false, false}),
		Feedback:     strptr("Rupture de stock"),
	}); err != nil {
		t.Fatalf("Fulfill: %v", err)
	}

	if err := svc.Reassign(ctx, r.ID, ReassignRequest{
		PatientID:     patient.ID,
		NewProviderID: replacement.ID,
	}); err != nil {
		t.Fatalf("Reassign: %v", err)
	}

	after := reload(t, svc, r.ID)
	if after.Status != entreq.StatusPending {
		t.Errorf("status = %s, want pending", after.Status)
	}
	if after.Feedback != nil {
		t.Errorf("feedback = %q, want cleared", *after.Feedback)
	}
	if after.ProviderID != replacement.ID {
		t.Errorf("provider = %s, want %s", after.ProviderID, replacement.ID)
	}
	for _, item := range after.Edges.Items {
		if !item.Available || item.ItemStatus != entitem.ItemStatusPending {
			t.Errorf("item %d = (available=%t, status=%s), want reset to pending",
				item.Position, item.Available, item.ItemStatus)
		}
	}
}

func TestReassignGuards(t *testing.T) {
	client, svc := newTestService(t)
	ctx := context.Background()

	patient := seedPatient(t, client)
	stranger := seedPatient(t, client)
	pharmacy := seedPharmacy(t, client)
	replacement := seedPharmacy(t, client)

	r := createRequest(t, svc, patient.ID, pharmacy.ID, "Doliprane 1g")

	// Pending requests are not reassignable.
	err := svc.Reassign(ctx, r.ID, ReassignRequest{PatientID: patient.ID, NewProviderID: replacement.ID})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Reassign from pending error = %v, want ErrInvalidTransition", err)
	}

	full := reload(t, svc, r.ID)
	if _, err := svc.Fulfill(ctx, r.ID, FulfillRequest{
		ProviderID:   pharmacy.ID,
		Availability: availabilityByPosition(t, full, []bool{false}),
		Feedback:     strptr("Rupture"),
	}); err != nil {
		t.Fatalf("Fulfill: %v", err)
	}

	err = svc.Reassign(ctx, r.ID, ReassignRequest{PatientID: stranger.ID, NewProviderID: replacement.ID})
	if !errors.Is(err, ErrNotRequestOwner) {
		t.Fatalf("Reassign by stranger error = %v, want ErrNotRequestOwner", err)
	}
}

func TestCompleteOnlyFromReadyAndCancelRejectedAfter(t *testing.T) {
	client, svc := newTestService(t)
	ctx := context.Background()

	patient := seedPatient(t, client)
	pharmacy := seedPharmacy(t, client)

	r := createRequest(t, svc, patient.ID, pharmacy.ID, "Doliprane 1g")
	full := reload(t, svc, r.ID)

	if _, err := svc.Fulfill(ctx, r.ID, FulfillRequest{
		ProviderID:   pharmacy.ID,
		Availability: availabilityByPosition(t, full, []bool{true}),
	}); err != nil {
		t.Fatalf("Fulfill: %v", err)
	}

	// confirmed → completed skips ready_for_pickup and must be rejected.
	err := svc.Complete(ctx, r.ID, CompleteRequest{ProviderID: pharmacy.ID})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Complete from confirmed error = %v, want ErrInvalidTransition", err)
	}

	if err := svc.MarkReady(ctx, r.ID, pharmacy.ID); err != nil {
		t.Fatalf("MarkReady: %v", err)
	}
	if err := svc.Complete(ctx, r.ID, CompleteRequest{ProviderID: pharmacy.ID}); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	after := reload(t, svc, r.ID)
	if after.Status != entreq.StatusCompleted {
		t.Fatalf("status = %s, want completed", after.Status)
	}
	for _, item := range after.Edges.Items {
		if item.ItemStatus != entitem.ItemStatusCollected {
			t.Errorf("item %d status = %s, want collected", item.Position, item.ItemStatus)
		}
	}

	if err := svc.Cancel(ctx, r.ID, patient.ID); !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("Cancel after completion error = %v, want ErrAlreadyCompleted", err)
	}
}

func TestReadsScopedToViewer(t *testing.T) {
	client, svc := newTestService(t)
	ctx := context.Background()

	patientA := seedPatient(t, client)
	patientB := seedPatient(t, client)
	pharmacy := seedPharmacy(t, client)

	r := createRequest(t, svc, patientA.ID, pharmacy.ID, "Doliprane 1g")

	// Another patient sees nothing, with or without filters.
	other := Viewer{UserID: patientB.ID}
	got, err := svc.List(ctx, other, ListRequest{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("unscoped list for another patient returned %d requests, want 0", len(got))
	}
	got, err = svc.List(ctx, other, ListRequest{PatientID: &patientA.ID})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("filters widened another patient's view to %d requests, want 0", len(got))
	}
	if _, err := svc.GetByID(ctx, other, r.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID by another patient error = %v, want ErrNotFound", err)
	}

	// The parties of the request and platform admins do see it.
	for name, v := range map[string]Viewer{
		"patient":  {UserID: patientA.ID},
		"provider": {UserID: pharmacy.ID},
		"admin":    {Unrestricted: true},
	} {
		if _, err := svc.GetByID(ctx, v, r.ID); err != nil {
			t.Errorf("GetByID as %s: %v", name, err)
		}
		reqs, err := svc.List(ctx, v, ListRequest{})
		if err != nil {
			t.Errorf("List as %s: %v", name, err)
		} else if len(reqs) != 1 {
			t.Errorf("List as %s returned %d requests, want 1", name, len(reqs))
		}
	}
}
