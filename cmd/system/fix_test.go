package system

import (
	"bytes"
	"context"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"

	"github.com/Bemyself19/sehatynet_backend/internal/repo"
	"github.com/Bemyself19/sehatynet_backend/internal/repo/enttest"
	entreq "github.com/Bemyself19/sehatynet_backend/internal/repo/medicalrequest"
	entitem "github.com/Bemyself19/sehatynet_backend/internal/repo/requestitem"
	entuser "github.com/Bemyself19/sehatynet_backend/internal/repo/user"
	"github.com/Bemyself19/sehatynet_backend/internal/service/provider"
)

// A dry run must resolve the replacement provider like a real run would, so
// its report distinguishes fixable requests from ones that will be skipped.
func TestFixOpenRequestsDryRunMatchesRealRun(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:fixdryrun?mode=memory&cache=shared&_fk=1")
	defer client.Close()
	ctx := context.Background()

	patient, err := client.User.Create().
		SetRole(entuser.RolePatient).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	suspended, err := client.User.Create().
		SetRole(entuser.RoleProvider).
		SetProviderType(entuser.ProviderTypePharmacy).
		SetStatus(entuser.StatusSUSPENDED).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed suspended pharmacy: %v", err)
	}

	r, err := client.MedicalRequest.Create().
		SetPatientID(patient.ID).
		SetProviderID(suspended.ID).
		SetType(entreq.TypePrescription).
		SetTitle("Ordonnance").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed request: %v", err)
	}
	if _, err := client.RequestItem.Create().
		SetRequestID(r.ID).
		SetName("Doliprane 1g").
		SetPosition(0).
		SetAvailable(false).
		SetItemStatus(entitem.ItemStatusUnavailable).
		Save(ctx); err != nil {
		t.Fatalf("seed item: %v", err)
	}

	providers := provider.New(client)
	broken := func(req *repo.MedicalRequest) bool {
		_, err := providers.ValidateAssignment(ctx, req.PatientID, req.ProviderID, string(req.Type))
		return err != nil
	}

	run := func(dryRun bool) string {
		cmd := &cobra.Command{}
		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		if err := fixOpenRequests(ctx, cmd, client, providers, broken, dryRun); err != nil {
			t.Fatalf("fixOpenRequests(dryRun=%t): %v", dryRun, err)
		}
		return buf.String()
	}

	// No active pharmacy exists yet: a real run would skip, so the dry run
	// must report a skip too, not a fix.
	out := run(true)
	if !strings.Contains(out, "would skip") {
		t.Fatalf("dry run without default provider = %q, want a would-skip line", out)
	}
	if strings.Contains(out, "would fix") {
		t.Fatalf("dry run without default provider = %q, overstates a fix", out)
	}

	replacement, err := client.User.Create().
		SetRole(entuser.RoleProvider).
		SetProviderType(entuser.ProviderTypePharmacy).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed replacement pharmacy: %v", err)
	}

	out = run(true)
	if !strings.Contains(out, "would fix") {
		t.Fatalf("dry run with default provider = %q, want a would-fix line", out)
	}
	after, err := client.MedicalRequest.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("reload request: %v", err)
	}
	if after.ProviderID != suspended.ID {
		t.Fatalf("dry run changed the provider to %s", after.ProviderID)
	}

	out = run(false)
	if !strings.Contains(out, "fixed 1") {
		t.Fatalf("real run = %q, want one fixed request", out)
	}
	after, err = client.MedicalRequest.Get(ctx, r.ID)
	if err != nil {
		t.Fatalf("reload request: %v", err)
	}
	if after.ProviderID != replacement.ID || after.Status != entreq.StatusPending {
		t.Fatalf("after fix: provider=%s status=%s, want replacement provider and pending",
			after.ProviderID, after.Status)
	}
	item, err := client.RequestItem.Query().Where(entitem.RequestID(r.ID)).Only(ctx)
	if err != nil {
		t.Fatalf("reload item: %v", err)
	}
	if !item.Available || item.ItemStatus != entitem.ItemStatusPending {
		t.Fatalf("item after fix = (available=%t, status=%s), want reset to pending",
			item.Available, item.ItemStatus)
	}
}
