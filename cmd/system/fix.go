package system

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Bemyself19/sehatynet_backend/config"
	"github.com/Bemyself19/sehatynet_backend/internal/repo"
	entreq "github.com/Bemyself19/sehatynet_backend/internal/repo/medicalrequest"
	entitem "github.com/Bemyself19/sehatynet_backend/internal/repo/requestitem"
	"github.com/Bemyself19/sehatynet_backend/internal/service/provider"
	"github.com/Bemyself19/sehatynet_backend/pkg/database"
)

// openEnt reads the config referenced by the root --config flag and opens
// the main database. The caller owns closing the client.
func openEnt(cmd *cobra.Command) (*repo.Client, *config.Config, error) {
	cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config: %w", err)
	}
	client, err := database.NewEntClient(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create ent client: %w", err)
	}
	return client, cfg, nil
}

func NewFixCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Repair inconsistent request data",
	}

	cmd.AddCommand(newFixNullProviderCommand())
	cmd.AddCommand(newFixSamePatientProviderCommand())

	return cmd
}

func newFixNullProviderCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "null-provider",
		Short: "Reassign open requests whose provider is missing, inactive, or of the wrong type",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openEnt(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			providers := provider.New(db)
			ctx := context.Background()

			broken := func(r *repo.MedicalRequest) bool {
				// Same validation path as the API; both surfaces share one
				// rule set.
				if r.ProviderID == r.PatientID {
					// That case belongs to `fix same-patient-provider`.
					return false
				}
				_, err := providers.ValidateAssignment(ctx, r.PatientID, r.ProviderID, string(r.Type))
				return err != nil
			}

			return fixOpenRequests(ctx, cmd, db, providers, broken, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report affected requests without changing them")

	return cmd
}

func newFixSamePatientProviderCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "same-patient-provider",
		Short: "Reassign open requests where the provider is the patient themselves",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openEnt(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			providers := provider.New(db)
			ctx := context.Background()

			broken := func(r *repo.MedicalRequest) bool {
				return r.ProviderID == r.PatientID
			}

			return fixOpenRequests(ctx, cmd, db, providers, broken, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report affected requests without changing them")

	return cmd
}

// fixOpenRequests scans every non-terminal request, reassigns the ones the
// predicate flags to the default provider of the matching type, and resets
// them to pending like an API reassignment would.
func fixOpenRequests(
	ctx context.Context,
	cmd *cobra.Command,
	db *repo.Client,
	providers provider.Service,
	broken func(*repo.MedicalRequest) bool,
	dryRun bool,
) error {
	reqs, err := db.MedicalRequest.Query().
		Where(entreq.StatusNotIn(entreq.StatusCompleted, entreq.StatusCancelled)).
		Order(entreq.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query open requests: %w", err)
	}

	var scanned, fixed, skipped int
	for _, r := range reqs {
		scanned++
		if !broken(r) {
			continue
		}

		// Resolve the replacement provider in dry-run mode too, so the
		// report matches what a real run would actually change.
		def, err := providers.DefaultForType(ctx, string(r.Type))
		if err != nil {
			cmd.Printf("%s %s: no default %s provider available (%v)\n",
				verb("skip", dryRun), r.ID, r.Type, err)
			skipped++
			continue
		}

		if dryRun {
			cmd.Printf("would fix %s → provider %s (type=%s status=%s provider=%s)\n",
				r.ID, def.ID, r.Type, r.Status, r.ProviderID)
			fixed++
			continue
		}

		if err := resetToProvider(ctx, db, r, def.ID); err != nil {
			return fmt.Errorf("fix request %s: %w", r.ID, err)
		}
		cmd.Printf("fixed %s → provider %s\n", r.ID, def.ID)
		fixed++
	}

	cmd.Printf("scanned %d open requests, fixed %d, skipped %d\n", scanned, fixed, skipped)
	return nil
}

func verb(v string, dryRun bool) string {
	if dryRun {
		return "would " + v
	}
	return v
}

// resetToProvider is the offline variant of a reassignment: new provider,
// status back to pending, feedback cleared, every item back to pending.
func resetToProvider(ctx context.Context, db *repo.Client, r *repo.MedicalRequest, providerID uuid.UUID) (err error) {
	tx, err := db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	var n int
	n, err = tx.MedicalRequest.Update().
		Where(
			entreq.ID(r.ID),
			entreq.StatusEQ(r.Status),
			entreq.Version(r.Version),
		).
		SetStatus(entreq.StatusPending).
		SetProviderID(providerID).
		ClearFeedback().
		ClearFulfilledAt().
		AddVersion(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("reset request: %w", err)
	}
	if n == 0 {
		err = fmt.Errorf("request %s changed concurrently, rerun the fix", r.ID)
		return err
	}

	err = tx.RequestItem.Update().
		Where(entitem.RequestID(r.ID)).
		SetAvailable(true).
		SetItemStatus(entitem.ItemStatusPending).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset items: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
