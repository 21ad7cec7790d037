package system

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	entreq "github.com/Bemyself19/sehatynet_backend/internal/repo/medicalrequest"
	entitem "github.com/Bemyself19/sehatynet_backend/internal/repo/requestitem"
)

func NewMigrateDetailsCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate-details",
		Short: "Backfill per-item statuses from the request-level status",
		Long: `Requests created before per-item tracking carry items stuck at the
pending item status. This derives each item's status from the parent
request status and the item's recorded availability.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openEnt(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := context.Background()

			reqs, err := db.MedicalRequest.Query().
				Where(entreq.StatusNEQ(entreq.StatusPending)).
				WithItems().
				Order(entreq.ByCreatedAt()).
				All(ctx)
			if err != nil {
				return fmt.Errorf("query requests: %w", err)
			}

			var updated int
			for _, r := range reqs {
				for _, item := range r.Edges.Items {
					if item.ItemStatus != entitem.ItemStatusPending {
						continue
					}

					target := derivedItemStatus(r.Status, item.Available)
					if target == entitem.ItemStatusPending {
						continue
					}

					if dryRun {
						cmd.Printf("would set item %s (request %s, status %s) → %s\n",
							item.ID, r.ID, r.Status, target)
						updated++
						continue
					}

					err := db.RequestItem.UpdateOne(item).
						SetItemStatus(target).
						Exec(ctx)
					if err != nil {
						return fmt.Errorf("update item %s: %w", item.ID, err)
					}
					updated++
				}
			}

			cmd.Printf("backfilled %d items across %d requests\n", updated, len(reqs))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report affected items without changing them")

	return cmd
}

// derivedItemStatus maps a request-level status and the provider-reported
// availability onto the item status the live flow would have written.
func derivedItemStatus(status entreq.Status, available bool) entitem.ItemStatus {
	if !available {
		return entitem.ItemStatusUnavailable
	}
	switch status {
	case entreq.StatusConfirmed, entreq.StatusPendingPatientConfirmation, entreq.StatusPartiallyFulfilled:
		return entitem.ItemStatusConfirmed
	case entreq.StatusOutOfStock:
		return entitem.ItemStatusUnavailable
	case entreq.StatusReadyForPickup:
		return entitem.ItemStatusReadyForPickup
	case entreq.StatusCompleted:
		return entitem.ItemStatusCollected
	default:
		return entitem.ItemStatusPending
	}
}
