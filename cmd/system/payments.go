package system

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Bemyself19/sehatynet_backend/internal/service/settings"
)

func NewPaymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "payments on|off",
		Short:     "Toggle the platform-wide payments feature",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool
			switch args[0] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return fmt.Errorf("expected on or off, got %q", args[0])
			}

			db, _, err := openEnt(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			// No redis here: the cache invalidates itself via its short TTL.
			svc := settings.New(db, nil)
			if err := svc.SetPaymentsEnabled(context.Background(), enabled, nil); err != nil {
				return fmt.Errorf("set payments flag: %w", err)
			}

			cmd.Printf("payments %s\n", args[0])
			return nil
		},
	}

	return cmd
}
