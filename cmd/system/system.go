package system

import "github.com/spf13/cobra"

func NewSystemCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "system",
		Short: "Maintenance and tooling commands",
	}

	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewMigrateDetailsCommand())
	cmd.AddCommand(NewFixCommand())
	cmd.AddCommand(NewPaymentsCommand())
	cmd.AddCommand(NewGenDocsCommand())
	cmd.AddCommand(NewInitCommand())

	return cmd
}
