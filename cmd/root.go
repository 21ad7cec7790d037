package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/Bemyself19/sehatynet_backend/cmd/http"
	systemcmd "github.com/Bemyself19/sehatynet_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "sehatynet",
	Short: "SehatyNet+ telehealth platform backend.",
	Long: `SehatyNet+ is a telehealth platform connecting patients, doctors and
service providers (pharmacies, laboratories, radiology centers) around
prescription and medical record fulfillment.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
