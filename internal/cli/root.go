package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "salesops",
	Short: "Sales pipeline and account-management service",
	Long: `salesops runs the sales pipeline API: prospects, sales, payments and the
handover that creates an account-management project.

Without a subcommand it behaves like "salesops serve".`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("SALESOPS_CONFIG"), "Path to a TOML config file")
}

// Execute runs the command selected by the process arguments.
func Execute() error {
	return rootCmd.Execute()
}
