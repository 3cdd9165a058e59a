package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the storage schema",
	Long: `Create the SQLite tables or the DynamoDB tables (sales, and projects with
its id-index) for the configured store. Existing tables are left alone.`,
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = st.close() }()

	if err := st.migrate(ctx); err != nil {
		return fmt.Errorf("migrate %s: %w", cfg.Store.Driver, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s schema ready\n", cfg.Store.Driver)
	return nil
}
