package cli

import (
	"fmt"

	"salesops/internal/infrastructure/realtime"
	"salesops/internal/usecase"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reconcileCmd)
}

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Create missing projects for sales already in Handover",
	Long: `Scan every sale in Handover and create its project when none exists.
Safe to run repeatedly; a second run creates nothing.`,
	RunE: runReconcile,
}

func runReconcile(cmd *cobra.Command, _ []string) error {
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

	// No observers are connected to a one-shot command.
	sales := usecase.NewSaleUseCase(st.sales, st.projects, realtime.NewHub(), usecase.WithSaleLogger(log))
	n, err := sales.ReconcileHandovers(ctx)
	if err != nil {
		return fmt.Errorf("reconcile handovers: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %d missing project(s)\n", n)
	return nil
}
