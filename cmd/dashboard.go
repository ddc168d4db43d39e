package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/A4NG31/FinanceFlow-Pro/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash"},
	Short:   "Open the interactive dashboard",
	RunE:    runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := tui.Run(st); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
