// Package cmd implements the financeflow command line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/A4NG31/FinanceFlow-Pro/internal/cli"
	"github.com/A4NG31/FinanceFlow-Pro/internal/config"
	"github.com/A4NG31/FinanceFlow-Pro/internal/engine"
	"github.com/A4NG31/FinanceFlow-Pro/internal/model"
	"github.com/A4NG31/FinanceFlow-Pro/internal/store"
)

var (
	flagDataDir string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "financeflow",
	Short: "50/30/20 budget planner",
	Long:  "Plan your monthly budget with the 50/30/20 model: track expenses, save for purchases, and watch your risk level.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		firstRun := !config.Exists()
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if firstRun {
			// Seed a config file with the defaults so they are
			// discoverable and editable. Best-effort.
			_ = config.Save(cfg)
		}
		cli.SetCurrencySymbol(cfg.General.CurrencySymbol)
		cli.SetTheme(cfg.Appearance.Theme)
		return nil
	},
	RunE: runAnalyze,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override the state database directory")
}

func statePath() string {
	dir := flagDataDir
	if dir == "" {
		dir = config.DataDir(cfg)
	}
	return filepath.Join(dir, "planner.db")
}

// openState opens the store and loads the full state aggregate. Callers
// must Close the returned store.
func openState() (*store.Store, *model.State, error) {
	s, err := store.Open(statePath())
	if err != nil {
		return nil, nil, err
	}
	st, err := s.Load()
	if err != nil {
		_ = s.Close()
		return nil, nil, err
	}
	return s, st, nil
}

// saveState persists the aggregate after a mutating command.
func saveState(s *store.Store, st *model.State) error {
	if err := s.Save(st); err != nil {
		return fmt.Errorf("saving state: %w", err)
	}
	return nil
}

// parseAmount parses a monetary argument: a non-negative whole number of
// pesos, per the input contract.
func parseAmount(arg string) (float64, error) {
	n, err := strconv.ParseInt(strings.ReplaceAll(arg, ",", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q is not a whole number", arg)
	}
	if n < 0 {
		return 0, fmt.Errorf("amount must not be negative")
	}
	return float64(n), nil
}

// parseExpenseDate parses a YYYY-MM-DD date that must not be in the
// future. Empty means today.
func parseExpenseDate(arg string) (time.Time, error) {
	if arg == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse(model.DateLayout, arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: want YYYY-MM-DD", arg)
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.After(today) {
		return time.Time{}, fmt.Errorf("date %s is in the future", arg)
	}
	return d, nil
}

func parseCategory(arg string) (model.Category, error) {
	cat := model.Category(strings.ToLower(arg))
	if !cat.Valid() {
		return "", fmt.Errorf("category %q: want needs, wants or savings", arg)
	}
	return cat, nil
}

func parsePriority(arg string) (model.Priority, error) {
	p := model.Priority(strings.ToLower(arg))
	if !p.Valid() {
		return "", fmt.Errorf("priority %q: want high, medium or low", arg)
	}
	return p, nil
}

// currentMonthSpending sums this month's recorded expenses per top-level
// category. Risk, cash flow and status checks run on what was actually
// spent, not on the planned allocations.
func currentMonthSpending(st *model.State) (needs, wants float64) {
	now := time.Now()
	start, end := engine.MonthRange(now.Month(), now.Year())
	needs = engine.CategoryTotal(st.Expenses, model.CategoryNeeds, start, end)
	wants = engine.CategoryTotal(st.Expenses, model.CategoryWants, start, end)
	return needs, wants
}

// availableWantsBudget is the wants budget minus what is already spent
// this month. Purchase goals amortize against what is actually left.
func availableWantsBudget(st *model.State) float64 {
	_, wantsSpent := currentMonthSpending(st)
	return engine.Allocate(st.Income).Wants - wantsSpent
}

// requireIncome rejects commands that need a configured income first.
func requireIncome(st *model.State) error {
	if st.Income <= 0 {
		return fmt.Errorf("no income configured; run `financeflow income set <amount>` or `financeflow setup` first")
	}
	return nil
}
