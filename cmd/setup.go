package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/A4NG31/FinanceFlow-Pro/internal/cli"
	"github.com/A4NG31/FinanceFlow-Pro/internal/config"
	"github.com/A4NG31/FinanceFlow-Pro/internal/engine"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive first-run setup: income and family profile",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	incomeStr := ""
	if st.Income > 0 {
		incomeStr = strconv.FormatInt(int64(st.Income), 10)
	}
	hasChildren := st.Profile.HasChildren
	numChildren := strconv.Itoa(st.Profile.NumChildren)
	hasPets := st.Profile.HasPets
	numPets := strconv.Itoa(st.Profile.NumPets)
	themeName := cfg.Appearance.Theme

	validateWhole := func(v string) error {
		_, err := parseAmount(v)
		return err
	}
	validateCount := func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("want a non-negative whole number")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Monthly income").
				Description("Whole amount, no decimals").
				Value(&incomeStr).
				Validate(validateWhole),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Do you have children?").
				Value(&hasChildren),
			huh.NewInput().
				Title("How many children?").
				Value(&numChildren).
				Validate(validateCount),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Do you have pets?").
				Value(&hasPets),
			huh.NewInput().
				Title("How many pets?").
				Value(&numPets).
				Validate(validateCount),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(cli.ThemeNames()...)...).
				Value(&themeName),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("running setup form: %w", err)
	}

	income, err := parseAmount(incomeStr)
	if err != nil {
		return err
	}
	st.Income = income
	st.Profile.HasChildren = hasChildren
	st.Profile.NumChildren, _ = strconv.Atoi(numChildren)
	st.Profile.HasPets = hasPets
	st.Profile.NumPets, _ = strconv.Atoi(numPets)
	if !hasChildren {
		st.Profile.NumChildren = 0
	}
	if !hasPets {
		st.Profile.NumPets = 0
	}

	if err := saveState(s, st); err != nil {
		return err
	}

	if themeName != cfg.Appearance.Theme {
		cfg.Appearance.Theme = themeName
		if err := config.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "warning: saving config: %v\n", err)
		}
		cli.SetTheme(themeName)
	}

	budget := engine.Allocate(st.Income)
	fmt.Println()
	fmt.Println(cli.RenderTitle("All set!"))
	fmt.Printf("\n  Income %s splits into needs %s, wants %s, savings %s.\n",
		cli.FormatMoney(st.Income),
		cli.FormatMoney(budget.Needs),
		cli.FormatMoney(budget.Wants),
		cli.FormatMoney(budget.Savings))
	fmt.Println("  Plan your spending with `financeflow plan set` and record expenses with `financeflow expense add`.")
	fmt.Println()
	return nil
}
