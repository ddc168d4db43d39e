package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/A4NG31/FinanceFlow-Pro/internal/cli"
	"github.com/A4NG31/FinanceFlow-Pro/internal/engine"
)

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Show monthly income and its 50/30/20 split",
	RunE:  runIncomeShow,
}

var incomeSetCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Set net monthly income",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncomeSet,
}

func init() {
	incomeCmd.AddCommand(incomeSetCmd)
	rootCmd.AddCommand(incomeCmd)
}

func runIncomeShow(_ *cobra.Command, _ []string) error {
	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := requireIncome(st); err != nil {
		return err
	}

	b := engine.Allocate(st.Income)

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY BUDGET"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Share", "Budget"},
		Rows: [][]string{
			{"Income", "", cli.FormatMoney(st.Income)},
			{"---"},
			{"Needs", "50%", cli.FormatMoney(b.Needs)},
			{"Wants", "30%", cli.FormatMoney(b.Wants)},
			{"Savings", "20%", cli.FormatMoney(b.Savings)},
		},
	}))
	fmt.Println()
	return nil
}

func runIncomeSet(_ *cobra.Command, args []string) error {
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}

	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	st.Income = amount
	if err := saveState(s, st); err != nil {
		return err
	}

	b := engine.Allocate(amount)
	fmt.Printf("  Income set to %s\n", cli.FormatMoney(amount))
	fmt.Printf("  Needs %s · Wants %s · Savings %s\n",
		cli.FormatMoney(b.Needs), cli.FormatMoney(b.Wants), cli.FormatMoney(b.Savings))
	return nil
}
