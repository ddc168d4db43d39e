package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/A4NG31/FinanceFlow-Pro/internal/cli"
	"github.com/A4NG31/FinanceFlow-Pro/internal/engine"
)

var investCmd = &cobra.Command{
	Use:   "invest",
	Short: "Investment suggestions for the savings budget",
	RunE:  runInvest,
}

func init() {
	rootCmd.AddCommand(investCmd)
}

func runInvest(_ *cobra.Command, _ []string) error {
	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := requireIncome(st); err != nil {
		return err
	}

	budget := engine.Allocate(st.Income)
	split := engine.SplitSavings(budget)
	monthly := split.Investments
	annual := monthly * 12

	fmt.Println()
	fmt.Println(cli.RenderTitle("Investment Advisor"))
	fmt.Printf("\n  Investing %s per month (%s per year) of your savings budget.\n\n",
		cli.FormatMoney(monthly), cli.FormatMoney(annual))

	options := engine.InvestmentOptions(annual)
	rows := make([][]string, 0, len(options))
	for _, opt := range options {
		wait := ""
		switch m := engine.MonthsToMinimum(opt, annual, monthly); {
		case m == 0:
			wait = cli.StatusStyle("ok").Render("now")
		case m < 0:
			wait = cli.StatusStyle("danger").Render("out of reach")
		default:
			wait = cli.FormatMonths(m)
		}
		rows = append(rows, []string{
			opt.Name,
			opt.Risk,
			opt.ExpectedReturn,
			cli.FormatMoney(opt.MinAmount),
			opt.Liquidity,
			wait,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Suggested Options",
		Headers: []string{"Option", "Risk", "Return", "Minimum", "Liquidity", "Available"},
		Rows:    rows,
	}))
	fmt.Println()

	for _, opt := range options {
		fmt.Printf("  %s: %s\n", opt.Name, opt.Description)
	}
	fmt.Println()
	return nil
}
