package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/A4NG31/FinanceFlow-Pro/internal/cli"
	"github.com/A4NG31/FinanceFlow-Pro/internal/engine"
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Standalone financial calculators",
}

var calcGrowthCmd = &cobra.Command{
	Use:   "growth <initial> <monthly> <annual-rate-%> <years>",
	Short: "Project compound growth with monthly contributions",
	Args:  cobra.ExactArgs(4),
	RunE:  runCalcGrowth,
}

var calcPayoffCmd = &cobra.Command{
	Use:   "payoff <debt> <monthly-rate-%> <payment>",
	Short: "Months and total cost to pay off a debt",
	Args:  cobra.ExactArgs(3),
	RunE:  runCalcPayoff,
}

func init() {
	calcCmd.AddCommand(calcGrowthCmd, calcPayoffCmd)
	rootCmd.AddCommand(calcCmd)
}

func runCalcGrowth(_ *cobra.Command, args []string) error {
	initial, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	monthly, err := parseAmount(args[1])
	if err != nil {
		return err
	}
	rate, err := parseRatePercent(args[2])
	if err != nil {
		return err
	}
	years, err := strconv.Atoi(args[3])
	if err != nil || years < 1 {
		return fmt.Errorf("years %q must be a positive whole number", args[3])
	}

	r := engine.CompoundGrowth(initial, monthly, rate, years)

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Growth over %d years at %s/yr", years, cli.FormatPercent(rate*100)),
		Headers: []string{"", "Amount"},
		Rows: [][]string{
			{"Initial capital grows to", cli.FormatMoney(r.PrincipalValue)},
			{"Contributions grow to", cli.FormatMoney(r.ContributionValue)},
			{"---"},
			{"Future value", cli.FormatMoney(r.FutureValue)},
			{"Total contributed", cli.FormatMoney(r.TotalContributed)},
			{"Interest earned", cli.FormatMoney(r.InterestEarned)},
		},
	}))
	fmt.Println()
	return nil
}

func runCalcPayoff(_ *cobra.Command, args []string) error {
	debt, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	rate, err := parseRatePercent(args[1])
	if err != nil {
		return err
	}
	payment, err := parseAmount(args[2])
	if err != nil {
		return err
	}

	r, err := engine.DebtPayoff(debt, rate, payment)
	if err != nil {
		if errors.Is(err, engine.ErrPaymentTooLow) {
			return fmt.Errorf("a payment of %s never clears this debt; it does not cover the monthly interest of %s",
				cli.FormatMoney(payment), cli.FormatMoney(debt*rate))
		}
		return err
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Debt Payoff",
		Headers: []string{"", "Value"},
		Rows: [][]string{
			{"Months to pay off", cli.FormatMonths(r.Months)},
			{"Total paid", cli.FormatMoney(r.TotalPaid)},
			{"Total interest", cli.FormatMoney(r.TotalInterest)},
		},
	}))
	fmt.Println()
	return nil
}

// parseRatePercent parses a percentage like "8" or "2.5" into a fraction.
func parseRatePercent(arg string) (float64, error) {
	pct, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("rate %q is not a number", arg)
	}
	if pct < 0 {
		return 0, fmt.Errorf("rate must not be negative")
	}
	return pct / 100, nil
}
