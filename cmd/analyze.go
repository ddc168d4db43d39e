package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/A4NG31/FinanceFlow-Pro/internal/cli"
	"github.com/A4NG31/FinanceFlow-Pro/internal/engine"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Full budget analysis: spending status, risk, cash flow and projections",
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := requireIncome(st); err != nil {
		return err
	}

	budget := engine.Allocate(st.Income)
	needsTotal, wantsTotal := currentMonthSpending(st)

	now := time.Now()
	monthExpenses := engine.ExpensesByMonth(st.Expenses, now.Month(), now.Year())

	fmt.Println()
	fmt.Println(cli.RenderTitle("Budget Analysis"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Monthly Budget (50/30/20), %s", cli.FormatMonthYear(now)),
		Headers: []string{"Category", "Budget", "Spent", "Status"},
		Rows: [][]string{
			spendingRow("Needs", engine.CheckSpending(needsTotal, budget.Needs)),
			spendingRow("Wants", engine.CheckSpending(wantsTotal, budget.Wants)),
			{"Savings", cli.FormatMoney(budget.Savings), "-", "-"},
		},
	}))
	fmt.Printf("  Based on %s expenses recorded this month.\n\n",
		cli.FormatNumber(int64(len(monthExpenses))))

	printRisk(engine.AnalyzeRisk(st.Income, needsTotal))

	cf := engine.CheckCashFlow(st.Income, needsTotal, wantsTotal)
	printCashFlow(cf)

	annual := engine.ProjectAnnual(needsTotal, wantsTotal, budget.Savings)
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Annual Projection",
		Headers: []string{"Category", "Per Year"},
		Rows: [][]string{
			{"Needs", cli.FormatMoney(annual.Needs)},
			{"Wants", cli.FormatMoney(annual.Wants)},
			{"Savings", cli.FormatMoney(annual.Savings)},
		},
	}))
	fmt.Println()

	split := engine.SplitSavings(budget)
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Savings Plan",
		Headers: []string{"Destination", "Per Month"},
		Rows: [][]string{
			{"Emergency fund (60%)", cli.FormatMoney(split.EmergencyFund)},
			{"Investments (40%)", cli.FormatMoney(split.Investments)},
		},
	}))
	fmt.Printf("  Emergency fund target: %s (6 months of essential spending)\n\n",
		cli.FormatMoney(engine.EmergencyFundTarget(needsTotal)))

	return nil
}

func spendingRow(name string, c engine.SpendingCheck) []string {
	var status string
	switch c.Status {
	case engine.StatusOverBudget:
		status = cli.StatusStyle("danger").Render(
			fmt.Sprintf("OVER by %s", cli.FormatMoney(c.Excess)))
	case engine.StatusNearLimit:
		status = cli.StatusStyle("warn").Render(
			fmt.Sprintf("NEAR LIMIT (%s left)", cli.FormatMoney(c.Remaining)))
	default:
		status = cli.StatusStyle("ok").Render(
			fmt.Sprintf("OK (%s left)", cli.FormatMoney(c.Remaining)))
	}
	return []string{name, cli.FormatMoney(c.Budget), cli.FormatMoney(c.Total), status}
}

func printRisk(r engine.RiskReport) {
	var label string
	switch r.Level {
	case engine.RiskHigh:
		label = cli.StatusStyle("danger").Render("HIGH")
	case engine.RiskMedium:
		label = cli.StatusStyle("warn").Render("MEDIUM")
	default:
		label = cli.StatusStyle("ok").Render("LOW")
	}

	fmt.Printf("  Risk level: %s\n", label)
	if r.ExcessAmount > 0 {
		fmt.Printf("  Essential spending exceeds budget by %s (%s of income)\n",
			cli.FormatMoney(r.ExcessAmount), cli.FormatPercent(r.ExcessPercent))
	}
	for _, rec := range r.Recommendations {
		fmt.Printf("    - %s\n", rec)
	}
	fmt.Println()
}

func printCashFlow(cf engine.CashFlow) {
	var label string
	switch cf.Status {
	case engine.CashFlowDeficit:
		label = cli.StatusStyle("danger").Render("DEFICIT")
	case engine.CashFlowTight:
		label = cli.StatusStyle("warn").Render("TIGHT")
	default:
		label = cli.StatusStyle("ok").Render("HEALTHY")
	}
	fmt.Printf("  Cash flow: %s (leftover after savings: %s)\n\n",
		label, cli.FormatDelta(cf.Leftover))
}
