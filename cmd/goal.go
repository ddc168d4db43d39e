package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/A4NG31/FinanceFlow-Pro/internal/cli"
	"github.com/A4NG31/FinanceFlow-Pro/internal/engine"
	"github.com/A4NG31/FinanceFlow-Pro/internal/model"
)

var (
	flagGoalPriority string
	flagSavePercent  float64
	flagCompareLoan  bool
	flagHorizon      int
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Save toward planned purchases in monthly installments",
}

var goalAddCmd = &cobra.Command{
	Use:   "add <name> <price>",
	Short: "Create a purchase goal amortized over the wants budget",
	Args:  cobra.ExactArgs(2),
	RunE:  runGoalAdd,
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show active and completed goals",
	RunE:  runGoalList,
}

var goalPayCmd = &cobra.Command{
	Use:   "pay <id> [amount]",
	Short: "Record a payment toward a goal (default: one installment)",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runGoalPay,
}

var goalRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a goal by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalRm,
}

var goalProjectCmd = &cobra.Command{
	Use:   "project",
	Short: "Simulate the coming months of goal saving",
	RunE:  runGoalProject,
}

func init() {
	goalAddCmd.Flags().StringVar(&flagGoalPriority, "priority", "medium", "Goal priority: high, medium or low")
	goalAddCmd.Flags().Float64Var(&flagSavePercent, "save-pct", 0, "Fraction of the wants budget to commit (default from config)")
	goalAddCmd.Flags().BoolVar(&flagCompareLoan, "compare-loan", false, "Show what financing the purchase would cost instead")
	goalProjectCmd.Flags().IntVar(&flagHorizon, "months", 12, "Projection horizon in months")

	goalCmd.AddCommand(goalAddCmd, goalListCmd, goalPayCmd, goalRmCmd, goalProjectCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalAdd(_ *cobra.Command, args []string) error {
	price, err := parseAmount(args[1])
	if err != nil {
		return err
	}
	if price <= 0 {
		return fmt.Errorf("goal price must be positive")
	}
	prio, err := parsePriority(flagGoalPriority)
	if err != nil {
		return err
	}
	savePct := flagSavePercent
	if savePct == 0 {
		savePct = cfg.Planner.DefaultSavePercent
	}
	if savePct <= 0 || savePct > 1 {
		return fmt.Errorf("save fraction %v must be in (0, 1]", savePct)
	}

	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := requireIncome(st); err != nil {
		return err
	}

	available := availableWantsBudget(st)
	g, err := engine.CreateGoal(args[0], price, prio, savePct, available)
	if err != nil {
		if errors.Is(err, engine.ErrInsufficientBudget) {
			return fmt.Errorf("this month's spending leaves %s of the wants budget; nothing to save with",
				cli.FormatMoney(available))
		}
		return err
	}

	st.Goals = append(st.Goals, g)
	if err := saveState(s, st); err != nil {
		return err
	}

	fmt.Printf("\n  Goal %q created (%s)\n", g.Name, shortID(g.ID))
	fmt.Printf("  Save %s per month for %s, done by %s\n\n",
		cli.FormatMoney(g.MonthlySave),
		cli.FormatMonths(g.MonthsNeeded),
		cli.FormatDate(g.TargetDate))

	if flagCompareLoan {
		printFinancing(engine.CompareFinancing(
			g.Price, g.MonthlySave, g.MonthsNeeded,
			available,
			cfg.Planner.FinancingAnnualRate,
			cfg.Planner.FinancingMaxMonths,
		))
	}
	return nil
}

func runGoalList(_ *cobra.Command, _ []string) error {
	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	if len(st.Goals) == 0 {
		fmt.Println("  No goals yet. Create one with `financeflow goal add`.")
		return nil
	}

	active, completed := engine.PartitionGoals(st.Goals)
	sort.Slice(active, func(i, j int) bool {
		return active[i].CreatedAt.Before(active[j].CreatedAt)
	})

	fmt.Println()
	if len(active) > 0 {
		rows := make([][]string, 0, len(active))
		for _, g := range active {
			rows = append(rows, []string{
				g.Name,
				string(g.Priority),
				cli.FormatMoney(g.Price),
				cli.FormatMoney(g.MonthlySave),
				fmt.Sprintf("%.1f/%d", g.MonthsCompleted(), g.MonthsNeeded),
				cli.RenderProgressBar(g.Progress(), 14),
				shortID(g.ID),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Active Goals",
			Headers: []string{"Name", "Priority", "Price", "Monthly", "Months", "Progress", "ID"},
			Rows:    rows,
		}))
		fmt.Println()
	}

	if len(completed) > 0 {
		rows := make([][]string, 0, len(completed))
		for _, g := range completed {
			rows = append(rows, []string{
				g.Name,
				cli.FormatMoney(g.Price),
				cli.FormatMoney(g.AmountSaved),
				shortID(g.ID),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Completed Goals",
			Headers: []string{"Name", "Price", "Saved", "ID"},
			Rows:    rows,
		}))
		fmt.Println()
	}
	return nil
}

func runGoalPay(_ *cobra.Command, args []string) error {
	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	id, ok := resolveGoalID(st, args[0])
	g := st.FindGoal(id)
	if !ok || g == nil {
		fmt.Printf("  No goal with ID %s; nothing recorded.\n", args[0])
		return nil
	}

	amount := g.MonthlySave
	if len(args) == 2 {
		amount, err = parseAmount(args[1])
		if err != nil {
			return err
		}
		if amount <= 0 {
			return fmt.Errorf("payment must be positive")
		}
	}

	engine.RecordPayment(st, id, amount)
	if err := saveState(s, st); err != nil {
		return err
	}

	fmt.Printf("  Paid %s toward %q: %s of %s saved",
		cli.FormatMoney(amount), g.Name,
		cli.FormatMoney(g.AmountSaved), cli.FormatMoney(g.Price))
	if g.Completed() {
		fmt.Printf(" %s", cli.StatusStyle("ok").Render("COMPLETED"))
	}
	fmt.Println()
	return nil
}

func runGoalRm(_ *cobra.Command, args []string) error {
	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	id, ok := resolveGoalID(st, args[0])
	if !ok || !engine.RemoveGoal(st, id) {
		fmt.Printf("  No goal with ID %s; nothing removed.\n", args[0])
		return nil
	}
	if err := saveState(s, st); err != nil {
		return err
	}
	fmt.Printf("  Removed goal %s.\n", id)
	return nil
}

func runGoalProject(_ *cobra.Command, _ []string) error {
	if flagHorizon < 1 || flagHorizon > 120 {
		return fmt.Errorf("projection horizon must be between 1 and 120 months")
	}

	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	if len(st.Goals) == 0 {
		fmt.Println("  No goals to project.")
		return nil
	}

	months := engine.ProjectForward(st.Goals, flagHorizon)
	rows := make([][]string, 0, len(months))
	for _, m := range months {
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.Month),
			cli.FormatMoney(m.Contribution),
			cli.FormatMoney(m.Cumulative),
			fmt.Sprintf("%d/%d", m.Completed, len(st.Goals)),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Savings Projection (%s)", cli.FormatMonths(flagHorizon)),
		Headers: []string{"Month", "Contribution", "Cumulative", "Done"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

func printFinancing(fc engine.FinancingComparison) {
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Save vs. Finance",
		Headers: []string{"", "Saving", "Financing"},
		Rows: [][]string{
			{"Monthly", cli.FormatMoney(fc.SaveMonthly), cli.FormatMoney(fc.LoanPayment)},
			{"Months", cli.FormatMonths(fc.SaveMonths), cli.FormatMonths(fc.LoanMonths)},
			{"Interest", cli.FormatMoney(0), cli.FormatMoney(fc.LoanInterest)},
			{"Total", cli.FormatMoney(fc.SaveMonthly * float64(fc.SaveMonths)), cli.FormatMoney(fc.LoanTotal)},
		},
	}))
	if fc.Affordable {
		fmt.Printf("  Financing would fit the budget, but saving avoids %s in interest.\n\n",
			cli.FormatMoney(fc.InterestSaved))
	} else {
		fmt.Printf("  The loan payment does not fit the budget. Saving avoids %s in interest.\n\n",
			cli.FormatMoney(fc.InterestSaved))
	}
}

func resolveGoalID(st *model.State, arg string) (uuid.UUID, bool) {
	if id, err := uuid.Parse(arg); err == nil {
		return id, true
	}
	if len(arg) < 4 {
		return uuid.UUID{}, false
	}
	var match uuid.UUID
	count := 0
	for _, g := range st.Goals {
		if strings.HasPrefix(g.ID.String(), arg) {
			match = g.ID
			count++
		}
	}
	return match, count == 1
}
