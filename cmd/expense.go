package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/A4NG31/FinanceFlow-Pro/internal/cli"
	"github.com/A4NG31/FinanceFlow-Pro/internal/codec"
	"github.com/A4NG31/FinanceFlow-Pro/internal/engine"
	"github.com/A4NG31/FinanceFlow-Pro/internal/model"
)

var (
	flagExpenseDate string
	flagExpenseDesc string
	flagMonth       string
	flagFrom        string
	flagTo          string
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Record and inspect expenses",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add <category> <subcategory> <amount>",
	Short: "Record an expense",
	Args:  cobra.ExactArgs(3),
	RunE:  runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses for a month (default: current)",
	RunE:  runExpenseList,
}

var expenseRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete an expense by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpenseRm,
}

var expenseTotalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Category and subcategory totals over a date range",
	RunE:  runExpenseTotals,
}

var expenseExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all expenses as CSV (stdout by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExpenseExport,
}

func init() {
	expenseAddCmd.Flags().StringVar(&flagExpenseDate, "date", "", "Expense date (YYYY-MM-DD, default today)")
	expenseAddCmd.Flags().StringVar(&flagExpenseDesc, "desc", "", "Optional description")
	expenseListCmd.Flags().StringVar(&flagMonth, "month", "", "Month to list (YYYY-MM, default current)")
	expenseTotalsCmd.Flags().StringVar(&flagFrom, "from", "", "Range start (YYYY-MM-DD)")
	expenseTotalsCmd.Flags().StringVar(&flagTo, "to", "", "Range end (YYYY-MM-DD)")

	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd, expenseRmCmd, expenseTotalsCmd, expenseExportCmd)
	rootCmd.AddCommand(expenseCmd)
}

func runExpenseAdd(_ *cobra.Command, args []string) error {
	cat, err := parseCategory(args[0])
	if err != nil {
		return err
	}
	amount, err := parseAmount(args[2])
	if err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("expense amount must be positive")
	}
	date, err := parseExpenseDate(flagExpenseDate)
	if err != nil {
		return err
	}

	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	e := engine.AppendExpense(st, date, cat, args[1], amount, flagExpenseDesc)
	if err := saveState(s, st); err != nil {
		return err
	}

	fmt.Printf("  Recorded %s on %s/%s (%s)\n",
		cli.FormatMoney(e.Amount), e.Category, e.Subcategory, e.ID)
	return nil
}

func runExpenseList(_ *cobra.Command, _ []string) error {
	month, year, err := parseMonthFlag(flagMonth)
	if err != nil {
		return err
	}

	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	records := engine.ExpensesByMonth(st.Expenses, month, year)
	if len(records) == 0 {
		fmt.Printf("  No expenses in %s %d.\n", month, year)
		return nil
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	rows := make([][]string, 0, len(records)+2)
	var total float64
	for _, e := range records {
		rows = append(rows, []string{
			cli.FormatDate(e.Date),
			string(e.Category),
			e.Subcategory,
			cli.FormatMoney(e.Amount),
			shortID(e.ID),
		})
		total += e.Amount
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", "", "", cli.FormatMoney(total), ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("Expenses %s %d", month, year),
		Headers: []string{"Date", "Category", "Subcategory", "Amount", "ID"},
		Rows:    rows,
	}))
	fmt.Println("  Use the full ID from `expense export` with `expense rm`.")
	return nil
}

func runExpenseRm(_ *cobra.Command, args []string) error {
	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	id, ok := resolveExpenseID(st, args[0])
	if !ok {
		fmt.Printf("  No expense with ID %s; nothing removed.\n", args[0])
		return nil
	}

	engine.RemoveExpense(st, id)
	if err := saveState(s, st); err != nil {
		return err
	}
	fmt.Printf("  Removed expense %s.\n", id)
	return nil
}

func runExpenseTotals(_ *cobra.Command, _ []string) error {
	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	start, end, err := parseRangeFlags(flagFrom, flagTo)
	if err != nil {
		return err
	}

	totals := engine.CategoryTotals(st.Expenses, start, end)
	if len(totals) == 0 {
		fmt.Println("  No expenses in the selected range.")
		return nil
	}

	fmt.Println()
	for _, cat := range []model.Category{model.CategoryNeeds, model.CategoryWants, model.CategorySavings} {
		subs, ok := totals[cat]
		if !ok {
			continue
		}

		keys := make([]string, 0, len(subs))
		for k := range subs {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		rows := make([][]string, 0, len(subs)+2)
		var total float64
		for _, k := range keys {
			rows = append(rows, []string{k, cli.FormatMoney(subs[k])})
			total += subs[k]
		}
		rows = append(rows, []string{"---"})
		rows = append(rows, []string{"TOTAL", cli.FormatMoney(total)})

		fmt.Print(cli.RenderTable(cli.Table{
			Title:   string(cat),
			Headers: []string{"Subcategory", "Total"},
			Rows:    rows,
		}))
		fmt.Println()
	}
	return nil
}

func runExpenseExport(_ *cobra.Command, args []string) error {
	s, st, err := openState()
	if err != nil {
		return err
	}
	defer s.Close()

	out := os.Stdout
	if len(args) == 1 {
		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := codec.WriteExpensesCSV(out, st.Expenses); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	if len(args) == 1 {
		fmt.Fprintf(os.Stderr, "  Exported %d expenses to %s\n", len(st.Expenses), args[0])
	}
	return nil
}

// parseMonthFlag parses YYYY-MM; empty means the current month.
func parseMonthFlag(arg string) (time.Month, int, error) {
	if arg == "" {
		now := time.Now()
		return now.Month(), now.Year(), nil
	}
	t, err := time.Parse("2006-01", arg)
	if err != nil {
		return 0, 0, fmt.Errorf("month %q: want YYYY-MM", arg)
	}
	return t.Month(), t.Year(), nil
}

// parseRangeFlags parses the --from/--to range; both default to the
// current month's bounds.
func parseRangeFlags(from, to string) (time.Time, time.Time, error) {
	now := time.Now()
	start, end := engine.MonthRange(now.Month(), now.Year())

	var err error
	if from != "" {
		start, err = time.Parse(model.DateLayout, from)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("from %q: want YYYY-MM-DD", from)
		}
	}
	if to != "" {
		end, err = time.Parse(model.DateLayout, to)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("to %q: want YYYY-MM-DD", to)
		}
	}
	return start, end, nil
}

// resolveExpenseID matches a full UUID or an unambiguous prefix.
func resolveExpenseID(st *model.State, arg string) (uuid.UUID, bool) {
	if id, err := uuid.Parse(arg); err == nil {
		return id, true
	}
	if len(arg) < 4 {
		return uuid.UUID{}, false
	}
	var match uuid.UUID
	count := 0
	for _, e := range st.Expenses {
		if strings.HasPrefix(e.ID.String(), arg) {
			match = e.ID
			count++
		}
	}
	return match, count == 1
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
