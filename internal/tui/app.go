// Package tui provides the interactive Bubble Tea dashboard for
// financeflow.
package tui

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/A4NG31/FinanceFlow-Pro/internal/cli"
	"github.com/A4NG31/FinanceFlow-Pro/internal/engine"
	"github.com/A4NG31/FinanceFlow-Pro/internal/model"
)

const (
	tabOverview = iota
	tabExpenses
	tabGoals
	tabCount
)

var tabNames = []string{"Overview", "Expenses", "Goals"}

// App is the root Bubble Tea model. It renders a read-only view over a
// state snapshot loaded before the program starts.
type App struct {
	st *model.State

	// Pre-computed for the current month
	budget     model.Budget
	needsTotal float64
	wantsTotal float64
	risk       engine.RiskReport
	cashFlow   engine.CashFlow

	expTable table.Model

	width     int
	height    int
	activeTab int
}

// New builds the dashboard model from a loaded state. Spending totals
// come from this month's recorded expenses, so risk and cash flow
// reflect what was actually spent.
func New(st *model.State) App {
	a := App{st: st}
	a.budget = engine.Allocate(st.Income)

	now := time.Now()
	start, end := engine.MonthRange(now.Month(), now.Year())
	a.needsTotal = engine.CategoryTotal(st.Expenses, model.CategoryNeeds, start, end)
	a.wantsTotal = engine.CategoryTotal(st.Expenses, model.CategoryWants, start, end)

	a.risk = engine.AnalyzeRisk(st.Income, a.needsTotal)
	a.cashFlow = engine.CheckCashFlow(st.Income, a.needsTotal, a.wantsTotal)
	a.expTable = newExpenseTable(st.Expenses)
	return a
}

// Run starts the dashboard in the alternate screen.
func Run(st *model.State) error {
	p := tea.NewProgram(New(st), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.expTable.SetHeight(a.contentHeight())
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "l", "right":
			a.activeTab = (a.activeTab + 1) % tabCount
			return a, nil
		case "shift+tab", "h", "left":
			a.activeTab = (a.activeTab + tabCount - 1) % tabCount
			return a, nil
		case "1":
			a.activeTab = tabOverview
			return a, nil
		case "2":
			a.activeTab = tabExpenses
			return a, nil
		case "3":
			a.activeTab = tabGoals
			return a, nil
		}
	}

	if a.activeTab == tabExpenses {
		var cmd tea.Cmd
		a.expTable, cmd = a.expTable.Update(msg)
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	var content string
	switch a.activeTab {
	case tabExpenses:
		content = a.viewExpenses()
	case tabGoals:
		content = a.viewGoals()
	default:
		content = a.viewOverview()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderTabBar(),
		content,
		a.renderFooter(),
	)
}

func (a App) contentHeight() int {
	h := a.height - 4 // tab bar + footer
	if h < 3 {
		h = 3
	}
	return h
}

func (a App) renderTabBar() string {
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.ColorAccent).
		Padding(0, 2)
	inactive := lipgloss.NewStyle().
		Foreground(cli.ColorTextMuted).
		Padding(0, 2)

	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if i == a.activeTab {
			tabs[i] = active.Render(name)
		} else {
			tabs[i] = inactive.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a App) renderFooter() string {
	return lipgloss.NewStyle().
		Foreground(cli.ColorTextDim).
		Render("  tab/1-3 switch  j/k scroll  q quit")
}

func newExpenseTable(expenses []model.Expense) table.Model {
	sorted := make([]model.Expense, len(expenses))
	copy(sorted, expenses)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	rows := make([]table.Row, 0, len(sorted))
	for _, e := range sorted {
		rows = append(rows, table.Row{
			e.Date.Format(model.DateLayout),
			string(e.Category),
			e.Subcategory,
			cli.FormatMoney(e.Amount),
			e.Description,
		})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Category", Width: 10},
			{Title: "Subcategory", Width: 16},
			{Title: "Amount", Width: 14},
			{Title: "Description", Width: 28},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(cli.ColorAccent).
		BorderForeground(cli.ColorBorder)
	styles.Selected = styles.Selected.
		Foreground(cli.ColorText).
		Background(cli.ColorBorder)
	t.SetStyles(styles)
	return t
}

// monthlyExpenseTotals sums expenses per month for the sparkline, oldest
// first, covering the last n months.
func monthlyExpenseTotals(expenses []model.Expense, n int) []float64 {
	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	totals := make([]float64, n)
	for _, e := range expenses {
		for i := 0; i < n; i++ {
			ref := first.AddDate(0, -(n - 1 - i), 0)
			if e.Date.Year() == ref.Year() && e.Date.Month() == ref.Month() {
				totals[i] += e.Amount
			}
		}
	}
	return totals
}
