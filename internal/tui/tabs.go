package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/A4NG31/FinanceFlow-Pro/internal/cli"
	"github.com/A4NG31/FinanceFlow-Pro/internal/engine"
)

// Styles are built per call so the theme chosen in config applies; the
// config loads after package init.
func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.ColorBorder).
		Padding(0, 1)
}

func labelStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
}

func bigStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(cli.ColorText)
}

func metricCard(label, value, note string) string {
	return cardStyle().Render(lipgloss.JoinVertical(lipgloss.Left,
		labelStyle().Render(label),
		bigStyle().Render(value),
		labelStyle().Render(note),
	))
}

func (a App) viewOverview() string {
	var b strings.Builder

	if a.st.Income <= 0 {
		return labelStyle().Render("\n  No income configured. Run `financeflow setup` first.\n")
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("Income", cli.FormatMoney(a.st.Income), "per month"),
		metricCard("Needs 50%", cli.FormatMoney(a.budget.Needs),
			"spent "+cli.FormatMoney(a.needsTotal)),
		metricCard("Wants 30%", cli.FormatMoney(a.budget.Wants),
			"spent "+cli.FormatMoney(a.wantsTotal)),
		metricCard("Savings 20%", cli.FormatMoney(a.budget.Savings), "recommended"),
	)
	b.WriteString(cards)
	b.WriteString("\n\n")

	b.WriteString("  Risk: ")
	switch a.risk.Level {
	case engine.RiskHigh:
		b.WriteString(cli.StatusStyle("danger").Render("HIGH"))
	case engine.RiskMedium:
		b.WriteString(cli.StatusStyle("warn").Render("MEDIUM"))
	default:
		b.WriteString(cli.StatusStyle("ok").Render("LOW"))
	}
	if a.risk.ExcessAmount > 0 {
		b.WriteString(labelStyle().Render(fmt.Sprintf("  needs over budget by %s (%s of income)",
			cli.FormatMoney(a.risk.ExcessAmount), cli.FormatPercent(a.risk.ExcessPercent))))
	}
	b.WriteString("\n")

	b.WriteString("  Cash flow: ")
	switch a.cashFlow.Status {
	case engine.CashFlowDeficit:
		b.WriteString(cli.StatusStyle("danger").Render("DEFICIT"))
	case engine.CashFlowTight:
		b.WriteString(cli.StatusStyle("warn").Render("TIGHT"))
	default:
		b.WriteString(cli.StatusStyle("ok").Render("HEALTHY"))
	}
	b.WriteString(labelStyle().Render("  leftover " + cli.FormatDelta(a.cashFlow.Leftover)))
	b.WriteString("\n\n")

	if len(a.st.Expenses) > 0 {
		totals := monthlyExpenseTotals(a.st.Expenses, 6)
		b.WriteString(labelStyle().Render("  Spending, last 6 months: "))
		b.WriteString(cli.RenderSparkline(totals))
		b.WriteString("\n")
	}

	split := engine.SplitSavings(a.budget)
	b.WriteString(labelStyle().Render(fmt.Sprintf(
		"  Savings plan: %s emergency fund, %s investments. Emergency target %s.",
		cli.FormatMoney(split.EmergencyFund),
		cli.FormatMoney(split.Investments),
		cli.FormatMoney(engine.EmergencyFundTarget(a.needsTotal)))))
	b.WriteString("\n")

	return b.String()
}

func (a App) viewExpenses() string {
	if len(a.st.Expenses) == 0 {
		return labelStyle().Render("\n  No expenses recorded yet.\n")
	}
	return a.expTable.View()
}

func (a App) viewGoals() string {
	if len(a.st.Goals) == 0 {
		return labelStyle().Render("\n  No goals yet. Create one with `financeflow goal add`.\n")
	}

	var b strings.Builder
	active, completed := engine.PartitionGoals(a.st.Goals)

	b.WriteString("\n")
	for _, g := range active {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			bigStyle().Render(g.Name),
			labelStyle().Render(fmt.Sprintf("(%s, %s/mo, due %s)",
				g.Priority, cli.FormatMoney(g.MonthlySave), cli.FormatDate(g.TargetDate)))))
		b.WriteString(fmt.Sprintf("  %s  %s of %s\n\n",
			cli.RenderProgressBar(g.Progress(), 24),
			cli.FormatMoney(g.AmountSaved), cli.FormatMoney(g.Price)))
	}

	if len(completed) > 0 {
		b.WriteString(labelStyle().Render("  Completed:"))
		b.WriteString("\n")
		for _, g := range completed {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				cli.StatusStyle("ok").Render("✓"),
				g.Name,
				labelStyle().Render(cli.FormatMoney(g.Price))))
		}
	}
	return b.String()
}
