package cmd

import (
	"testing"
	"time"

	"github.com/A4NG31/FinanceFlow-Pro/internal/engine"
	"github.com/A4NG31/FinanceFlow-Pro/internal/model"
)

// thisMonth returns a day-precision date inside the current month, the
// same shape expense dates have after parsing.
func thisMonth(t *testing.T) time.Time {
	t.Helper()
	now := time.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func TestCurrentMonthSpendingSumsLedger(t *testing.T) {
	st := model.NewState()
	st.Income = 3_000_000
	date := thisMonth(t)

	engine.AppendExpense(st, date, model.CategoryNeeds, "rent", 1_000_000, "")
	engine.AppendExpense(st, date, model.CategoryNeeds, "groceries", 650_000, "")
	engine.AppendExpense(st, date, model.CategoryWants, "dining", 100_000, "")
	engine.AppendExpense(st, date.AddDate(0, -2, 0), model.CategoryNeeds, "rent", 999_999, "")

	// Planned allocations must not leak into the spending totals.
	st.Needs[model.NeedRent] = 5_000_000

	needs, wants := currentMonthSpending(st)
	if needs != 1_650_000 {
		t.Errorf("needs spending = %v, want 1650000", needs)
	}
	if wants != 100_000 {
		t.Errorf("wants spending = %v, want 100000", wants)
	}
}

func TestRiskReadsRecordedSpending(t *testing.T) {
	st := model.NewState()
	st.Income = 3_000_000
	engine.AppendExpense(st, thisMonth(t), model.CategoryNeeds, "rent", 1_650_000, "")

	needs, wants := currentMonthSpending(st)
	r := engine.AnalyzeRisk(st.Income, needs)
	if r.Level != engine.RiskMedium {
		t.Errorf("risk level = %v, want %v", r.Level, engine.RiskMedium)
	}
	if r.ExcessAmount != 150_000 {
		t.Errorf("excess = %v, want 150000", r.ExcessAmount)
	}
	if r.ExcessPercent != 5.0 {
		t.Errorf("excess pct = %v, want 5", r.ExcessPercent)
	}

	cf := engine.CheckCashFlow(st.Income, needs, wants)
	if cf.Status != engine.CashFlowHealthy {
		t.Errorf("cash flow = %v, want %v", cf.Status, engine.CashFlowHealthy)
	}
	if cf.Leftover != 750_000 {
		t.Errorf("leftover = %v, want 750000", cf.Leftover)
	}
}

func TestAvailableWantsDeductsSpending(t *testing.T) {
	st := model.NewState()
	st.Income = 3_000_000
	engine.AppendExpense(st, thisMonth(t), model.CategoryWants, "dining", 700_000, "")

	if got := availableWantsBudget(st); got != 200_000 {
		t.Fatalf("availableWantsBudget = %v, want 200000", got)
	}

	g, err := engine.CreateGoal("tv", 1_200_000, model.PriorityMedium, 0.5, availableWantsBudget(st))
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if g.MonthsNeeded != 12 {
		t.Errorf("MonthsNeeded = %d, want 12", g.MonthsNeeded)
	}
	if g.MonthlySave != 100_000 {
		t.Errorf("MonthlySave = %v, want 100000", g.MonthlySave)
	}
}

func TestAvailableWantsFullyConsumed(t *testing.T) {
	st := model.NewState()
	st.Income = 3_000_000
	engine.AppendExpense(st, thisMonth(t), model.CategoryWants, "travel", 900_000, "")

	if got := availableWantsBudget(st); got != 0 {
		t.Fatalf("availableWantsBudget = %v, want 0", got)
	}
	if _, err := engine.CreateGoal("tv", 1_200_000, model.PriorityLow, 0.5, availableWantsBudget(st)); err != engine.ErrInsufficientBudget {
		t.Errorf("CreateGoal err = %v, want ErrInsufficientBudget", err)
	}
}
