package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/A4NG31/FinanceFlow-Pro/internal/model"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestAppendExpense_AssignsIDAndTimestamp(t *testing.T) {
	st := model.NewState()

	e := AppendExpense(st, day(t, "2025-06-15"), model.CategoryNeeds, "groceries", 120_000, "weekly run")

	if e.ID == uuid.Nil {
		t.Error("expense ID is nil, want a fresh UUID")
	}
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero, want a creation timestamp")
	}
	if len(st.Expenses) != 1 {
		t.Fatalf("ledger has %d records, want 1", len(st.Expenses))
	}
	if st.Expenses[0].ID != e.ID {
		t.Error("appended record not found in ledger")
	}
}

func TestRemoveExpense(t *testing.T) {
	st := model.NewState()
	e1 := AppendExpense(st, day(t, "2025-06-01"), model.CategoryNeeds, "rent", 800_000, "")
	e2 := AppendExpense(st, day(t, "2025-06-02"), model.CategoryWants, "dining", 50_000, "")

	if !RemoveExpense(st, e1.ID) {
		t.Error("RemoveExpense(known id) = false, want true")
	}
	if len(st.Expenses) != 1 || st.Expenses[0].ID != e2.ID {
		t.Errorf("ledger after remove = %d records, want only the second one", len(st.Expenses))
	}

	// Unknown ID is a silent no-op.
	if RemoveExpense(st, uuid.New()) {
		t.Error("RemoveExpense(unknown id) = true, want false")
	}
	if len(st.Expenses) != 1 {
		t.Errorf("ledger changed by no-op remove: %d records", len(st.Expenses))
	}
}

func TestExpensesByMonth(t *testing.T) {
	st := model.NewState()
	AppendExpense(st, day(t, "2025-05-31"), model.CategoryNeeds, "rent", 800_000, "")
	AppendExpense(st, day(t, "2025-06-01"), model.CategoryNeeds, "groceries", 100_000, "")
	AppendExpense(st, day(t, "2025-06-30"), model.CategoryWants, "dining", 40_000, "")
	AppendExpense(st, day(t, "2024-06-15"), model.CategoryWants, "travel", 300_000, "")

	june := ExpensesByMonth(st.Expenses, time.June, 2025)
	if len(june) != 2 {
		t.Fatalf("ByMonth(June 2025) = %d records, want 2", len(june))
	}
	for _, e := range june {
		if e.Date.Month() != time.June || e.Date.Year() != 2025 {
			t.Errorf("record dated %v leaked into June 2025", e.Date)
		}
	}
}

func TestCategoryTotals_InclusiveRange(t *testing.T) {
	st := model.NewState()
	AppendExpense(st, day(t, "2025-06-01"), model.CategoryNeeds, "groceries", 100_000, "")
	AppendExpense(st, day(t, "2025-06-15"), model.CategoryNeeds, "groceries", 50_000, "")
	AppendExpense(st, day(t, "2025-06-30"), model.CategoryNeeds, "rent", 800_000, "")
	AppendExpense(st, day(t, "2025-07-01"), model.CategoryWants, "dining", 30_000, "")

	totals := CategoryTotals(st.Expenses, day(t, "2025-06-01"), day(t, "2025-06-30"))

	needs := totals[model.CategoryNeeds]
	if needs["groceries"] != 150_000 {
		t.Errorf("groceries total = %.0f, want 150000", needs["groceries"])
	}
	// Both range endpoints are inclusive.
	if needs["rent"] != 800_000 {
		t.Errorf("rent total = %.0f, want 800000 (end date inclusive)", needs["rent"])
	}
	// Out-of-range category must be absent entirely, not zero-valued.
	if _, ok := totals[model.CategoryWants]; ok {
		t.Error("wants present in totals, want absent (no activity in range)")
	}
}

func TestCategoryTotal_FiltersByCategory(t *testing.T) {
	st := model.NewState()
	AppendExpense(st, day(t, "2025-06-05"), model.CategoryNeeds, "rent", 800_000, "")
	AppendExpense(st, day(t, "2025-06-06"), model.CategoryWants, "hobbies", 60_000, "")

	start, end := MonthRange(time.June, 2025)
	if got := CategoryTotal(st.Expenses, model.CategoryNeeds, start, end); got != 800_000 {
		t.Errorf("needs total = %.0f, want 800000", got)
	}
	if got := CategoryTotal(st.Expenses, model.CategoryWants, start, end); got != 60_000 {
		t.Errorf("wants total = %.0f, want 60000", got)
	}
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(time.February, 2024)
	if start.Day() != 1 || start.Month() != time.February {
		t.Errorf("start = %v, want 2024-02-01", start)
	}
	if end.Day() != 29 { // leap year
		t.Errorf("end day = %d, want 29", end.Day())
	}
}
