package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/A4NG31/FinanceFlow-Pro/internal/model"
)

// AppendExpense records a new expense on the state and returns it.
// The ledger is append-only: records are never updated in place, only
// removed. Amount validation (> 0) happens at the caller per the input
// contract, not here.
func AppendExpense(st *model.State, date time.Time, cat model.Category, sub string, amount float64, desc string) model.Expense {
	e := model.NewExpense(date, cat, sub, amount, desc)
	st.Expenses = append(st.Expenses, e)
	return e
}

// RemoveExpense deletes the expense with the given ID if present.
// Returns false (no-op) for an unknown ID.
func RemoveExpense(st *model.State, id uuid.UUID) bool {
	for i, e := range st.Expenses {
		if e.ID == id {
			st.Expenses = append(st.Expenses[:i], st.Expenses[i+1:]...)
			return true
		}
	}
	return false
}

// ExpensesByMonth returns expenses whose date falls within the given
// calendar month.
func ExpensesByMonth(expenses []model.Expense, month time.Month, year int) []model.Expense {
	var result []model.Expense
	for _, e := range expenses {
		if e.Date.Month() == month && e.Date.Year() == year {
			result = append(result, e)
		}
	}
	return result
}

// CategoryTotals sums expense amounts grouped by category and subcategory,
// restricted to start <= date <= end inclusive. Subcategories with no
// activity in range are absent, not zero-valued.
func CategoryTotals(expenses []model.Expense, start, end time.Time) map[model.Category]map[string]float64 {
	totals := make(map[model.Category]map[string]float64)
	for _, e := range expenses {
		if e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		sub, ok := totals[e.Category]
		if !ok {
			sub = make(map[string]float64)
			totals[e.Category] = sub
		}
		sub[e.Subcategory] += e.Amount
	}
	return totals
}

// CategoryTotal sums all expenses of one category within the range.
func CategoryTotal(expenses []model.Expense, cat model.Category, start, end time.Time) float64 {
	var total float64
	for _, e := range expenses {
		if e.Category != cat || e.Date.Before(start) || e.Date.After(end) {
			continue
		}
		total += e.Amount
	}
	return total
}

// MonthRange returns the inclusive first and last day of a calendar month.
func MonthRange(month time.Month, year int) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}
