// Package engine implements the budget allocation, expense aggregation,
// risk classification, purchase amortization and calculator core.
package engine

import "github.com/A4NG31/FinanceFlow-Pro/internal/model"

// Budget split shares of the 50/30/20 model.
const (
	NeedsShare = 0.50
	WantsShare = 0.30
)

// Allocate splits monthly income into the three category budgets.
// Savings is derived by subtraction so the three always sum to income
// exactly, with no rounding leakage. Callers enforce income >= 0.
func Allocate(income float64) model.Budget {
	needs := income * NeedsShare
	wants := income * WantsShare
	return model.Budget{
		Needs:   needs,
		Wants:   wants,
		Savings: income - needs - wants,
	}
}
