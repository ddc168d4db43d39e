package engine

import "errors"

// Sentinel errors returned by engine operations. Callers are expected to
// match with errors.Is and surface the specific reason to the user.
var (
	// ErrInsufficientBudget means goal creation derived a non-positive
	// monthly save from the available discretionary budget.
	ErrInsufficientBudget = errors.New("insufficient discretionary budget for goal")

	// ErrPaymentTooLow means a debt payment does not cover the monthly
	// interest accrual, so the balance would never amortize.
	ErrPaymentTooLow = errors.New("payment does not cover interest")
)
