package engine

import "github.com/A4NG31/FinanceFlow-Pro/internal/model"

// SpendingStatus classifies one category's spending against its budget.
type SpendingStatus string

const (
	StatusUnderControl SpendingStatus = "under-control"
	StatusNearLimit    SpendingStatus = "near-limit"
	StatusOverBudget   SpendingStatus = "over-budget"
)

// nearLimitShare is the fraction of a budget beyond which spending is
// flagged as near the limit.
const nearLimitShare = 0.9

// SpendingCheck is the budget-vs-actual assessment for one category.
type SpendingCheck struct {
	Status    SpendingStatus
	Total     float64
	Budget    float64
	Remaining float64 // zero when over budget
	Excess    float64 // zero when within budget
}

// CheckSpending compares a category total to its budget.
func CheckSpending(total, budget float64) SpendingCheck {
	c := SpendingCheck{Total: total, Budget: budget}
	switch {
	case total > budget:
		c.Status = StatusOverBudget
		c.Excess = total - budget
	case total > budget*nearLimitShare:
		c.Status = StatusNearLimit
		c.Remaining = budget - total
	default:
		c.Status = StatusUnderControl
		c.Remaining = budget - total
	}
	return c
}

// CashFlowStatus classifies the monthly leftover after needs, wants and
// the recommended savings budget.
type CashFlowStatus string

const (
	CashFlowHealthy CashFlowStatus = "healthy"
	CashFlowTight   CashFlowStatus = "tight"
	CashFlowDeficit CashFlowStatus = "deficit"
)

// tightMarginShare is the fraction of income below which a positive
// leftover still counts as a tight margin.
const tightMarginShare = 0.05

// CashFlow is the monthly leftover assessment.
type CashFlow struct {
	Status   CashFlowStatus
	Leftover float64
}

// CheckCashFlow computes income minus actual needs, actual wants, and the
// full recommended savings budget.
func CheckCashFlow(income, needsTotal, wantsTotal float64) CashFlow {
	budget := Allocate(income)
	leftover := income - needsTotal - wantsTotal - budget.Savings

	cf := CashFlow{Leftover: leftover}
	switch {
	case leftover < 0:
		cf.Status = CashFlowDeficit
	case leftover < income*tightMarginShare:
		cf.Status = CashFlowTight
	default:
		cf.Status = CashFlowHealthy
	}
	return cf
}

// AnnualProjection extrapolates current monthly figures over a year.
type AnnualProjection struct {
	Needs   float64
	Wants   float64
	Savings float64 // recommended, not actual
}

// ProjectAnnual multiplies the current monthly totals by twelve.
func ProjectAnnual(needsTotal, wantsTotal, savingsBudget float64) AnnualProjection {
	return AnnualProjection{
		Needs:   needsTotal * 12,
		Wants:   wantsTotal * 12,
		Savings: savingsBudget * 12,
	}
}

// EmergencyFundTarget is the recommended emergency fund: six months of
// essential spending.
func EmergencyFundTarget(monthlyNeeds float64) float64 {
	return monthlyNeeds * 6
}

// SavingsSplit is the suggested division of the savings budget.
type SavingsSplit struct {
	EmergencyFund float64
	Investments   float64
}

// SplitSavings suggests putting 60% of the savings budget toward the
// emergency fund and 40% toward investments.
func SplitSavings(b model.Budget) SavingsSplit {
	return SavingsSplit{
		EmergencyFund: b.Savings * 0.6,
		Investments:   b.Savings * 0.4,
	}
}
