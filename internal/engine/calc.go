package engine

import "math"

// GrowthResult is the outcome of a compound growth projection.
type GrowthResult struct {
	FutureValue       float64 // principal growth + contribution growth
	PrincipalValue    float64
	ContributionValue float64
	TotalContributed  float64 // initial + all monthly contributions
	InterestEarned    float64
}

// CompoundGrowth projects the future value of an initial amount plus fixed
// monthly contributions, compounding monthly at annualRate over years.
func CompoundGrowth(initial, monthlyContribution, annualRate float64, years int) GrowthResult {
	months := 12 * years
	monthlyRate := annualRate / 12

	principal := initial * math.Pow(1+monthlyRate, float64(months))

	var contributions float64
	if monthlyRate > 0 {
		contributions = monthlyContribution * (math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate
	} else {
		contributions = monthlyContribution * float64(months)
	}

	total := principal + contributions
	contributed := initial + monthlyContribution*float64(months)

	return GrowthResult{
		FutureValue:       total,
		PrincipalValue:    principal,
		ContributionValue: contributions,
		TotalContributed:  contributed,
		InterestEarned:    total - contributed,
	}
}

// PayoffResult is the outcome of a debt payoff computation.
type PayoffResult struct {
	Months        int
	TotalPaid     float64
	TotalInterest float64
}

// DebtPayoff solves for how many fixed monthly payments clear a debt at
// the given monthly interest rate. Returns ErrPaymentTooLow when the
// payment does not exceed one month's interest on the full principal,
// which also bounds the month count.
func DebtPayoff(principal, monthlyRate, payment float64) (PayoffResult, error) {
	if monthlyRate > 0 && payment <= principal*monthlyRate {
		return PayoffResult{}, ErrPaymentTooLow
	}
	if payment <= 0 {
		return PayoffResult{}, ErrPaymentTooLow
	}

	var months int
	if monthlyRate > 0 {
		months = int(math.Ceil(-math.Log(1-principal*monthlyRate/payment) / math.Log(1+monthlyRate)))
	} else {
		months = int(math.Ceil(principal / payment))
	}

	totalPaid := payment * float64(months)
	return PayoffResult{
		Months:        months,
		TotalPaid:     totalPaid,
		TotalInterest: totalPaid - principal,
	}, nil
}
