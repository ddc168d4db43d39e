package engine

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/A4NG31/FinanceFlow-Pro/internal/model"
)

// targetMonth approximates one month of saving when projecting a goal's
// completion date. Target dates are a fixed 30 days per month, not
// calendar-accurate.
const targetMonth = 30 * 24 * time.Hour

// CreateGoal builds an amortized savings goal for a planned purchase.
// savePct is the fraction (0,1] of the available discretionary budget put
// toward this goal each month. The monthly installment is re-derived from
// the rounded-up month count so that exactly MonthsNeeded equal payments
// sum to the price with no overshoot. Returns ErrInsufficientBudget when
// the derived monthly save is not positive.
func CreateGoal(name string, price float64, prio model.Priority, savePct, availableBudget float64) (model.PurchaseGoal, error) {
	maxMonthlySave := availableBudget * savePct
	if maxMonthlySave <= 0 {
		return model.PurchaseGoal{}, ErrInsufficientBudget
	}

	monthsNeeded := int(math.Ceil(price / maxMonthlySave))
	now := time.Now().UTC()

	return model.PurchaseGoal{
		ID:           uuid.New(),
		Name:         name,
		Price:        price,
		Priority:     prio,
		MonthlySave:  price / float64(monthsNeeded),
		MonthsNeeded: monthsNeeded,
		CreatedAt:    now,
		TargetDate:   now.Add(time.Duration(monthsNeeded) * targetMonth),
	}, nil
}

// RecordPayment adds amount to a goal's saved total. Overpayment is not
// clamped: AmountSaved may exceed Price and MonthsCompleted may exceed
// MonthsNeeded. Returns false (no-op) for an unknown goal ID.
func RecordPayment(st *model.State, id uuid.UUID, amount float64) bool {
	g := st.FindGoal(id)
	if g == nil {
		return false
	}
	g.AmountSaved += amount
	return true
}

// RemoveGoal deletes the goal with the given ID if present.
func RemoveGoal(st *model.State, id uuid.UUID) bool {
	for i, g := range st.Goals {
		if g.ID == id {
			st.Goals = append(st.Goals[:i], st.Goals[i+1:]...)
			return true
		}
	}
	return false
}

// PartitionGoals splits goals into active and completed. The partition is
// computed on read; completion is never stored as a flag.
func PartitionGoals(goals []model.PurchaseGoal) (active, completed []model.PurchaseGoal) {
	for _, g := range goals {
		if g.Completed() {
			completed = append(completed, g)
		} else {
			active = append(active, g)
		}
	}
	return active, completed
}

// ProjectionMonth is one period of a forward savings simulation.
type ProjectionMonth struct {
	Month        int // 1-based period index
	Contribution float64
	Cumulative   float64
	Completed    int // goals completed by the end of this period
}

// ProjectForward simulates the next horizonMonths of saving, assuming each
// incomplete goal keeps receiving its fixed monthly installment. It is a
// display-only projection and does not mutate the goals.
func ProjectForward(goals []model.PurchaseGoal, horizonMonths int) []ProjectionMonth {
	saved := make([]float64, len(goals))
	for i, g := range goals {
		saved[i] = g.AmountSaved
	}

	months := make([]ProjectionMonth, 0, horizonMonths)
	var cumulative float64
	for m := 1; m <= horizonMonths; m++ {
		var contribution float64
		for i, g := range goals {
			if saved[i] >= g.Price {
				continue
			}
			saved[i] += g.MonthlySave
			contribution += g.MonthlySave
		}
		cumulative += contribution

		completed := 0
		for i, g := range goals {
			if saved[i] >= g.Price {
				completed++
			}
		}
		months = append(months, ProjectionMonth{
			Month:        m,
			Contribution: contribution,
			Cumulative:   cumulative,
			Completed:    completed,
		})
	}
	return months
}

// FinancingComparison contrasts saving for a purchase with financing it.
type FinancingComparison struct {
	SaveMonthly   float64
	SaveMonths    int
	LoanPayment   float64
	LoanMonths    int
	LoanTotal     float64
	LoanInterest  float64
	Affordable    bool // loan payment fits the available wants budget
	InterestSaved float64
}

// CompareFinancing computes what financing the purchase at the given annual
// rate would cost versus saving for it. The loan term is the saving term
// capped at maxLoanMonths.
func CompareFinancing(price, monthlySave float64, monthsNeeded int, availableBudget, annualRate float64, maxLoanMonths int) FinancingComparison {
	loanMonths := monthsNeeded
	if loanMonths > maxLoanMonths {
		loanMonths = maxLoanMonths
	}

	monthlyRate := annualRate / 12
	var payment float64
	if monthlyRate > 0 {
		factor := math.Pow(1+monthlyRate, float64(loanMonths))
		payment = price * monthlyRate * factor / (factor - 1)
	} else {
		payment = price / float64(loanMonths)
	}

	total := payment * float64(loanMonths)
	interest := total - price

	return FinancingComparison{
		SaveMonthly:   monthlySave,
		SaveMonths:    monthsNeeded,
		LoanPayment:   payment,
		LoanMonths:    loanMonths,
		LoanTotal:     total,
		LoanInterest:  interest,
		Affordable:    payment <= availableBudget,
		InterestSaved: interest,
	}
}
