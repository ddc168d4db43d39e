package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/A4NG31/FinanceFlow-Pro/internal/model"
)

func TestCreateGoal_Amortization(t *testing.T) {
	// 400,000 available at 50% -> 200,000/month, 1,200,000 price -> 6 months.
	g, err := CreateGoal("laptop", 1_200_000, model.PriorityHigh, 0.5, 400_000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.MonthsNeeded != 6 {
		t.Errorf("MonthsNeeded = %d, want 6", g.MonthsNeeded)
	}
	if g.MonthlySave != 200_000 {
		t.Errorf("MonthlySave = %.0f, want 200000", g.MonthlySave)
	}
	if g.AmountSaved != 0 {
		t.Errorf("AmountSaved = %.0f, want 0 at creation", g.AmountSaved)
	}
	if g.ID == uuid.Nil {
		t.Error("goal ID is nil")
	}
	wantTarget := g.CreatedAt.Add(6 * targetMonth)
	if !g.TargetDate.Equal(wantTarget) {
		t.Errorf("TargetDate = %v, want %v (30-day months)", g.TargetDate, wantTarget)
	}
}

func TestCreateGoal_InstallmentsSumToPrice(t *testing.T) {
	// The monthly save is re-derived from the rounded-up month count so
	// that MonthsNeeded equal installments cover the price exactly,
	// within float tolerance.
	cases := []struct {
		price, budget, pct float64
	}{
		{1_200_000, 400_000, 0.5},
		{3_500_000, 350_000, 1.0},
		{999_999, 250_000, 0.33},
		{100, 7, 1.0},
	}

	for _, c := range cases {
		g, err := CreateGoal("x", c.price, model.PriorityLow, c.pct, c.budget)
		if err != nil {
			t.Fatalf("CreateGoal(%v): %v", c, err)
		}

		wantMonths := int(math.Ceil(c.price / (c.budget * c.pct)))
		if g.MonthsNeeded != wantMonths {
			t.Errorf("price %.0f: MonthsNeeded = %d, want %d", c.price, g.MonthsNeeded, wantMonths)
		}
		sum := g.MonthlySave * float64(g.MonthsNeeded)
		if math.Abs(sum-c.price) > 1e-6 {
			t.Errorf("price %.0f: installments sum to %.6f, want price", c.price, sum)
		}
		// Re-derived installment never overshoots the ceiling-based one.
		if g.MonthlySave > c.budget*c.pct+1e-9 {
			t.Errorf("price %.0f: MonthlySave %.2f exceeds max %.2f", c.price, g.MonthlySave, c.budget*c.pct)
		}
	}
}

func TestCreateGoal_InsufficientBudget(t *testing.T) {
	_, err := CreateGoal("car", 50_000_000, model.PriorityLow, 0.5, 0)
	if !errors.Is(err, ErrInsufficientBudget) {
		t.Errorf("err = %v, want ErrInsufficientBudget", err)
	}
}

func TestRecordPayment_Progression(t *testing.T) {
	st := model.NewState()
	g, err := CreateGoal("laptop", 1_200_000, model.PriorityHigh, 0.5, 400_000)
	if err != nil {
		t.Fatal(err)
	}
	st.Goals = append(st.Goals, g)

	for i := 0; i < 3; i++ {
		if !RecordPayment(st, g.ID, 200_000) {
			t.Fatal("RecordPayment(known id) = false")
		}
	}

	got := st.Goals[0]
	if got.AmountSaved != 600_000 {
		t.Errorf("AmountSaved = %.0f, want 600000", got.AmountSaved)
	}
	if got.MonthsCompleted() != 3.0 {
		t.Errorf("MonthsCompleted = %.1f, want 3.0", got.MonthsCompleted())
	}
	if got.Completed() {
		t.Error("goal completed after 3 of 6 installments, want active")
	}
}

func TestRecordPayment_OverpaymentNotClamped(t *testing.T) {
	st := model.NewState()
	g, err := CreateGoal("phone", 500_000, model.PriorityMedium, 1.0, 250_000)
	if err != nil {
		t.Fatal(err)
	}
	st.Goals = append(st.Goals, g)

	RecordPayment(st, g.ID, 700_000)

	got := st.Goals[0]
	if got.AmountSaved != 700_000 {
		t.Errorf("AmountSaved = %.0f, want 700000 (no clamp to price)", got.AmountSaved)
	}
	if !got.Completed() {
		t.Error("goal not completed after paying past the price")
	}
	if got.MonthsCompleted() <= float64(got.MonthsNeeded) {
		t.Errorf("MonthsCompleted = %.2f, want > MonthsNeeded %d under overpayment",
			got.MonthsCompleted(), got.MonthsNeeded)
	}
}

func TestRecordPayment_UnknownGoalIsNoop(t *testing.T) {
	st := model.NewState()
	if RecordPayment(st, uuid.New(), 100_000) {
		t.Error("RecordPayment(unknown id) = true, want false")
	}
}

func TestRemoveGoal(t *testing.T) {
	st := model.NewState()
	g, _ := CreateGoal("bike", 600_000, model.PriorityLow, 0.5, 200_000)
	st.Goals = append(st.Goals, g)

	if !RemoveGoal(st, g.ID) {
		t.Error("RemoveGoal(known id) = false")
	}
	if len(st.Goals) != 0 {
		t.Errorf("goals after remove = %d, want 0", len(st.Goals))
	}
	if RemoveGoal(st, g.ID) {
		t.Error("RemoveGoal(removed id) = true, want false")
	}
}

func TestPartitionGoals(t *testing.T) {
	a, _ := CreateGoal("a", 1_000_000, model.PriorityLow, 1.0, 100_000)
	b, _ := CreateGoal("b", 300_000, model.PriorityLow, 1.0, 100_000)
	b.AmountSaved = 300_000

	active, completed := PartitionGoals([]model.PurchaseGoal{a, b})
	if len(active) != 1 || active[0].Name != "a" {
		t.Errorf("active = %v, want [a]", names(active))
	}
	if len(completed) != 1 || completed[0].Name != "b" {
		t.Errorf("completed = %v, want [b]", names(completed))
	}
}

func names(goals []model.PurchaseGoal) []string {
	out := make([]string, len(goals))
	for i, g := range goals {
		out[i] = g.Name
	}
	return out
}

func TestProjectForward(t *testing.T) {
	// Goal a: 300,000 at 100,000/month -> completes at month 3.
	// Goal b: 100,000 at 100,000/month with 50,000 saved -> completes at month 1.
	a, _ := CreateGoal("a", 300_000, model.PriorityHigh, 1.0, 100_000)
	b, _ := CreateGoal("b", 100_000, model.PriorityLow, 1.0, 100_000)
	b.AmountSaved = 50_000
	goals := []model.PurchaseGoal{a, b}

	months := ProjectForward(goals, 4)
	if len(months) != 4 {
		t.Fatalf("projection has %d months, want 4", len(months))
	}

	// Month 1: both contribute.
	if months[0].Contribution != 200_000 {
		t.Errorf("month 1 contribution = %.0f, want 200000", months[0].Contribution)
	}
	if months[0].Completed != 1 {
		t.Errorf("month 1 completed = %d, want 1 (goal b)", months[0].Completed)
	}
	// Month 2 onward: only a contributes.
	if months[1].Contribution != 100_000 {
		t.Errorf("month 2 contribution = %.0f, want 100000", months[1].Contribution)
	}
	if months[2].Completed != 2 {
		t.Errorf("month 3 completed = %d, want 2", months[2].Completed)
	}
	// Month 4: everything done, nothing contributed.
	if months[3].Contribution != 0 {
		t.Errorf("month 4 contribution = %.0f, want 0", months[3].Contribution)
	}
	if months[3].Cumulative != 350_000 {
		t.Errorf("cumulative = %.0f, want 350000", months[3].Cumulative)
	}

	// The simulation must not mutate the input goals.
	if goals[0].AmountSaved != 0 || goals[1].AmountSaved != 50_000 {
		t.Error("ProjectForward mutated its input goals")
	}
}

func TestCompareFinancing(t *testing.T) {
	// 24% annual over a capped term; the loan always costs interest,
	// saving never does.
	c := CompareFinancing(3_500_000, 350_000, 10, 400_000, 0.24, 36)

	if c.LoanMonths != 10 {
		t.Errorf("LoanMonths = %d, want 10", c.LoanMonths)
	}
	if c.LoanInterest <= 0 {
		t.Errorf("LoanInterest = %.0f, want positive", c.LoanInterest)
	}
	if math.Abs(c.LoanTotal-(c.LoanPayment*10)) > 1e-6 {
		t.Errorf("LoanTotal = %.2f, want payment*months", c.LoanTotal)
	}
	if c.InterestSaved != c.LoanInterest {
		t.Errorf("InterestSaved = %.2f, want the avoided interest %.2f", c.InterestSaved, c.LoanInterest)
	}
}

func TestCompareFinancing_TermCap(t *testing.T) {
	c := CompareFinancing(10_000_000, 200_000, 50, 300_000, 0.24, 36)
	if c.LoanMonths != 36 {
		t.Errorf("LoanMonths = %d, want capped at 36", c.LoanMonths)
	}
}

func TestCompareFinancing_ZeroRate(t *testing.T) {
	c := CompareFinancing(1_200_000, 100_000, 12, 150_000, 0, 36)
	if c.LoanPayment != 100_000 {
		t.Errorf("LoanPayment = %.0f, want 100000 at zero rate", c.LoanPayment)
	}
	if c.LoanInterest != 0 {
		t.Errorf("LoanInterest = %.0f, want 0 at zero rate", c.LoanInterest)
	}
}
