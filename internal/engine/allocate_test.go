package engine

import "testing"

func TestAllocate_Shares(t *testing.T) {
	b := Allocate(3_000_000)

	if b.Needs != 1_500_000 {
		t.Errorf("Needs = %.0f, want 1500000", b.Needs)
	}
	if b.Wants != 900_000 {
		t.Errorf("Wants = %.0f, want 900000", b.Wants)
	}
	if b.Savings != 600_000 {
		t.Errorf("Savings = %.0f, want 600000", b.Savings)
	}
}

func TestAllocate_SumsExactly(t *testing.T) {
	// Savings is derived by subtraction, so the three parts must sum to
	// income with exact float equality, not just within tolerance.
	incomes := []float64{0, 1, 100, 3_000_000, 1_234_567, 999_999_999, 0.1}

	for _, income := range incomes {
		b := Allocate(income)
		if sum := b.Needs + b.Wants + b.Savings; sum != income {
			t.Errorf("Allocate(%v): parts sum to %v, want exact income", income, sum)
		}
	}
}

func TestAllocate_ZeroIncome(t *testing.T) {
	b := Allocate(0)
	if b.Needs != 0 || b.Wants != 0 || b.Savings != 0 {
		t.Errorf("Allocate(0) = %+v, want all zero", b)
	}
}
