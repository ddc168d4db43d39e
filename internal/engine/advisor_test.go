package engine

import "testing"

func optionNames(opts []InvestmentOption) map[string]bool {
	set := make(map[string]bool, len(opts))
	for _, o := range opts {
		set[o.Name] = true
	}
	return set
}

func TestInvestmentOptions_Tiers(t *testing.T) {
	// Large amounts unlock every stacked tier but not the micro tier.
	high := optionNames(InvestmentOptions(60_000))
	for _, want := range []string{"Long-Term CD", "Mutual Funds", "Premium Savings Account"} {
		if !high[want] {
			t.Errorf("60k options missing %q", want)
		}
	}
	if high["Micro-Investing"] {
		t.Error("60k options include Micro-Investing, want only for sub-20k amounts")
	}

	// Mid amounts skip the high tier.
	mid := optionNames(InvestmentOptions(25_000))
	if mid["Long-Term CD"] {
		t.Error("25k options include the high tier")
	}
	if !mid["Mutual Funds"] {
		t.Error("25k options missing Mutual Funds")
	}

	// Small amounts get the basic and micro tiers.
	small := optionNames(InvestmentOptions(6_000))
	if !small["Premium Savings Account"] || !small["Micro-Investing"] {
		t.Errorf("6k options = %v, want basic + micro tiers", small)
	}

	// Tiny amounts still get the micro tier.
	tiny := optionNames(InvestmentOptions(500))
	if !tiny["Financial Education"] {
		t.Error("500 options missing the micro tier")
	}
}

func TestMonthsToMinimum(t *testing.T) {
	opt := InvestmentOption{Name: "x", MinAmount: 50_000}

	if got := MonthsToMinimum(opt, 60_000, 5_000); got != 0 {
		t.Errorf("already at minimum: got %d, want 0", got)
	}
	if got := MonthsToMinimum(opt, 30_000, 5_000); got != 4 {
		t.Errorf("20k short at 5k/month: got %d, want 4", got)
	}
	if got := MonthsToMinimum(opt, 30_000, 0); got != -1 {
		t.Errorf("zero monthly amount: got %d, want -1", got)
	}
}
