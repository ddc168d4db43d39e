package engine

import "testing"

func TestAnalyzeRisk_WithinBudget(t *testing.T) {
	r := AnalyzeRisk(3_000_000, 1_400_000)

	if r.Level != RiskLow {
		t.Errorf("Level = %s, want low", r.Level)
	}
	if r.ExcessAmount != 0 {
		t.Errorf("ExcessAmount = %.0f, want 0", r.ExcessAmount)
	}
	if len(r.Recommendations) == 0 {
		t.Error("no recommendations for the on-track case")
	}
}

func TestAnalyzeRisk_SmallExcessIsMedium(t *testing.T) {
	// income 3,000,000, needs 1,650,000: excess 150,000 = 5% of income.
	// A small excess still lands in the Medium bucket, not Low.
	r := AnalyzeRisk(3_000_000, 1_650_000)

	if r.Level != RiskMedium {
		t.Errorf("Level = %s, want medium", r.Level)
	}
	if r.ExcessAmount != 150_000 {
		t.Errorf("ExcessAmount = %.0f, want 150000", r.ExcessAmount)
	}
	if r.ExcessPercent != 5 {
		t.Errorf("ExcessPercent = %.1f, want 5", r.ExcessPercent)
	}
}

func TestAnalyzeRisk_Boundaries(t *testing.T) {
	// With income 1,000,000 the needs budget is 500,000, so needs of
	// 600,000 and 700,000 put the excess at exactly 10% and 20%.
	tests := []struct {
		name       string
		needsTotal float64
		want       RiskLevel
	}{
		{"exactly at budget", 500_000, RiskLow},
		{"excess exactly 10pct", 600_000, RiskMedium},
		{"excess exactly 20pct", 700_000, RiskMedium},
		{"excess just over 20pct", 700_001, RiskHigh},
		{"excess far over", 900_000, RiskHigh},
	}

	for _, tt := range tests {
		r := AnalyzeRisk(1_000_000, tt.needsTotal)
		if r.Level != tt.want {
			t.Errorf("%s: Level = %s, want %s", tt.name, r.Level, tt.want)
		}
	}
}

func TestAnalyzeRisk_ExcessNeverNegative(t *testing.T) {
	r := AnalyzeRisk(2_000_000, 100_000)
	if r.ExcessAmount != 0 {
		t.Errorf("ExcessAmount = %.0f, want 0 when under budget", r.ExcessAmount)
	}
}
