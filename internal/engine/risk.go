package engine

// RiskLevel is a coarse classification of needs overspend.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskReport is the result of a spending risk analysis.
type RiskReport struct {
	Level           RiskLevel
	ExcessAmount    float64
	ExcessPercent   float64 // excess as a percentage of income
	Recommendations []string
}

// AnalyzeRisk classifies how far actual essential spending exceeds the
// needs budget. Any excess over 20% of income is High; any other positive
// excess is Medium. A small excess (0-10% of income) deliberately lands in
// the Medium bucket rather than a separate Low tier; Low means no excess
// at all.
func AnalyzeRisk(income, needsTotal float64) RiskReport {
	budgetNeeds := income * NeedsShare

	if needsTotal <= budgetNeeds {
		return RiskReport{
			Level: RiskLow,
			Recommendations: []string{
				"Essential spending is under control",
				"Consider optimizing further to increase savings",
				"Keep up the financial discipline",
			},
		}
	}

	excess := needsTotal - budgetNeeds
	excessPct := 0.0
	if income > 0 {
		excessPct = excess / income * 100
	}

	r := RiskReport{
		ExcessAmount:  excess,
		ExcessPercent: excessPct,
	}
	if excessPct > 20 {
		r.Level = RiskHigh
		r.Recommendations = []string{
			"Urgent: cut essential spending or increase income",
			"Review every expense and eliminate non-essentials",
			"Consider additional income sources",
		}
	} else {
		r.Level = RiskMedium
		r.Recommendations = []string{
			"Warning: essential spending exceeds its budget",
			"Identify expenses that can be reduced",
			"Plan for an income increase",
		}
	}
	return r
}
