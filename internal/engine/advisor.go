package engine

import "math"

// InvestmentOption describes one suggested vehicle for the investment
// share of the savings budget.
type InvestmentOption struct {
	Name           string
	Risk           string
	ExpectedReturn string
	Description    string
	MinAmount      float64
	Liquidity      string
}

// Annual amount tiers that unlock investment options.
const (
	tierHigh  = 50_000
	tierMid   = 20_000
	tierBasic = 5_000
)

// InvestmentOptions suggests vehicles for an annual investment amount.
// Tiers stack: a larger amount unlocks every option of the tiers below
// it, and small amounts get a micro-investing tier instead.
func InvestmentOptions(annualAmount float64) []InvestmentOption {
	var options []InvestmentOption

	if annualAmount >= tierHigh {
		options = append(options,
			InvestmentOption{
				Name:           "Long-Term CD",
				Risk:           "Low",
				ExpectedReturn: "8-12%",
				Description:    "Term deposit certificates with excellent yield",
				MinAmount:      50_000,
				Liquidity:      "Low",
			},
			InvestmentOption{
				Name:           "Diversified Investment Funds",
				Risk:           "Medium",
				ExpectedReturn: "12-18%",
				Description:    "Professionally managed diversified portfolio",
				MinAmount:      50_000,
				Liquidity:      "Medium",
			},
			InvestmentOption{
				Name:           "Blue Chip Stocks",
				Risk:           "Medium-High",
				ExpectedReturn: "15-25%",
				Description:    "Shares of established dividend-paying companies",
				MinAmount:      100_000,
				Liquidity:      "High",
			},
		)
	}

	if annualAmount >= tierMid {
		options = append(options,
			InvestmentOption{
				Name:           "Mutual Funds",
				Risk:           "Medium",
				ExpectedReturn: "10-15%",
				Description:    "Collective investment with automatic diversification",
				MinAmount:      20_000,
				Liquidity:      "Medium",
			},
			InvestmentOption{
				Name:           "Mid-Term CD",
				Risk:           "Low",
				ExpectedReturn: "6-10%",
				Description:    "Safe investment with a fixed yield",
				MinAmount:      20_000,
				Liquidity:      "Low",
			},
		)
	}

	if annualAmount >= tierBasic {
		options = append(options,
			InvestmentOption{
				Name:           "Premium Savings Account",
				Risk:           "Very Low",
				ExpectedReturn: "4-6%",
				Description:    "High liquidity with better yield than regular accounts",
				MinAmount:      5_000,
				Liquidity:      "High",
			},
			InvestmentOption{
				Name:           "Fixed Income Funds",
				Risk:           "Low",
				ExpectedReturn: "6-9%",
				Description:    "Conservative investment in bonds and debt securities",
				MinAmount:      10_000,
				Liquidity:      "Medium",
			},
		)
	}

	if annualAmount < tierMid {
		options = append(options,
			InvestmentOption{
				Name:           "Micro-Investing",
				Risk:           "Medium",
				ExpectedReturn: "8-15%",
				Description:    "Digital platforms for small investors",
				MinAmount:      1_000,
				Liquidity:      "High",
			},
			InvestmentOption{
				Name:           "Financial Education",
				Risk:           "None",
				ExpectedReturn: "Invaluable",
				Description:    "Investing in knowledge for better future decisions",
				MinAmount:      0,
				Liquidity:      "Immediate",
			},
		)
	}

	return options
}

// MonthsToMinimum returns how many extra months of saving are needed to
// reach an option's minimum from the current annual amount. Zero means
// the minimum is already met; -1 means it is unreachable at this rate.
func MonthsToMinimum(opt InvestmentOption, annualAmount, monthlyAmount float64) int {
	if annualAmount >= opt.MinAmount {
		return 0
	}
	if monthlyAmount <= 0 {
		return -1
	}
	return int(math.Ceil((opt.MinAmount - annualAmount) / monthlyAmount))
}
