package metrics

import "github.com/shopspring/decimal"

// BudgetRemaining is income minus every category. It may be negative.
func BudgetRemaining(income decimal.Decimal, categories ...decimal.Decimal) decimal.Decimal {
	return income.Sub(Sum(categories...))
}

// SavingsRate is savings as a percentage of income, or 0 without income.
func SavingsRate(income, savings decimal.Decimal) int {
	return Percent(savings, income)
}

// DebtToIncome is debt payments as a percentage of income, or 0 without
// income.
func DebtToIncome(income, debt decimal.Decimal) int {
	return Percent(debt, income)
}

// CostTotal parses and sums free-text amounts.
func CostTotal(amounts ...string) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(ParseAmount(a))
	}
	return total
}

// Band is a coarse health rating for display.
type Band int

const (
	BandHealthy Band = iota
	BandCaution
	BandHigh
	// BandNone marks a ratio that has no meaning yet, e.g. without income.
	BandNone
)

func (b Band) String() string {
	switch b {
	case BandHealthy:
		return "healthy"
	case BandCaution:
		return "caution"
	case BandHigh:
		return "high"
	default:
		return "n/a"
	}
}

// DTIBand classifies a debt-to-income percentage: up to 35 is healthy,
// 36-49 calls for caution, 50 and above is high.
func DTIBand(dti int) Band {
	switch {
	case dti <= 35:
		return BandHealthy
	case dti < 50:
		return BandCaution
	default:
		return BandHigh
	}
}

// SavingsBand rates a savings rate: 20 and above is healthy, 10-19 calls for
// caution, below 10 is high risk.
func SavingsBand(rate int) Band {
	switch {
	case rate >= 20:
		return BandHealthy
	case rate >= 10:
		return BandCaution
	default:
		return BandHigh
	}
}
