package metrics

import "github.com/shopspring/decimal"

// AssessmentInputs are the raw text fields of the financial assessment.
type AssessmentInputs struct {
	Income         string
	TotalExpenses  string
	DebtPayments   string
	PlannedSavings string
}

// Assessment holds the parsed inputs and derived figures.
type Assessment struct {
	Income         decimal.Decimal
	TotalExpenses  decimal.Decimal
	DebtPayments   decimal.Decimal
	PlannedSavings decimal.Decimal

	// Leftover is income after expenses, debt payments and savings.
	Leftover    decimal.Decimal
	SavingsRate int
	DTI         int
}

// Assess parses in and derives leftover, savings rate and debt-to-income.
func Assess(in AssessmentInputs) Assessment {
	a := Assessment{
		Income:         ParseAmount(in.Income),
		TotalExpenses:  ParseAmount(in.TotalExpenses),
		DebtPayments:   ParseAmount(in.DebtPayments),
		PlannedSavings: ParseAmount(in.PlannedSavings),
	}
	a.Leftover = BudgetRemaining(a.Income, a.TotalExpenses, a.DebtPayments, a.PlannedSavings)
	a.SavingsRate = SavingsRate(a.Income, a.PlannedSavings)
	a.DTI = DebtToIncome(a.Income, a.DebtPayments)
	return a
}

// Bands rates the savings rate and debt-to-income. Both are BandNone without
// a positive income.
func (a Assessment) Bands() (savings, dti Band) {
	if !a.Income.IsPositive() {
		return BandNone, BandNone
	}
	return SavingsBand(a.SavingsRate), DTIBand(a.DTI)
}
