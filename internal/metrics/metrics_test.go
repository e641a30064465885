package metrics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "want %s, got %s", want, got)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"$1,234.50abc", "1234.5"},
		{"abc", "0"},
		{"", "0"},
		{"800", "800"},
		{"  42 ", "42"},
		{".5", "0.5"},
		{"12.", "12"},
		{".", "0"},
		{"1.2.3", "1.2"},
		{"-300", "300"},
		{"€ 99,99", "9999"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assertDecimal(t, tt.want, ParseAmount(tt.in))
		})
	}
}

func TestBudgetRemaining(t *testing.T) {
	got := BudgetRemaining(d("4200"), d("800"), d("150"), d("800"), d("150"), d("800"))
	assertDecimal(t, "1500", got)

	assertDecimal(t, "-100", BudgetRemaining(d("100"), d("200")))
	assertDecimal(t, "4200", BudgetRemaining(d("4200")))
}

func TestSavingsRate(t *testing.T) {
	assert.Equal(t, 19, SavingsRate(d("4200"), d("800")))
	assert.Equal(t, 0, SavingsRate(d("0"), d("800")))
	assert.Equal(t, 0, SavingsRate(d("-5"), d("800")))
	assert.Equal(t, 50, SavingsRate(d("200"), d("100")))
}

func TestDebtToIncome(t *testing.T) {
	assert.Equal(t, 10, DebtToIncome(d("4200"), d("400")))
	assert.Equal(t, 0, DebtToIncome(decimal.Zero, d("400")))
}

func TestPercent_RoundsHalfUp(t *testing.T) {
	assert.Equal(t, 13, Percent(d("1"), d("8")))   // 12.5
	assert.Equal(t, 3, Percent(d("1"), d("40")))   // 2.5
	assert.Equal(t, 2, Percent(d("6"), d("300")))  // 2.0
	assert.Equal(t, 1, Percent(d("49"), d("4000"))) // 1.225
}

func TestPercent_SaturatesHugeAmounts(t *testing.T) {
	assert.Equal(t, MaxPercent, Percent(d("100000000000000000"), d("1")))
	assert.Equal(t, MaxPercent, Percent(d("99999999999999999999999"), d("1")))
	assert.Equal(t, -MaxPercent, Percent(d("-99999999999999999999999"), d("1")))
	assert.Equal(t, MaxPercent-1, Percent(d("21474836.46"), d("1")))
}

func TestAssess_HugeAmountsStayHigh(t *testing.T) {
	a := Assess(AssessmentInputs{
		Income:         "1",
		DebtPayments:   "100000000000000000",
		PlannedSavings: "99999999999999999999999",
	})

	assert.Equal(t, MaxPercent, a.DTI)
	assert.Equal(t, MaxPercent, a.SavingsRate)
	savings, dti := a.Bands()
	assert.Equal(t, BandHealthy, savings)
	assert.Equal(t, BandHigh, dti)
}

func TestCostTotal(t *testing.T) {
	assertDecimal(t, "300.5", CostTotal("100", "200.50", "bad"))
	assertDecimal(t, "0", CostTotal())
}

func TestAssess(t *testing.T) {
	a := Assess(AssessmentInputs{
		Income:         "$4,200",
		TotalExpenses:  "2,100",
		DebtPayments:   "400",
		PlannedSavings: "800 per month",
	})

	assertDecimal(t, "4200", a.Income)
	assertDecimal(t, "900", a.Leftover)
	assert.Equal(t, 19, a.SavingsRate)
	assert.Equal(t, 10, a.DTI)
}

func TestAssess_NoIncome(t *testing.T) {
	a := Assess(AssessmentInputs{Income: "none", DebtPayments: "250", PlannedSavings: "50"})

	assertDecimal(t, "-300", a.Leftover)
	assert.Equal(t, 0, a.SavingsRate)
	assert.Equal(t, 0, a.DTI)
}

func TestBands(t *testing.T) {
	assert.Equal(t, BandHealthy, DTIBand(10))
	assert.Equal(t, BandHealthy, DTIBand(35))
	assert.Equal(t, BandCaution, DTIBand(36))
	assert.Equal(t, BandHigh, DTIBand(50))
	assert.Equal(t, "caution", BandCaution.String())

	assert.Equal(t, BandHealthy, SavingsBand(20))
	assert.Equal(t, BandCaution, SavingsBand(19))
	assert.Equal(t, BandHigh, SavingsBand(9))
	assert.Equal(t, "n/a", BandNone.String())
}

func TestBands_WithoutIncome(t *testing.T) {
	savings, dti := Assess(AssessmentInputs{DebtPayments: "250"}).Bands()
	assert.Equal(t, BandNone, savings)
	assert.Equal(t, BandNone, dti)

	b := NewBudget(DefaultFields(), map[FieldKey]decimal.Decimal{FieldSavings: d("100")})
	assert.Equal(t, BandNone, b.SavingsBand())
	b.Set(FieldIncome, d("1000"))
	assert.Equal(t, BandCaution, b.SavingsBand())
}

func TestBudget(t *testing.T) {
	b := NewBudget(DefaultFields(), map[FieldKey]decimal.Decimal{
		FieldIncome:        d("4200"),
		FieldRent:          d("800"),
		FieldTransport:     d("150"),
		FieldGroceries:     d("800"),
		FieldEntertainment: d("150"),
		FieldSavings:       d("800"),
	})

	assertDecimal(t, "2700", b.Allocated())
	assertDecimal(t, "1500", b.Remaining())
	assert.Equal(t, 19, b.SavingsRate())
}

func TestBudget_ClampsToField(t *testing.T) {
	b := NewBudget(DefaultFields(), map[FieldKey]decimal.Decimal{
		FieldTransport: d("5000"),
		FieldRent:      d("-10"),
	})

	assertDecimal(t, "1000", b.Get(FieldTransport))
	assertDecimal(t, "0", b.Get(FieldRent))
	assertDecimal(t, "0", b.Get(FieldIncome))

	assertDecimal(t, "20000", b.Set(FieldIncome, d("99999")))
	assertDecimal(t, "0", b.Set("unknown", d("5")))
}

func TestBudget_Nudge(t *testing.T) {
	b := NewBudget(DefaultFields(), map[FieldKey]decimal.Decimal{FieldRent: d("4980")})

	assertDecimal(t, "5000", b.Nudge(FieldRent, true))
	assertDecimal(t, "5000", b.Nudge(FieldRent, true))
	assertDecimal(t, "4950", b.Nudge(FieldRent, false))

	assertDecimal(t, "0", b.Nudge(FieldGroceries, false))
}

func TestField_Fraction(t *testing.T) {
	f := Field{Min: d("0"), Max: d("1000"), Step: d("10")}

	assert.InDelta(t, 0.25, f.Fraction(d("250")), 1e-9)
	assert.InDelta(t, 1.0, f.Fraction(d("5000")), 1e-9)
	assert.Zero(t, Field{}.Fraction(d("5")))
}

func TestCostBreakdown(t *testing.T) {
	cb := NewCostBreakdown([]string{"Tuition", "Books", "Housing"})
	cb.Set(0, "$5,000")
	cb.Set(2, "1200.75")
	cb.Set(9, "999")
	assert.True(t, cb.SetLabel("Books", "ab300c"))
	assert.False(t, cb.SetLabel("Parking", "50"))

	assertDecimal(t, "6500.75", cb.Total())
	assertDecimal(t, "300", cb.Lines[1].Amount())
}
