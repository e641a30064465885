package cmd

import (
	"testing"

	"github.com/theirongolddev/finpath/internal/config"
	"github.com/theirongolddev/finpath/internal/metrics"
	"github.com/theirongolddev/finpath/internal/scenario"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCostArg(t *testing.T) {
	label, amount, err := parseCostArg(" Security Deposit =$1,200")
	require.NoError(t, err)
	assert.Equal(t, "Security Deposit", label)
	assert.Equal(t, "$1,200", amount)

	label, amount, err = parseCostArg("Furniture=")
	require.NoError(t, err)
	assert.Equal(t, "Furniture", label)
	assert.Empty(t, amount)

	for _, bad := range []string{"Furniture", "=100", "  =100"} {
		_, _, err := parseCostArg(bad)
		assert.Error(t, err, bad)
	}
}

func TestSetCostLineMatchesLabelCaseInsensitively(t *testing.T) {
	sc, ok := scenario.ByKey("moving-out")
	require.True(t, ok)

	cb := metrics.NewCostBreakdown(sc.CostLabels)
	assert.True(t, setCostLine(cb, "security deposit", "1200"))
	assert.True(t, setCostLine(cb, "Furniture", "300.50"))
	assert.True(t, setCostLine(cb, "Moving Truck", "abc"))
	assert.False(t, setCostLine(cb, "Parking", "50"))

	assert.True(t, cb.Total().Equal(decimal.RequireFromString("1500.5")))
}

func TestCostTableTotalsRow(t *testing.T) {
	cb := metrics.NewCostBreakdown([]string{"A", "B"})
	cb.Set(0, "100")
	cb.Set(1, "300")

	tbl := costTable(cb)
	require.Len(t, tbl.Rows, 4)
	assert.Equal(t, []string{"A", "$100", "25%"}, tbl.Rows[0])
	assert.Equal(t, []string{"---"}, tbl.Rows[2])
	assert.Equal(t, "TOTAL", tbl.Rows[3][0])
	assert.Equal(t, "$400", tbl.Rows[3][1])
}

func TestBudgetFromFlagsOverridesConfigAndClamps(t *testing.T) {
	require.NoError(t, budgetCmd.ParseFlags([]string{"--rent=850", "--transport=5000"}))

	b := budgetFromFlags(budgetCmd, config.DefaultConfig().Budget.Values())

	assert.True(t, b.Get(metrics.FieldRent).Equal(decimal.NewFromInt(850)))
	assert.True(t, b.Get(metrics.FieldTransport).Equal(decimal.NewFromInt(1000)), "clamped to max")
	assert.True(t, b.Income().Equal(decimal.NewFromInt(4200)), "unset flag keeps config value")
	assert.Equal(t, 19, b.SavingsRate())
}

func TestBudgetTableSkipsIncomeRow(t *testing.T) {
	b := metrics.NewBudget(metrics.DefaultFields(), config.DefaultConfig().Budget.Values())

	tbl := budgetTable(b)
	// five categories, separator, allocated, income
	require.Len(t, tbl.Rows, 8)
	assert.Equal(t, "Rent", tbl.Rows[0][0])
	assert.Equal(t, "Allocated", tbl.Rows[6][0])
	assert.Equal(t, "$2,700", tbl.Rows[6][1])
}

func TestBandLineWithoutBand(t *testing.T) {
	line := bandLine("Savings rate", 0, metrics.BandNone, 14)
	assert.Contains(t, line, "n/a")
	assert.NotContains(t, line, "high")
	assert.NotContains(t, line, "0%")

	assert.Contains(t, bandLine("Debt-to-income", 60, metrics.BandHigh, 14), "60%  (high)")
}

func TestAllocationBar(t *testing.T) {
	b := metrics.NewBudget(metrics.DefaultFields(), config.DefaultConfig().Budget.Values())
	assert.Contains(t, allocationBar(b), "2,700/4,200")

	b.Set(metrics.FieldIncome, decimal.Zero)
	assert.Empty(t, allocationBar(b))
}
