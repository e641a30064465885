package cmd

import (
	"fmt"

	"github.com/theirongolddev/finpath/internal/cli"
	"github.com/theirongolddev/finpath/internal/config"
	"github.com/theirongolddev/finpath/internal/metrics"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Monthly budget allocations and remaining balance",
	Long: "Prints each category's share of income, the remaining balance and the savings rate.\n" +
		"Unset flags fall back to the [budget] section of the config file.",
	RunE: runBudget,
}

var budgetFlags = map[metrics.FieldKey]*float64{}

func init() {
	for _, f := range metrics.DefaultFields() {
		v := new(float64)
		budgetFlags[f.Key] = v
		budgetCmd.Flags().Float64Var(v, string(f.Key), 0, fmt.Sprintf("%s (0-%s, step %s)", f.Label, f.Max, f.Step))
	}
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	b := budgetFromFlags(cmd, cfg.Budget.Values())

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY BUDGET"))
	fmt.Println()
	fmt.Print(cli.RenderTable(budgetTable(b)))
	fmt.Println()

	if bar := allocationBar(b); bar != "" {
		fmt.Println(cli.RenderKV("Allocated", bar, 14))
	}

	remaining := b.Remaining()
	line := cli.RenderKV("Remaining", cli.FormatMoney(remaining), 14)
	if remaining.IsNegative() {
		line = cli.Warn(fmt.Sprintf("Remaining       %s  (over budget)", cli.FormatMoney(remaining)))
	}
	fmt.Println(line)

	rate := b.SavingsRate()
	fmt.Println(bandLine("Savings rate", rate, b.SavingsBand(), 14))
	fmt.Println()
	return nil
}

// budgetFromFlags starts from the config values and applies every flag the
// user set. Values outside a field's range are clamped.
func budgetFromFlags(cmd *cobra.Command, initial map[metrics.FieldKey]decimal.Decimal) *metrics.Budget {
	b := metrics.NewBudget(metrics.DefaultFields(), initial)
	for k, v := range budgetFlags {
		if cmd.Flags().Changed(string(k)) {
			b.Set(k, decimal.NewFromFloat(*v))
		}
	}
	return b
}

// allocationBar shows allocated dollars out of income. It is empty without
// income.
func allocationBar(b *metrics.Budget) string {
	return cli.RenderProgressBar(int(b.Allocated().IntPart()), int(b.Income().IntPart()), 20)
}

func budgetTable(b *metrics.Budget) cli.Table {
	income := b.Income()
	rows := make([][]string, 0, len(b.Fields())+3)

	for _, f := range b.Fields() {
		if f.Key == metrics.FieldIncome {
			continue
		}
		v := b.Get(f.Key)
		f64, _ := v.Float64()
		inc, _ := income.Float64()
		rows = append(rows, []string{
			f.Label,
			cli.FormatMoney(v),
			cli.FormatPercent(metrics.Percent(v, income)),
			cli.RenderHorizontalBar(f64, inc, 20),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Allocated", cli.FormatMoney(b.Allocated()), cli.FormatPercent(metrics.Percent(b.Allocated(), income)), ""})
	rows = append(rows, []string{"Income", cli.FormatMoney(income), "", ""})

	return cli.Table{
		Title:   "By Category",
		Headers: []string{"Category", "Amount", "Share", ""},
		Rows:    rows,
	}
}
