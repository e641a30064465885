package cmd

import (
	"fmt"

	"github.com/theirongolddev/finpath/internal/cli"
	"github.com/theirongolddev/finpath/internal/metrics"

	"github.com/spf13/cobra"
)

var assessInputs metrics.AssessmentInputs

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Financial assessment: leftover, savings rate and debt-to-income",
	Long: "Amounts are free text: \"$1,200\" and \"1200 per month\" both read as 1200.\n" +
		"Text that is not a number counts as zero.",
	RunE: runAssess,
}

func init() {
	assessCmd.Flags().StringVar(&assessInputs.Income, "income", "", "Monthly income")
	assessCmd.Flags().StringVar(&assessInputs.TotalExpenses, "expenses", "", "Total monthly expenses")
	assessCmd.Flags().StringVar(&assessInputs.DebtPayments, "debt", "", "Monthly debt payments")
	assessCmd.Flags().StringVar(&assessInputs.PlannedSavings, "savings", "", "Planned monthly savings")
	rootCmd.AddCommand(assessCmd)
}

func runAssess(_ *cobra.Command, _ []string) error {
	a := metrics.Assess(assessInputs)

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINANCIAL ASSESSMENT"))
	fmt.Println()

	const w = 16
	fmt.Println(cli.RenderKV("Income", cli.FormatMoney(a.Income), w))
	fmt.Println(cli.RenderKV("Expenses", cli.FormatMoney(a.TotalExpenses), w))
	fmt.Println(cli.RenderKV("Debt payments", cli.FormatMoney(a.DebtPayments), w))
	fmt.Println(cli.RenderKV("Planned savings", cli.FormatMoney(a.PlannedSavings), w))
	fmt.Println()

	if a.Leftover.IsNegative() {
		fmt.Println(cli.Warn(fmt.Sprintf("Leftover: %s (spending exceeds income)", cli.FormatMoney(a.Leftover))))
	} else {
		fmt.Println(cli.Good(fmt.Sprintf("Leftover: %s", cli.FormatMoney(a.Leftover))))
	}

	savingsBand, dtiBand := a.Bands()
	fmt.Println(bandLine("Savings rate", a.SavingsRate, savingsBand, w))
	fmt.Println(bandLine("Debt-to-income", a.DTI, dtiBand, w))

	if a.Income.IsZero() {
		fmt.Println()
		fmt.Println(cli.Dim("Enter an income to compute ratios."))
	}
	fmt.Println()
	return nil
}

// bandLine renders a rated percentage. A ratio without a band prints "n/a".
func bandLine(label string, pct int, band metrics.Band, w int) string {
	text := fmt.Sprintf("%s  (%s)", cli.FormatPercent(pct), band)
	if band == metrics.BandNone {
		text = band.String()
	}
	if band == metrics.BandHigh {
		return cli.Warn(fmt.Sprintf("%-*s  %s", w, label, text))
	}
	return cli.RenderKV(label, text, w)
}
