package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finpath/internal/cli"
	"github.com/theirongolddev/finpath/internal/metrics"
	"github.com/theirongolddev/finpath/internal/scenario"

	"github.com/spf13/cobra"
)

var costsCmd = &cobra.Command{
	Use:   "costs <scenario> [label=amount ...]",
	Short: "Cost breakdown for a roadmap scenario",
	Long: "Labels are the scenario's cost categories (see `finpath scenarios <scenario>`).\n" +
		"Example: finpath costs moving-out \"Security Deposit=$1,200\" \"first month rent=950\"",
	Args: cobra.MinimumNArgs(1),
	RunE: runCosts,
}

func init() {
	rootCmd.AddCommand(costsCmd)
}

func runCosts(_ *cobra.Command, args []string) error {
	sc, ok := scenario.ByKey(args[0])
	if !ok {
		return fmt.Errorf("unknown scenario %q (one of: %s)", args[0], strings.Join(scenario.Keys(), ", "))
	}

	cb := metrics.NewCostBreakdown(sc.CostLabels)
	for _, arg := range args[1:] {
		label, amount, err := parseCostArg(arg)
		if err != nil {
			return err
		}
		if !setCostLine(cb, label, amount) {
			return fmt.Errorf("unknown cost category %q for %s (one of: %s)",
				label, sc.Name, strings.Join(sc.CostLabels, ", "))
		}
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("COST CALCULATOR  %s", sc.Name)))
	fmt.Println()
	fmt.Print(cli.RenderTable(costTable(cb)))
	fmt.Println()
	return nil
}

// parseCostArg splits "label=amount". The amount stays raw text.
func parseCostArg(arg string) (label, amount string, err error) {
	label, amount, ok := strings.Cut(arg, "=")
	label = strings.TrimSpace(label)
	if !ok || label == "" {
		return "", "", fmt.Errorf("invalid cost %q: want label=amount", arg)
	}
	return label, amount, nil
}

// setCostLine matches label case-insensitively against the fixed categories.
func setCostLine(cb *metrics.CostBreakdown, label, amount string) bool {
	for _, l := range cb.Lines {
		if strings.EqualFold(l.Label, label) {
			return cb.SetLabel(l.Label, amount)
		}
	}
	return false
}

func costTable(cb *metrics.CostBreakdown) cli.Table {
	total := cb.Total()
	rows := make([][]string, 0, len(cb.Lines)+2)
	for _, l := range cb.Lines {
		amt := l.Amount()
		share := ""
		if total.IsPositive() && amt.IsPositive() {
			share = cli.FormatPercent(metrics.Percent(amt, total))
		}
		rows = append(rows, []string{l.Label, cli.FormatMoney(amt), share})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", cli.FormatMoney(total), ""})

	return cli.Table{
		Title:   "By Category",
		Headers: []string{"Category", "Amount", "Share"},
		Rows:    rows,
	}
}
