package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finpath/internal/cli"
	"github.com/theirongolddev/finpath/internal/scenario"

	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios [scenario]",
	Short: "List roadmap scenarios, or show one scenario's milestones and cost categories",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScenarios,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		sc, ok := scenario.ByKey(args[0])
		if !ok {
			return fmt.Errorf("unknown scenario %q (one of: %s)", args[0], strings.Join(scenario.Keys(), ", "))
		}
		printScenario(sc)
		return nil
	}

	rows := make([][]string, 0, len(scenario.All))
	for _, sc := range scenario.All {
		rows = append(rows, []string{sc.Glyph + " " + sc.Name, sc.Key, fmt.Sprintf("%d", len(sc.Milestones))})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("YOUR FINANCIAL ROADMAP"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Scenario", "Key", "Milestones"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Println(cli.Dim("Run `finpath scenarios <key>` for details."))
	fmt.Println()
	return nil
}

func printScenario(sc scenario.Scenario) {
	fmt.Println()
	fmt.Println(cli.RenderTitle(strings.ToUpper(sc.Name)))
	fmt.Println()
	fmt.Println(cli.Dim(sc.Summary))
	fmt.Println()

	milestones := make([][]string, len(sc.Milestones))
	for i, m := range sc.Milestones {
		milestones[i] = []string{fmt.Sprintf("%d", i+1), m}
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Milestones",
		Headers: []string{"#", "Milestone"},
		Rows:    milestones,
	}))
	fmt.Println()

	costs := make([][]string, len(sc.CostLabels))
	for i, l := range sc.CostLabels {
		costs[i] = []string{l}
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Cost Categories",
		Headers: []string{"Category"},
		Rows:    costs,
	}))
	fmt.Println()
}
