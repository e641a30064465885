package cmd

import (
	"fmt"

	"github.com/theirongolddev/finpath/internal/cli"
	"github.com/theirongolddev/finpath/internal/config"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Profile]")
	fmt.Printf("    Name:  %s\n", cfg.Profile.Name)
	if cfg.Profile.Email != "" {
		fmt.Printf("    Email: %s\n", cfg.Profile.Email)
	} else {
		fmt.Println("    Email: not set")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	money := func(f float64) string { return cli.FormatMoney(decimal.NewFromFloat(f)) }
	fmt.Println("  [Budget]")
	fmt.Printf("    Income:         %s\n", money(cfg.Budget.Income))
	fmt.Printf("    Rent:           %s\n", money(cfg.Budget.Rent))
	fmt.Printf("    Transport:      %s\n", money(cfg.Budget.Transport))
	fmt.Printf("    Groceries:      %s\n", money(cfg.Budget.Groceries))
	fmt.Printf("    Entertainment:  %s\n", money(cfg.Budget.Entertainment))
	fmt.Printf("    Savings:        %s\n", money(cfg.Budget.Savings))
	fmt.Printf("    Savings goal:   %s/month\n", money(cfg.Budget.MonthlySavingsGoal))
	fmt.Println()

	fmt.Println("  [Planner]")
	fmt.Printf("    Undo window: %s\n", cfg.Planner.UndoWindow())
	fmt.Println()

	fmt.Println("  [Log]")
	if cfg.Log.File != "" {
		fmt.Printf("    File:  %s\n", cfg.Log.File)
	} else {
		fmt.Println("    File:  disabled")
	}
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Println()

	fmt.Println("  Run `finpath setup` to reconfigure.")
	return nil
}
