package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/theirongolddev/finpath/internal/config"
	"github.com/theirongolddev/finpath/internal/metrics"
	"github.com/theirongolddev/finpath/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers of the setup form.
type SetupValues struct {
	Name  string
	Theme string
	Goal  string
}

// SetupValuesFrom seeds the form with the current config.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Name:  cfg.Profile.Name,
		Theme: cfg.Appearance.Theme,
		Goal:  strconv.FormatFloat(cfg.Budget.MonthlySavingsGoal, 'f', -1, 64),
	}
}

// Apply copies the answers onto cfg.
func (v SetupValues) Apply(cfg *config.Config) {
	if name := strings.TrimSpace(v.Name); name != "" {
		cfg.Profile.Name = name
	}
	if theme.Valid(v.Theme) {
		cfg.Appearance.Theme = v.Theme
	}
	goal, _ := metrics.ParseAmount(v.Goal).Float64()
	cfg.Budget.MonthlySavingsGoal = goal
}

// NewSetupForm builds the first-run form writing into vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to finpath").
				Description("Plan budgets, milestones and goals for your next life transition.\nConfig is saved to "+config.Path()),
			huh.NewInput().
				Title("What should we call you?").
				Value(&vals.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewInput().
				Title("Monthly savings goal").
				Placeholder("100").
				Value(&vals.Goal),
		),
	).WithShowHelp(true)
}

func (a *App) saveSetupConfig() error {
	a.setupVals.Apply(&a.cfg)
	theme.SetActive(a.cfg.Appearance.Theme)
	a.roadmap = newRoadmapState(a.cfg.Budget.MonthlySavingsGoal)
	return config.Save(a.cfg)
}
