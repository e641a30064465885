package tui

import (
	"strings"

	"github.com/theirongolddev/finpath/internal/cli"
	"github.com/theirongolddev/finpath/internal/config"
	"github.com/theirongolddev/finpath/internal/metrics"
	"github.com/theirongolddev/finpath/internal/tui/components"
	"github.com/theirongolddev/finpath/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// budgetState tracks the Budget tab sliders.
type budgetState struct {
	b      *metrics.Budget
	cursor int
}

func newBudgetState(cfg config.BudgetConfig) budgetState {
	return budgetState{b: metrics.NewBudget(metrics.DefaultFields(), cfg.Values())}
}

func (a App) selectedField() metrics.Field {
	fields := a.budget.b.Fields()
	return fields[clampCursor(a.budget.cursor, len(fields))]
}

func (a App) updateBudget(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	n := len(a.budget.b.Fields())

	switch {
	case key.Matches(msg, keys.Down):
		a.budget.cursor = clampCursor(a.budget.cursor+1, n)
	case key.Matches(msg, keys.Up):
		a.budget.cursor = clampCursor(a.budget.cursor-1, n)
	case key.Matches(msg, keys.Right):
		a.budget.b.Nudge(a.selectedField().Key, true)
	case key.Matches(msg, keys.Left):
		a.budget.b.Nudge(a.selectedField().Key, false)
	case key.Matches(msg, keys.Edit):
		f := a.selectedField()
		return a, a.startInput(inputBudget, f.Label, a.budget.b.Get(f.Key).String()), true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a *App) commitBudgetAmount(val string) {
	f := a.selectedField()
	a.budget.b.Set(f.Key, metrics.ParseAmount(val))
}

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active
	b := a.budget.b

	remaining := b.Remaining()
	remainingColor := t.Green
	if remaining.IsNegative() {
		remainingColor = t.Red
	}
	rate := b.SavingsRate()

	var out strings.Builder
	out.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Monthly Income", Value: cli.FormatMoney(b.Income())},
		{Label: "Allocated", Value: cli.FormatMoney(b.Allocated())},
		{Label: "Remaining", Value: cli.FormatMoney(remaining), Color: remainingColor},
		{Label: "Savings Rate", Value: cli.FormatPercent(rate), Note: b.SavingsBand().String(), Color: components.ColorForBand(b.SavingsBand())},
	}, cw))
	out.WriteString("\n")

	// Sliders
	innerW := components.CardInnerWidth(cw)
	labelW := 14
	valueW := 9
	trackW := innerW - labelW - valueW - 4
	if trackW > 60 {
		trackW = 60
	}

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var sliders strings.Builder
	cursor := clampCursor(a.budget.cursor, len(b.Fields()))
	for i, f := range b.Fields() {
		if i > 0 {
			sliders.WriteString("\n")
		}
		if i == 1 {
			sliders.WriteString(dimStyle.Render("  Categories"))
			sliders.WriteString("\n")
		}
		v := b.Get(f.Key)
		value := cli.FormatMoney(v)
		if i == cursor {
			if view, ok := a.inputView(inputBudget); ok {
				sliders.WriteString(components.Slider(f.Label, "", f.Fraction(v), true, labelW, trackW) + view)
				continue
			}
		}
		sliders.WriteString(components.Slider(f.Label, value, f.Fraction(v), i == cursor, labelW, trackW))
	}
	sliders.WriteString("\n\n")
	sel := a.selectedField()
	sliders.WriteString(mutedStyle.Render("Range " + cli.FormatMoney(sel.Min) + " – " + cli.FormatMoney(sel.Max) +
		", step " + cli.FormatMoney(sel.Step)))
	sliders.WriteString("\n")
	sliders.WriteString(mutedStyle.Render("[j/k] select  [←/→] adjust  [Enter] type amount"))

	out.WriteString(components.FocusCard("Build Your Budget", sliders.String(), cw))
	out.WriteString("\n")

	// Allocation shares of income
	var shares strings.Builder
	barW := innerW - labelW - 12
	if barW > 50 {
		barW = 50
	}
	income := b.Income()
	for i, f := range b.Fields()[1:] {
		if i > 0 {
			shares.WriteString("\n")
		}
		pct := metrics.Percent(b.Get(f.Key), income)
		bar := cli.RenderHorizontalBar(float64(pct), 100, barW)
		shares.WriteString(mutedStyle.Render(padRight(f.Label, labelW)+" ") +
			lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Render(bar) +
			lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", barW-lipgloss.Width(bar)+1)) +
			lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Render(cli.FormatPercent(pct)))
	}
	if income.LessThanOrEqual(decimal.Zero) {
		shares.WriteString("\n\n")
		shares.WriteString(dimStyle.Render("Set an income to see each category's share."))
	}
	out.WriteString(components.ContentCard("Share of Income", shares.String(), cw))

	return out.String()
}

func padRight(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
