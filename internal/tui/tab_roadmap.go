package tui

import (
	"strings"

	"github.com/theirongolddev/finpath/internal/cli"
	"github.com/theirongolddev/finpath/internal/config"
	"github.com/theirongolddev/finpath/internal/metrics"
	"github.com/theirongolddev/finpath/internal/scenario"
	"github.com/theirongolddev/finpath/internal/tui/components"
	"github.com/theirongolddev/finpath/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// roadmapState tracks the scenario grid and the monthly savings goal.
type roadmapState struct {
	cursor int
	goal   decimal.Decimal
}

func newRoadmapState(goal float64) roadmapState {
	return roadmapState{goal: decimal.NewFromFloat(goal)}
}

func (a App) updateRoadmap(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	n := len(scenario.All)

	switch {
	case key.Matches(msg, keys.Down):
		a.roadmap.cursor = clampCursor(a.roadmap.cursor+1, n)
	case key.Matches(msg, keys.Up):
		a.roadmap.cursor = clampCursor(a.roadmap.cursor-1, n)
	case key.Matches(msg, keys.Edit):
		a.openScenario(scenario.All[clampCursor(a.roadmap.cursor, n)])
	case msg.String() == "g":
		return a, a.startInput(inputSavingsGoal, "100", a.roadmap.goal.String()), true
	default:
		return a, nil, false
	}
	return a, nil, true
}

// commitSavingsGoal stores the goal and persists it to the config file.
func (a *App) commitSavingsGoal(val string) {
	a.roadmap.goal = metrics.ParseAmount(val)

	goal, _ := a.roadmap.goal.Float64()
	a.cfg.Budget.MonthlySavingsGoal = goal
	if err := config.Save(a.cfg); err != nil {
		a.log.Error().Err(err).Msg("saving savings goal")
		a.flash("Save failed: "+err.Error(), components.StatusError)
		return
	}
	a.flash("Monthly goal set to "+cli.FormatMoney(a.roadmap.goal), components.StatusSuccess)
}

func (a App) renderRoadmapTab(cw int) string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	glyphStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)

	var out strings.Builder
	intro := titleStyle.Render("Your Financial Wellness Roadmap") + "\n" +
		mutedStyle.Render("Pick a life transition to get a checklist, an assessment, a cost calculator and goals.")
	out.WriteString(components.ContentCard("", intro, cw))
	out.WriteString("\n")

	// 2x2 scenario grid
	widths := components.LayoutRow(cw, 2)
	cursor := clampCursor(a.roadmap.cursor, len(scenario.All))
	for row := 0; row*2 < len(scenario.All); row++ {
		var cards []string
		for col := 0; col < 2; col++ {
			i := row*2 + col
			if i >= len(scenario.All) {
				break
			}
			sc := scenario.All[i]
			body := glyphStyle.Render(sc.Glyph+" ") + titleStyle.Render(sc.Name) + "\n" +
				mutedStyle.Render(truncStr(sc.Summary, components.CardInnerWidth(widths[col]))) + "\n" +
				mutedStyle.Render(cli.FormatNumber(int64(len(sc.Milestones)))+" milestones · "+
					cli.FormatNumber(int64(len(sc.CostLabels)))+" cost categories")
			if i == cursor {
				cards = append(cards, components.FocusCard("", body, widths[col]))
			} else {
				cards = append(cards, components.ContentCard("", body, widths[col]))
			}
		}
		out.WriteString(components.CardRow(cards))
		out.WriteString("\n")
	}

	// Savings goal box
	var goal strings.Builder
	if view, ok := a.inputView(inputSavingsGoal); ok {
		goal.WriteString(mutedStyle.Render("Amount: ") + view)
	} else {
		goal.WriteString(lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface).Bold(true).
			Render(cli.FormatMoney(a.roadmap.goal)))
		goal.WriteString(mutedStyle.Render(" per month"))
	}
	goal.WriteString("\n")
	goal.WriteString(mutedStyle.Render("[j/k] select  [Enter] open scenario  [g] edit goal"))
	out.WriteString(components.ContentCard("Monthly Savings Goal", goal.String(), cw))

	return out.String()
}
