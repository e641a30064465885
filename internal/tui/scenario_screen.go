package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finpath/internal/cli"
	"github.com/theirongolddev/finpath/internal/metrics"
	"github.com/theirongolddev/finpath/internal/scenario"
	"github.com/theirongolddev/finpath/internal/tasklist"
	"github.com/theirongolddev/finpath/internal/tui/components"
	"github.com/theirongolddev/finpath/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	sectionChecklist = iota
	sectionAssessment
	sectionCosts
	sectionGoals
	sectionCount // sentinel
)

var sectionNames = [sectionCount]string{"Checklist", "Assessment", "Costs", "Goals"}

var assessmentLabels = []string{"Monthly Income", "Total Expenses", "Debt Payments", "Planned Savings"}

// scenarioScreen is the sub-screen opened from a Roadmap scenario. Its
// stores live until the screen is closed.
type scenarioScreen struct {
	sc      scenario.Scenario
	section int
	cursor  [sectionCount]int

	checklist *tasklist.Store
	goals     *tasklist.Store
	assess    [4]string
	costs     *metrics.CostBreakdown
}

func (s *scenarioScreen) assessmentInputs() metrics.AssessmentInputs {
	return metrics.AssessmentInputs{
		Income:         s.assess[0],
		TotalExpenses:  s.assess[1],
		DebtPayments:   s.assess[2],
		PlannedSavings: s.assess[3],
	}
}

func (a *App) openScenario(sc scenario.Scenario) {
	checklist := a.storeOptions(sc.Key+"/checklist", false)
	checklist.Seed = sc.Milestones

	a.scene = &scenarioScreen{
		sc:        sc,
		checklist: tasklist.New(checklist),
		goals:     tasklist.New(a.storeOptions(sc.Key+"/goals", true)),
		costs:     metrics.NewCostBreakdown(sc.CostLabels),
	}
	a.log.Debug().Str("scenario", sc.Key).Msg("scenario opened")
}

func (a *App) closeScenario() {
	a.scene.checklist.Close()
	a.scene.goals.Close()
	a.log.Debug().Str("scenario", a.scene.sc.Key).Msg("scenario closed")
	a.scene = nil
}

func (a App) updateScenario(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	s := a.scene

	switch {
	case key.Matches(msg, keys.Back):
		a.closeScenario()
		return a, nil, true
	case key.Matches(msg, keys.NextTab):
		s.section = (s.section + 1) % sectionCount
		return a, nil, true
	case key.Matches(msg, keys.PrevTab):
		s.section = (s.section - 1 + sectionCount) % sectionCount
		return a, nil, true
	case key.Matches(msg, keys.Section):
		s.section = int(msg.Runes[0] - '1')
		return a, nil, true
	}

	switch s.section {
	case sectionChecklist:
		return a.updateScenarioList(msg, s.checklist, inputChecklist)
	case sectionGoals:
		return a.updateScenarioList(msg, s.goals, inputGoal)
	case sectionAssessment:
		return a.updateScenarioFields(msg, len(s.assess), inputAssessment, func(i int) (string, string) {
			return assessmentLabels[i], s.assess[i]
		})
	case sectionCosts:
		return a.updateScenarioFields(msg, len(s.costs.Lines), inputCost, func(i int) (string, string) {
			return s.costs.Lines[i].Label, s.costs.Lines[i].Raw
		})
	}
	return a, nil, false
}

func (a App) updateScenarioList(msg tea.KeyMsg, store *tasklist.Store, target inputTarget) (tea.Model, tea.Cmd, bool) {
	s := a.scene
	tasks := store.Tasks()
	cur := &s.cursor[s.section]

	switch {
	case key.Matches(msg, keys.Down):
		*cur = clampCursor(*cur+1, len(tasks))
	case key.Matches(msg, keys.Up):
		*cur = clampCursor(*cur-1, len(tasks))
	case key.Matches(msg, keys.Toggle):
		if len(tasks) > 0 {
			store.Toggle(tasks[clampCursor(*cur, len(tasks))].ID)
		}
	case key.Matches(msg, keys.Delete):
		if len(tasks) > 0 {
			store.Delete(tasks[clampCursor(*cur, len(tasks))].ID)
			*cur = clampCursor(*cur, len(tasks)-1)
		}
	case key.Matches(msg, keys.Undo):
		a.undoTask(store)
		*cur = clampCursor(*cur, store.Len())
	case key.Matches(msg, keys.Add):
		placeholder := "New milestone"
		if target == inputGoal {
			placeholder = "e.g. Save $500 for textbooks"
		}
		return a, a.startInput(target, placeholder, ""), true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) updateScenarioFields(msg tea.KeyMsg, n int, target inputTarget, field func(int) (string, string)) (tea.Model, tea.Cmd, bool) {
	cur := &a.scene.cursor[a.scene.section]

	switch {
	case key.Matches(msg, keys.Down):
		*cur = clampCursor(*cur+1, n)
	case key.Matches(msg, keys.Up):
		*cur = clampCursor(*cur-1, n)
	case key.Matches(msg, keys.Edit):
		label, raw := field(clampCursor(*cur, n))
		return a, a.startInput(target, label, raw), true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a *App) commitAssessment(val string) {
	if a.scene == nil {
		return
	}
	i := clampCursor(a.scene.cursor[sectionAssessment], len(a.scene.assess))
	a.scene.assess[i] = val
}

func (a *App) commitCost(val string) {
	if a.scene == nil {
		return
	}
	a.scene.costs.Set(clampCursor(a.scene.cursor[sectionCosts], len(a.scene.costs.Lines)), val)
}

// ─── Rendering ──────────────────────────────────────────────────

func (a App) renderScenario(cw int) string {
	t := theme.Active
	s := a.scene

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	glyphStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	activeStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.AccentDim).Bold(true).Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 1)

	var sections []string
	for i, name := range sectionNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == s.section {
			sections = append(sections, activeStyle.Render(label))
		} else {
			sections = append(sections, inactiveStyle.Render(label))
		}
	}

	header := glyphStyle.Render(s.sc.Glyph+" ") + titleStyle.Render(s.sc.Name) + "\n" +
		mutedStyle.Render(s.sc.Summary) + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, sections...)

	var out strings.Builder
	out.WriteString(components.ContentCard("", header, cw))
	out.WriteString("\n")

	switch s.section {
	case sectionChecklist:
		body := a.renderTaskList(s.checklist, s.cursor[sectionChecklist], inputChecklist, cw)
		body += "\n\n" + mutedStyle.Render("[Space] check  [a] add  [d] delete  [u] undo")
		out.WriteString(components.FocusCard("Milestone Checklist", body, cw))
	case sectionAssessment:
		out.WriteString(a.renderAssessment(cw))
	case sectionCosts:
		out.WriteString(a.renderCosts(cw))
	case sectionGoals:
		body := a.renderTaskList(s.goals, s.cursor[sectionGoals], inputGoal, cw)
		body += "\n\n" + mutedStyle.Render("[Space] complete  [a] add goal  [d] delete  [u] undo")
		out.WriteString(components.FocusCard("Goal Tracker", body, cw))
	}

	return out.String()
}

// renderFieldList renders labeled text fields with a cursor, swapping in
// the text input for the row being edited.
func (a App) renderFieldList(labels, values []string, cursor int, target inputTarget, cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)

	labelW := 0
	for _, l := range labels {
		if w := lipgloss.Width(l) + 2; w > labelW {
			labelW = w
		}
	}

	cursor = clampCursor(cursor, len(labels))
	var b strings.Builder
	for i, label := range labels {
		if i > 0 {
			b.WriteString("\n")
		}
		if i == cursor {
			if view, ok := a.inputView(target); ok {
				b.WriteString(markerStyle.Render("▸ "))
				b.WriteString(accentStyle.Render(fmt.Sprintf("%-*s", labelW, label)))
				b.WriteString(view)
				continue
			}
		}

		value := values[i]
		shown := valueStyle.Render(value)
		if value == "" {
			shown = emptyStyle.Render("$0")
		}

		if i == cursor {
			line := markerStyle.Render("▸ ") +
				selectedLabelStyle.Render(fmt.Sprintf("%-*s", labelW, label+":")) +
				selectedStyle.Render(value)
			if pad := innerW - lipgloss.Width(line); pad > 0 {
				line += lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad))
			}
			b.WriteString(line)
			continue
		}
		b.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, label+":")))
		b.WriteString(shown)
	}
	return b.String()
}

func (a App) renderAssessment(cw int) string {
	t := theme.Active
	s := a.scene
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	form := a.renderFieldList(assessmentLabels, s.assess[:], s.cursor[sectionAssessment], inputAssessment, cw)
	form += "\n\n" + mutedStyle.Render("[j/k] select  [Enter] edit  amounts accept any text, e.g. $1,200")

	res := metrics.Assess(s.assessmentInputs())
	leftoverColor := t.Green
	if res.Leftover.IsNegative() {
		leftoverColor = t.Red
	}
	savingsBand, dtiBand := res.Bands()
	savingsNote, dtiNote := "aim for 20% or more", "keep under 36%"
	if savingsBand == metrics.BandNone {
		savingsNote, dtiNote = "enter an income", "enter an income"
	}

	innerW := components.CardInnerWidth(cw)
	barW := innerW - 30
	if barW > 40 {
		barW = 40
	}

	var out strings.Builder
	out.WriteString(components.FocusCard("Financial Assessment", form, cw))
	out.WriteString("\n")
	out.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Leftover", Value: cli.FormatMoney(res.Leftover), Color: leftoverColor},
		{Label: "Savings Rate", Value: cli.FormatPercent(res.SavingsRate), Note: savingsBand.String(), Color: components.ColorForBand(savingsBand)},
		{Label: "Debt-to-Income", Value: cli.FormatPercent(res.DTI), Note: dtiBand.String(), Color: components.ColorForBand(dtiBand)},
	}, cw))
	out.WriteString("\n")
	bars := components.RatioBar("Savings rate", res.SavingsRate, savingsBand, savingsNote, 14, barW) + "\n" +
		components.RatioBar("Debt-to-income", res.DTI, dtiBand, dtiNote, 14, barW)
	out.WriteString(components.ContentCard("Health Check", bars, cw))
	return out.String()
}

func (a App) renderCosts(cw int) string {
	t := theme.Active
	s := a.scene
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	labels := make([]string, len(s.costs.Lines))
	values := make([]string, len(s.costs.Lines))
	for i, l := range s.costs.Lines {
		labels[i] = l.Label
		values[i] = l.Raw
	}

	body := a.renderFieldList(labels, values, s.cursor[sectionCosts], inputCost, cw)
	body += "\n\n" + lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Bold(true).Render("Total  ") +
		lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface).Bold(true).Render(cli.FormatMoney(s.costs.Total()))
	body += "\n" + mutedStyle.Render("[j/k] select  [Enter] edit")

	return components.FocusCard("Cost Calculator", body, cw)
}
