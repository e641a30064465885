package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finpath/internal/cli"
	"github.com/theirongolddev/finpath/internal/model"
	"github.com/theirongolddev/finpath/internal/tasklist"
	"github.com/theirongolddev/finpath/internal/tui/components"
	"github.com/theirongolddev/finpath/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// homeState tracks the Home tab: the financial milestone checklist.
type homeState struct {
	milestones *tasklist.Store
	cursor     int
}

func newHomeState(opts tasklist.Options) homeState {
	opts.Seed = model.HomeMilestones
	return homeState{milestones: tasklist.New(opts)}
}

func (a App) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	s := a.home.milestones
	tasks := s.Tasks()

	switch {
	case key.Matches(msg, keys.Down):
		a.home.cursor = clampCursor(a.home.cursor+1, len(tasks))
	case key.Matches(msg, keys.Up):
		a.home.cursor = clampCursor(a.home.cursor-1, len(tasks))
	case key.Matches(msg, keys.Toggle):
		if len(tasks) > 0 {
			s.Toggle(tasks[clampCursor(a.home.cursor, len(tasks))].ID)
		}
	case key.Matches(msg, keys.Delete):
		if len(tasks) > 0 {
			s.Delete(tasks[clampCursor(a.home.cursor, len(tasks))].ID)
			a.home.cursor = clampCursor(a.home.cursor, len(tasks)-1)
		}
	case key.Matches(msg, keys.Undo):
		a.undoTask(s)
		a.home.cursor = clampCursor(a.home.cursor, s.Len())
	case key.Matches(msg, keys.Add):
		return a, a.startInput(inputMilestone, "New milestone", ""), true
	case msg.String() == "g":
		// Quick action: Set Monthly Goal
		a.activeTab = tabRoadmap
		return a, a.startInput(inputSavingsGoal, "100", a.roadmap.goal.String()), true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) renderHomeTab(cw int) string {
	t := theme.Active
	s := a.home.milestones

	greetStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)

	var b strings.Builder

	// Greeting + progress
	p := s.Progress()
	var progBody strings.Builder
	name := a.cfg.Profile.Name
	if name == "" {
		name = "there"
	}
	progBody.WriteString(greetStyle.Render(fmt.Sprintf("Welcome back, %s", name)))
	progBody.WriteString("\n")
	progBody.WriteString(mutedStyle.Render("Let's keep building your financial future."))
	progBody.WriteString("\n\n")
	progBody.WriteString(mutedStyle.Render("Your Progress  "))
	progBody.WriteString(accentStyle.Render(fmt.Sprintf("%d of %d", p.Completed, p.Total)))
	progBody.WriteString(mutedStyle.Render(" milestones completed"))
	progBody.WriteString("\n")
	barW := components.CardInnerWidth(cw) - 6
	if barW > 60 {
		barW = 60
	}
	progBody.WriteString(components.ProgressBar(float64(p.Percent)/100, barW))
	b.WriteString(components.ContentCard("", progBody.String(), cw))
	b.WriteString("\n")

	// Checklist + side column
	leftW := cw * 3 / 5
	rightW := cw - leftW

	milestoneBody := a.renderTaskList(s, a.home.cursor, inputMilestone, leftW)
	milestoneBody += "\n\n" + mutedStyle.Render("[Space] check  [a] add  [d] delete  [u] undo")
	left := components.FocusCard("Financial Milestones", milestoneBody, leftW)

	var actions strings.Builder
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	for i, qa := range model.QuickActions {
		if i > 0 {
			actions.WriteString("\n")
		}
		actions.WriteString(keyStyle.Render("["+qa.Key+"] ") + labelStyle.Render(qa.Label))
	}

	var reminders strings.Builder
	for i, r := range model.Reminders {
		if i > 0 {
			reminders.WriteString("\n")
		}
		dot := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
		if r.Priority == model.PriorityHigh {
			dot = dot.Foreground(t.Orange)
		}
		reminders.WriteString(dot.Render("● ") + labelStyle.Render(r.Title) + "\n")
		reminders.WriteString(mutedStyle.Render("  " + r.When))
	}

	right := components.ContentCard("Quick Actions", actions.String(), rightW) + "\n" +
		components.ContentCard("Upcoming Reminders", reminders.String(), rightW)

	b.WriteString(components.CardRow([]string{left, right}))
	return b.String()
}

// renderTaskList renders a store's tasks with checkboxes and a cursor marker,
// followed by the add input and a progress line.
func (a App) renderTaskList(s *tasklist.Store, cursor int, target inputTarget, outerW int) string {
	t := theme.Active
	tasks := s.Tasks()
	innerW := components.CardInnerWidth(outerW)

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	doneStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Strikethrough(true)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	checkStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	boxStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	if len(tasks) == 0 {
		b.WriteString(mutedStyle.Render("Nothing here yet. Press [a] to add one."))
	}

	cursor = clampCursor(cursor, len(tasks))
	for i, task := range tasks {
		if i > 0 {
			b.WriteString("\n")
		}
		box := boxStyle.Render("○ ")
		if task.Done {
			box = checkStyle.Render("✓ ")
		}
		title := truncStr(task.Title, innerW-6)

		if i == cursor && !a.edit.active() {
			line := markerStyle.Render("▸ ") + box + selStyle.Render(title)
			if pad := innerW - lipgloss.Width(line); pad > 0 {
				line += lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad))
			}
			b.WriteString(line)
			continue
		}

		style := rowStyle
		if task.Done {
			style = doneStyle
		}
		b.WriteString(spaceStyle.Render("  ") + box + style.Render(title))
	}

	if view, ok := a.inputView(target); ok {
		b.WriteString("\n")
		b.WriteString(markerStyle.Render("+ ") + view)
	}

	p := s.Progress()
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d of %d done · %s", p.Completed, p.Total, cli.FormatPercent(p.Percent))))
	return b.String()
}
