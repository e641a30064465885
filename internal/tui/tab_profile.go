package tui

import (
	"errors"
	"fmt"
	"strconv"
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

const (
	profileFieldName = iota
	profileFieldEmail
	profileFieldTheme
	profileFieldGoal
	profileFieldUndoWindow
	profileFieldLogLevel
	profileFieldSignOut
	profileFieldCount // sentinel
)

// profileState tracks the Profile tab state.
type profileState struct {
	cursor  int
	saved   bool  // flash "saved" message
	saveErr error // non-nil if last save failed
}

func (a App) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Down):
		a.profile.cursor = clampCursor(a.profile.cursor+1, profileFieldCount)
	case key.Matches(msg, keys.Up):
		a.profile.cursor = clampCursor(a.profile.cursor-1, profileFieldCount)
	case key.Matches(msg, keys.Edit):
		if a.profile.cursor == profileFieldSignOut {
			a.signOut()
			return a, nil, true
		}
		return a, a.profileStartEdit(), true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a *App) profileStartEdit() tea.Cmd {
	a.profile.saved = false
	a.profile.saveErr = nil

	cfg := a.cfg
	switch a.profile.cursor {
	case profileFieldName:
		return a.startInput(inputProfile, "Your name", cfg.Profile.Name)
	case profileFieldEmail:
		return a.startInput(inputProfile, "you@example.com", cfg.Profile.Email)
	case profileFieldTheme:
		return a.startInput(inputProfile, strings.Join(theme.Names(), ", "), cfg.Appearance.Theme)
	case profileFieldGoal:
		return a.startInput(inputProfile, "100", strconv.FormatFloat(cfg.Budget.MonthlySavingsGoal, 'f', -1, 64))
	case profileFieldUndoWindow:
		return a.startInput(inputProfile, "30 (seconds, 1-600)", strconv.Itoa(cfg.Planner.UndoWindowSec))
	case profileFieldLogLevel:
		return a.startInput(inputProfile, "debug, info, warn, error", cfg.Log.Level)
	}
	return nil
}

// commitProfile applies the edited field and saves the config. Invalid
// values are rejected by config validation and leave the live config as is.
func (a *App) commitProfile(val string) {
	cfg := a.cfg
	val = strings.TrimSpace(val)

	switch a.profile.cursor {
	case profileFieldName:
		cfg.Profile.Name = val
	case profileFieldEmail:
		cfg.Profile.Email = val
	case profileFieldTheme:
		cfg.Appearance.Theme = val
	case profileFieldGoal:
		goal, _ := metrics.ParseAmount(val).Float64()
		cfg.Budget.MonthlySavingsGoal = goal
	case profileFieldUndoWindow:
		n, err := strconv.Atoi(val)
		if err != nil {
			a.profile.saveErr = errors.New("undo window must be a whole number of seconds")
			return
		}
		cfg.Planner.UndoWindowSec = n
	case profileFieldLogLevel:
		cfg.Log.Level = val
	}

	if err := config.Save(cfg); err != nil {
		a.profile.saveErr = err
		a.profile.saved = false
		return
	}

	a.cfg = cfg
	a.profile.saved = true
	theme.SetActive(cfg.Appearance.Theme)
	a.roadmap = newRoadmapState(cfg.Budget.MonthlySavingsGoal)
	a.log.Info().Int("field", a.profile.cursor).Msg("profile updated")
}

// signOut only logs; there is no account or session to end.
func (a *App) signOut() {
	a.log.Info().Str("profile", a.cfg.Profile.Name).Msg("sign out requested")
	a.flash("Signed out", components.StatusInfo)
}

func (a App) renderProfileTab(cw int) string {
	t := theme.Active
	cfg := a.cfg

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	signOutStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)

	email := cfg.Profile.Email
	if email == "" {
		email = "(not set)"
	}

	fields := []struct{ label, value string }{
		{"Name", cfg.Profile.Name},
		{"Email", email},
		{"Theme", cfg.Appearance.Theme},
		{"Savings Goal", cli.FormatMoney(decimal.NewFromFloat(cfg.Budget.MonthlySavingsGoal))},
		{"Undo Window", fmt.Sprintf("%ds", cfg.Planner.UndoWindowSec)},
		{"Log Level", cfg.Log.Level},
	}

	innerW := components.CardInnerWidth(cw)
	var form strings.Builder
	for i, f := range fields {
		if i == a.profile.cursor {
			if view, ok := a.inputView(inputProfile); ok {
				form.WriteString(markerStyle.Render("▸ "))
				form.WriteString(accentStyle.Render(fmt.Sprintf("%-16s ", f.label)))
				form.WriteString(view)
				form.WriteString("\n")
				continue
			}

			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-16s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			form.WriteString(marker + label + value)
			if pad := innerW - lipgloss.Width(marker) - lipgloss.Width(label) - lipgloss.Width(value); pad > 0 {
				form.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		} else {
			form.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			form.WriteString(labelStyle.Render(fmt.Sprintf("%-16s ", f.label+":")))
			form.WriteString(valueStyle.Render(f.value))
		}
		form.WriteString("\n")
	}

	form.WriteString("\n")
	if a.profile.cursor == profileFieldSignOut {
		form.WriteString(markerStyle.Render("▸ ") + signOutStyle.Render("Sign Out"))
	} else {
		form.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  ") + labelStyle.Render("Sign Out"))
	}
	form.WriteString("\n")

	if a.profile.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		form.WriteString("\n")
		form.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.profile.saveErr)))
	} else if a.profile.saved {
		form.WriteString("\n")
		form.WriteString(greenStyle.Render("Saved!"))
	}

	form.WriteString("\n")
	form.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	var info strings.Builder
	info.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.Path()) + "\n")
	logFile := cfg.Log.File
	if logFile == "" {
		logFile = "(disabled)"
	}
	info.WriteString(labelStyle.Render("Log file:     ") + valueStyle.Render(logFile))

	var b strings.Builder
	b.WriteString(components.FocusCard("Profile & Settings", form.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", info.String(), cw))
	return b.String()
}
