package components

import (
	"strings"

	"github.com/theirongolddev/finpath/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusKind selects the color of the status bar message.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// Status is the right-hand status bar message.
type Status struct {
	Text string
	Kind StatusKind
}

// RenderStatusBar renders the bottom status bar. hints is shown on the left
// and the status message on the right.
func RenderStatusBar(width int, hints string, status Status) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	msgColor := t.TextMuted
	switch status.Kind {
	case StatusSuccess:
		msgColor = t.GreenBright
	case StatusError:
		msgColor = t.Orange
	}
	msgStyle := lipgloss.NewStyle().Foreground(msgColor).Background(t.Surface).Bold(status.Kind != StatusInfo)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	padStyle := lipgloss.NewStyle().Background(t.Surface)

	left := hintStyle.Render(" " + hints)
	right := ""
	if status.Text != "" {
		right = msgStyle.Render(status.Text + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + padStyle.Render(strings.Repeat(" ", padding)) + right)
}
