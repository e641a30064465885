package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/finpath/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Slider renders a horizontal slider track with a knob at frac (0..1),
// the field label on the left and the formatted value on the right.
func Slider(label, value string, frac float64, selected bool, labelW, trackW int) string {
	t := theme.Active

	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	if trackW < 3 {
		trackW = 3
	}

	bg := t.Surface
	if selected {
		bg = t.SurfaceBright
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(bg)
	if selected {
		labelStyle = labelStyle.Foreground(t.Accent).Bold(true)
	}
	fillStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(bg)
	trackStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(bg)
	knobStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(bg).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(bg).Bold(selected)
	spaceStyle := lipgloss.NewStyle().Background(bg)

	knob := int(frac*float64(trackW-1) + 0.5)

	marker := "  "
	if selected {
		marker = "▸ "
	}

	return knobStyle.Render(marker) +
		labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		fillStyle.Render(strings.Repeat("━", knob)) +
		knobStyle.Render("●") +
		trackStyle.Render(strings.Repeat("─", trackW-1-knob)) +
		spaceStyle.Render(" ") +
		valueStyle.Render(value)
}
