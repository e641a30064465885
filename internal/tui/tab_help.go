package tui

import (
	"strings"

	"github.com/theirongolddev/finpath/internal/model"
	"github.com/theirongolddev/finpath/internal/tui/components"
	"github.com/theirongolddev/finpath/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpState records the last contact link the user asked for.
type helpState struct {
	lastLink string
}

func (a App) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "m":
		a.showContactLink(model.Advisor.MailtoURL(), "email")
	case "c":
		a.showContactLink(model.Advisor.TelURL(), "phone")
	default:
		return a, nil, false
	}
	return a, nil, true
}

// showContactLink surfaces a contact URL. The terminal cannot open it, so
// it is shown for the user to copy.
func (a *App) showContactLink(url, kind string) {
	a.help.lastLink = url
	a.log.Info().Str("kind", kind).Str("url", url).Msg("contact requested")
	a.flash(url, components.StatusInfo)
}

func (a App) renderHelpTab(cw int) string {
	t := theme.Active
	c := model.Advisor

	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	linkStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Underline(true)

	var out strings.Builder
	intro := titleStyle.Render("Need Help?") + "\n" +
		labelStyle.Render("Talk to a "+c.Org+" financial aid advisor.")
	out.WriteString(components.ContentCard("", intro, cw))
	out.WriteString("\n")

	widths := components.LayoutRow(cw, 2)

	var contact strings.Builder
	contact.WriteString(labelStyle.Render("Email  ") + valueStyle.Render(c.Email) + "\n")
	contact.WriteString(labelStyle.Render("Phone  ") + valueStyle.Render(c.PhoneDisplay()) + "\n\n")
	contact.WriteString(keyStyle.Render("[m] ") + labelStyle.Render("Email advisor   "))
	contact.WriteString(keyStyle.Render("[c] ") + labelStyle.Render("Call advisor"))
	if a.help.lastLink != "" {
		contact.WriteString("\n\n" + linkStyle.Render(a.help.lastLink))
	}

	var office strings.Builder
	office.WriteString(valueStyle.Render(c.Office) + "\n")
	office.WriteString(labelStyle.Render(c.Address) + "\n\n")
	office.WriteString(labelStyle.Render("Hours  ") + valueStyle.Render(c.Days) + "\n")
	office.WriteString(labelStyle.Render("       ") + valueStyle.Render(c.Hours))

	out.WriteString(components.CardRow([]string{
		components.FocusCard("Contact", contact.String(), widths[0]),
		components.ContentCard("Office", office.String(), widths[1]),
	}))
	out.WriteString("\n")

	var res strings.Builder
	for i, r := range model.Resources {
		if i > 0 {
			res.WriteString("\n")
		}
		res.WriteString(keyStyle.Render("› ") + valueStyle.Render(padRight(r.Name, 24)) + labelStyle.Render(r.Note))
	}
	out.WriteString(components.ContentCard("Additional Resources", res.String(), cw))

	return out.String()
}
