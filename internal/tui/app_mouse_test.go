package tui

import (
	"testing"

	"github.com/theirongolddev/finpath/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	n := len(components.Tabs)
	for active := 0; active < n; active++ {
		a := App{activeTab: active}
		pos := 0

		for i := 0; i < n; i++ {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < n-1 {
				pos++ // separator
			}
		}

		if got := a.tabAtX(pos + 5); got != -1 {
			t.Fatalf("active=%d x past last tab -> %d, want -1", active, got)
		}
	}
}

func tabWidthForTest(tabIdx, activeIdx int) int {
	nameWidths := []int{
		len("Home"),
		len("Budget"),
		len("Roadmap"),
		len("Help"),
		len("Profile"),
	}

	w := nameWidths[tabIdx] + 2 // horizontal padding in tab renderer
	if tabIdx != activeIdx {
		w += 2 // inactive tabs bracket their shortcut letter
	}
	return w
}

func TestMouseClickSelectsTab(t *testing.T) {
	a := newTestApp(t)

	// "Home" is active (6 cols), then a separator, then inactive "[B]udget".
	m, _ := a.Update(tea.MouseMsg{X: 9, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	a = m.(App)
	if a.activeTab != tabBudget {
		t.Fatalf("activeTab = %d, want %d", a.activeTab, tabBudget)
	}

	// Clicks below the tab bar are ignored
	m, _ = a.Update(tea.MouseMsg{X: 1, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.(App).activeTab != tabBudget {
		t.Fatal("click outside the tab bar changed tabs")
	}
}
