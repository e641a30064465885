package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTabVisualWidthMatchesRender(t *testing.T) {
	for active := range Tabs {
		want := len(Tabs) - 1 // separators
		for i, tab := range Tabs {
			want += TabVisualWidth(tab, i == active)
		}
		if got := lipgloss.Width(RenderTabBar(active, 0)); got != want {
			t.Fatalf("active=%d: rendered width %d, want %d", active, got, want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('r'); got != 2 {
		t.Fatalf("TabIdxByKey('r') = %d, want 2", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Fatalf("TabIdxByKey('z') = %d, want -1", got)
	}
}

func TestSliderWidth(t *testing.T) {
	a := Slider("Rent", "$800", 0, false, 14, 20)
	b := Slider("Rent", "$800", 1, true, 14, 20)
	if lipgloss.Width(a) != lipgloss.Width(b) {
		t.Fatalf("slider width changes with position: %d vs %d", lipgloss.Width(a), lipgloss.Width(b))
	}
}
