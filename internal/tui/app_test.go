package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/finpath/internal/config"
	"github.com/theirongolddev/finpath/internal/metrics"
	"github.com/theirongolddev/finpath/internal/tasklist"
	"github.com/theirongolddev/finpath/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

// stepClock is a manual clock; timers fire only from Advance.
type stepClock struct {
	now    time.Time
	timers []*stepTimer
}

type stepTimer struct {
	at   time.Time
	f    func()
	done bool
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) AfterFunc(d time.Duration, f func()) tasklist.Timer {
	t := &stepTimer{at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *stepTimer) Stop() bool {
	active := !t.done
	t.done = true
	return active
}

func (c *stepClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
	for _, t := range c.timers {
		if !t.done && !t.at.After(c.now) {
			t.done = true
			t.f()
		}
	}
}

func newTestAppWithClock(t *testing.T) (App, *stepClock) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	clock := &stepClock{now: time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)}
	a := newApp(config.DefaultConfig(), clock, false)
	t.Cleanup(a.shutdown)
	return a, clock
}

func newTestApp(t *testing.T) App {
	a, _ := newTestAppWithClock(t)
	return a
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends each key in order and returns the resulting app.
func press(t *testing.T, a App, ks ...string) App {
	t.Helper()
	for _, k := range ks {
		m, _ := a.Update(keyMsg(k))
		a = m.(App)
	}
	return a
}

func TestTabKeysSwitchTabs(t *testing.T) {
	a := newTestApp(t)

	tests := []struct {
		key  string
		want int
	}{
		{"b", tabBudget},
		{"r", tabRoadmap},
		{"e", tabHelp},
		{"p", tabProfile},
		{"h", tabHome},
		{"tab", tabBudget},
	}
	for _, tt := range tests {
		a = press(t, a, tt.key)
		if a.activeTab != tt.want {
			t.Fatalf("after %q activeTab = %d, want %d", tt.key, a.activeTab, tt.want)
		}
	}
}

func TestHomeMilestoneAddAndUndo(t *testing.T) {
	a := newTestApp(t)
	before := a.home.milestones.Len()

	a = press(t, a, "a", "Open a savings account", "enter")
	if got := a.home.milestones.Len(); got != before+1 {
		t.Fatalf("Len after add = %d, want %d", got, before+1)
	}
	if status := a.statusRight(); !strings.Contains(status.Text, "Open a savings account") {
		t.Fatalf("status = %q, want the added title", status.Text)
	}

	a = press(t, a, "u")
	if got := a.home.milestones.Len(); got != before {
		t.Fatalf("Len after undo = %d, want %d", got, before)
	}
	if _, ok := a.home.milestones.Pending(); ok {
		t.Fatal("pending undo still active after undo")
	}
}

func TestHomeBlankMilestoneIgnored(t *testing.T) {
	a := newTestApp(t)
	before := a.home.milestones.Len()

	a = press(t, a, "a", "   ", "enter")
	if got := a.home.milestones.Len(); got != before {
		t.Fatalf("blank add changed Len to %d", got)
	}
	if a.status.Kind == components.StatusError {
		t.Fatalf("blank checklist add reported an error: %q", a.status.Text)
	}
}

func TestHomeToggleUpdatesProgress(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, " ", "j", "x")
	p := a.home.milestones.Progress()
	if p.Completed != 2 || p.Total != 5 || p.Percent != 40 {
		t.Fatalf("Progress = %+v, want 2 of 5 (40%%)", p)
	}
}

func TestGoalTrackerRejectsBlankTitle(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "r", "enter", "4", "a", "enter")
	if a.scene == nil {
		t.Fatal("scenario did not open")
	}
	if a.scene.goals.Len() != 0 {
		t.Fatalf("goals Len = %d, want 0", a.scene.goals.Len())
	}
	if a.status.Text != "title required" || a.status.Kind != components.StatusError {
		t.Fatalf("status = %+v, want title required error", a.status)
	}
}

func TestGoalUndoCountdownExpires(t *testing.T) {
	a, clock := newTestAppWithClock(t)

	a = press(t, a, "r", "enter", "4", "a", "Save $500 for textbooks", "enter")
	goals := a.scene.goals
	if goals.Len() != 1 {
		t.Fatalf("goals Len = %d, want 1", goals.Len())
	}

	// Let the flash message lapse so the countdown shows
	clock.Advance(5 * time.Second)
	m, _ := a.Update(tickMsg{})
	a = m.(App)
	if status := a.statusRight(); !strings.Contains(status.Text, "(25s)") {
		t.Fatalf("status = %q, want a 25s countdown", status.Text)
	}

	clock.Advance(26 * time.Second)
	a = press(t, a, "u")
	if goals.Len() != 1 {
		t.Fatal("undo after the window removed the goal")
	}
	if status := a.statusRight(); strings.Contains(status.Text, "ndo") {
		t.Fatalf("countdown still shown after expiry: %q", status.Text)
	}
}

func TestLeavingScenarioClosesStores(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "r", "enter")
	checklist, goals := a.scene.checklist, a.scene.goals
	if checklist.Len() != len(a.scene.sc.Milestones) {
		t.Fatalf("checklist Len = %d, want %d seeded milestones", checklist.Len(), len(a.scene.sc.Milestones))
	}

	a = press(t, a, "esc")
	if a.scene != nil {
		t.Fatal("esc did not close the scenario")
	}
	if _, err := goals.Add("late"); !errors.Is(err, tasklist.ErrClosed) {
		t.Fatalf("Add after close = %v, want ErrClosed", err)
	}

	// Switching tabs also closes
	a = press(t, a, "enter")
	checklist = a.scene.checklist
	a = press(t, a, "h")
	if a.scene != nil || a.activeTab != tabHome {
		t.Fatal("tab key did not leave the scenario")
	}
	if _, err := checklist.Add("late"); !errors.Is(err, tasklist.ErrClosed) {
		t.Fatalf("Add after tab switch = %v, want ErrClosed", err)
	}
}

func TestAssessmentSection(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "r", "enter", "2",
		"enter", "$4,200", "enter",
		"j", "enter", "2,500", "enter",
		"j", "enter", "400", "enter",
		"j", "enter", "800", "enter",
	)

	res := metrics.Assess(a.scene.assessmentInputs())
	if res.Leftover.String() != "500" {
		t.Fatalf("Leftover = %s, want 500", res.Leftover)
	}
	if res.SavingsRate != 19 || res.DTI != 10 {
		t.Fatalf("SavingsRate = %d, DTI = %d, want 19 and 10", res.SavingsRate, res.DTI)
	}
}

func TestAssessmentWithoutIncomeShowsNoBand(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	a = m.(App)

	a = press(t, a, "r", "enter", "2", "j", "j", "enter", "250", "enter")

	view := a.View()
	if !strings.Contains(view, "enter an income") || !strings.Contains(view, "n/a") {
		t.Fatal("assessment without income should show n/a instead of a band")
	}
}

func TestCostsSection(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "r", "enter", "3",
		"enter", "100", "enter",
		"j", "enter", "200.50", "enter",
		"j", "enter", "bad", "enter",
	)
	if got := a.scene.costs.Total().String(); got != "300.5" {
		t.Fatalf("Total = %s, want 300.5", got)
	}
}

func TestEscCancelsEdit(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "r", "enter", "3", "enter", "999", "esc")
	if a.edit.active() {
		t.Fatal("editor still active after esc")
	}
	if got := a.scene.costs.Total().String(); got != "0" {
		t.Fatalf("Total = %s after cancelled edit, want 0", got)
	}
}

func TestBudgetSliderNudge(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "b", "j", "right", "right", "left")
	if got := a.budget.b.Get(metrics.FieldRent).String(); got != "850" {
		t.Fatalf("rent = %s, want 850", got)
	}
	if got := a.budget.b.Remaining().String(); got != "1450" {
		t.Fatalf("remaining = %s, want 1450", got)
	}
	if a.activeTab != tabBudget {
		t.Fatal("arrow keys changed tabs on the Budget tab")
	}
}

func TestBudgetTypedAmountClamped(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "b", "j", "j", "enter")
	a.edit.input.SetValue("$99,999")
	a = press(t, a, "enter")
	if got := a.budget.b.Get(metrics.FieldTransport).String(); got != "1000" {
		t.Fatalf("transport = %s, want clamped 1000", got)
	}
}

func TestSavingsGoalPersists(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "g")
	if a.activeTab != tabRoadmap || a.edit.target != inputSavingsGoal {
		t.Fatal("quick action did not open the savings goal editor")
	}
	a.edit.input.SetValue("$250")
	a = press(t, a, "enter")

	if got := a.roadmap.goal.String(); got != "250" {
		t.Fatalf("goal = %s, want 250", got)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config.Load() error: %v", err)
	}
	if cfg.Budget.MonthlySavingsGoal != 250 {
		t.Fatalf("saved goal = %v, want 250", cfg.Budget.MonthlySavingsGoal)
	}
}

func TestProfileInvalidThemeRejected(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "p", "j", "j", "enter")
	a.edit.input.SetValue("neon")
	a = press(t, a, "enter")
	if a.profile.saveErr == nil {
		t.Fatal("unknown theme saved")
	}
	if a.cfg.Appearance.Theme != "sage" {
		t.Fatalf("live theme = %q, want sage", a.cfg.Appearance.Theme)
	}
}

func TestProfileSignOut(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "p")
	for i := 0; i < profileFieldCount; i++ {
		a = press(t, a, "j")
	}
	a = press(t, a, "enter")
	if a.status.Text != "Signed out" {
		t.Fatalf("status = %q, want Signed out", a.status.Text)
	}
	if a.edit.active() {
		t.Fatal("sign out opened an editor")
	}
}

func TestHelpContactLinks(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "e", "m")
	if a.status.Text != "mailto:financial.aid@utdallas.edu" {
		t.Fatalf("status = %q", a.status.Text)
	}
	a = press(t, a, "c")
	if a.help.lastLink != "tel:9728832941" {
		t.Fatalf("lastLink = %q", a.help.lastLink)
	}
}

func TestViewRendersEveryTab(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	a = m.(App)

	want := map[string]string{
		"h": "Financial Milestones",
		"b": "Build Your Budget",
		"r": "Monthly Savings Goal",
		"e": "Additional Resources",
		"p": "Profile & Settings",
	}
	for k, text := range want {
		a = press(t, a, k)
		if view := a.View(); !strings.Contains(view, text) {
			t.Errorf("tab %q view missing %q", k, text)
		}
	}

	a = press(t, a, "r", "enter")
	for section, text := range []string{"Milestone Checklist", "Financial Assessment", "Cost Calculator", "Goal Tracker"} {
		a = press(t, a, string(rune('1'+section)))
		if view := a.View(); !strings.Contains(view, text) {
			t.Errorf("section %d view missing %q", section+1, text)
		}
	}
}

func TestHelpOverlayToggle(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	a = m.(App)

	a = press(t, a, "?")
	if !a.showHelp || !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Fatal("help overlay not shown")
	}
	a = press(t, a, "b")
	if a.showHelp || a.activeTab != tabHome {
		t.Fatal("key while help is open should only dismiss it")
	}
}
