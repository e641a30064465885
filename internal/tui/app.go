// Package tui provides the interactive Bubble Tea dashboard for finpath.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/finpath/internal/cli"
	"github.com/theirongolddev/finpath/internal/config"
	"github.com/theirongolddev/finpath/internal/tasklist"
	"github.com/theirongolddev/finpath/internal/tui/components"
	"github.com/theirongolddev/finpath/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	tabHome = iota
	tabBudget
	tabRoadmap
	tabHelp
	tabProfile
)

// inputTarget names the field the shared text input is editing.
type inputTarget int

const (
	inputNone inputTarget = iota
	inputMilestone
	inputBudget
	inputSavingsGoal
	inputChecklist
	inputAssessment
	inputCost
	inputGoal
	inputProfile
)

type editor struct {
	target inputTarget
	input  textinput.Model
}

func (e editor) active() bool { return e.target != inputNone }

// App is the root Bubble Tea model.
type App struct {
	cfg   config.Config
	clock tasklist.Clock
	log   zerolog.Logger

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	home    homeState
	budget  budgetState
	roadmap roadmapState
	help    helpState
	profile profileState

	// Open scenario sub-screen; nil while the Roadmap grid is shown.
	scene *scenarioScreen

	edit editor

	status      components.Status
	statusUntil time.Time
	spinner     spinner.Model

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals SetupValues
	needSetup bool
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 140
	minContentHeight = 5

	flashDuration = 3 * time.Second
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("config unusable, using defaults")
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model. It shows the setup form when no
// config file exists yet.
func NewApp() App {
	return newApp(loadConfigOrDefault(), tasklist.SystemClock(), !config.Exists())
}

func newApp(cfg config.Config, clock tasklist.Clock, needSetup bool) App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	a := App{
		cfg:       cfg,
		clock:     clock,
		log:       log.With().Str("component", "tui").Str("session", uuid.NewString()).Logger(),
		spinner:   sp,
		needSetup: needSetup,
	}
	a.home = newHomeState(a.storeOptions("milestones", false))
	a.budget = newBudgetState(cfg.Budget)
	a.roadmap = newRoadmapState(cfg.Budget.MonthlySavingsGoal)

	if needSetup {
		a.setupVals = SetupValuesFrom(cfg)
		a.setupForm = NewSetupForm(&a.setupVals)
	}
	return a
}

// storeOptions builds the tasklist options shared by every list in the app.
func (a App) storeOptions(name string, rejectEmpty bool) tasklist.Options {
	return tasklist.Options{
		Name:        name,
		RejectEmpty: rejectEmpty,
		UndoWindow:  a.cfg.Planner.UndoWindow(),
		Clock:       a.clock,
		Logger:      &a.log,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
		a.spinner.Tick,
		tickCmd(),
	}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.edit.active() || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
				a.switchTab(tab)
			}
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			a.shutdown()
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Text input owns every key while editing
		if a.edit.active() {
			return a.updateInput(msg)
		}

		if key.Matches(msg, keys.Help) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key.Matches(msg, keys.Quit) {
			a.shutdown()
			return a, tea.Quit
		}

		// Scenario sub-screen keys take precedence over tab keys
		if a.scene != nil {
			if m, cmd, handled := a.updateScenario(msg); handled {
				return m, cmd
			}
		} else if m, cmd, handled := a.updateActiveTab(msg); handled {
			return m, cmd
		}

		return a.updateNavigation(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tickMsg:
		if !a.statusUntil.IsZero() && !a.clock.Now().Before(a.statusUntil) {
			a.status = components.Status{}
			a.statusUntil = time.Time{}
		}
		return a, tickCmd()
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.edit.active() {
		var cmd tea.Cmd
		a.edit.input, cmd = a.edit.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateActiveTab(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch a.activeTab {
	case tabHome:
		return a.updateHome(msg)
	case tabBudget:
		return a.updateBudget(msg)
	case tabRoadmap:
		return a.updateRoadmap(msg)
	case tabHelp:
		return a.updateHelp(msg)
	case tabProfile:
		return a.updateProfile(msg)
	}
	return a, nil, false
}

func (a App) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.NextTab), msg.String() == "right":
		a.switchTab((a.activeTab + 1) % len(components.Tabs))
	case key.Matches(msg, keys.PrevTab), msg.String() == "left":
		a.switchTab((a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs))
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		if tab := components.TabIdxByKey(msg.Runes[0]); tab >= 0 {
			a.switchTab(tab)
		}
	}
	return a, nil
}

// switchTab changes the active tab, closing any open scenario.
func (a *App) switchTab(tab int) {
	if a.scene != nil {
		a.closeScenario()
	}
	a.activeTab = tab
}

// shutdown releases every store the app owns.
func (a *App) shutdown() {
	a.home.milestones.Close()
	if a.scene != nil {
		a.closeScenario()
	}
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if err := a.saveSetupConfig(); err != nil {
			a.flash(fmt.Sprintf("Save failed: %s", err), components.StatusError)
		} else {
			a.flash("Profile saved", components.StatusSuccess)
		}
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// ─── Text Input ─────────────────────────────────────────────────

func (a *App) startInput(target inputTarget, placeholder, value string) tea.Cmd {
	ti := textinput.New()
	ti.CharLimit = 120
	ti.Width = 40
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.Focus()

	a.edit = editor{target: target, input: ti}
	return ti.Cursor.BlinkCmd()
}

func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		val := a.edit.input.Value()
		target := a.edit.target
		a.edit = editor{}
		a.commitInput(target, val)
		return a, nil
	case "esc":
		a.edit = editor{}
		return a, nil
	}

	var cmd tea.Cmd
	a.edit.input, cmd = a.edit.input.Update(msg)
	return a, cmd
}

func (a *App) commitInput(target inputTarget, val string) {
	switch target {
	case inputMilestone:
		a.addTask(a.home.milestones, val)
	case inputBudget:
		a.commitBudgetAmount(val)
	case inputSavingsGoal:
		a.commitSavingsGoal(val)
	case inputChecklist:
		if a.scene != nil {
			a.addTask(a.scene.checklist, val)
		}
	case inputGoal:
		if a.scene != nil {
			a.addTask(a.scene.goals, val)
		}
	case inputAssessment:
		a.commitAssessment(val)
	case inputCost:
		a.commitCost(val)
	case inputProfile:
		a.commitProfile(val)
	}
}

// inputView renders the active text input when it edits target.
func (a App) inputView(target inputTarget) (string, bool) {
	if a.edit.target != target {
		return "", false
	}
	return a.edit.input.View(), true
}

// ─── Lists ──────────────────────────────────────────────────────

// addTask adds to s and reports validation failures in the status bar.
func (a *App) addTask(s *tasklist.Store, raw string) {
	task, err := s.Add(raw)
	switch {
	case err != nil:
		a.flash(err.Error(), components.StatusError)
	case task.ID != 0:
		a.flash(fmt.Sprintf("Added %q", task.Title), components.StatusSuccess)
	}
}

func (a *App) undoTask(s *tasklist.Store) {
	if task, ok := s.UndoLastAdd(); ok {
		a.flash(fmt.Sprintf("Removed %q", task.Title), components.StatusInfo)
	}
}

// activeStore is the list the undo countdown refers to, or nil.
func (a App) activeStore() *tasklist.Store {
	if a.scene != nil {
		switch a.scene.section {
		case sectionChecklist:
			return a.scene.checklist
		case sectionGoals:
			return a.scene.goals
		}
		return nil
	}
	if a.activeTab == tabHome {
		return a.home.milestones
	}
	return nil
}

// clampCursor keeps a list cursor within [0, n).
func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// ─── Status ─────────────────────────────────────────────────────

func (a *App) flash(text string, kind components.StatusKind) {
	a.status = components.Status{Text: text, Kind: kind}
	a.statusUntil = a.clock.Now().Add(flashDuration)
}

func (a App) statusRight() components.Status {
	if a.status.Text != "" {
		return a.status
	}
	if s := a.activeStore(); s != nil {
		if p, ok := s.Pending(); ok {
			secs := int(s.UndoRemaining().Round(time.Second) / time.Second)
			return components.Status{
				Text: fmt.Sprintf("%s Added %q · [u]ndo (%s)", a.spinner.View(), truncStr(p.Title, 24), cli.FormatCountdown(secs)),
			}
		}
	}
	return components.Status{}
}

func (a App) statusHints() string {
	if a.edit.active() {
		return "[Enter] save  [Esc] cancel"
	}
	if a.scene != nil {
		return "[1-4] section  [Esc] back  [?] help  [q] quit"
	}
	return "[?] help  [q] quit"
}

// ─── View ───────────────────────────────────────────────────────

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  finpath needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◆ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	writeBindings := func(title string, bindings []key.Binding) {
		b.WriteString(sectionStyle.Render(title))
		b.WriteString("\n")
		for _, bind := range bindings {
			h := bind.Help()
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", h.Key)),
				descStyle.Render(h.Desc))
		}
	}

	var tabKeys []string
	for _, tab := range components.Tabs {
		tabKeys = append(tabKeys, string(tab.Key))
	}
	b.WriteString(sectionStyle.Render("Tabs"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s\n\n",
		keyStyle.Render(fmt.Sprintf("%-10s", strings.Join(tabKeys, " "))),
		descStyle.Render("Jump to tab"))

	writeBindings("Navigation", keys.navigation())
	b.WriteString("\n")
	writeBindings("Actions", keys.actions())

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + breadcrumb row
	crumbStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	crumbAccent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	crumb := crumbStyle.Render(" finpath · ") + crumbAccent.Render(components.Tabs[a.activeTab].Name)
	if a.scene != nil {
		crumb += crumbStyle.Render(" › ") + crumbAccent.Render(a.scene.sc.Name)
	}
	crumbRow := lipgloss.NewStyle().Background(t.Surface).Width(w).Render(crumb)

	header := components.RenderTabBar(a.activeTab, w) + "\n" + crumbRow

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.statusHints(), a.statusRight())

	// 3. Content zone height
	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch {
	case a.scene != nil:
		content = a.renderScenario(cw)
	case a.activeTab == tabHome:
		content = a.renderHomeTab(cw)
	case a.activeTab == tabBudget:
		content = a.renderBudgetTab(cw)
	case a.activeTab == tabRoadmap:
		content = a.renderRoadmapTab(cw)
	case a.activeTab == tabHelp:
		content = a.renderHelpTab(cw)
	case a.activeTab == tabProfile:
		content = a.renderProfileTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines, fill, center
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func truncStr(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		result.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
