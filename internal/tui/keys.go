package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit    key.Binding
	Help    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Toggle  key.Binding
	Add     key.Binding
	Delete  key.Binding
	Undo    key.Binding
	Edit    key.Binding
	Back    key.Binding
	Section key.Binding
}

var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Toggle help")),
	NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Next tab / section")),
	PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-Tab", "Previous tab / section")),
	Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("j k", "Move cursor")),
	Down:    key.NewBinding(key.WithKeys("j", "down")),
	Left:    key.NewBinding(key.WithKeys("left", "-"), key.WithHelp("← → + -", "Adjust slider")),
	Right:   key.NewBinding(key.WithKeys("right", "+", "=")),
	Toggle:  key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("Space", "Check / uncheck")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "Add item")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "Delete item")),
	Undo:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "Undo last add")),
	Edit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Open / Edit / Confirm")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Back / Cancel")),
	Section: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "Scenario section")),
}

func (k keyMap) navigation() []key.Binding {
	return []key.Binding{k.NextTab, k.PrevTab, k.Up, k.Left, k.Section, k.Back}
}

func (k keyMap) actions() []key.Binding {
	return []key.Binding{k.Edit, k.Toggle, k.Add, k.Delete, k.Undo, k.Help, k.Quit}
}
