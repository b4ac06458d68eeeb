package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/patternview/internal/nav"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Navigation
	Up          key.Binding
	Down        key.Binding
	Forward     key.Binding
	Backward    key.Binding
	Activate    key.Binding
	JumpSamples key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up / scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down / scroll down"),
		),
		Forward: key.NewBinding(
			key.WithKeys("l", "right", "tab"),
			key.WithHelp("l/tab", "Next view"),
		),
		Backward: key.NewBinding(
			key.WithKeys("h", "left", "shift+tab"),
			key.WithHelp("h/shift+tab", "Previous view"),
		),
		Activate: key.NewBinding(
			key.WithKeys("d", "enter"),
			key.WithHelp("d/enter", "Open sample"),
		),
		JumpSamples: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Samples of pattern"),
		),
	}
}

// action decodes a key press into a navigation action.
func (k keyMap) action(msg tea.KeyMsg) (nav.Action, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return nav.MoveUp, true
	case key.Matches(msg, k.Down):
		return nav.MoveDown, true
	case key.Matches(msg, k.Forward):
		return nav.MoveForward, true
	case key.Matches(msg, k.Backward):
		return nav.MoveBackward, true
	case key.Matches(msg, k.Activate):
		return nav.Activate, true
	case key.Matches(msg, k.JumpSamples):
		return nav.JumpToSamples, true
	default:
		return 0, false
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Forward, k.Backward},
		{k.Activate, k.JumpSamples},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
