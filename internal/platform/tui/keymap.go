package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pong-lab/internal/core"
)

// KeyMap holds the terminal key bindings. The paddle keys are fixed; only
// their terminal spelling lives here.
type KeyMap struct {
	LeftUp     key.Binding
	LeftDown   key.Binding
	RightUp    key.Binding
	RightDown  key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the bindings for W/S and O/L.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "left up"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "left down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("o", "O"),
			key.WithHelp("o", "right up"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("l", "L"),
			key.WithHelp("l", "right down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Code translates a key message to the game's key code.
// Returns KeyUnknown for keys the game does not use.
func (k KeyMap) Code(msg tea.KeyMsg) core.KeyCode {
	switch {
	case key.Matches(msg, k.LeftUp):
		return core.KeyW
	case key.Matches(msg, k.LeftDown):
		return core.KeyS
	case key.Matches(msg, k.RightUp):
		return core.KeyO
	case key.Matches(msg, k.RightDown):
		return core.KeyL
	case key.Matches(msg, k.Quit):
		if msg.Type == tea.KeyEsc {
			return core.KeyEscape
		}
		return core.KeyQ
	}
	return core.KeyUnknown
}
