package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Flap       key.Binding
	Start      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Start, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Start},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/up", "flap"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action and the input source
// that produced it. Unbound keys map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Action, core.InputSource) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, core.SourceKey
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot, core.SourceKey
	case key.Matches(msg, k.Flap):
		return core.ActionFlap, core.SourceKey
	case key.Matches(msg, k.Start):
		return core.ActionFlap, core.SourceButton
	}
	return core.ActionNone, core.SourceKey
}

// MapMouse translates a mouse message. A left-button press anywhere flaps.
func MapMouse(msg tea.MouseMsg) (core.Action, core.InputSource) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionFlap, core.SourcePointer
	}
	return core.ActionNone, core.SourcePointer
}
