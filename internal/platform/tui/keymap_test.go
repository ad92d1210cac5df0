package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name       string
		msg        tea.KeyMsg
		wantAction core.Action
		wantSource core.InputSource
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionFlap, core.SourceKey},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap, core.SourceKey},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionFlap, core.SourceKey},
		{"k", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, core.ActionFlap, core.SourceKey},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionFlap, core.SourceButton},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, core.SourceKey},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, core.SourceKey},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot, core.SourceKey},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone, core.SourceKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, source := keys.MapKey(tt.msg)
			if action != tt.wantAction || source != tt.wantSource {
				t.Errorf("MapKey(%q) = %v/%v, expected %v/%v", tt.msg.String(), action, source, tt.wantAction, tt.wantSource)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		want core.Action
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionFlap},
		{"left release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, core.ActionNone},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.ActionNone},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, _ := MapMouse(tt.msg); got != tt.want {
				t.Errorf("MapMouse() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestHelpListsFlap(t *testing.T) {
	keys := DefaultKeyMap()
	if got := keys.ShortHelp()[0].Help().Desc; got != "flap" {
		t.Errorf("first help entry = %q, expected flap", got)
	}
}
