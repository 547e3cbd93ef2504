package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// It also implements help.KeyMap for the footer.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// NewKeyMap builds the bindings from configuration.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	return KeyMap{
		Up:      binding(cfg.Up, "up"),
		Down:    binding(cfg.Down, "down"),
		Left:    binding(cfg.Left, "left"),
		Right:   binding(cfg.Right, "right"),
		Pause:   binding(cfg.Pause, "pause"),
		Restart: binding(cfg.Restart, "restart"),
		Quit:    binding(cfg.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.Up):
		return core.ActionUp, false
	case key.Matches(msg, km.Down):
		return core.ActionDown, false
	case key.Matches(msg, km.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// ShortHelp returns the bindings shown in the footer.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Left, km.Right, km.Pause, km.Restart, km.Quit}
}

// FullHelp returns the bindings grouped for the expanded help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right},
		{km.Pause, km.Restart, km.Quit},
	}
}
