package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snek/internal/core"
)

// KeyMapper translates terminal key events into game actions. Arrows,
// WASD and vi keys all steer; the mapping is fixed because the game has
// a single local player.
type KeyMapper struct {
	keys map[string]core.Action
}

func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		keys: map[string]core.Action{
			"up":    core.ActionUp,
			"down":  core.ActionDown,
			"left":  core.ActionLeft,
			"right": core.ActionRight,

			"w": core.ActionUp,
			"s": core.ActionDown,
			"a": core.ActionLeft,
			"d": core.ActionRight,

			"k": core.ActionUp,
			"j": core.ActionDown,
			"h": core.ActionLeft,
			"l": core.ActionRight,

			"p":   core.ActionPause,
			"esc": core.ActionPause,

			"enter": core.ActionConfirm,
			" ":     core.ActionConfirm,
			"r":     core.ActionConfirm,

			"q":      core.ActionQuit,
			"ctrl+c": core.ActionQuit,
		},
	}
}

// Map returns the action bound to the key, or ActionNone.
func (m *KeyMapper) Map(msg tea.KeyMsg) core.Action {
	if a, ok := m.keys[msg.String()]; ok {
		return a
	}
	return core.ActionNone
}
