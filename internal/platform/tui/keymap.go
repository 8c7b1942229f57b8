package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fogscout/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to game actions. Shifted movement keys
// yield a direction plus ActionRun. isQuit reports a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	if key == "ctrl+c" {
		return []core.Action{core.ActionQuit}, true
	}

	switch key {
	case "w", "up":
		return []core.Action{core.ActionUp}, false
	case "s", "down":
		return []core.Action{core.ActionDown}, false
	case "a", "left":
		return []core.Action{core.ActionLeft}, false
	case "d", "right":
		return []core.Action{core.ActionRight}, false
	case "W", "shift+up":
		return []core.Action{core.ActionUp, core.ActionRun}, false
	case "S", "shift+down":
		return []core.Action{core.ActionDown, core.ActionRun}, false
	case "A", "shift+left":
		return []core.Action{core.ActionLeft, core.ActionRun}, false
	case "D", "shift+right":
		return []core.Action{core.ActionRight, core.ActionRun}, false
	case " ":
		return []core.Action{core.ActionRun}, false
	case "q", ",":
		return []core.Action{core.ActionAimLeft}, false
	case "e", ".":
		return []core.Action{core.ActionAimRight}, false
	case "f":
		return []core.Action{core.ActionInteract}, false
	case "tab":
		return []core.Action{core.ActionCycle}, false
	case "enter":
		return []core.Action{core.ActionConfirm}, false
	case "b", "esc":
		return []core.Action{core.ActionBack}, false
	case "p":
		return []core.Action{core.ActionPause}, false
	case "r":
		return []core.Action{core.ActionRestart}, false
	}

	return nil, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		frame.Set(a)
	}
	return isQuit
}

// MapMouseToFrame records pointer motion and clicks. A left click also
// confirms the selected pickup.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	frame.SetPointer(msg.X, msg.Y)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.Set(core.ActionInteract)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
