package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tggbb/SnakeNeo/internal/core"
	"github.com/tggbb/SnakeNeo/internal/games/snake"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	admin bool // enables the cheat keys
}

// NewKeyMapper creates a new key mapper. Admin enables the cheat bindings.
func NewKeyMapper(admin bool) *KeyMapper {
	return &KeyMapper{admin: admin}
}

// Admin reports whether cheat keys are bound.
func (km *KeyMapper) Admin() bool {
	return km.admin
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "R":
		return core.ActionSoftRestart, false
	case "m":
		return core.ActionCycleMode, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapAdminKey translates a key to a cheat.
// It reports false when admin mode is off or the key is unbound.
func (km *KeyMapper) MapAdminKey(msg tea.KeyMsg) (snake.Cheat, bool) {
	if !km.admin {
		return "", false
	}

	switch msg.String() {
	case "g":
		return snake.CheatToggleGod, true
	case "t":
		return snake.CheatToggleWrap, true
	case "o":
		return snake.CheatObstacles, true
	case "1":
		return snake.CheatSpawnGolden, true
	case "2":
		return snake.CheatSpawnPortal, true
	case "x":
		return snake.CheatAddScore, true
	case "]":
		return snake.CheatGrow, true
	case "[":
		return snake.CheatShrink, true
	case "f":
		return snake.CheatTeleportFood, true
	case "+", "=":
		return snake.CheatSpeedUp, true
	case "-", "_":
		return snake.CheatSpeedDown, true
	}

	return "", false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
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
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
