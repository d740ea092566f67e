package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// In two-player mode the keyboard is split: arrow keys steer Player 1
// and WASD steers Player 2. In single-player mode WASD doubles as a
// second set of Player 1 keys.
type KeyMapper struct {
	twoPlayer bool
}

// NewKeyMapper creates a key mapper for single-player bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// NewDuelKeyMapper creates a key mapper with the split duel bindings.
func NewDuelKeyMapper() *KeyMapper {
	return &KeyMapper{twoPlayer: true}
}

// MapKey translates a key message to a player and an action.
// Returns the target player, the action (may be ActionNone) and whether
// the key was a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (player core.PlayerID, action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.Player1, core.ActionQuit, true
	}

	// Arrow keys always belong to Player 1.
	switch key {
	case "up":
		return core.Player1, core.ActionUp, false
	case "down":
		return core.Player1, core.ActionDown, false
	case "left":
		return core.Player1, core.ActionLeft, false
	case "right":
		return core.Player1, core.ActionRight, false
	}

	// WASD: Player 2 in a duel, extra Player 1 keys otherwise.
	wasdPlayer := core.Player1
	if km.twoPlayer {
		wasdPlayer = core.Player2
	}
	switch key {
	case "w":
		return wasdPlayer, core.ActionUp, false
	case "s":
		return wasdPlayer, core.ActionDown, false
	case "a":
		return wasdPlayer, core.ActionLeft, false
	case "d":
		return wasdPlayer, core.ActionRight, false
	}

	// Shared control keys
	switch key {
	case "enter":
		return core.Player1, core.ActionConfirm, false
	case "b", "esc":
		return core.Player1, core.ActionBack, false
	case "p":
		return core.Player1, core.ActionPause, false
	case "r":
		return core.Player1, core.ActionRestart, false
	}

	return core.Player1, core.ActionNone, false
}

// MapKeyToMultiFrame updates a multi-input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	player, action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(player, action)
	}
	return isQuit
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
