package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blastpong/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToFrame updates an input frame based on a key message.
// Some keys set more than one action: w/up steers the duel paddle and
// doubles as jump in the scroller, space fires in the duel and jumps in
// the scroller, and shifted directions carry the run modifier with them.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		frame.Set(core.ActionQuit)
		return true
	}

	switch key {
	case "w", "up":
		frame.Set(core.ActionUp)
		frame.Set(core.ActionJump)
	case "s", "down":
		frame.Set(core.ActionDown)
	case "a", "left":
		frame.Set(core.ActionLeft)
	case "d", "right":
		frame.Set(core.ActionRight)
	case "A", "shift+left":
		frame.Set(core.ActionLeft)
		frame.Set(core.ActionRun)
	case "D", "shift+right":
		frame.Set(core.ActionRight)
		frame.Set(core.ActionRun)
	case " ":
		frame.Set(core.ActionJump)
		frame.Set(core.ActionShoot)
	case "f":
		frame.Set(core.ActionShoot)
	case "x":
		frame.Set(core.ActionAttack)
	case "enter":
		frame.Set(core.ActionConfirm)
	case "b":
		frame.Set(core.ActionBack)
	case "p", "esc":
		frame.Set(core.ActionPause)
	case "r":
		frame.Set(core.ActionRestart)
	}

	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
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
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
