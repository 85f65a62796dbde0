package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/aqua-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ":
		return core.ActionFire, false
	case "e":
		return core.ActionDeposit, false
	case "n", "enter":
		return core.ActionAdvance, false
	case "r":
		return core.ActionRestart, false
	case "p":
		return core.ActionPause, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Space is the primary button in every game, so it also requests a deposit.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionFire:
		frame.Set(core.ActionFire)
		frame.Set(core.ActionDeposit)
	default:
		frame.Set(action)
	}
	return isQuit
}

// Steering turns the repeated key presses a terminal sends for a held key
// into a continuous direction. Each press holds the direction for a few
// ticks; pressing the other direction replaces it.
type Steering struct {
	action core.Action
	left   int
	hold   int
}

// NewSteering creates steering that holds each press for hold ticks.
func NewSteering(hold int) Steering {
	return Steering{hold: max(1, hold)}
}

// Press registers a direction key. Other actions are ignored.
func (s *Steering) Press(a core.Action) {
	if a != core.ActionLeft && a != core.ActionRight {
		return
	}
	s.action = a
	s.left = s.hold
}

// Apply adds the held direction to frame and counts down one tick.
func (s *Steering) Apply(frame *core.InputFrame) {
	if s.left <= 0 {
		return
	}
	frame.Set(s.action)
	s.left--
}

// Release drops any held direction.
func (s *Steering) Release() {
	s.left = 0
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
