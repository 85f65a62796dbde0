package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionFire           // Space - fire (shooter)
	ActionDeposit        // Space, E - unload carried water (collector)
	ActionAdvance        // N, Enter - start next level after a won round
	ActionRestart        // R key - restart game after a lost round
	ActionPause          // P - pause/unpause game
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionDeposit:
		return "Deposit"
	case ActionAdvance:
		return "Advance"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Command is the discrete command set the simulation consumes once per frame.
// Fire and Deposit are triggers: one activation per press.
type Command struct {
	MoveLeft  bool
	MoveRight bool
	Fire      bool
	Deposit   bool
}

// Command extracts the simulation command from the frame.
func (f InputFrame) Command() Command {
	return Command{
		MoveLeft:  f.Has(ActionLeft),
		MoveRight: f.Has(ActionRight),
		Fire:      f.Has(ActionFire),
		Deposit:   f.Has(ActionDeposit),
	}
}

// Direction returns -1, 0 or 1 for the horizontal movement requested.
// Left and right together cancel out.
func (c Command) Direction() float64 {
	var dir float64
	if c.MoveLeft {
		dir--
	}
	if c.MoveRight {
		dir++
	}
	return dir
}
