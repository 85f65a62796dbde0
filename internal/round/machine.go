// Package round implements the per-round state machine shared by the games.
//
//	Active -> Won   (objective met)
//	Active -> Lost  (lives or time exhausted)
//	Won    -> Active (Advance: next level)
//	Lost   -> Active (Restart: back to level 1)
//
// Terminal states only leave on an explicit command.
package round

// State is the phase of the current round.
type State string

const (
	Active State = "active"
	Won    State = "won"
	Lost   State = "lost"
)

// Machine tracks the round state and the level number.
type Machine struct {
	State State
	Level int
}

// New returns a machine in Active at level 1.
func New() Machine {
	return Machine{State: Active, Level: 1}
}

// Active reports whether the simulation should run.
func (m Machine) Active() bool {
	return m.State == Active
}

// Terminal reports whether the round has ended.
func (m Machine) Terminal() bool {
	return m.State == Won || m.State == Lost
}

// Win moves Active to Won. Returns false if the round was not active, so a
// win is reported once per round no matter how many triggers arrive.
func (m *Machine) Win() bool {
	if m.State != Active {
		return false
	}
	m.State = Won
	return true
}

// Lose moves Active to Lost. Returns false if the round was not active.
func (m *Machine) Lose() bool {
	if m.State != Active {
		return false
	}
	m.State = Lost
	return true
}

// Advance moves Won to Active on the next level.
func (m *Machine) Advance() bool {
	if m.State != Won {
		return false
	}
	m.State = Active
	m.Level++
	return true
}

// Restart moves Lost to Active on level 1.
func (m *Machine) Restart() bool {
	if m.State != Lost {
		return false
	}
	*m = New()
	return true
}
