package core

// EventKind identifies something that happened during a simulation step.
type EventKind int

const (
	EventEnemyDestroyed EventKind = iota // A wave member was shot
	EventDropletCaught                   // A droplet landed in the bucket
	EventWaterDeposited                  // Carried water unloaded, Amount = units
	EventLifeLost                        // An enemy breached the player's line
	EventRoundWon                        // Round cleared, Score = final score
	EventRoundLost                       // Round lost, Score = final score
	EventLevelStarted                    // A new round began, Level = level
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventDropletCaught:
		return "droplet_caught"
	case EventWaterDeposited:
		return "water_deposited"
	case EventLifeLost:
		return "life_lost"
	case EventRoundWon:
		return "round_won"
	case EventRoundLost:
		return "round_lost"
	case EventLevelStarted:
		return "level_started"
	default:
		return "unknown"
	}
}

// Event is emitted by a step and consumed by the scoring tracker and the
// presentation layer.
type Event struct {
	Kind   EventKind
	Amount int // Units for deposits
	Score  int // Score at the time of a round event
	Level  int // Level the event happened on
}

// IsTerminal reports whether the event ends a round.
func (e Event) IsTerminal() bool {
	return e.Kind == EventRoundWon || e.Kind == EventRoundLost
}
