// Package scoring accumulates score and progress counters from simulation
// events. Counters only ever grow.
package scoring

import "github.com/vovakirdan/aqua-arcade/internal/core"

// Points holds the fixed value of each scoring event.
type Points struct {
	EnemyDestroyed int
	DropletCaught  int
	PerDeposited   int // Per unit of water
}

// DefaultPoints returns the standard point table.
func DefaultPoints() Points {
	return Points{
		EnemyDestroyed: 10,
		DropletCaught:  5,
		PerDeposited:   25,
	}
}

// Tracker holds the counters exposed to the presentation layer.
type Tracker struct {
	Points    Points
	Score     int
	Collected int
	Deposited int
}

// NewTracker creates a tracker with zeroed counters.
func NewTracker(p Points) Tracker {
	return Tracker{Points: p}
}

// Apply updates counters for one event and returns the points awarded.
// Events that carry no score are ignored.
func (t *Tracker) Apply(ev core.Event) int {
	var awarded int
	switch ev.Kind {
	case core.EventEnemyDestroyed:
		awarded = t.Points.EnemyDestroyed
	case core.EventDropletCaught:
		t.Collected++
		awarded = t.Points.DropletCaught
	case core.EventWaterDeposited:
		if ev.Amount <= 0 {
			return 0
		}
		t.Deposited += ev.Amount
		awarded = ev.Amount * t.Points.PerDeposited
	default:
		return 0
	}
	if awarded > 0 {
		t.Score += awarded
	}
	return awarded
}

// ApplyAll applies events in order and returns the total awarded.
func (t *Tracker) ApplyAll(events []core.Event) int {
	total := 0
	for _, ev := range events {
		total += t.Apply(ev)
	}
	return total
}

// Reset zeroes the counters, keeping the point table.
func (t *Tracker) Reset() {
	*t = NewTracker(t.Points)
}
