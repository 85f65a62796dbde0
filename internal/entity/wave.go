package entity

import "github.com/vovakirdan/aqua-arcade/internal/core"

// Direction values for a wave.
const (
	DirLeft  = -1.0
	DirRight = 1.0
)

// GridSpec describes the initial layout of a wave.
type GridSpec struct {
	Rows, Cols   int
	CellW, CellH float64
	Padding      float64
	OffsetX      float64
	OffsetY      float64
}

// Wave is a group of actors moving in lock-step. All live members share one
// horizontal direction; touching a side wall flips it and drops the group.
type Wave struct {
	Members   []Actor
	Direction float64
	Speed     float64
	DropStep  float64
}

// NewWave lays out a rows x cols grid moving right.
func NewWave(g GridSpec, speed, dropStep float64) Wave {
	members := make([]Actor, 0, g.Rows*g.Cols)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			members = append(members, NewActor(
				g.OffsetX+float64(col)*(g.CellW+g.Padding),
				g.OffsetY+float64(row)*(g.CellH+g.Padding),
				g.CellW,
				g.CellH,
			))
		}
	}
	return Wave{
		Members:   members,
		Direction: DirRight,
		Speed:     speed,
		DropStep:  dropStep,
	}
}

// Extent returns the horizontal span of live members.
// ok is false when no member is alive.
func (w *Wave) Extent() (left, right float64, ok bool) {
	for _, m := range w.Members {
		if !m.Alive {
			continue
		}
		if !ok {
			left, right, ok = m.Box.X, m.Box.Right(), true
			continue
		}
		left = min(left, m.Box.X)
		right = max(right, m.Box.Right())
	}
	return left, right, ok
}

// Step advances the wave by one update. If the extent computed before moving
// touches either wall, the direction flips and every live member drops by
// DropStep before the horizontal move. Returns true when a flip happened.
func (w *Wave) Step(field core.Playfield) bool {
	left, right, ok := w.Extent()
	if !ok {
		return false
	}

	flipped := right >= field.W || left <= 0
	if flipped {
		w.Direction = -w.Direction
	}

	dx := w.Speed * w.Direction
	for i := range w.Members {
		if !w.Members[i].Alive {
			continue
		}
		dy := 0.0
		if flipped {
			dy = w.DropStep
		}
		w.Members[i].Box = w.Members[i].Box.Translate(dx, dy)
	}
	return flipped
}

// Alive returns the number of live members.
func (w *Wave) Alive() int {
	return CountAlive(w.Members)
}

// Clone returns a copy that shares no memory with w.
func (w Wave) Clone() Wave {
	w.Members = CloneActors(w.Members)
	return w
}
