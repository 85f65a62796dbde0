package entity

import "time"

// Spawner is a stationary actor that emits a new transient actor whenever the
// time accumulated since its last emission reaches its current interval.
type Spawner struct {
	Actor
	Elapsed  time.Duration
	Interval time.Duration
}

// Tick accumulates dt and reports whether the spawner emits this frame.
// After an emission the interval is re-rolled in [lo, hi].
func (s *Spawner) Tick(dt time.Duration, rng *RNG, lo, hi time.Duration) bool {
	s.Elapsed += dt
	if s.Elapsed < s.Interval {
		return false
	}
	s.Elapsed = 0
	s.Interval = rng.Duration(lo, hi)
	return true
}

// Timer is a repeating countdown used for global spawn rules.
type Timer struct {
	Elapsed time.Duration
	Period  time.Duration
}

// Tick accumulates dt and reports whether the period elapsed.
// A non-positive period never fires.
func (t *Timer) Tick(dt time.Duration) bool {
	if t.Period <= 0 {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed < t.Period {
		return false
	}
	t.Elapsed -= t.Period
	return true
}

// CloneSpawners returns an independent copy of the slice.
func CloneSpawners(ss []Spawner) []Spawner {
	if ss == nil {
		return nil
	}
	return append(make([]Spawner, 0, len(ss)), ss...)
}
