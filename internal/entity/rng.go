package entity

import "time"

// RNG is a small deterministic pseudo-random generator. Its whole state is
// one word so it can live inside a copied world value and in snapshots.
type RNG struct {
	State uint64
}

// NewRNG creates a generator from a seed. Zero is remapped so the sequence
// never degenerates.
func NewRNG(seed int64) RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return RNG{State: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.State = r.State*6364136223846793005 + 1442695040888963407
	return r.State
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Range returns a value in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Duration returns a duration uniformly drawn from [lo, hi].
func (r *RNG) Duration(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	span := uint64(hi-lo) + 1                //#nosec G115 -- hi > lo checked above
	return lo + time.Duration(r.Next()%span) //#nosec G115 -- bounded by span
}
