package entity

import "github.com/vovakirdan/aqua-arcade/internal/core"

// Projectile is a transient moving actor: a shot in the shooter, a droplet
// in the collector.
type Projectile struct {
	Box      core.Box
	VX, VY   float64
	Consumed bool
}

// Step advances the projectile by its velocity.
func (p *Projectile) Step() {
	p.Box = p.Box.Translate(p.VX, p.VY)
}

// Active reports whether the projectile still takes part in the simulation.
func (p Projectile) Active() bool {
	return !p.Consumed
}

// StepProjectiles moves every active projectile and consumes those for which
// gone reports true afterwards.
func StepProjectiles(ps []Projectile, gone func(core.Box) bool) {
	for i := range ps {
		if ps[i].Consumed {
			continue
		}
		ps[i].Step()
		if gone(ps[i].Box) {
			ps[i].Consumed = true
		}
	}
}

// PurgeProjectiles drops consumed projectiles, reusing the backing array.
func PurgeProjectiles(ps []Projectile) []Projectile {
	kept := ps[:0]
	for _, p := range ps {
		if !p.Consumed {
			kept = append(kept, p)
		}
	}
	return kept
}

// CloneProjectiles returns an independent copy of the slice.
func CloneProjectiles(ps []Projectile) []Projectile {
	if ps == nil {
		return nil
	}
	return append(make([]Projectile, 0, len(ps)), ps...)
}
