// Package entity holds the simulated actors shared by the games: players,
// wave members, projectiles, droplets and the clouds that spawn them.
//
// Containers are plain slices in spawn order. Retired entries stay in place
// until Purge is called so that indexes remain stable during a step.
package entity

import "github.com/vovakirdan/aqua-arcade/internal/core"

// Actor is any simulated entity with a position and size.
type Actor struct {
	Box   core.Box
	Alive bool
}

// NewActor creates a live actor.
func NewActor(x, y, w, h float64) Actor {
	return Actor{Box: core.NewBox(x, y, w, h), Alive: true}
}

// Player is the actor controlled by commands.
type Player struct {
	Actor
	Speed float64
}

// Move shifts the player horizontally by dir*Speed, clamped to the playfield.
func (p *Player) Move(dir float64, field core.Playfield) {
	if dir == 0 {
		return
	}
	p.Box.X = field.ClampX(p.Box.X+dir*p.Speed, p.Box.W)
}

// CountAlive returns the number of live actors.
func CountAlive(actors []Actor) int {
	n := 0
	for _, a := range actors {
		if a.Alive {
			n++
		}
	}
	return n
}

// PurgeActors drops retired actors, reusing the backing array.
func PurgeActors(actors []Actor) []Actor {
	kept := actors[:0]
	for _, a := range actors {
		if a.Alive {
			kept = append(kept, a)
		}
	}
	return kept
}

// CloneActors returns an independent copy of the slice.
func CloneActors(actors []Actor) []Actor {
	if actors == nil {
		return nil
	}
	return append(make([]Actor, 0, len(actors)), actors...)
}
