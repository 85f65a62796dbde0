// Package collide resolves projectile-versus-actor overlaps with exhaustive
// pairwise AABB checks. Containers hold tens of entities, so no spatial
// index is kept.
package collide

import "github.com/vovakirdan/aqua-arcade/internal/entity"

// HitFunc is called for the first live target a shot overlaps.
// Returning true consumes the shot. The callback owns any change to the
// target, such as retiring it.
type HitFunc func(shot, target int) bool

// Resolve checks every active shot against the targets in container order.
// Each shot resolves against at most one target: the first live one it
// overlaps. A target retired by an earlier shot in the same pass is skipped
// by later shots. Returns the number of consumed shots.
func Resolve(shots []entity.Projectile, targets []entity.Actor, onHit HitFunc) int {
	consumed := 0
	for si := range shots {
		if shots[si].Consumed {
			continue
		}
		for ti := range targets {
			if !targets[ti].Alive || !shots[si].Box.Intersects(targets[ti].Box) {
				continue
			}
			if onHit(si, ti) {
				shots[si].Consumed = true
				consumed++
			}
			break
		}
	}
	return consumed
}

// Retire returns a HitFunc that marks the target not alive and consumes the
// shot, calling after for every resolved pair.
func Retire(targets []entity.Actor, after func(shot, target int)) HitFunc {
	return func(shot, target int) bool {
		targets[target].Alive = false
		if after != nil {
			after(shot, target)
		}
		return true
	}
}
