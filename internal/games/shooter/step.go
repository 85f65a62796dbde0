package shooter

import (
	"github.com/vovakirdan/aqua-arcade/internal/collide"
	"github.com/vovakirdan/aqua-arcade/internal/core"
	"github.com/vovakirdan/aqua-arcade/internal/entity"
)

// Step advances the world by one frame. Order: fire, move player, move
// projectiles, move wave, resolve hits, boundary breach, win check, purge.
// A world whose round has ended is returned unchanged.
func Step(prev World, cmd core.Command) (World, []core.Event) {
	if !prev.Round.Active() {
		return prev.Clone(), nil
	}

	w := prev.Clone()
	var events []core.Event
	emit := func(ev core.Event) {
		ev.Level = w.Round.Level
		w.Tracker.Apply(ev)
		if ev.Kind == core.EventRoundWon || ev.Kind == core.EventRoundLost {
			ev.Score = w.Tracker.Score
		}
		events = append(events, ev)
	}

	w.Tick++
	w.Elapsed += w.Frame
	w.Reload = max(0, w.Reload-w.Frame)

	if cmd.Fire && w.Reload == 0 {
		w.fire()
	}

	w.Player.Move(cmd.Direction(), w.Field)

	entity.StepProjectiles(w.Projectiles, func(b core.Box) bool {
		return b.Y <= 0
	})

	w.Wave.Step(w.Field)

	collide.Resolve(w.Projectiles, w.Wave.Members, collide.Retire(w.Wave.Members, func(_, _ int) {
		emit(core.Event{Kind: core.EventEnemyDestroyed})
	}))

	if w.breach(emit) {
		emit(core.Event{Kind: core.EventRoundLost})
	} else if w.Wave.Alive() == 0 && w.Round.Win() {
		emit(core.Event{Kind: core.EventRoundWon})
	}

	w.Projectiles = entity.PurgeProjectiles(w.Projectiles)
	w.Wave.Members = entity.PurgeActors(w.Wave.Members)

	return w, events
}

// fire spawns a projectile at the top center of the player.
func (w *World) fire() {
	p := w.cfg.Projectile
	box := w.Player.Box
	w.Projectiles = append(w.Projectiles, entity.Projectile{
		Box: core.NewBox(box.CenterX()-p.Width/2, box.Y-p.Height, p.Width, p.Height),
		VY:  -p.Speed,
	})
	w.Reload = p.Cooldown
}

// breach retires every live enemy that reached the player's line, costing one
// life each. Returns true when the last life was lost.
func (w *World) breach(emit func(core.Event)) bool {
	line := w.Player.Box.Y
	for i := range w.Wave.Members {
		m := &w.Wave.Members[i]
		if !m.Alive || m.Box.Bottom() < line {
			continue
		}
		m.Alive = false
		w.Lives--
		emit(core.Event{Kind: core.EventLifeLost})
		if w.Lives <= 0 {
			w.Lives = 0
			return w.Round.Lose()
		}
	}
	return false
}
