package collector

import (
	"github.com/vovakirdan/aqua-arcade/internal/collide"
	"github.com/vovakirdan/aqua-arcade/internal/core"
	"github.com/vovakirdan/aqua-arcade/internal/entity"
)

// Step advances the world by one frame. Order: move player, tick clouds,
// move droplets, resolve catches, deposit, purge, then check time and goal.
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
		if ev.IsTerminal() {
			ev.Score = w.Tracker.Score
		}
		events = append(events, ev)
	}

	w.Tick++
	w.Elapsed += w.Frame

	w.Player.Move(cmd.Direction(), w.Field)

	w.tickClouds()

	entity.StepProjectiles(w.Droplets, func(b core.Box) bool {
		return b.Y >= w.Field.H
	})

	bucket := []entity.Actor{w.Player.Actor}
	collide.Resolve(w.Droplets, bucket, func(_, _ int) bool {
		if w.Carry >= w.MaxCarry {
			return false
		}
		w.Carry++
		emit(core.Event{Kind: core.EventDropletCaught})
		return true
	})

	if cmd.Deposit && w.Carry > 0 && w.InZone() {
		emit(core.Event{Kind: core.EventWaterDeposited, Amount: w.Carry})
		w.Carry = 0
	}

	w.Droplets = entity.PurgeProjectiles(w.Droplets)

	switch {
	case w.Elapsed >= w.cfg.Gameplay.RoundTime:
		if w.Round.Lose() {
			emit(core.Event{Kind: core.EventRoundLost})
		}
	case w.Deposited() >= w.Goal():
		if w.Round.Win() {
			emit(core.Event{Kind: core.EventRoundWon})
		}
	}

	return w, events
}

// tickClouds runs the global spawn timer and lets every cloud emit.
func (w *World) tickClouds() {
	if w.CloudTimer.Tick(w.Frame) && len(w.Clouds) < w.MaxClouds() {
		w.spawnCloud()
	}

	c := w.cfg.Clouds
	d := w.cfg.Droplets
	speed := d.SpeedForLevel(w.Round.Level)
	for i := range w.Clouds {
		cloud := &w.Clouds[i]
		if !cloud.Tick(w.Frame, &w.RNG, c.DropIntervalMin, c.DropIntervalMax) {
			continue
		}
		w.Droplets = append(w.Droplets, entity.Projectile{
			Box: core.NewBox(cloud.Box.CenterX()-d.Width/2, cloud.Box.Bottom(), d.Width, d.Height),
			VY:  speed,
		})
	}
}
