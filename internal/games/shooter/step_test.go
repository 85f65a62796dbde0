package shooter

import (
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/aqua-arcade/internal/config"
	"github.com/vovakirdan/aqua-arcade/internal/core"
	"github.com/vovakirdan/aqua-arcade/internal/entity"
	"github.com/vovakirdan/aqua-arcade/internal/round"
)

const testFrame = 10 * time.Millisecond

func newTestWorld() World {
	return NewWorld(config.DefaultShooterConfig(), testFrame)
}

func countKind(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// retireAllBut leaves only the member at keep alive.
func retireAllBut(w *World, keep int) {
	for i := range w.Wave.Members {
		w.Wave.Members[i].Alive = i == keep
	}
}

func TestNewWorldLayout(t *testing.T) {
	w := newTestWorld()

	if w.Player.Box.X != 375 || w.Player.Box.Y != 530 {
		t.Errorf("player at (%v, %v), expected (375, 530)", w.Player.Box.X, w.Player.Box.Y)
	}
	if len(w.Wave.Members) != 32 {
		t.Errorf("expected a 4x8 wave, got %d members", len(w.Wave.Members))
	}
	if w.Lives != 3 || w.Round.Level != 1 || !w.Round.Active() {
		t.Errorf("unexpected start state: lives=%d level=%d state=%s", w.Lives, w.Round.Level, w.Round.State)
	}
}

func TestPlayerStaysInPlayfield(t *testing.T) {
	w := newTestWorld()

	for i := 0; i < 200; i++ {
		w, _ = Step(w, core.Command{MoveLeft: true})
		if w.Player.Box.X < 0 {
			t.Fatalf("player left the playfield: x=%v", w.Player.Box.X)
		}
	}
	if w.Player.Box.X != 0 {
		t.Errorf("player x = %v, expected 0", w.Player.Box.X)
	}

	// Opposite directions cancel
	w, _ = Step(w, core.Command{MoveLeft: true, MoveRight: true})
	if w.Player.Box.X != 0 {
		t.Errorf("left+right should not move, x=%v", w.Player.Box.X)
	}

	for i := 0; i < 200; i++ {
		w, _ = Step(w, core.Command{MoveRight: true})
	}
	if w.Player.Box.Right() != 800 {
		t.Errorf("player right edge = %v, expected 800", w.Player.Box.Right())
	}
}

func TestFireCooldown(t *testing.T) {
	w := newTestWorld()
	fire := core.Command{Fire: true}

	w, _ = Step(w, fire)
	if len(w.Projectiles) != 1 {
		t.Fatalf("expected first shot to fire, got %d projectiles", len(w.Projectiles))
	}
	shot := w.Projectiles[0].Box
	if shot.CenterX() != w.Player.Box.CenterX() {
		t.Errorf("shot centered at %v, expected %v", shot.CenterX(), w.Player.Box.CenterX())
	}

	// 29 more frames is 290ms: still reloading
	for i := 0; i < 29; i++ {
		w, _ = Step(w, fire)
	}
	if len(w.Projectiles) != 1 {
		t.Fatalf("fired during cooldown: %d projectiles", len(w.Projectiles))
	}

	// 300ms after the first shot
	w, _ = Step(w, fire)
	if len(w.Projectiles) != 2 {
		t.Errorf("expected second shot at 300ms, got %d projectiles", len(w.Projectiles))
	}
}

func TestProjectileLeavesTop(t *testing.T) {
	w := newTestWorld()
	w.Projectiles = []entity.Projectile{{Box: core.NewBox(10, 5, 4, 15), VY: -7}}

	w, _ = Step(w, core.Command{})
	if len(w.Projectiles) != 0 {
		t.Errorf("projectile with top edge <= 0 should be purged, got %+v", w.Projectiles)
	}
}

func TestStepDoesNotMutateInput(t *testing.T) {
	w := newTestWorld()
	first := w.Wave.Members[0].Box

	next, _ := Step(w, core.Command{Fire: true, MoveLeft: true})

	if len(w.Projectiles) != 0 {
		t.Error("Step appended to the previous world's projectiles")
	}
	if w.Wave.Members[0].Box != first {
		t.Error("Step moved the previous world's wave")
	}
	if w.Tick != 0 || next.Tick != 1 {
		t.Errorf("tick: prev=%d next=%d, expected 0 and 1", w.Tick, next.Tick)
	}
}

func TestHitDestroysEnemy(t *testing.T) {
	w := newTestWorld()
	target := w.Wave.Members[0].Box
	w.Projectiles = []entity.Projectile{
		{Box: core.NewBox(target.X+10, target.Y+10, 4, 15), VY: -7},
		{Box: core.NewBox(target.X+20, target.Y+10, 4, 15), VY: -7},
	}

	w, events := Step(w, core.Command{})

	if got := countKind(events, core.EventEnemyDestroyed); got != 1 {
		t.Fatalf("expected one kill, got %d", got)
	}
	if w.Tracker.Score != 10 {
		t.Errorf("score = %d, expected 10", w.Tracker.Score)
	}
	if len(w.Wave.Members) != 31 {
		t.Errorf("retired enemy should be purged, %d members left", len(w.Wave.Members))
	}
	// The second shot found no live target and keeps flying
	if len(w.Projectiles) != 1 {
		t.Errorf("expected the second shot to survive, got %d projectiles", len(w.Projectiles))
	}
}

func TestOverlappingEnemiesOneKillPerShot(t *testing.T) {
	w := newTestWorld()
	retireAllBut(&w, 0)
	w.Wave.Members[1] = w.Wave.Members[0]
	target := w.Wave.Members[0].Box
	w.Projectiles = []entity.Projectile{{Box: core.NewBox(target.X+10, target.Y+10, 4, 15), VY: -7}}

	w, events := Step(w, core.Command{})

	if got := countKind(events, core.EventEnemyDestroyed); got != 1 {
		t.Errorf("expected one kill, got %d", got)
	}
	if w.Wave.Alive() != 1 {
		t.Errorf("expected one overlapping enemy to survive, %d alive", w.Wave.Alive())
	}
	if countKind(events, core.EventRoundWon) != 0 {
		t.Error("round should not be won with an enemy left")
	}
}

func TestClearingWaveWinsOnce(t *testing.T) {
	w := newTestWorld()
	retireAllBut(&w, 5)
	target := w.Wave.Members[5].Box
	w.Projectiles = []entity.Projectile{{Box: core.NewBox(target.X+10, target.Y+10, 4, 15), VY: -7}}

	w, events := Step(w, core.Command{})

	if got := countKind(events, core.EventRoundWon); got != 1 {
		t.Fatalf("expected RoundWon once, got %d", got)
	}
	if w.Round.State != round.Won {
		t.Fatalf("state = %s, expected won", w.Round.State)
	}
	if ev := events[len(events)-1]; ev.Score != 10 || ev.Level != 1 {
		t.Errorf("RoundWon carries score=%d level=%d, expected 10 and 1", ev.Score, ev.Level)
	}

	for i := 0; i < 10; i++ {
		var more []core.Event
		w, more = Step(w, core.Command{Fire: true})
		if len(more) != 0 {
			t.Fatalf("terminal round emitted %v", more)
		}
	}
	if len(w.Projectiles) != 0 {
		t.Error("terminal round should not fire")
	}
}

func TestBreachCostsLife(t *testing.T) {
	w := newTestWorld()
	w.Wave.Members[0].Box.Y = w.Player.Box.Y - w.Wave.Members[0].Box.H

	w, events := Step(w, core.Command{})

	if countKind(events, core.EventLifeLost) != 1 {
		t.Fatalf("expected one LifeLost, got %v", events)
	}
	if w.Lives != 2 {
		t.Errorf("lives = %d, expected 2", w.Lives)
	}
	if len(w.Wave.Members) != 31 {
		t.Errorf("breaching enemy should be retired, %d members left", len(w.Wave.Members))
	}
	if !w.Round.Active() {
		t.Error("round should continue with lives left")
	}
}

func TestLosingFreezesScore(t *testing.T) {
	w := newTestWorld()
	w.Lives = 1
	w.Tracker.Score = 50
	for i := 0; i < 3; i++ {
		w.Wave.Members[i].Box.Y = w.Player.Box.Y
	}

	w, events := Step(w, core.Command{})

	if countKind(events, core.EventLifeLost) != 1 {
		t.Errorf("no breaches should be processed after the last life, got %v", events)
	}
	if countKind(events, core.EventRoundLost) != 1 {
		t.Fatalf("expected RoundLost, got %v", events)
	}
	if w.Lives != 0 {
		t.Errorf("lives = %d, expected 0", w.Lives)
	}

	before := w.Snapshot()
	for i := 0; i < 30; i++ {
		w, _ = Step(w, core.Command{Fire: true, MoveRight: true})
	}
	after := w.Snapshot()
	if after.Score != 50 {
		t.Errorf("score changed after loss: %d", after.Score)
	}
	if before.Hash() != after.Hash() {
		t.Error("world changed while the round was lost")
	}
}

func TestAdvanceAndRestart(t *testing.T) {
	w := newTestWorld()

	// Advance only leaves Won
	if _, events := Advance(w); events != nil {
		t.Fatal("Advance from an active round should do nothing")
	}

	retireAllBut(&w, 0)
	w.Wave.Members[0].Alive = false
	w, _ = Step(w, core.Command{})
	if w.Round.State != round.Won {
		t.Fatalf("state = %s, expected won", w.Round.State)
	}
	w.Tracker.Score = 320

	w, events := Advance(w)
	if len(events) != 1 || events[0].Kind != core.EventLevelStarted || events[0].Level != 2 {
		t.Fatalf("expected LevelStarted for level 2, got %v", events)
	}
	if w.Lives != 4 {
		t.Errorf("lives = %d, expected bonus life", w.Lives)
	}
	if len(w.Wave.Members) != 40 {
		t.Errorf("level 2 wave has %d members, expected 5x8", len(w.Wave.Members))
	}
	if math.Abs(w.Wave.Speed-1.3) > 1e-9 {
		t.Errorf("level 2 speed = %v, expected 1.3", w.Wave.Speed)
	}
	if w.Tracker.Score != 320 {
		t.Errorf("score should carry over, got %d", w.Tracker.Score)
	}

	// Bonus is capped
	w.Lives = 5
	w.Round.State = round.Won
	w, _ = Advance(w)
	if w.Lives != 5 {
		t.Errorf("lives = %d, expected cap at 5", w.Lives)
	}

	w.Round.State = round.Lost
	w, events = Restart(w)
	if len(events) != 1 || w.Round.Level != 1 || w.Tracker.Score != 0 || w.Lives != 3 {
		t.Errorf("restart: level=%d score=%d lives=%d events=%v", w.Round.Level, w.Tracker.Score, w.Lives, events)
	}
	if len(w.Wave.Members) != 32 {
		t.Errorf("restart wave has %d members", len(w.Wave.Members))
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	w := newTestWorld()
	last := 0
	for i := 0; i < 3000; i++ {
		cmd := core.Command{Fire: true, MoveLeft: i%200 < 100, MoveRight: i%200 >= 100}
		w, _ = Step(w, cmd)
		if w.Tracker.Score < last {
			t.Fatalf("score dropped from %d to %d at step %d", last, w.Tracker.Score, i)
		}
		last = w.Tracker.Score
		if w.Round.Terminal() {
			break
		}
	}
	if last == 0 {
		t.Error("expected some hits over 3000 steps of firing")
	}
}
