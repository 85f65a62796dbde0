package collide

import (
	"testing"

	"github.com/vovakirdan/aqua-arcade/internal/core"
	"github.com/vovakirdan/aqua-arcade/internal/entity"
)

func shot(x, y float64) entity.Projectile {
	return entity.Projectile{Box: core.NewBox(x, y, 4, 15)}
}

func TestResolveFirstMatchWins(t *testing.T) {
	// Two overlapping enemies; the shot touches both
	targets := []entity.Actor{
		entity.NewActor(100, 100, 40, 30),
		entity.NewActor(110, 105, 40, 30),
	}
	shots := []entity.Projectile{shot(120, 110)}

	var hits [][2]int
	n := Resolve(shots, targets, Retire(targets, func(s, tg int) {
		hits = append(hits, [2]int{s, tg})
	}))

	if n != 1 {
		t.Fatalf("Resolve() consumed %d shots, expected 1", n)
	}
	if len(hits) != 1 || hits[0] != [2]int{0, 0} {
		t.Errorf("hits = %v, expected only (0, 0)", hits)
	}
	if targets[0].Alive {
		t.Error("first target should be retired")
	}
	if !targets[1].Alive {
		t.Error("second overlapping target should survive: one kill per shot")
	}
	if !shots[0].Consumed {
		t.Error("shot should be consumed")
	}
}

func TestResolveTargetNotResolvedTwice(t *testing.T) {
	targets := []entity.Actor{entity.NewActor(100, 100, 40, 30)}
	shots := []entity.Projectile{shot(110, 110), shot(120, 110)}

	hits := 0
	n := Resolve(shots, targets, Retire(targets, func(int, int) { hits++ }))

	if n != 1 || hits != 1 {
		t.Fatalf("expected a single resolution, got consumed=%d hits=%d", n, hits)
	}
	if !shots[0].Consumed || shots[1].Consumed {
		t.Error("only the first shot should be consumed")
	}
}

func TestResolveIndependentPerShot(t *testing.T) {
	targets := []entity.Actor{
		entity.NewActor(0, 0, 40, 30),
		entity.NewActor(100, 0, 40, 30),
		entity.NewActor(200, 0, 40, 30),
	}
	shots := []entity.Projectile{shot(210, 10), shot(10, 10), shot(500, 10)}

	n := Resolve(shots, targets, Retire(targets, nil))
	if n != 2 {
		t.Fatalf("Resolve() consumed %d, expected 2", n)
	}
	if targets[0].Alive || !targets[1].Alive || targets[2].Alive {
		t.Errorf("unexpected target states: %+v", targets)
	}
	if shots[2].Consumed {
		t.Error("missing shot should stay active")
	}
}

func TestResolveSkipsRetiredAndConsumed(t *testing.T) {
	targets := []entity.Actor{{Box: core.NewBox(0, 0, 40, 30)}}
	shots := []entity.Projectile{shot(10, 10)}
	if Resolve(shots, targets, Retire(targets, nil)) != 0 {
		t.Error("retired targets must not match")
	}

	targets[0].Alive = true
	shots[0].Consumed = true
	if Resolve(shots, targets, Retire(targets, nil)) != 0 {
		t.Error("consumed shots must not match")
	}
}

func TestResolveRejectedHitKeepsShot(t *testing.T) {
	targets := []entity.Actor{entity.NewActor(0, 0, 60, 40)}
	shots := []entity.Projectile{shot(10, 10)}

	calls := 0
	n := Resolve(shots, targets, func(int, int) bool {
		calls++
		return false
	})
	if n != 0 || calls != 1 {
		t.Fatalf("consumed=%d calls=%d, expected 0 and 1", n, calls)
	}
	if shots[0].Consumed || !targets[0].Alive {
		t.Error("rejected hit should leave shot and target untouched")
	}
}
