package shooter

import (
	"github.com/vovakirdan/aqua-arcade/internal/core"
	"github.com/vovakirdan/aqua-arcade/internal/round"
)

// Snapshot is the read-only view of a world handed to presentation.
// Retired actors are never included.
type Snapshot struct {
	Tick     uint64
	Level    int
	State    round.State
	Score    int
	Lives    int
	MaxLives int
	Enemies  int // Live wave members
	Reload   int64
	Sprites  []core.Sprite
}

// Snapshot captures the current state of the world.
func (w World) Snapshot() Snapshot {
	sprites := make([]core.Sprite, 0, 1+len(w.Wave.Members)+len(w.Projectiles))
	sprites = append(sprites, core.Sprite{Kind: core.SpritePlayer, Box: w.Player.Box})
	for _, m := range w.Wave.Members {
		if m.Alive {
			sprites = append(sprites, core.Sprite{Kind: core.SpriteEnemy, Box: m.Box})
		}
	}
	for _, p := range w.Projectiles {
		if p.Active() {
			sprites = append(sprites, core.Sprite{Kind: core.SpriteShot, Box: p.Box})
		}
	}

	return Snapshot{
		Tick:     w.Tick,
		Level:    w.Round.Level,
		State:    w.Round.State,
		Score:    w.Tracker.Score,
		Lives:    w.Lives,
		MaxLives: w.cfg.Gameplay.MaxLives,
		Enemies:  w.Wave.Alive(),
		Reload:   int64(w.Reload),
		Sprites:  sprites,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Level)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Enemies) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Reload)  //#nosec G115 -- hash computation
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	return core.HashSprites(h, snap.Sprites)
}
