package collector

import (
	"time"

	"github.com/vovakirdan/aqua-arcade/internal/core"
	"github.com/vovakirdan/aqua-arcade/internal/round"
)

// Snapshot is the read-only view of a world handed to presentation.
type Snapshot struct {
	Tick      uint64
	Level     int
	State     round.State
	Score     int
	Collected int
	Deposited int // This round
	Goal      int
	Carry     int
	MaxCarry  int
	TimeLeft  time.Duration
	RNGState  uint64
	Sprites   []core.Sprite
}

// Snapshot captures the current state of the world.
func (w World) Snapshot() Snapshot {
	sprites := make([]core.Sprite, 0, len(w.Zones)+len(w.Clouds)+len(w.Droplets)+1)
	for _, z := range w.Zones {
		sprites = append(sprites, core.Sprite{Kind: core.SpriteZone, Box: z})
	}
	for _, c := range w.Clouds {
		if c.Alive {
			sprites = append(sprites, core.Sprite{Kind: core.SpriteCloud, Box: c.Box})
		}
	}
	for _, d := range w.Droplets {
		if d.Active() {
			sprites = append(sprites, core.Sprite{Kind: core.SpriteDroplet, Box: d.Box})
		}
	}
	sprites = append(sprites, core.Sprite{Kind: core.SpritePlayer, Box: w.Player.Box})

	return Snapshot{
		Tick:      w.Tick,
		Level:     w.Round.Level,
		State:     w.Round.State,
		Score:     w.Tracker.Score,
		Collected: w.Tracker.Collected,
		Deposited: w.Deposited(),
		Goal:      w.Goal(),
		Carry:     w.Carry,
		MaxCarry:  w.MaxCarry,
		TimeLeft:  w.TimeLeft(),
		RNGState:  w.RNG.State,
		Sprites:   sprites,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Collected) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Deposited) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Carry)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MaxCarry)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TimeLeft)  //#nosec G115 -- hash computation
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + snap.RNGState
	return core.HashSprites(h, snap.Sprites)
}
