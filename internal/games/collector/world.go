package collector

import (
	"time"

	"github.com/vovakirdan/aqua-arcade/internal/config"
	"github.com/vovakirdan/aqua-arcade/internal/core"
	"github.com/vovakirdan/aqua-arcade/internal/entity"
	"github.com/vovakirdan/aqua-arcade/internal/round"
	"github.com/vovakirdan/aqua-arcade/internal/scoring"
)

// World is the complete simulation state of one Rain Catcher session.
type World struct {
	Field    core.Playfield
	Player   entity.Player
	Carry    int
	MaxCarry int
	Zones    [2]core.Box // Left and right deposit areas

	Clouds     []entity.Spawner
	Droplets   []entity.Projectile
	CloudTimer entity.Timer
	RNG        entity.RNG

	Tracker  scoring.Tracker
	Baseline int // Tracker.Deposited when the round started
	Round    round.Machine

	Tick    uint64
	Elapsed time.Duration // Simulated time in the current round
	Frame   time.Duration

	cfg config.CollectorConfig
}

// NewWorld creates a level 1 world. The seed drives cloud placement and
// emission jitter.
func NewWorld(cfg config.CollectorConfig, frame time.Duration, seed int64) World {
	field := core.Playfield{W: cfg.Playfield.Width, H: cfg.Playfield.Height}
	z := cfg.Zones
	w := World{
		Field:    field,
		MaxCarry: cfg.Player.MaxCarry,
		Zones: [2]core.Box{
			core.NewBox(0, field.H-z.Height, z.Width, z.Height),
			core.NewBox(field.W-z.Width, field.H-z.Height, z.Width, z.Height),
		},
		RNG: entity.NewRNG(seed),
		Tracker: scoring.NewTracker(scoring.Points{
			DropletCaught: cfg.Gameplay.CatchPoints,
			PerDeposited:  cfg.Gameplay.DepositPoints,
		}),
		Round: round.New(),
		Frame: frame,
		cfg:   cfg,
	}
	w.layoutLevel()
	return w
}

// layoutLevel resets the per-round state for the current level.
func (w *World) layoutLevel() {
	p := w.cfg.Player
	w.Player = entity.Player{
		Actor: entity.NewActor((w.Field.W-p.Width)/2, w.Field.H-p.BottomOffset, p.Width, p.Height),
		Speed: p.Speed,
	}
	w.Carry = 0
	w.Baseline = w.Tracker.Deposited
	w.Elapsed = 0
	w.Droplets = nil
	w.CloudTimer = entity.Timer{Period: w.cfg.Clouds.SpawnInterval}
	w.Clouds = make([]entity.Spawner, 0, w.MaxClouds())
	for i := 0; i < w.cfg.Clouds.Initial; i++ {
		w.spawnCloud()
	}
}

// spawnCloud places a cloud at a random spot in the top band.
func (w *World) spawnCloud() {
	c := w.cfg.Clouds
	x := w.RNG.Range(0, w.Field.W-c.Width)
	y := w.RNG.Range(c.BandTop, c.BandBottom)
	w.Clouds = append(w.Clouds, entity.Spawner{
		Actor:    entity.NewActor(x, y, c.Width, c.Height),
		Interval: w.RNG.Duration(c.DropIntervalMin, c.DropIntervalMax),
	})
}

// Goal returns the amount of water to deposit this round.
func (w World) Goal() int {
	return w.cfg.Gameplay.GoalForLevel(w.Round.Level)
}

// Deposited returns the water deposited this round.
func (w World) Deposited() int {
	return w.Tracker.Deposited - w.Baseline
}

// MaxClouds returns the cloud cap for the current level.
func (w World) MaxClouds() int {
	return w.cfg.Clouds.MaxCloudsForLevel(w.Round.Level)
}

// TimeLeft returns the remaining round time.
func (w World) TimeLeft() time.Duration {
	return max(0, w.cfg.Gameplay.RoundTime-w.Elapsed)
}

// InZone reports whether the player overlaps a deposit zone.
func (w World) InZone() bool {
	for _, z := range w.Zones {
		if w.Player.Box.Intersects(z) {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no memory with w.
func (w World) Clone() World {
	w.Clouds = entity.CloneSpawners(w.Clouds)
	w.Droplets = entity.CloneProjectiles(w.Droplets)
	return w
}

// Config returns the configuration the world was built from.
func (w World) Config() config.CollectorConfig {
	return w.cfg
}

// Advance starts the next level after a won round. The bucket grows by the
// configured bonus up to its cap.
func Advance(prev World) (World, []core.Event) {
	w := prev.Clone()
	if !w.Round.Advance() {
		return w, nil
	}
	w.MaxCarry = min(w.MaxCarry+w.cfg.Player.BonusCarry, max(w.cfg.Player.CarryCap, w.MaxCarry))
	w.layoutLevel()
	return w, []core.Event{{Kind: core.EventLevelStarted, Level: w.Round.Level, Score: w.Tracker.Score}}
}

// Restart returns to level 1 with an empty score after a lost round.
func Restart(prev World) (World, []core.Event) {
	w := prev.Clone()
	if !w.Round.Restart() {
		return w, nil
	}
	w.MaxCarry = w.cfg.Player.MaxCarry
	w.Tracker.Reset()
	w.layoutLevel()
	return w, []core.Event{{Kind: core.EventLevelStarted, Level: w.Round.Level}}
}
