package shooter

import (
	"time"

	"github.com/vovakirdan/aqua-arcade/internal/config"
	"github.com/vovakirdan/aqua-arcade/internal/core"
	"github.com/vovakirdan/aqua-arcade/internal/entity"
	"github.com/vovakirdan/aqua-arcade/internal/round"
	"github.com/vovakirdan/aqua-arcade/internal/scoring"
)

// World is the complete simulation state of one Pollution Patrol session.
// It is a value: Step returns a new World and never mutates its input.
type World struct {
	Field       core.Playfield
	Player      entity.Player
	Projectiles []entity.Projectile
	Wave        entity.Wave
	Lives       int
	Tracker     scoring.Tracker
	Round       round.Machine

	Tick    uint64
	Elapsed time.Duration // Simulated time in the current session
	Reload  time.Duration // Time left until the next shot is allowed
	Frame   time.Duration // Simulated time covered by one step

	cfg config.ShooterConfig
}

// NewWorld creates a level 1 world.
func NewWorld(cfg config.ShooterConfig, frame time.Duration) World {
	w := World{
		Field: core.Playfield{W: cfg.Playfield.Width, H: cfg.Playfield.Height},
		Lives: cfg.Gameplay.Lives,
		Tracker: scoring.NewTracker(scoring.Points{
			EnemyDestroyed: cfg.Gameplay.EnemyPoints,
		}),
		Round: round.New(),
		Frame: frame,
		cfg:   cfg,
	}
	w.layoutLevel()
	return w
}

// layoutLevel places the player and a fresh wave for the current level.
func (w *World) layoutLevel() {
	p := w.cfg.Player
	w.Player = entity.Player{
		Actor: entity.NewActor((w.Field.W-p.Width)/2, w.Field.H-p.BottomOffset, p.Width, p.Height),
		Speed: p.Speed,
	}

	wave := w.cfg.Wave
	level := w.Round.Level
	w.Wave = entity.NewWave(entity.GridSpec{
		Rows:    wave.RowsForLevel(level),
		Cols:    wave.Cols,
		CellW:   wave.EnemyWidth,
		CellH:   wave.EnemyHeight,
		Padding: wave.Padding,
		OffsetX: wave.OffsetX,
		OffsetY: wave.OffsetY,
	}, wave.SpeedForLevel(level), wave.DropStep)

	w.Projectiles = nil
	w.Reload = 0
}

// Clone returns a copy that shares no memory with w.
func (w World) Clone() World {
	w.Projectiles = entity.CloneProjectiles(w.Projectiles)
	w.Wave = w.Wave.Clone()
	return w
}

// Config returns the configuration the world was built from.
func (w World) Config() config.ShooterConfig {
	return w.cfg
}

// Advance starts the next level after a won round. The score carries over
// and one bonus life is granted up to the configured maximum.
func Advance(prev World) (World, []core.Event) {
	w := prev.Clone()
	if !w.Round.Advance() {
		return w, nil
	}
	w.Lives = min(w.Lives+w.cfg.Gameplay.BonusLives, max(w.cfg.Gameplay.MaxLives, w.Lives))
	w.layoutLevel()
	return w, []core.Event{{Kind: core.EventLevelStarted, Level: w.Round.Level, Score: w.Tracker.Score}}
}

// Restart returns to level 1 with fresh lives and counters after a lost round.
func Restart(prev World) (World, []core.Event) {
	w := prev.Clone()
	if !w.Round.Restart() {
		return w, nil
	}
	w.Lives = w.cfg.Gameplay.Lives
	w.Tracker.Reset()
	w.Elapsed = 0
	w.layoutLevel()
	return w, []core.Event{{Kind: core.EventLevelStarted, Level: w.Round.Level}}
}
