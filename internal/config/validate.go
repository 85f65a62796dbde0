package config

import (
	"errors"
	"fmt"
	"time"
)

// fieldErrors collects validation failures with their field path.
type fieldErrors []error

func (f *fieldErrors) positive(field string, v float64) {
	if v <= 0 {
		*f = append(*f, fmt.Errorf("%s must be positive, got %v", field, v))
	}
}

func (f *fieldErrors) positiveInt(field string, v int) {
	if v <= 0 {
		*f = append(*f, fmt.Errorf("%s must be positive, got %d", field, v))
	}
}

func (f *fieldErrors) nonNegative(field string, v float64) {
	if v < 0 {
		*f = append(*f, fmt.Errorf("%s must not be negative, got %v", field, v))
	}
}

func (f *fieldErrors) nonNegativeInt(field string, v int) {
	if v < 0 {
		*f = append(*f, fmt.Errorf("%s must not be negative, got %d", field, v))
	}
}

func (f *fieldErrors) positiveDuration(field string, v time.Duration) {
	if v <= 0 {
		*f = append(*f, fmt.Errorf("%s must be positive, got %s", field, v))
	}
}

func (f *fieldErrors) nonNegativeDuration(field string, v time.Duration) {
	if v < 0 {
		*f = append(*f, fmt.Errorf("%s must not be negative, got %s", field, v))
	}
}

func (f *fieldErrors) check(ok bool, format string, args ...any) {
	if !ok {
		*f = append(*f, fmt.Errorf(format, args...))
	}
}

func (f fieldErrors) err(game string) error {
	if len(f) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid %s config: %w", game, errors.Join(f...))
}

func (f *fieldErrors) playfield(p PlayfieldConfig) {
	f.positive("playfield.width", p.Width)
	f.positive("playfield.height", p.Height)
}

// ValidateShooter rejects values the simulation cannot run with.
// Every problem is reported, not just the first.
func ValidateShooter(cfg ShooterConfig) error {
	var errs fieldErrors
	errs.playfield(cfg.Playfield)

	errs.positive("player.width", cfg.Player.Width)
	errs.positive("player.height", cfg.Player.Height)
	errs.positive("player.speed", cfg.Player.Speed)
	errs.check(cfg.Player.Width <= cfg.Playfield.Width, "player.width %v exceeds playfield width %v", cfg.Player.Width, cfg.Playfield.Width)
	errs.check(cfg.Player.BottomOffset >= cfg.Player.Height && cfg.Player.BottomOffset < cfg.Playfield.Height,
		"player.bottom_offset %v must be in [player.height, playfield.height)", cfg.Player.BottomOffset)

	errs.positive("projectile.width", cfg.Projectile.Width)
	errs.positive("projectile.height", cfg.Projectile.Height)
	errs.positive("projectile.speed", cfg.Projectile.Speed)
	errs.nonNegativeDuration("projectile.cooldown", cfg.Projectile.Cooldown)

	w := cfg.Wave
	errs.positiveInt("wave.base_rows", w.BaseRows)
	errs.nonNegativeInt("wave.rows_per_level", w.RowsPerLevel)
	errs.nonNegativeInt("wave.max_rows", w.MaxRows)
	errs.positiveInt("wave.cols", w.Cols)
	errs.positive("wave.enemy_width", w.EnemyWidth)
	errs.positive("wave.enemy_height", w.EnemyHeight)
	errs.nonNegative("wave.padding", w.Padding)
	errs.nonNegative("wave.offset_x", w.OffsetX)
	errs.nonNegative("wave.offset_y", w.OffsetY)
	errs.positive("wave.base_speed", w.BaseSpeed)
	errs.nonNegative("wave.speed_per_level", w.SpeedPerLevel)
	errs.nonNegative("wave.drop_step", w.DropStep)
	gridW := w.OffsetX + float64(w.Cols)*(w.EnemyWidth+w.Padding) - w.Padding
	errs.check(gridW <= cfg.Playfield.Width, "wave grid width %v exceeds playfield width %v", gridW, cfg.Playfield.Width)

	g := cfg.Gameplay
	errs.positiveInt("gameplay.lives", g.Lives)
	errs.check(g.MaxLives >= g.Lives, "gameplay.max_lives %d must be at least gameplay.lives %d", g.MaxLives, g.Lives)
	errs.nonNegativeInt("gameplay.bonus_lives", g.BonusLives)
	errs.nonNegativeInt("gameplay.enemy_points", g.EnemyPoints)

	return errs.err("shooter")
}

// ValidateCollector rejects values the simulation cannot run with.
func ValidateCollector(cfg CollectorConfig) error {
	var errs fieldErrors
	errs.playfield(cfg.Playfield)

	p := cfg.Player
	errs.positive("player.width", p.Width)
	errs.positive("player.height", p.Height)
	errs.positive("player.speed", p.Speed)
	errs.check(p.Width <= cfg.Playfield.Width, "player.width %v exceeds playfield width %v", p.Width, cfg.Playfield.Width)
	errs.check(p.BottomOffset >= p.Height && p.BottomOffset < cfg.Playfield.Height,
		"player.bottom_offset %v must be in [player.height, playfield.height)", p.BottomOffset)
	errs.positiveInt("player.max_carry", p.MaxCarry)
	errs.check(p.CarryCap >= p.MaxCarry, "player.carry_cap %d must be at least player.max_carry %d", p.CarryCap, p.MaxCarry)
	errs.nonNegativeInt("player.bonus_carry", p.BonusCarry)

	errs.positive("zones.width", cfg.Zones.Width)
	errs.positive("zones.height", cfg.Zones.Height)
	errs.check(2*cfg.Zones.Width <= cfg.Playfield.Width, "zones.width %v: both zones must fit the playfield", cfg.Zones.Width)

	c := cfg.Clouds
	errs.positive("clouds.width", c.Width)
	errs.positive("clouds.height", c.Height)
	errs.check(c.Width <= cfg.Playfield.Width, "clouds.width %v exceeds playfield width %v", c.Width, cfg.Playfield.Width)
	errs.nonNegative("clouds.band_top", c.BandTop)
	errs.check(c.BandBottom >= c.BandTop, "clouds.band_bottom %v must not be above clouds.band_top %v", c.BandBottom, c.BandTop)
	errs.nonNegativeInt("clouds.initial", c.Initial)
	errs.positiveInt("clouds.max", c.Max)
	errs.nonNegativeInt("clouds.max_per_level", c.MaxPerLevel)
	errs.nonNegativeInt("clouds.max_cap", c.MaxCap)
	errs.check(c.Initial <= c.Max, "clouds.initial %d exceeds clouds.max %d", c.Initial, c.Max)
	errs.positiveDuration("clouds.spawn_interval", c.SpawnInterval)
	errs.positiveDuration("clouds.drop_interval_min", c.DropIntervalMin)
	errs.check(c.DropIntervalMax >= c.DropIntervalMin, "clouds.drop_interval_max %s is below clouds.drop_interval_min %s", c.DropIntervalMax, c.DropIntervalMin)

	errs.positive("droplets.width", cfg.Droplets.Width)
	errs.positive("droplets.height", cfg.Droplets.Height)
	errs.positive("droplets.speed", cfg.Droplets.Speed)
	errs.nonNegative("droplets.speed_per_level", cfg.Droplets.SpeedPerLevel)

	g := cfg.Gameplay
	errs.positiveInt("gameplay.goal_base", g.GoalBase)
	errs.nonNegativeInt("gameplay.goal_per_level", g.GoalPerLevel)
	errs.positiveDuration("gameplay.round_time", g.RoundTime)
	errs.nonNegativeInt("gameplay.catch_points", g.CatchPoints)
	errs.nonNegativeInt("gameplay.deposit_points", g.DepositPoints)

	return errs.err("collector")
}
