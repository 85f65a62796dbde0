// Package config provides YAML/TOML game configuration loading, validation
// and difficulty presets for the arcade.
package config

import "time"

// PlayfieldConfig is the logical size of the simulated area.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// ShooterConfig contains all configuration for Pollution Patrol.
type ShooterConfig struct {
	Playfield  PlayfieldConfig   `yaml:"playfield" toml:"playfield"`
	Player     ShooterPlayer     `yaml:"player" toml:"player"`
	Projectile ShooterProjectile `yaml:"projectile" toml:"projectile"`
	Wave       ShooterWave       `yaml:"wave" toml:"wave"`
	Gameplay   ShooterGameplay   `yaml:"gameplay" toml:"gameplay"`
}

// ShooterPlayer defines the player's ship.
type ShooterPlayer struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"` // Distance from the floor to the ship's top
}

// ShooterProjectile defines shots fired by the player.
type ShooterProjectile struct {
	Width    float64       `yaml:"width" toml:"width"`
	Height   float64       `yaml:"height" toml:"height"`
	Speed    float64       `yaml:"speed" toml:"speed"`
	Cooldown time.Duration `yaml:"cooldown" toml:"cooldown"`
}

// ShooterWave defines the enemy grid and its movement.
type ShooterWave struct {
	BaseRows      int     `yaml:"base_rows" toml:"base_rows"`
	RowsPerLevel  int     `yaml:"rows_per_level" toml:"rows_per_level"`
	MaxRows       int     `yaml:"max_rows" toml:"max_rows"`
	Cols          int     `yaml:"cols" toml:"cols"`
	EnemyWidth    float64 `yaml:"enemy_width" toml:"enemy_width"`
	EnemyHeight   float64 `yaml:"enemy_height" toml:"enemy_height"`
	Padding       float64 `yaml:"padding" toml:"padding"`
	OffsetX       float64 `yaml:"offset_x" toml:"offset_x"`
	OffsetY       float64 `yaml:"offset_y" toml:"offset_y"`
	BaseSpeed     float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedPerLevel float64 `yaml:"speed_per_level" toml:"speed_per_level"`
	DropStep      float64 `yaml:"drop_step" toml:"drop_step"`
}

// ShooterGameplay defines lives and scoring.
type ShooterGameplay struct {
	Lives       int `yaml:"lives" toml:"lives"`
	MaxLives    int `yaml:"max_lives" toml:"max_lives"`
	BonusLives  int `yaml:"bonus_lives" toml:"bonus_lives"` // Granted on level advance
	EnemyPoints int `yaml:"enemy_points" toml:"enemy_points"`
}

// RowsForLevel returns the wave height for a level, starting at 1.
func (w ShooterWave) RowsForLevel(level int) int {
	rows := w.BaseRows + w.RowsPerLevel*(level-1)
	if w.MaxRows > 0 && rows > w.MaxRows {
		rows = w.MaxRows
	}
	return rows
}

// SpeedForLevel returns the wave speed for a level, starting at 1.
func (w ShooterWave) SpeedForLevel(level int) float64 {
	return w.BaseSpeed + w.SpeedPerLevel*float64(level-1)
}

// CollectorConfig contains all configuration for Rain Catcher.
type CollectorConfig struct {
	Playfield PlayfieldConfig   `yaml:"playfield" toml:"playfield"`
	Player    CollectorPlayer   `yaml:"player" toml:"player"`
	Zones     DepositZones      `yaml:"zones" toml:"zones"`
	Clouds    CollectorClouds   `yaml:"clouds" toml:"clouds"`
	Droplets  CollectorDroplets `yaml:"droplets" toml:"droplets"`
	Gameplay  CollectorGameplay `yaml:"gameplay" toml:"gameplay"`
}

// CollectorPlayer defines the bucket.
type CollectorPlayer struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset" toml:"bottom_offset"`
	MaxCarry     int     `yaml:"max_carry" toml:"max_carry"`
	CarryCap     int     `yaml:"carry_cap" toml:"carry_cap"`     // Upper bound for MaxCarry after bonuses
	BonusCarry   int     `yaml:"bonus_carry" toml:"bonus_carry"` // Granted on level advance
}

// DepositZones defines the two unload areas in the bottom corners.
type DepositZones struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// CollectorClouds defines the spawners.
type CollectorClouds struct {
	Width           float64       `yaml:"width" toml:"width"`
	Height          float64       `yaml:"height" toml:"height"`
	BandTop         float64       `yaml:"band_top" toml:"band_top"`
	BandBottom      float64       `yaml:"band_bottom" toml:"band_bottom"`
	Initial         int           `yaml:"initial" toml:"initial"`
	Max             int           `yaml:"max" toml:"max"`
	MaxPerLevel     int           `yaml:"max_per_level" toml:"max_per_level"`
	MaxCap          int           `yaml:"max_cap" toml:"max_cap"`
	SpawnInterval   time.Duration `yaml:"spawn_interval" toml:"spawn_interval"`
	DropIntervalMin time.Duration `yaml:"drop_interval_min" toml:"drop_interval_min"`
	DropIntervalMax time.Duration `yaml:"drop_interval_max" toml:"drop_interval_max"`
}

// CollectorDroplets defines falling water.
type CollectorDroplets struct {
	Width         float64 `yaml:"width" toml:"width"`
	Height        float64 `yaml:"height" toml:"height"`
	Speed         float64 `yaml:"speed" toml:"speed"`
	SpeedPerLevel float64 `yaml:"speed_per_level" toml:"speed_per_level"`
}

// CollectorGameplay defines goals, timing and scoring.
type CollectorGameplay struct {
	GoalBase      int           `yaml:"goal_base" toml:"goal_base"`
	GoalPerLevel  int           `yaml:"goal_per_level" toml:"goal_per_level"`
	RoundTime     time.Duration `yaml:"round_time" toml:"round_time"`
	CatchPoints   int           `yaml:"catch_points" toml:"catch_points"`
	DepositPoints int           `yaml:"deposit_points" toml:"deposit_points"` // Per unit deposited
}

// GoalForLevel returns the deposit target for a level, starting at 1.
func (g CollectorGameplay) GoalForLevel(level int) int {
	return g.GoalBase + g.GoalPerLevel*(level-1)
}

// MaxCloudsForLevel returns the cloud cap for a level, starting at 1.
func (c CollectorClouds) MaxCloudsForLevel(level int) int {
	n := c.Max + c.MaxPerLevel*(level-1)
	if c.MaxCap > 0 && n > c.MaxCap {
		n = c.MaxCap
	}
	return n
}

// SpeedForLevel returns the droplet fall speed for a level, starting at 1.
func (d CollectorDroplets) SpeedForLevel(level int) float64 {
	return d.Speed + d.SpeedPerLevel*float64(level-1)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	case "":
		return "", true
	default:
		return "", false
	}
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Gameplay.MaxLives = max(cfg.Gameplay.MaxLives, 7)
		cfg.Projectile.Cooldown = 200 * time.Millisecond
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Projectile.Cooldown = 400 * time.Millisecond
		cfg.Wave.BaseSpeed *= 1.5
	}
}

// ApplyCollectorPreset modifies the config based on a difficulty preset.
func ApplyCollectorPreset(cfg *CollectorConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxCarry = 6
		cfg.Player.CarryCap = max(cfg.Player.CarryCap, 6)
		cfg.Gameplay.RoundTime = 90 * time.Second
	case DifficultyHard:
		cfg.Player.MaxCarry = 4
		cfg.Gameplay.RoundTime = 45 * time.Second
		cfg.Droplets.Speed *= 1.5
	}
}
