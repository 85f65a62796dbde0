package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

//go:embed defaults/collector.yaml
var defaultCollectorYAML []byte

// DefaultShooterConfig returns the default Pollution Patrol configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Playfield: PlayfieldConfig{Width: 800, Height: 600},
		Player: ShooterPlayer{
			Width:        50,
			Height:       40,
			Speed:        5,
			BottomOffset: 70,
		},
		Projectile: ShooterProjectile{
			Width:    4,
			Height:   15,
			Speed:    7,
			Cooldown: 300 * time.Millisecond,
		},
		Wave: ShooterWave{
			BaseRows:      4,
			RowsPerLevel:  1,
			MaxRows:       7,
			Cols:          8,
			EnemyWidth:    40,
			EnemyHeight:   30,
			Padding:       20,
			OffsetX:       80,
			OffsetY:       50,
			BaseSpeed:     1.0,
			SpeedPerLevel: 0.3,
			DropStep:      20,
		},
		Gameplay: ShooterGameplay{
			Lives:       3,
			MaxLives:    5,
			BonusLives:  1,
			EnemyPoints: 10,
		},
	}
}

// DefaultCollectorConfig returns the default Rain Catcher configuration.
func DefaultCollectorConfig() CollectorConfig {
	return CollectorConfig{
		Playfield: PlayfieldConfig{Width: 800, Height: 600},
		Player: CollectorPlayer{
			Width:        60,
			Height:       40,
			Speed:        6,
			BottomOffset: 60,
			MaxCarry:     5,
			CarryCap:     8,
			BonusCarry:   1,
		},
		Zones: DepositZones{Width: 100, Height: 100},
		Clouds: CollectorClouds{
			Width:           100,
			Height:          40,
			BandTop:         40,
			BandBottom:      140,
			Initial:         2,
			Max:             5,
			MaxPerLevel:     1,
			MaxCap:          8,
			SpawnInterval:   3 * time.Second,
			DropIntervalMin: 800 * time.Millisecond,
			DropIntervalMax: 2 * time.Second,
		},
		Droplets: CollectorDroplets{
			Width:         8,
			Height:        12,
			Speed:         3,
			SpeedPerLevel: 0.5,
		},
		Gameplay: CollectorGameplay{
			GoalBase:      10,
			GoalPerLevel:  5,
			RoundTime:     60 * time.Second,
			CatchPoints:   5,
			DepositPoints: 25,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "shooter":
		return defaultShooterYAML
	case "collector":
		return defaultCollectorYAML
	default:
		return nil
	}
}
