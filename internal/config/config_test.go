package config

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func decodeEmbedded[T any](t *testing.T, data []byte) T {
	t.Helper()
	var cfg T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		t.Fatalf("embedded yaml does not decode: %v", err)
	}
	return cfg
}

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	shooter := decodeEmbedded[ShooterConfig](t, GetDefaultYAML("shooter"))
	if !reflect.DeepEqual(shooter, DefaultShooterConfig()) {
		t.Errorf("shooter.yaml drifted from DefaultShooterConfig:\n%+v\n%+v", shooter, DefaultShooterConfig())
	}

	collector := decodeEmbedded[CollectorConfig](t, GetDefaultYAML("collector"))
	if !reflect.DeepEqual(collector, DefaultCollectorConfig()) {
		t.Errorf("collector.yaml drifted from DefaultCollectorConfig:\n%+v\n%+v", collector, DefaultCollectorConfig())
	}

	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no embedded config")
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := ValidateShooter(DefaultShooterConfig()); err != nil {
		t.Errorf("default shooter config invalid: %v", err)
	}
	if err := ValidateCollector(DefaultCollectorConfig()); err != nil {
		t.Errorf("default collector config invalid: %v", err)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCustomYAMLOverridesSomeFields(t *testing.T) {
	path := writeFile(t, "shooter.yaml", `
projectile:
  cooldown: 150ms
gameplay:
  lives: 4
`)
	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() error = %v", err)
	}
	if cfg.Projectile.Cooldown != 150*time.Millisecond {
		t.Errorf("cooldown = %v, expected 150ms", cfg.Projectile.Cooldown)
	}
	if cfg.Gameplay.Lives != 4 {
		t.Errorf("lives = %d, expected 4", cfg.Gameplay.Lives)
	}
	// Untouched fields keep their defaults
	if cfg.Wave.Cols != 8 || cfg.Playfield.Width != 800 {
		t.Errorf("defaults lost: cols=%d width=%v", cfg.Wave.Cols, cfg.Playfield.Width)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := writeFile(t, "collector.toml", `
[player]
max_carry = 6

[gameplay]
round_time = "90s"
goal_base = 12
`)
	cfg, err := LoadCollector(path)
	if err != nil {
		t.Fatalf("LoadCollector() error = %v", err)
	}
	if cfg.Player.MaxCarry != 6 {
		t.Errorf("max_carry = %d, expected 6", cfg.Player.MaxCarry)
	}
	if cfg.Gameplay.RoundTime != 90*time.Second {
		t.Errorf("round_time = %v, expected 90s", cfg.Gameplay.RoundTime)
	}
	if cfg.Gameplay.GoalForLevel(2) != 17 {
		t.Errorf("GoalForLevel(2) = %d, expected 17", cfg.Gameplay.GoalForLevel(2))
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "shooter.yaml", "wave:\n  colums: 9\n"},
		{"toml", "shooter.toml", "[wave]\ncolums = 9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadShooter(writeFile(t, tt.file, tt.content)); err == nil {
				t.Error("expected an error for a misspelled key")
			}
		})
	}
}

func TestLoadMissingCustomFile(t *testing.T) {
	_, err := LoadCollector(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeFile(t, "shooter.yaml", `
player:
  speed: 0
gameplay:
  lives: 0
`)
	_, err := LoadShooter(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	// Both problems are reported at once
	for _, want := range []string{"player.speed", "gameplay.lives"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestValidateCollector(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CollectorConfig)
		field  string
	}{
		{"carry cap below max carry", func(c *CollectorConfig) { c.Player.CarryCap = 2 }, "carry_cap"},
		{"inverted drop interval", func(c *CollectorConfig) { c.Clouds.DropIntervalMax = 100 * time.Millisecond }, "drop_interval_max"},
		{"no round time", func(c *CollectorConfig) { c.Gameplay.RoundTime = 0 }, "round_time"},
		{"negative points", func(c *CollectorConfig) { c.Gameplay.DepositPoints = -1 }, "deposit_points"},
		{"zones overlap", func(c *CollectorConfig) { c.Zones.Width = 500 }, "zones.width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultCollectorConfig()
			tt.mutate(&cfg)
			err := ValidateCollector(cfg)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not mention %s", err, tt.field)
			}
		})
	}
}

func TestLevelScaling(t *testing.T) {
	w := DefaultShooterConfig().Wave
	if got := w.RowsForLevel(1); got != 4 {
		t.Errorf("RowsForLevel(1) = %d, expected 4", got)
	}
	if got := w.RowsForLevel(10); got != 7 {
		t.Errorf("RowsForLevel(10) = %d, expected cap 7", got)
	}
	if got := w.SpeedForLevel(3); math.Abs(got-1.6) > 1e-9 {
		t.Errorf("SpeedForLevel(3) = %v, expected 1.6", got)
	}

	c := DefaultCollectorConfig().Clouds
	if got := c.MaxCloudsForLevel(2); got != 6 {
		t.Errorf("MaxCloudsForLevel(2) = %d, expected 6", got)
	}
	if got := c.MaxCloudsForLevel(9); got != 8 {
		t.Errorf("MaxCloudsForLevel(9) = %d, expected cap 8", got)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		input string
		want  DifficultyPreset
		ok    bool
	}{
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"", "", true},
		{"nightmare", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePreset(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}

	shooter := DefaultShooterConfig()
	ApplyShooterPreset(&shooter, DifficultyEasy)
	if shooter.Gameplay.Lives != 5 || shooter.Projectile.Cooldown != 200*time.Millisecond {
		t.Errorf("easy shooter preset not applied: %+v", shooter.Gameplay)
	}
	if err := ValidateShooter(shooter); err != nil {
		t.Errorf("easy shooter preset produced invalid config: %v", err)
	}

	collector := DefaultCollectorConfig()
	ApplyCollectorPreset(&collector, DifficultyHard)
	if collector.Player.MaxCarry != 4 || collector.Gameplay.RoundTime != 45*time.Second {
		t.Errorf("hard collector preset not applied: %+v", collector.Player)
	}
	if err := ValidateCollector(collector); err != nil {
		t.Errorf("hard collector preset produced invalid config: %v", err)
	}

	normal := DefaultShooterConfig()
	ApplyShooterPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultShooterConfig()) {
		t.Error("normal preset should leave the config unchanged")
	}
}
