// Package shooter implements Pollution Patrol: a fixed-screen shooter where a
// descending wave of pollution blobs must be cleared before it reaches the
// player's line.
package shooter

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/aqua-arcade/internal/config"
	"github.com/vovakirdan/aqua-arcade/internal/core"
	"github.com/vovakirdan/aqua-arcade/internal/registry"
	"github.com/vovakirdan/aqua-arcade/internal/round"
)

// GameID is the registry and score-table key for this game.
const GameID = "shooter"

// Visual characters for rendering
const (
	PlayerChar = '▲'
	EnemyChar  = '▓'
	ShotChar   = '|'
	LifeChar   = '♥'
)

// minimum terminal size for a playable field
const (
	minScreenW = 30
	minScreenH = 12
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset, _ = config.ParsePreset(preset)
}

// LoadConfig resolves the configuration the game will run with.
func LoadConfig() (config.ShooterConfig, error) {
	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyShooterPreset(&cfg, difficultyPreset)
	}
	return cfg, config.ValidateShooter(cfg)
}

// Game adapts a World to the registry.Game interface.
type Game struct {
	world   World
	runtime core.RuntimeConfig
	cfg     *config.ShooterConfig // Fixed config, nil to load on Reset
	paused  bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.ShooterConfig) *Game {
	return &Game{cfg: &cfg}
}

func init() {
	registry.Register(GameID, func() registry.Game { return New() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pollution Patrol"
}

// Reset starts a new session at level 1.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.ShooterConfig
	if g.cfg != nil {
		cfg = *g.cfg
	} else {
		var err error
		if cfg, err = LoadConfig(); err != nil {
			cfg = config.DefaultShooterConfig()
		}
	}

	g.world = NewWorld(cfg, runtime.FrameDuration())
	g.paused = false
}

// World returns the current simulation state.
func (g *Game) World() World {
	return g.world
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionAdvance) && g.world.Round.State == round.Won:
		var events []core.Event
		g.world, events = Advance(g.world)
		return core.StepResult{State: g.State(), Events: events}

	case in.Has(core.ActionRestart) && g.world.Round.State == round.Lost:
		var events []core.Event
		g.world, events = Restart(g.world)
		g.paused = false
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionPause) && g.world.Round.Active() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	g.world, events = Step(g.world, in.Command())
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Tracker.Score,
		Level:    g.world.Round.Level,
		GameOver: g.world.Round.State == round.Lost,
		Won:      g.world.Round.State == round.Won,
		Paused:   g.paused,
	}
}

// Render draws the game to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	snap := g.world.Snapshot()
	g.renderHUD(dst, snap)

	border := core.NewRect(0, 2, dst.Width(), dst.Height()-2)
	dst.DrawBox(border)
	view := core.Viewport{
		Field:  g.world.Field,
		Origin: core.NewRect(border.X+1, border.Y+1, border.W-2, border.H-2),
	}

	for _, s := range snap.Sprites {
		switch s.Kind {
		case core.SpritePlayer:
			dst.Fill(view, s.Box, PlayerChar, core.ColorGreen)
		case core.SpriteEnemy:
			dst.Fill(view, s.Box, EnemyChar, core.ColorBrown)
		case core.SpriteShot:
			dst.Fill(view, s.Box, ShotChar, core.ColorBrightCyan)
		}
	}

	switch {
	case snap.State == round.Won:
		dst.DrawPanel([]string{
			fmt.Sprintf("LEVEL %d CLEARED", snap.Level),
			fmt.Sprintf("Score: %d", snap.Score),
			"",
			"N: next level   Q: quit",
		}, core.ColorGreen)
	case snap.State == round.Lost:
		dst.DrawPanel([]string{
			"GAME OVER",
			fmt.Sprintf("Final score: %d", snap.Score),
			"",
			"R: restart   Q: quit",
		}, core.ColorRed)
	case g.paused:
		dst.DrawPanel([]string{"PAUSED", "P: resume"}, core.ColorYellow)
	}
}

// renderHUD draws the status line and controls hint.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	lives := strings.Repeat(string(LifeChar), snap.Lives)
	dst.DrawTextColored(1, 0, "POLLUTION PATROL", core.ColorBrightBlue)
	status := fmt.Sprintf("Score: %d  Level: %d  Lives: ", snap.Score, snap.Level)
	x := dst.Width() - len([]rune(status)) - snap.MaxLives - 1
	dst.DrawText(x, 0, status)
	dst.DrawTextColored(x+len([]rune(status)), 0, lives, core.ColorRed)
	dst.DrawTextColored(1, 1, "←/→ move  SPACE fire  P pause  Q quit", core.ColorGray)
}
