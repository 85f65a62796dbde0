// Package collector implements Rain Catcher: catch falling droplets in a
// bucket and empty it in the corner tanks before the round timer runs out.
package collector

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/aqua-arcade/internal/config"
	"github.com/vovakirdan/aqua-arcade/internal/core"
	"github.com/vovakirdan/aqua-arcade/internal/registry"
	"github.com/vovakirdan/aqua-arcade/internal/round"
)

// GameID is the registry and score-table key for this game.
const GameID = "collector"

// Visual characters for rendering
const (
	BucketChar  = '▄'
	CloudChar   = '▒'
	DropletChar = '•'
	ZoneChar    = '░'
	FullChar    = '■'
	EmptyChar   = '□'
)

const (
	minScreenW = 40
	minScreenH = 12
)

var configPath string

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
func LoadConfig() (config.CollectorConfig, error) {
	cfg, err := config.LoadCollector(configPath)
	if err != nil {
		return cfg, err
	}
	if difficultyPreset != "" {
		config.ApplyCollectorPreset(&cfg, difficultyPreset)
	}
	return cfg, config.ValidateCollector(cfg)
}

// Game adapts a World to the registry.Game interface.
type Game struct {
	world   World
	runtime core.RuntimeConfig
	cfg     *config.CollectorConfig
	paused  bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.CollectorConfig) *Game {
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
	return "Rain Catcher"
}

// Reset starts a new session at level 1.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.CollectorConfig
	if g.cfg != nil {
		cfg = *g.cfg
	} else {
		var err error
		if cfg, err = LoadConfig(); err != nil {
			cfg = config.DefaultCollectorConfig()
		}
	}

	g.world = NewWorld(cfg, runtime.FrameDuration(), runtime.Seed)
	g.paused = false
}

// World returns the current simulation state.
func (g *Game) World() World {
	return g.world
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event
	switch {
	case in.Has(core.ActionAdvance) && g.world.Round.State == round.Won:
		g.world, events = Advance(g.world)
		return core.StepResult{State: g.State(), Events: events}
	case in.Has(core.ActionRestart) && g.world.Round.State == round.Lost:
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
	renderHUD(dst, snap)

	border := core.NewRect(0, 2, dst.Width(), dst.Height()-2)
	dst.DrawBox(border)
	view := core.Viewport{
		Field:  g.world.Field,
		Origin: core.NewRect(border.X+1, border.Y+1, border.W-2, border.H-2),
	}

	for _, s := range snap.Sprites {
		switch s.Kind {
		case core.SpriteZone:
			dst.Fill(view, s.Box, ZoneChar, core.ColorBlue)
		case core.SpriteCloud:
			dst.Fill(view, s.Box, CloudChar, core.ColorGray)
		case core.SpriteDroplet:
			dst.Fill(view, s.Box, DropletChar, core.ColorBrightCyan)
		case core.SpritePlayer:
			color := core.ColorWhite
			if snap.Carry == snap.MaxCarry {
				color = core.ColorCyan
			}
			dst.Fill(view, s.Box, BucketChar, color)
		}
	}

	switch {
	case snap.State == round.Won:
		dst.DrawPanel([]string{
			fmt.Sprintf("LEVEL %d COMPLETE", snap.Level),
			fmt.Sprintf("Score: %d", snap.Score),
			"",
			"N: next level   Q: quit",
		}, core.ColorGreen)
	case snap.State == round.Lost:
		dst.DrawPanel([]string{
			"TIME'S UP",
			fmt.Sprintf("Water: %d/%d", snap.Deposited, snap.Goal),
			fmt.Sprintf("Final score: %d", snap.Score),
			"",
			"R: restart   Q: quit",
		}, core.ColorRed)
	case g.paused:
		dst.DrawPanel([]string{"PAUSED", "P: resume"}, core.ColorYellow)
	}
}

// renderHUD draws the status line and controls hint.
func renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, "RAIN CATCHER", core.ColorBrightBlue)

	carry := strings.Repeat(string(FullChar), snap.Carry) +
		strings.Repeat(string(EmptyChar), max(0, snap.MaxCarry-snap.Carry))
	status := fmt.Sprintf("Score: %d  Level: %d  Water: %d/%d  Time: %ds  ",
		snap.Score, snap.Level, snap.Deposited, snap.Goal, int(math.Ceil(snap.TimeLeft.Seconds())))
	x := dst.Width() - len([]rune(status)) - snap.MaxCarry - 1
	dst.DrawText(x, 0, status)
	dst.DrawTextColored(x+len([]rune(status)), 0, carry, core.ColorCyan)

	dst.DrawTextColored(1, 1, "←/→ move  SPACE/E empty bucket in a corner  P pause  Q quit", core.ColorGray)
}
