package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/aqua-arcade/internal/config"
	"github.com/vovakirdan/aqua-arcade/internal/core"
	"github.com/vovakirdan/aqua-arcade/internal/games/collector"
	"github.com/vovakirdan/aqua-arcade/internal/games/shooter"
	"github.com/vovakirdan/aqua-arcade/internal/platform/tui"
	"github.com/vovakirdan/aqua-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Move
  Space            - Fire (shooter) / empty the bucket (collector)
  E                - Empty the bucket in a corner zone (collector)
  N/Enter          - Next level after a won round
  R                - Restart after a lost round
  P                - Pause
  Ctrl+S           - Save a screenshot to ~/.aqua/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, faster reload, bigger bucket, longer rounds
  normal - Values from the config file
  hard   - Fewer lives, faster waves and rain, shorter rounds

Config files may be YAML or TOML (by extension).

Examples:
  aqua play shooter
  aqua play collector --difficulty easy
  aqua play shooter --config ./my-shooter.yaml
  aqua play collector --config ./rain.toml --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// configureGame passes --config and --difficulty to a game and validates the
// resulting configuration, so bad values are reported before the screen
// switches to the game.
func configureGame(gameID string) error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	var err error
	switch gameID {
	case shooter.GameID:
		shooter.SetConfigPath(flagConfig)
		shooter.SetDifficultyPreset(flagDifficulty)
		_, err = shooter.LoadConfig()
	case collector.GameID:
		collector.SetConfigPath(flagConfig)
		collector.SetDifficultyPreset(flagDifficulty)
		_, err = collector.LoadConfig()
	}
	return err
}

// terminalConfig builds the runtime config from the flags and terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'aqua list' to see available games.")
		os.Exit(1)
	}

	if err := configureGame(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts, closeLog, err := gameLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, terminalConfig(), opts...)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
