// aqua is a terminal arcade with two water-themed games: Pollution Patrol,
// a wave shooter, and Rain Catcher, a droplet collector.
//
// Usage:
//
//	aqua list              - List available games
//	aqua play <game>       - Play a game
//	aqua menu              - Start menu to pick games interactively
//	aqua serve             - Start SSH server for remote play
//	aqua scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.aqua/scores.db)
//	--log <path>    - Append round events to a log file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/aqua-arcade/internal/games/collector"
	_ "github.com/vovakirdan/aqua-arcade/internal/games/shooter"
	"github.com/vovakirdan/aqua-arcade/internal/platform/tui"
	"github.com/vovakirdan/aqua-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aqua",
	Short: "Aqua Arcade - Clean up the water from your terminal",
	Long: `Aqua Arcade is a terminal arcade with two water-themed games.

  shooter    - Pollution Patrol: shoot down the descending waste
  collector  - Rain Catcher: catch rain and fill the reservoirs

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and rounds

Examples:
  aqua list
  aqua play shooter
  aqua play collector --difficulty easy
  aqua menu
  aqua serve --ssh :2222
  aqua scores collector --rounds`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.aqua/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append round events to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// openStore opens the score database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

// gameLogger returns model options writing round events to --log, and a
// function closing the file.
func gameLogger() ([]tui.ModelOption, func(), error) {
	if flagLogPath == "" {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "aqua",
	})
	return []tui.ModelOption{tui.WithLogger(logger)}, func() { f.Close() }, nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)

// newTable returns the bordered table used for command output.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("24"))).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}
