package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aqua-arcade/internal/registry"
	"github.com/vovakirdan/aqua-arcade/internal/storage"
)

var (
	flagRounds bool
	flagLimit  int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game, or its most recent
rounds with --rounds.

Examples:
  aqua scores shooter
  aqua scores collector --rounds --limit 20
  aqua scores shooter --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRounds, "rounds", false, "Show the round log instead of high scores")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and rounds for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'aqua list' to see available games.")
		os.Exit(1)
	}
	title := registry.Title(gameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		err = store.ClearScores(gameID)
		if err == nil {
			fmt.Printf("Cleared scores for %s.\n", title)
		}
	case flagRounds:
		err = printRounds(store, gameID, title)
	default:
		err = printScores(store, gameID, title)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'aqua play %s' to set the first high score!\n", gameID)
		return nil
	}

	t := newTable("Rank", "Score", "Date")
	for i, entry := range scores {
		t.Row(fmt.Sprintf("%d", i+1), fmt.Sprintf("%d", entry.Score), entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println(t.Render())

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.0f  Best level cleared: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestLevel)
	return nil
}

func printRounds(store *storage.Store, gameID, title string) error {
	rounds, err := store.RecentRounds(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Recent Rounds - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds finished yet.")
		return nil
	}

	t := newTable("Run", "Level", "Result", "Score", "Date")
	for _, r := range rounds {
		t.Row(
			r.RunID.String()[:8],
			fmt.Sprintf("%d", r.Level),
			r.Outcome,
			fmt.Sprintf("%d", r.Score),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t.Render())
	return nil
}
