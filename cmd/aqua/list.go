package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/aqua-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the registered games with their best recorded score.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Scores are optional here; a missing database just leaves them blank
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	rows := make([][]string, 0, len(games))
	for _, g := range games {
		best := "-"
		if store != nil {
			if hs, err := store.HighScore(g.ID); err == nil && hs > 0 {
				best = fmt.Sprintf("%d", hs)
			}
		}
		rows = append(rows, []string{g.ID, g.Title, best})
	}

	fmt.Println(newTable("ID", "Title", "Best").Rows(rows...).Render())
	fmt.Println()
	fmt.Println("Run 'aqua play <id>' to play a game.")
}
