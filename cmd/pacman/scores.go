package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a game mode",
	Long: `Display the top 10 high scores for the specified mode.
For the duel mode, recent match results are shown as well.

Examples:
  pacman scores pacman
  pacman scores pacman_duel`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pacman list' to see available modes.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pacman play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show high score
	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}

	if gameID == "pacman_duel" {
		printRecentDuels(store, gameID)
	}
}

// printRecentDuels lists the latest duel outcomes below the score table.
func printRecentDuels(store *storage.Store, gameID string) {
	duels, err := store.RecentDuels(gameID, 10)
	if err != nil || len(duels) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent duels:")
	fmt.Println()
	fmt.Printf("  %-10s  %-10s  %-8s  %s\n", "Player 1", "Player 2", "Winner", "Date")
	fmt.Printf("  %-10s  %-10s  %-8s  %s\n", "--------", "--------", "------", "----")

	for _, d := range duels {
		winner := "Draw"
		switch d.Winner {
		case 1:
			winner = "P1"
		case 2:
			winner = "P2"
		}
		dateStr := d.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-10d  %-10d  %-8s  %s\n", d.Score1, d.Score2, winner, dateStr)
	}
}
