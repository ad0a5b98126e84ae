package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blastpong/internal/registry"
	"github.com/vovakirdan/blastpong/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.

For the duel this also shows the recent match history and the
win tally against the CPU.

Examples:
  blastpong scores duel
  blastpong scores scroller`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blastpong list' to see available games.")
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

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blastpong play %s' to set the first high score!\n", gameID)
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
	if len(scores) > 0 {
		highScore, err := store.HighScore(gameID)
		if err == nil {
			fmt.Printf("Best: %d\n", highScore)
		}
	}

	if gameID == "duel" {
		printDuelHistory(store)
	}
}

// printDuelHistory shows the recent duel outcomes and the win tally.
func printDuelHistory(store *storage.Store) {
	matches, err := store.RecentDuelMatches(10)
	if err != nil || len(matches) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent matches:")
	fmt.Printf("  %-8s  %-9s  %-5s  %s\n", "Winner", "Health", "Hits", "Date")
	fmt.Printf("  %-8s  %-9s  %-5s  %s\n", "------", "------", "----", "----")
	for _, m := range matches {
		health := fmt.Sprintf("%d-%d", m.LeftHealth, m.RightHealth)
		dateStr := m.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %-9s  %-5d  %s\n", m.Winner, health, m.Hits, dateStr)
	}

	wins, err := store.DuelWinCounts()
	if err != nil || len(wins) == 0 {
		return
	}

	fmt.Println()
	fmt.Printf("Tally: Player %d, CPU %d\n", wins["Player"], wins["CPU"])
}
