// blastpong is a terminal arcade built around Blast Duel, a Pong variant
// with a destructible paddle, projectiles and item pickups, plus a
// side-scrolling bonus game.
//
// Usage:
//
//	blastpong list              - List available games
//	blastpong play <game>       - Play a game
//	blastpong menu              - Start menu to pick games interactively
//	blastpong serve             - Start SSH server for remote play
//	blastpong scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blastpong/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/blastpong/internal/games/duel"
	_ "github.com/vovakirdan/blastpong/internal/games/scroller"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blastpong",
	Short: "Blast Pong - Destructible-paddle Pong in your terminal",
	Long: `Blast Pong is a terminal arcade where you duel a CPU paddle that can
be shot to pieces, pixel by pixel, and a side-scroller to cool down after.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  blastpong list
  blastpong play duel
  blastpong menu
  blastpong serve --ssh :2222
  blastpong scores duel`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blastpong/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
