package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blastpong/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print the default config for a game",
	Long: `Print the default YAML configuration for the specified game.

Redirect the output to create an override file:

  blastpong config duel > ~/.blastpong/configs/duel.yaml
  blastpong config scroller > ./configs/scroller.yaml

Edited copies in either location are picked up automatically;
--config on 'play' points at an explicit file instead.`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	gameID := args[0]

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blastpong list' to see available games.")
		os.Exit(1)
	}

	os.Stdout.Write(data)
}
