// tetrus is a terminal falling-block puzzle game.
//
// Usage:
//
//	tetrus play              - Play a game
//	tetrus scores [mode]     - Show high scores
//	tetrus serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetrus/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "tetrus",
	Short: "Tetrus - A falling-block puzzle game for your terminal",
	Long: `Tetrus is a terminal falling-block puzzle game with marathon,
sprint, and ultra modes.

Available commands:
  play     - Play a game
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  tetrus play
  tetrus play --sprint 40
  tetrus play --ultra 2m
  tetrus scores endless
  tetrus serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetrus/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
