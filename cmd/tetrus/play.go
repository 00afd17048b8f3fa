package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tetrus-game/tetrus/internal/config"
	"github.com/tetrus-game/tetrus/internal/core"
	"github.com/tetrus-game/tetrus/internal/game"
	"github.com/tetrus-game/tetrus/internal/platform/tui"
	"github.com/tetrus-game/tetrus/internal/storage"
)

var (
	flagConfig string
	flagSprint int
	flagUltra  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game. Marathon mode by default; pass --sprint or --ultra
for a goal-based run.

Controls:
  Left/Right/A/D  - Move
  Up/X/W          - Rotate clockwise
  Z               - Rotate counter-clockwise
  Down/S          - Soft drop
  Space           - Hard drop
  C               - Hold
  P/Esc           - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Examples:
  tetrus play
  tetrus play --sprint 40
  tetrus play --ultra 2m
  tetrus play --config ./my-rules.yaml
  tetrus play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().IntVar(&flagSprint, "sprint", 0, "Sprint mode: end after clearing this many lines")
	playCmd.Flags().StringVar(&flagUltra, "ultra", "", "Ultra mode: end after this duration (e.g. 2m, 90s)")
}

// selectMode builds the game mode from the play flags.
func selectMode() (game.Mode, error) {
	if flagSprint > 0 && flagUltra != "" {
		return game.Mode{}, fmt.Errorf("--sprint and --ultra are mutually exclusive")
	}
	if flagSprint > 0 {
		return game.Sprint(flagSprint), nil
	}
	if flagUltra != "" {
		limit, err := time.ParseDuration(flagUltra)
		if err != nil {
			return game.Mode{}, fmt.Errorf("invalid --ultra duration %q: %w", flagUltra, err)
		}
		return game.Ultra(limit), nil
	}
	return game.Endless(), nil
}

func runPlay(cmd *cobra.Command, args []string) {
	mode, err := selectMode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Load gameplay configuration and bind the mode
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	rules := gameCfg.ToRules(mode)
	if err := rules.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid gameplay config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(rules, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
