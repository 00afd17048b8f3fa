package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tetrus-game/tetrus/internal/platform/tui"
	"github.com/tetrus-game/tetrus/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display saved runs. With a mode argument, shows the top 10 runs for
that mode; without one, shows a summary of every mode played.

Mode identifiers look like "endless", "sprint-40", or "ultra-120s".

Examples:
  tetrus scores
  tetrus scores endless
  tetrus scores sprint-40
  tetrus scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(args) == 0 {
		printModeSummary(store)
		return
	}

	printModeRuns(store, args[0])
}

// printModeSummary lists every mode with saved runs.
func printModeSummary(store *storage.Store) {
	modes, err := store.Modes()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving modes: %v\n", err)
		os.Exit(1)
	}

	if len(modes) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetrus play' to set the first high score!")
		return
	}

	fmt.Println("Saved runs by mode:")
	fmt.Println()
	fmt.Printf("  %-12s  %-6s  %-12s  %s\n", "Mode", "Runs", "Best Score", "Best Lines")
	fmt.Printf("  %-12s  %-6s  %-12s  %s\n", "----", "----", "----------", "----------")

	for _, mode := range modes {
		stats, err := store.Stats(mode)
		if err != nil {
			continue
		}
		fmt.Printf("  %-12s  %-6d  %-12d  %d\n", mode, stats.Runs, stats.BestScore, stats.BestLines)
	}

	fmt.Println()
	fmt.Println("Run 'tetrus scores <mode>' for the full table.")
}

// printModeRuns shows the top runs for one mode.
func printModeRuns(store *storage.Store, mode string) {
	runs, err := store.TopRuns(mode, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet for this mode.")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-9s  %-6s  %s\n",
		"Rank", "Score", "Lines", "Level", "Result", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %-9s  %-6s  %s\n",
		"----", "-----", "-----", "-----", "------", "----", "----")

	for i, r := range runs {
		total := int(r.Duration.Seconds())
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %-9s  %02d:%02d  %s\n",
			i+1, r.Score, r.Lines, r.Level, r.Outcome,
			total/60, total%60, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if highScore, err := store.HighScore(mode); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
