package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lanehop/internal/game"
	"github.com/vovakirdan/lanehop/internal/platform/tui"
	"github.com/vovakirdan/lanehop/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high score and top sessions",
	Long: `Display the best score, the lifetime number of evaded enemies and
the top 10 finished sessions.

Examples:
  lanehop scores
  lanehop scores -i
  lanehop scores --store gdata`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, _ []string) {
	history, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer history.Close()

	scores, err := openScores(history)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score store: %v\n", err)
		os.Exit(1)
	}
	high := scores.GetInt(game.KeyHighScore, 0)
	total := scores.GetInt(game.KeyTotalEvaded, 0)

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(history, high, total, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	top, err := history.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Lanehop - High Scores")
	fmt.Println()
	fmt.Printf("Best:   %d\n", high)
	fmt.Printf("Evaded: %d\n", total)
	fmt.Println()

	if len(top) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'lanehop play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "----", "-----", "------", "----")
	for i, entry := range top {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-10d  %-12s  %s\n", i+1, entry.Score, player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}
