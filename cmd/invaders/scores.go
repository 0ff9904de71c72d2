package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagScoresEndless bool
	flagScoresLimit   int
	flagScoresClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top scores for the classic or endless mode.

Examples:
  invaders scores
  invaders scores --endless --limit 20
  invaders scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresEndless, "endless", false, "Show endless mode scores")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the mode")
}

func runScores(_ *cobra.Command, _ []string) error {
	gameID, title := invaders.GameIDClassic, "Classic"
	if flagScoresEndless {
		gameID, title = invaders.GameIDEndless, "Endless"
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared %s scores.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - Invaders %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-4s  %-6s  %-10s  %s\n", "Rank", "Score", "Wave", "Time", "End", "Date")
	fmt.Printf("  %-4s  %-8s  %-4s  %-6s  %-10s  %s\n", "----", "-----", "----", "----", "---", "----")

	for i, entry := range scores {
		secs := entry.DurationMs / 1000
		fmt.Printf("  %-4d  %-8d  %-4d  %-6s  %-10s  %s\n",
			i+1, entry.Score, entry.Wave,
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			strings.ReplaceAll(entry.EndReason, "_", " "),
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}
