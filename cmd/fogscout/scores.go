package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fogscout/internal/registry"
	"github.com/vovakirdan/fogscout/internal/storage"
)

var (
	flagRuns     bool
	flagAllScore bool
	flagClear    bool
	flagRunID    string
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores for the specified mode, or the most
recent runs with --runs.

Examples:
  fogscout scores scout
  fogscout scores scout --all
  fogscout scores survey --runs
  fogscout scores scout --run 6f1c...
  fogscout scores scout --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "Show recent runs instead of high scores")
	scoresCmd.Flags().BoolVar(&flagAllScore, "all", false, "Show every recorded score")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all high scores for the mode")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show one run by ID")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'fogscout list' to see available modes.")
		os.Exit(1)
	}

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

	switch {
	case flagClear:
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		logger.Info("cleared high scores", "mode", gameID)
		return
	case flagRunID != "":
		printRun(store, flagRunID)
		return
	case flagRuns:
		printRuns(store, gameID, title)
		return
	}

	var scores []storage.ScoreEntry
	if flagAllScore {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'fogscout play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d, average: %.0f\n", stats.GamesCount, stats.AvgScore)
	}
}

func printRuns(store *storage.Store, gameID, title string) {
	runs, err := store.RecentRuns(gameID, 20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("Recent Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-18s  %-10s  %7s  %5s  %5s  %6s  %s\n",
		"Date", "Level", "Difficulty", "Score", "Found", "Loot", "Ticks", "Result")
	fmt.Printf("  %-16s  %-18s  %-10s  %7s  %5s  %5s  %6s  %s\n",
		"----", "-----", "----------", "-----", "-----", "----", "-----", "------")
	for _, r := range runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		difficulty := r.Difficulty
		if difficulty == "" {
			difficulty = "config"
		}
		fmt.Printf("  %-16s  %-18s  %-10s  %7d  %2d/%-2d  %5d  %6d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Level, difficulty, r.Score,
			r.Discovered, r.Tracked, r.Collected, r.Ticks, result)
	}
}

func printRun(store *storage.Store, id string) {
	r, err := store.RunByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		return
	}
	if r == nil {
		fmt.Fprintf(os.Stderr, "Error: no run with ID %q\n", id)
		return
	}

	result := "lost"
	if r.Won {
		result = "won"
	}
	fmt.Printf("Run %s\n", r.ID)
	fmt.Println()
	fmt.Printf("  %-11s %s\n", "Date", r.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  %-11s %s\n", "Mode", r.Mode)
	fmt.Printf("  %-11s %s\n", "Level", r.Level)
	fmt.Printf("  %-11s %s\n", "Difficulty", r.Difficulty)
	fmt.Printf("  %-11s %d\n", "Seed", r.Seed)
	fmt.Printf("  %-11s %d\n", "Ticks", r.Ticks)
	fmt.Printf("  %-11s %d\n", "Score", r.Score)
	fmt.Printf("  %-11s %d/%d\n", "Discovered", r.Discovered, r.Tracked)
	fmt.Printf("  %-11s %d\n", "Loot", r.Collected)
	fmt.Printf("  %-11s %s\n", "Result", result)
}
