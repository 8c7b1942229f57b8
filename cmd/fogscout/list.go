package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fogscout/internal/config"
	"github.com/vovakirdan/fogscout/internal/registry"
	"github.com/vovakirdan/fogscout/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List modes and levels",
	Long: `Shows the registered game modes and every loadable level.

Levels are read from ~/.fogscout/levels and ./levels; a file there shadows
a builtin level with the same ID.`,
	Run: runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	stats := modeStats()
	maxTitleLen := 5
	for _, g := range games {
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Played")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")
	for _, g := range games {
		played := "-"
		if st, ok := stats[g.ID]; ok {
			played = fmt.Sprintf("%d (best %d)", st.GamesCount, st.HighScore)
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, played)
	}

	levels := config.ListLevels()
	fmt.Println()
	fmt.Println("Levels:")
	fmt.Println()

	maxIDLen = 2
	maxTitleLen = 5
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxTitleLen = max(maxTitleLen, len(l.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Source")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")
	for _, l := range levels {
		marker := ""
		if l.ID == config.DefaultLevel {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %-*s  %s%s\n", maxIDLen, l.ID, maxTitleLen, l.Title, l.Source, marker)
	}

	fmt.Println()
	fmt.Println("Run 'fogscout play <mode> --level <id>' to play.")
}

// modeStats reads per-mode totals; a missing database just means nothing
// has been played yet.
func modeStats() map[string]*storage.GameStats {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Debug("no scores database", "path", flagDBPath, "err", err)
		return nil
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		logger.Debug("cannot read stats", "err", err)
		return nil
	}
	return stats
}
