package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fogscout/internal/config"
	"github.com/vovakirdan/fogscout/internal/games/scout"
	"github.com/vovakirdan/fogscout/internal/platform/tui"
	"github.com/vovakirdan/fogscout/internal/registry"
	"github.com/vovakirdan/fogscout/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start fogscout with a mode picker menu",
	Long: `Start fogscout in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a mode, then pick a level
and difficulty. After a run ends, Esc returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  fogscout menu
  fogscout menu --fps 30
  fogscout menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scout config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		store = nil
	}

	gameLog, closeLog := tuiLogger()
	defer closeLog()

	cfg := terminalConfig()
	level := ""
	preset := config.DifficultyPreset("")

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		selection, updatedCfg, selErr := tui.RunLevelSelector(game.Title(), level, preset, cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			continue
		}
		cfg = updatedCfg

		// User pressed back
		if selection == nil {
			continue
		}
		level, preset = selection.Level, selection.Difficulty

		scout.SetConfigPath(flagConfig)
		scout.SetLevel(level)
		scout.SetDifficultyPreset(string(preset))

		// Recreate so the level choice is picked up
		game, err = registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each run
		cfg.Seed = time.Now().UnixNano()

		gameLog.Info("starting run", "mode", gameID, "level", level, "difficulty", preset)
		if err := tui.Run(game, store, cfg, gameLog); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
