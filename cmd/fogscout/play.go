package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fogscout/internal/config"
	"github.com/vovakirdan/fogscout/internal/core"
	"github.com/vovakirdan/fogscout/internal/games/scout"
	"github.com/vovakirdan/fogscout/internal/platform/spectate"
	"github.com/vovakirdan/fogscout/internal/platform/tui"
	"github.com/vovakirdan/fogscout/internal/registry"
	"github.com/vovakirdan/fogscout/internal/storage"
	"github.com/vovakirdan/fogscout/internal/world"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      string
	flagSpectate   string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode. Without --level a level picker is shown.

Modes:
  scout  - Pick up every piece of loot before time runs out
  survey - Spot every landmark

Controls:
  WASD/Arrows    - Move (Shift or Space to run)
  Q/E or ,/.     - Turn the vision cone
  Mouse          - Aim at the pointer, click to pick up
  F/Enter        - Pick up the selected loot
  Tab            - Cycle loot in reach
  P              - Pause
  R              - Restart (after the run ends)
  Esc/B          - Back
  Ctrl+S         - Save a text screenshot
  Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  fogscout play scout
  fogscout play survey --level courtyard
  fogscout play scout --difficulty hard
  fogscout play scout --config ./my-scout.yaml
  fogscout play scout --level ./levels/maze.yaml
  fogscout play scout --spectate :8080`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom scout config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID or path to a level YAML")
	playCmd.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a websocket spectator feed on this address (e.g. :8080)")
}

// terminalConfig builds the runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// applyGameFlags hands the CLI selection to the scout package before a game
// is created.
func applyGameFlags() {
	scout.SetConfigPath(flagConfig)
	scout.SetDifficultyPreset(flagDifficulty)
	scout.SetLevel(flagLevel)
}

// startSpectator serves the spectator feed and installs the tick hook.
// The returned func stops both.
func startSpectator(addr string, l *log.Logger) (func(), error) {
	hub := spectate.NewHub(l.With("component", "spectate"))
	srv := &http.Server{
		Addr:              addr,
		Handler:           hub,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	// Surface immediate bind failures before the TUI takes the terminal.
	select {
	case err := <-errc:
		return nil, fmt.Errorf("spectator feed on %s: %w", addr, err)
	case <-time.After(100 * time.Millisecond):
	}

	scout.SetTickHook(func(w *world.World, rep world.TickReport) {
		hub.Publish(spectate.NewFrame(w, rep.Tick))
	})

	return func() {
		scout.SetTickHook(nil)
		hub.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		//nolint:errcheck // Best-effort shutdown
		srv.Shutdown(ctx)
	}, nil
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'fogscout list' to see available modes.")
		os.Exit(1)
	}

	cfg := terminalConfig()

	// Show the level picker unless a level was given
	if flagLevel == "" {
		game, err := registry.Create(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}
		selection, updatedCfg, selErr := tui.RunLevelSelector(game.Title(), "", config.ParsePreset(flagDifficulty), cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}
		flagLevel = selection.Level
		flagDifficulty = string(selection.Difficulty)
	}
	applyGameFlags()

	gameLog, closeLog := tuiLogger()
	defer closeLog()

	if flagSpectate != "" {
		stop, err := startSpectator(flagSpectate, gameLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer stop()
		logger.Info("spectator feed listening", "addr", flagSpectate)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg, gameLog)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
