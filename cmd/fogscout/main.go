// fogscout is a terminal scouting game built around a field-of-view engine:
// sweep a vision cone past walls to find loot and landmarks hidden under
// fog-of-war.
//
// Usage:
//
//	fogscout list              - List modes and levels
//	fogscout play <mode>       - Play a mode (scout or survey)
//	fogscout menu              - Start menu to pick modes interactively
//	fogscout serve             - Start SSH server for remote play
//	fogscout scores <mode>     - Show high scores and recent runs
//	fogscout render            - Render a level tick to PNG
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.fogscout/scores.db)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/fogscout/internal/games/scout"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fogscout",
	Short: "Fogscout - scout a fog-of-war map in your terminal",
	Long: `Fogscout is a top-down scouting game for the terminal. Your vision
is a cone that walls cut short; anything you have not seen stays hidden,
and anything you saw once is remembered in gray.

Available commands:
  list     - Show modes and levels
  play     - Play a mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and run history
  render   - Render a level to PNG

Examples:
  fogscout list
  fogscout play scout --level warehouse
  fogscout menu
  fogscout serve --ssh :2222
  fogscout scores survey --runs`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogger(flagLogLevel)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fogscout/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(renderCmd)
}
