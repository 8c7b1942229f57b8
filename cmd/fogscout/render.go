package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fogscout/internal/config"
	"github.com/vovakirdan/fogscout/internal/platform/raster"
	"github.com/vovakirdan/fogscout/internal/visibility"
	"github.com/vovakirdan/fogscout/internal/world"
)

var (
	flagRenderLevel      string
	flagRenderConfig     string
	flagRenderDifficulty string
	flagRenderTicks      int
	flagRenderAim        float64
	flagRenderWidth      int
	flagRenderOut        string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a level to PNG",
	Long: `Simulate a level headlessly and write the final tick to a PNG image.

The observer stands still and turns toward --aim-deg (counter-clockwise
from east) for --ticks ticks. The image shows the visibility fan, walls,
and every object tinted by its fog state.

Examples:
  fogscout render
  fogscout render --level warehouse --aim-deg 180 --out warehouse.png
  fogscout render --level ./levels/maze.yaml --ticks 240 --width 1200`,
	Args: cobra.NoArgs,
	Run:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&flagRenderLevel, "level", config.DefaultLevel, "Level ID or path to a level YAML")
	renderCmd.Flags().StringVar(&flagRenderConfig, "config", "", "Path to custom scout config YAML")
	renderCmd.Flags().StringVar(&flagRenderDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	renderCmd.Flags().IntVar(&flagRenderTicks, "ticks", 60, "Ticks to simulate before rendering")
	renderCmd.Flags().Float64Var(&flagRenderAim, "aim-deg", 90, "Direction to turn toward, in degrees")
	renderCmd.Flags().IntVar(&flagRenderWidth, "width", raster.DefaultOptions().Width, "Image width in pixels")
	renderCmd.Flags().StringVar(&flagRenderOut, "out", "fogscout.png", "Output PNG path")
}

func runRender(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadScout(flagRenderConfig)
	if err != nil {
		logger.Warn("could not load config, using defaults", "path", flagRenderConfig, "err", err)
	}
	if flagRenderDifficulty != "" {
		config.ApplyScoutPreset(&cfg, config.ParsePreset(flagRenderDifficulty))
	}

	lvl, err := config.LoadLevel(flagRenderLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'fogscout list' to see available levels.")
		os.Exit(1)
	}

	w := world.New(lvl, cfg)
	dir := visibility.FromAngle(flagRenderAim * math.Pi / 180)
	dt := 1.0 / float64(max(flagFPS, 1))

	var rep world.TickReport
	for range max(flagRenderTicks, 1) {
		in := world.Intent{
			Aim:    w.Player().Position.Add(dir),
			HasAim: true,
		}
		rep = w.Tick(in, dt)
	}

	opts := raster.DefaultOptions()
	opts.Width = flagRenderWidth
	if err := raster.SavePNG(w, flagRenderOut, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	total, found := w.CountKind(world.KindLoot)
	logger.Info("rendered",
		"level", lvl.ID,
		"tick", rep.Tick,
		"discovered", w.DiscoveredCount(),
		"loot", fmt.Sprintf("%d/%d", found, total),
		"vertices", len(w.Boundary()),
		"out", flagRenderOut,
	)
}
