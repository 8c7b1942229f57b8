// Package scout implements the fogscout game modes on top of the world:
// scout (collect every piece of loot before time runs out) and survey
// (discover every landmark).
package scout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/fogscout/internal/config"
	"github.com/vovakirdan/fogscout/internal/core"
	"github.com/vovakirdan/fogscout/internal/registry"
	"github.com/vovakirdan/fogscout/internal/visibility"
	"github.com/vovakirdan/fogscout/internal/world"
)

// Game states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover" // time ran out
	StateWin      = "win"      // objective complete
)

// Mode represents the game mode.
type Mode string

const (
	ModeScout  Mode = "scout"
	ModeSurvey Mode = "survey"
)

// holdTicks is how long a movement or run key stays held after a press.
// Terminals report presses and repeats but never releases.
const holdTicks = 8

// TickHook observes the world after every simulation tick.
type TickHook func(w *world.World, rep world.TickReport)

// Package-level settings set via CLI or menu (like the other platform settings)
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelID          string
	tickHook         TickHook
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevel selects the level by ID or .yaml path. Empty means the default level.
func SetLevel(id string) {
	levelID = id
}

// GetLevel returns the selected level ID.
func GetLevel() string {
	return levelID
}

// SetTickHook installs a hook called after every world tick. Nil removes it.
func SetTickHook(h TickHook) {
	tickHook = h
}

// Game implements registry.Game for one scouting run.
type Game struct {
	mode    Mode
	levelID string
	preset  config.DifficultyPreset

	world   *world.World
	level   config.LevelConfig
	cfg     config.ScoutConfig
	runtime core.RuntimeConfig
	loadErr error

	difficulty *config.DifficultyManager
	baseRange  float64
	baseAngle  float64

	state     string
	score     int
	tickCount int
	ticksLeft int // 0 when untimed
	collected int
	tracked   int
	message   string
	msgTicks  int

	// input latches
	hold    [4]int // up, down, left, right
	runHold int
	aim     visibility.Vec2
	hasAim  bool

	// last rendered play area, for pointer mapping
	view camera
}

// New creates a scout-mode game using the package-level level and preset.
func New() *Game {
	return newGame(ModeScout)
}

// NewSurvey creates a survey-mode game using the package-level level and preset.
func NewSurvey() *Game {
	return newGame(ModeSurvey)
}

func newGame(mode Mode) *Game {
	return &Game{mode: mode, levelID: levelID, preset: difficultyPreset}
}

// Configure overrides the level and difficulty preset for this game only.
// Takes effect on the next Reset.
func (g *Game) Configure(level string, preset config.DifficultyPreset) {
	g.levelID = level
	g.preset = preset
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeSurvey {
		return "Survey"
	}
	return "Scout"
}

// Reset loads the config and level and starts a fresh run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadScout(configPath)
	if err != nil {
		cfg = config.DefaultScoutConfig()
	}
	if g.preset != "" {
		config.ApplyScoutPreset(&cfg, g.preset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	lvl, err := config.LoadLevel(g.levelID)
	if err != nil {
		g.loadErr = err
		lvl, err = config.LoadLevel(config.DefaultLevel)
		if err != nil {
			g.world = nil
			g.state = StateGameOver
			return
		}
	} else {
		g.loadErr = nil
	}
	g.level = lvl
	g.world = world.New(lvl, cfg)

	cone := g.world.Cone()
	g.baseRange = cone.Range
	g.baseAngle = cone.Angle

	g.state = StatePlaying
	g.score = 0
	g.tickCount = 0
	g.collected = 0
	g.tracked = len(g.world.Objects())
	g.ticksLeft = cfg.Gameplay.TimeLimitSecs * g.tickRate()
	g.hold = [4]int{}
	g.runHold = 0
	g.hasAim = false
	g.message = ""
	g.msgTicks = 0
	if g.loadErr != nil {
		g.flash(fmt.Sprintf("Level %q not found, playing %s", g.levelID, lvl.Title))
	}
}

// World returns the running world, or nil if no level could be loaded.
func (g *Game) World() *world.World {
	return g.world
}

// Level returns the loaded level.
func (g *Game) Level() config.LevelConfig {
	return g.level
}

func (g *Game) tickRate() int {
	if g.runtime.TickRate <= 0 {
		return 60
	}
	return g.runtime.TickRate
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StatePlaying
		case StatePlaying:
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.applyDifficulty()

	intent := g.intent(in)
	rep := g.world.Tick(intent, g.runtime.Dt())
	g.onReport(rep)

	if tickHook != nil {
		tickHook(g.world, rep)
	}

	if g.msgTicks > 0 {
		g.msgTicks--
	}

	switch {
	case g.objectiveComplete():
		g.finish(true)
	case g.ticksLeft > 0:
		g.ticksLeft--
		if g.ticksLeft == 0 {
			g.finish(false)
		}
	}

	return core.StepResult{State: g.State()}
}

// applyDifficulty narrows and shortens the cone as the run goes on.
func (g *Game) applyDifficulty() {
	rng := g.difficulty.ConeRange(g.baseRange, g.score, g.tickCount)
	angle := g.difficulty.ConeAngle(g.baseAngle, g.score, g.tickCount)
	g.world.SetCone(rng, angle)
}

// intent turns platform actions into a world intent, refreshing the
// movement latches.
func (g *Game) intent(in core.InputFrame) world.Intent {
	dirs := [4]core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}
	for i, a := range dirs {
		switch {
		case in.Has(a):
			g.hold[i] = holdTicks
		case g.hold[i] > 0:
			g.hold[i]--
		}
	}
	switch {
	case in.Has(core.ActionRun):
		g.runHold = holdTicks
	case g.runHold > 0:
		g.runHold--
	}

	var intent world.Intent
	if g.hold[0] > 0 {
		intent.Move.Y++
	}
	if g.hold[1] > 0 {
		intent.Move.Y--
	}
	if g.hold[2] > 0 {
		intent.Move.X--
	}
	if g.hold[3] > 0 {
		intent.Move.X++
	}
	intent.Run = g.runHold > 0

	step := g.cfg.Player.AimStepDeg * math.Pi / 180
	if in.Has(core.ActionAimLeft) {
		intent.Turn += step
		g.hasAim = false
	}
	if in.Has(core.ActionAimRight) {
		intent.Turn -= step
		g.hasAim = false
	}
	if p, ok := in.Pointer(); ok && g.view.valid() {
		g.aim = g.view.toWorld(p.X, p.Y)
		g.hasAim = true
	}
	intent.Aim = g.aim
	intent.HasAim = g.hasAim

	intent.Cycle = in.Has(core.ActionCycle)
	intent.Interact = in.Has(core.ActionInteract) || in.Has(core.ActionConfirm)
	return intent
}

// onReport scores discoveries and pickups.
func (g *Game) onReport(rep world.TickReport) {
	g.score += len(rep.Discovered) * g.cfg.Gameplay.DiscoverPoints
	for _, p := range rep.Picked {
		g.collected++
		g.score += g.cfg.Gameplay.LootPoints
		g.flash(pickupMessage(p))
	}
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.msgTicks = 2 * g.tickRate()
}

// objectiveComplete reports whether the mode's goal has been reached.
func (g *Game) objectiveComplete() bool {
	switch g.mode {
	case ModeSurvey:
		total, seen := g.world.CountKind(world.KindLandmark)
		return total > 0 && seen == total
	default:
		total, _ := g.world.CountKind(world.KindLoot)
		if total > 0 {
			return false
		}
		if g.collected > 0 {
			return true
		}
		// A level without loot is won by sighting every landmark.
		marks, seen := g.world.CountKind(world.KindLandmark)
		return marks > 0 && seen == marks
	}
}

// finish ends the run, adding the time bonus on a win.
func (g *Game) finish(won bool) {
	if won {
		g.state = StateWin
		g.score += g.ticksLeft / g.tickRate() * g.cfg.Gameplay.TimeBonusPerSec
		return
	}
	g.state = StateGameOver
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// RunSummary describes the run for the history table.
func (g *Game) RunSummary() core.RunSummary {
	s := core.RunSummary{
		Mode:       g.ID(),
		Level:      g.level.ID,
		Difficulty: string(g.preset),
		Seed:       g.runtime.Seed,
		Ticks:      g.tickCount,
		Score:      g.score,
		Tracked:    g.tracked,
		Collected:  g.collected,
		Won:        g.state == StateWin,
	}
	if g.world != nil {
		s.Discovered = g.world.DiscoveredCount()
	}
	return s
}

// Register the games with the registry
func init() {
	registry.Register("scout", func() registry.Game {
		return New()
	})
	registry.Register("survey", func() registry.Game {
		return NewSurvey()
	})
}
