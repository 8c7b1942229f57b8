// Package config provides YAML-based configuration loading for fogscout:
// the tunables of the scouting game, level layouts, and difficulty
// management.
package config

// ScoutConfig contains all tunables for the scouting game.
type ScoutConfig struct {
	Cone       ConeConfig       `yaml:"cone"`
	Sampler    SamplerConfig    `yaml:"sampler"`
	Player     PlayerConfig     `yaml:"player"`
	View       ViewConfig       `yaml:"view"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ConeConfig defines the observer's vision cone.
type ConeConfig struct {
	Range    float64 `yaml:"range"`     // world units
	AngleDeg float64 `yaml:"angle_deg"` // full aperture in degrees
}

// SamplerConfig tunes the visibility ray sampler.
type SamplerConfig struct {
	UniformSamples int     `yaml:"uniform_samples"` // intervals across the cone
	CornerEpsilon  float64 `yaml:"corner_epsilon"`  // radians either side of a corner
}

// PlayerConfig defines movement, stamina and interaction parameters.
type PlayerConfig struct {
	Radius       float64 `yaml:"radius"`
	WalkSpeed    float64 `yaml:"walk_speed"` // units per second
	RunSpeed     float64 `yaml:"run_speed"`
	TurnRateDeg  float64 `yaml:"turn_rate_deg"` // degrees per second toward the aim target
	AimStepDeg   float64 `yaml:"aim_step_deg"`  // keyboard nudge per press
	StaminaMax   float64 `yaml:"stamina_max"`
	StaminaDrain float64 `yaml:"stamina_drain"` // per second while running
	StaminaRegen float64 `yaml:"stamina_regen"` // per second otherwise
	PickupRadius float64 `yaml:"pickup_radius"`
}

// ViewConfig maps world units to terminal cells.
type ViewConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // world units per column
	CellHeight float64 `yaml:"cell_height"` // world units per row
}

// GameplayConfig defines scoring and the run timer.
type GameplayConfig struct {
	TimeLimitSecs   int `yaml:"time_limit_secs"` // 0 = untimed
	LootPoints      int `yaml:"loot_points"`
	DiscoverPoints  int `yaml:"discover_points"`
	TimeBonusPerSec int `yaml:"time_bonus_per_sec"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines how much the cone shrinks at max difficulty.
type ScalingConfig struct {
	RangeReduction float64 `yaml:"range_reduction"` // fraction of range lost
	AngleReduction float64 `yaml:"angle_reduction"` // fraction of aperture lost
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown or empty strings
// yield the empty preset, meaning "use the config as loaded".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// LevelConfig describes one map: bounds, spawn, walls and fog-tracked objects.
type LevelConfig struct {
	ID        string           `yaml:"id"`
	Title     string           `yaml:"title"`
	Bounds    RectConfig       `yaml:"bounds"`
	Spawn     Vec              `yaml:"spawn"`
	Facing    Vec              `yaml:"facing"`
	Obstacles []ObstacleConfig `yaml:"obstacles"`
	Objects   []ObjectConfig   `yaml:"objects"`
}

// Vec is a 2D point in level files, written as {x: 1, y: 2}.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectConfig is an axis-aligned rectangle given by its centre and size.
type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// ObstacleConfig is either a rect shorthand or an anchor with local vertices.
type ObstacleConfig struct {
	Name     string      `yaml:"name"`
	Rect     *RectConfig `yaml:"rect,omitempty"`
	Anchor   Vec         `yaml:"anchor"`
	Vertices []Vec       `yaml:"vertices"`
}

// Object kinds understood by the game.
const (
	KindLoot     = "loot"
	KindLandmark = "landmark"
)

// ObjectConfig is a fog-tracked object placed in the level.
type ObjectConfig struct {
	Kind     string `yaml:"kind"`
	Name     string `yaml:"name"`
	Count    int    `yaml:"count"` // stack size for loot, defaults to 1
	Position Vec    `yaml:"position"`
	Color    string `yaml:"color"` // "#rrggbb"
}
