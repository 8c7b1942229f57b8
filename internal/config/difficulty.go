package config

import "math"

// Floors below which difficulty never shrinks the cone.
const (
	minRangeFraction = 0.25
	minAngleFraction = 0.25
)

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// ConeRange returns the vision range for the current difficulty.
func (d *DifficultyManager) ConeRange(baseRange float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	factor := math.Max(1.0-level*d.cfg.Scaling.RangeReduction, minRangeFraction)
	return baseRange * factor
}

// ConeAngle returns the cone aperture for the current difficulty.
// The result never exceeds a full turn.
func (d *DifficultyManager) ConeAngle(baseAngle float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	factor := math.Max(1.0-level*d.cfg.Scaling.AngleReduction, minAngleFraction)
	return math.Min(baseAngle*factor, 2*math.Pi)
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
