package config

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed defaults/scout.yaml
var defaultScoutYAML []byte

//go:embed defaults/levels/*.yaml
var defaultLevels embed.FS

// DefaultLevel is played when no level is chosen.
const DefaultLevel = "proving_grounds"

// DefaultScoutConfig returns the hardcoded scouting configuration, used when
// the embedded YAML cannot be parsed.
func DefaultScoutConfig() ScoutConfig {
	return ScoutConfig{
		Cone: ConeConfig{
			Range:    1000,
			AngleDeg: 90,
		},
		Sampler: SamplerConfig{
			UniformSamples: 16,
			CornerEpsilon:  1e-5,
		},
		Player: PlayerConfig{
			Radius:       30,
			WalkSpeed:    85,
			RunSpeed:     170,
			TurnRateDeg:  360,
			AimStepDeg:   15,
			StaminaMax:   100,
			StaminaDrain: 15,
			StaminaRegen: 10,
			PickupRadius: 60,
		},
		View: ViewConfig{
			CellWidth:  20,
			CellHeight: 40,
		},
		Gameplay: GameplayConfig{
			TimeLimitSecs:   180,
			LootPoints:      100,
			DiscoverPoints:  10,
			TimeBonusPerSec: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 10800, // 3 minutes at 60fps
			},
			Scaling: ScalingConfig{
				RangeReduction: 0.4,
				AngleReduction: 0.3,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name:
// "scout" or a built-in level ID.
func GetDefaultYAML(name string) []byte {
	if name == "scout" {
		return defaultScoutYAML
	}
	data, err := defaultLevels.ReadFile(path.Join("defaults", "levels", name+".yaml"))
	if err != nil {
		return nil
	}
	return data
}

// builtinLevelIDs lists the embedded level IDs, sorted.
func builtinLevelIDs() []string {
	entries, err := fs.ReadDir(defaultLevels, "defaults/levels")
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if name := e.Name(); strings.HasSuffix(name, ".yaml") {
			ids = append(ids, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(ids)
	return ids
}
