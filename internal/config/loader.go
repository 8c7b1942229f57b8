package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownLevel is returned when a level ID matches no file.
var ErrUnknownLevel = errors.New("config: unknown level")

// HomeDir is the per-user directory under $HOME holding configs, levels,
// the scores database and the SSH host key.
const HomeDir = ".fogscout"

// LoadScout loads the scouting game configuration. Files only need to carry
// the keys they change; everything else keeps the embedded default.
// Search order: customPath -> ~/.fogscout/configs/scout.yaml -> ./configs/scout.yaml -> embedded default
func LoadScout(customPath string) (ScoutConfig, error) {
	base := embeddedScout()

	// Try custom path first
	if customPath != "" {
		cfg := base
		if err := readYAMLFile(customPath, &cfg); err != nil {
			return base, err
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, p := range []string{userPath("configs", "scout.yaml"), filepath.Join("configs", "scout.yaml")} {
		if p == "" {
			continue
		}
		cfg := base
		if err := readYAMLFile(p, &cfg); err == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// embeddedScout parses the embedded default YAML.
func embeddedScout() ScoutConfig {
	var cfg ScoutConfig
	if err := yaml.Unmarshal(defaultScoutYAML, &cfg); err != nil {
		return DefaultScoutConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// ApplyScoutPreset modifies the config based on a difficulty preset.
func ApplyScoutPreset(cfg *ScoutConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the cone and the clock for the extremes
	switch preset {
	case DifficultyEasy:
		cfg.Cone.AngleDeg *= 1.25
		cfg.Gameplay.TimeLimitSecs += cfg.Gameplay.TimeLimitSecs / 2
	case DifficultyHard:
		cfg.Cone.Range *= 0.8
		cfg.Gameplay.TimeLimitSecs -= cfg.Gameplay.TimeLimitSecs / 4
	}
}

// LevelInfo is a level listing entry.
type LevelInfo struct {
	ID     string
	Title  string
	Source string // "builtin", "user" or "local"
}

// LoadLevel loads a level by ID or by path to a .yaml file.
// Search order for IDs: ~/.fogscout/levels/<id>.yaml -> ./levels/<id>.yaml -> embedded
func LoadLevel(idOrPath string) (LevelConfig, error) {
	var lvl LevelConfig

	if idOrPath == "" {
		idOrPath = DefaultLevel
	}

	if strings.HasSuffix(idOrPath, ".yaml") || strings.HasSuffix(idOrPath, ".yml") {
		if err := readYAMLFile(idOrPath, &lvl); err != nil {
			return lvl, err
		}
		if lvl.ID == "" {
			lvl.ID = strings.TrimSuffix(filepath.Base(idOrPath), filepath.Ext(idOrPath))
		}
		return lvl, ValidateLevel(lvl)
	}

	for _, p := range []string{userPath("levels", idOrPath+".yaml"), filepath.Join("levels", idOrPath+".yaml")} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := readYAMLFile(p, &lvl); err != nil {
			return lvl, err
		}
		if lvl.ID == "" {
			lvl.ID = idOrPath
		}
		return lvl, ValidateLevel(lvl)
	}

	data := GetDefaultYAML(idOrPath)
	if data == nil {
		return lvl, fmt.Errorf("%w %q", ErrUnknownLevel, idOrPath)
	}
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return lvl, fmt.Errorf("config: failed to parse builtin level %s: %w", idOrPath, err)
	}
	return lvl, ValidateLevel(lvl)
}

// ListLevels returns all loadable levels sorted by ID. User and local level
// files shadow builtin levels with the same ID.
func ListLevels() []LevelInfo {
	byID := make(map[string]LevelInfo)

	for _, id := range builtinLevelIDs() {
		var lvl LevelConfig
		if err := yaml.Unmarshal(GetDefaultYAML(id), &lvl); err != nil {
			continue
		}
		byID[id] = LevelInfo{ID: id, Title: lvl.Title, Source: "builtin"}
	}

	dirs := []struct {
		dir    string
		source string
	}{
		{filepath.Join("levels"), "local"},
		{userPath("levels"), "user"},
	}
	for _, d := range dirs {
		if d.dir == "" {
			continue
		}
		matches, err := filepath.Glob(filepath.Join(d.dir, "*.yaml"))
		if err != nil {
			continue
		}
		for _, m := range matches {
			var lvl LevelConfig
			if err := readYAMLFile(m, &lvl); err != nil {
				continue
			}
			id := strings.TrimSuffix(filepath.Base(m), ".yaml")
			byID[id] = LevelInfo{ID: id, Title: lvl.Title, Source: d.source}
		}
	}

	out := make([]LevelInfo, 0, len(byID))
	for _, info := range byID {
		if info.Title == "" {
			info.Title = info.ID
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// ValidateLevel checks a level for values the game cannot run with.
// Degenerate obstacles (fewer than 3 vertices) are allowed; they simply
// never occlude.
func ValidateLevel(lvl LevelConfig) error {
	if lvl.Bounds.W <= 0 || lvl.Bounds.H <= 0 {
		return fmt.Errorf("config: level %q: bounds must have positive size", lvl.ID)
	}
	for i, o := range lvl.Obstacles {
		if o.Rect != nil && (o.Rect.W <= 0 || o.Rect.H <= 0) {
			return fmt.Errorf("config: level %q: obstacle %d (%s): rect must have positive size", lvl.ID, i, o.Name)
		}
		if o.Rect != nil && len(o.Vertices) > 0 {
			return fmt.Errorf("config: level %q: obstacle %d (%s): use either rect or vertices", lvl.ID, i, o.Name)
		}
	}
	for i, obj := range lvl.Objects {
		switch obj.Kind {
		case KindLoot, KindLandmark:
		default:
			return fmt.Errorf("config: level %q: object %d (%s): unknown kind %q", lvl.ID, i, obj.Name, obj.Kind)
		}
	}
	return nil
}

// readYAMLFile reads and parses a YAML file into out.
func readYAMLFile(p string, out any) error {
	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", p, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", p, err)
	}
	return nil
}

// userPath joins elems under ~/.fogscout, or returns empty if home is unavailable.
func userPath(elems ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, HomeDir}, elems...)...)
}
