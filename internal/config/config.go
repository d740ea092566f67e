// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// PacmanConfig contains all tunable parameters for the maze game.
type PacmanConfig struct {
	Speeds PacmanSpeeds `yaml:"speeds"`
	Rules  PacmanRules  `yaml:"rules"`
	Timers PacmanTimers `yaml:"timers"`
}

// PacmanSpeeds defines actor base speeds in pixels per millisecond,
// before difficulty and level scaling.
type PacmanSpeeds struct {
	Player float64 `yaml:"player"`
	Ghost  float64 `yaml:"ghost"`
}

// PacmanRules defines match structure parameters.
type PacmanRules struct {
	Lives    int `yaml:"lives"`
	MaxLevel int `yaml:"max_level"`
}

// PacmanTimers defines engine timer durations in milliseconds.
type PacmanTimers struct {
	FrightenedMs float64 `yaml:"frightened_ms"`
	FlashMs      float64 `yaml:"flash_ms"`
	DeathMs      float64 `yaml:"death_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the string names a known preset.
func ValidPreset(s string) bool {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}
