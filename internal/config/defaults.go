package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the default maze game configuration,
// used as a last resort when the embedded YAML cannot be parsed.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Speeds: PacmanSpeeds{
			Player: 0.120,
			Ghost:  0.105,
		},
		Rules: PacmanRules{
			Lives:    3,
			MaxLevel: 5,
		},
		Timers: PacmanTimers{
			FrightenedMs: 8000,
			FlashMs:      2000,
			DeathMs:      1500,
		},
	}
}
