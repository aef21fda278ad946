package config

import (
	_ "embed"
)

//go:embed defaults/snek.yaml
var defaultSnekYAML []byte

// DefaultSnekConfig returns the hardcoded default configuration, used as a
// last-resort fallback if even the embedded YAML fails to parse.
func DefaultSnekConfig() SnekConfig {
	return SnekConfig{
		Speed: SpeedConfig{
			InitialIntervalMs: 150,
			StepMs:            5,
			MinIntervalMs:     60,
		},
		Items: ItemsConfig{
			SnackPoints:         10,
			SnackGrowth:         3,
			PowerPoints:         75,
			PoisonSeconds:       15,
			SnackRefreshSeconds: 5,
			PowerRefreshSeconds: 15,
			PowerScoreThreshold: 100,
			PlaceAttempts:       100,
		},
		Obstacles: ObstaclesConfig{
			ScoreThreshold: 100,
			ScoreStep:      100,
			PlaceAttempts:  3,
		},
	}
}
