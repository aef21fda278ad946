// Package config provides YAML-based configuration loading and difficulty
// presets for snek. The board dimensions are deliberately not configurable;
// only timing and scoring tunables live here.
package config

import "time"

// SnekConfig contains all gameplay tunables.
type SnekConfig struct {
	Speed     SpeedConfig     `yaml:"speed"`
	Items     ItemsConfig     `yaml:"items"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
}

// SpeedConfig defines the tick-interval progression. The interval shrinks by
// StepMs per snack, never below MinIntervalMs.
type SpeedConfig struct {
	InitialIntervalMs int `yaml:"initial_interval_ms"`
	StepMs            int `yaml:"step_ms"`
	MinIntervalMs     int `yaml:"min_interval_ms"`
}

// ItemsConfig defines item scoring and the wall-clock refresh cadences.
type ItemsConfig struct {
	SnackPoints         int `yaml:"snack_points"`
	SnackGrowth         int `yaml:"snack_growth"`
	PowerPoints         int `yaml:"power_points"`
	PoisonSeconds       int `yaml:"poison_seconds"`
	SnackRefreshSeconds int `yaml:"snack_refresh_seconds"`
	PowerRefreshSeconds int `yaml:"power_refresh_seconds"`
	PowerScoreThreshold int `yaml:"power_score_threshold"`
	PlaceAttempts       int `yaml:"place_attempts"`
}

// ObstaclesConfig defines when barriers spawn and how hard placement tries.
type ObstaclesConfig struct {
	ScoreThreshold int `yaml:"score_threshold"`
	ScoreStep      int `yaml:"score_step"`
	PlaceAttempts  int `yaml:"place_attempts"`
}

// InitialInterval returns the starting tick interval as a duration.
func (c SpeedConfig) InitialInterval() time.Duration {
	return time.Duration(c.InitialIntervalMs) * time.Millisecond
}

// Step returns the per-snack interval decrement as a duration.
func (c SpeedConfig) Step() time.Duration {
	return time.Duration(c.StepMs) * time.Millisecond
}

// MinInterval returns the interval floor as a duration.
func (c SpeedConfig) MinInterval() time.Duration {
	return time.Duration(c.MinIntervalMs) * time.Millisecond
}

// PoisonDuration returns how long the poisoned status lingers.
func (c ItemsConfig) PoisonDuration() time.Duration {
	return time.Duration(c.PoisonSeconds) * time.Second
}

// SnackRefresh returns the snack replenishment cadence.
func (c ItemsConfig) SnackRefresh() time.Duration {
	return time.Duration(c.SnackRefreshSeconds) * time.Second
}

// PowerRefresh returns the power-item replenishment cadence.
func (c ItemsConfig) PowerRefresh() time.Duration {
	return time.Duration(c.PowerRefreshSeconds) * time.Second
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts the starting speed for a difficulty preset. The fixed
// preset leaves the loaded config untouched.
func ApplyPreset(cfg *SnekConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.InitialIntervalMs = 200
	case DifficultyNormal:
		cfg.Speed.InitialIntervalMs = 150
	case DifficultyHard:
		cfg.Speed.InitialIntervalMs = 100
	case DifficultyFixed:
		// keep config values
	}
}
