// Package config provides YAML-based game configuration loading and
// difficulty management for Astro Dodge.
package config

import "time"

// DodgeConfig contains all tunable parameters of the game.
type DodgeConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Pursuers   PursuerConfig    `yaml:"pursuers"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the logical playfield in world units.
// The platform scales it onto whatever terminal size is available.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player craft's handling and hitbox.
type PlayerConfig struct {
	AccelStep float64 `yaml:"accel_step"` // Velocity change per tick while a direction is held
	MaxSpeed  float64 `yaml:"max_speed"`  // Per-axis velocity limit
	Damping   float64 `yaml:"damping"`    // Per-tick multiplier on an axis with no input
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
}

// ObstacleConfig defines asteroid spawning and movement.
type ObstacleConfig struct {
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"`
	MinSpeed        int     `yaml:"min_speed"`
	MaxSpeed        int     `yaml:"max_speed"`
	LargeSize       float64 `yaml:"large_size"`
	SmallSize       float64 `yaml:"small_size"`
	CullMargin      float64 `yaml:"cull_margin"` // Distance past the arena edge before a rock is recycled
}

// SpawnInterval returns the obstacle timer period.
func (o ObstacleConfig) SpawnInterval() time.Duration {
	return time.Duration(o.SpawnIntervalMs) * time.Millisecond
}

// PursuerConfig defines homing enemy spawning and speed.
type PursuerConfig struct {
	FirstDelayMs  int     `yaml:"first_delay_ms"`
	MinIntervalMs int     `yaml:"min_interval_ms"`
	MaxIntervalMs int     `yaml:"max_interval_ms"`
	MinSpeed      int     `yaml:"min_speed"`
	MaxSpeed      int     `yaml:"max_speed"`
	Size          float64 `yaml:"size"`
	MaxActive     int     `yaml:"max_active"`
}

// FirstDelay returns the delay before the one-shot first pursuer spawn.
func (p PursuerConfig) FirstDelay() time.Duration {
	return time.Duration(p.FirstDelayMs) * time.Millisecond
}

// DifficultyConfig defines how the obstacle population grows with score.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Progression ProgressionConfig `yaml:"progression"`
	Scaling     ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type string `yaml:"type"` // "score" or "none"
	Step int    `yaml:"step"` // Score points per additional obstacle
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	BaseObstacles   int     `yaml:"base_obstacles"`   // Obstacle cap at score 0
	MaxObstacles    int     `yaml:"max_obstacles"`    // Cap saturates here
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Applied to obstacle and pursuer speed draws
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
