package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// FileName is the config file name searched for in the config directories.
const FileName = "dodge.yaml"

// LoadDodge loads the game configuration.
// Search order: customPath -> ~/.astrododge/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default.
// Files are applied on top of the defaults, so a partial file only overrides what it names.
// A search-path file that exists but cannot be used is skipped with a warning
// on logger; a nil logger discards the warning.
func LoadDodge(customPath string, logger *log.Logger) (DodgeConfig, error) {
	// Try custom path first; a bad explicit path is an error, not a fallback
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if cfg, ok := trySearchPath(userCfgPath, logger); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := trySearchPath(filepath.Join("configs", FileName), logger); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := DefaultDodgeConfig()
	if err := yaml.Unmarshal(defaultDodgeYAML, &cfg); err != nil {
		return DefaultDodgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// trySearchPath loads and validates one optional config file. A missing file
// is not worth a warning; anything else that makes the file unusable is.
func trySearchPath(path string, logger *log.Logger) (DodgeConfig, bool) {
	cfg, err := loadFile(path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("ignoring config file", "path", path, "error", err)
		}
		return DodgeConfig{}, false
	}
	logger.Debug("config loaded", "path", path)
	return cfg, true
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".astrododge", "configs", filename)
}

// Validate reports every inconsistent value in the config.
func (c DodgeConfig) Validate() error {
	var errs []error

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena: size must be positive, got %gx%g", c.Arena.Width, c.Arena.Height))
	}
	if c.Player.AccelStep <= 0 || c.Player.MaxSpeed <= 0 {
		errs = append(errs, errors.New("player: accel_step and max_speed must be positive"))
	}
	if c.Player.Damping < 0 || c.Player.Damping >= 1 {
		errs = append(errs, fmt.Errorf("player: damping must be in [0, 1), got %g", c.Player.Damping))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player: hitbox must be positive"))
	}
	if c.Obstacles.SpawnIntervalMs <= 0 {
		errs = append(errs, errors.New("obstacles: spawn_interval_ms must be positive"))
	}
	if c.Obstacles.MinSpeed <= 0 || c.Obstacles.MinSpeed > c.Obstacles.MaxSpeed {
		errs = append(errs, fmt.Errorf("obstacles: invalid speed range [%d, %d]", c.Obstacles.MinSpeed, c.Obstacles.MaxSpeed))
	}
	if c.Obstacles.LargeSize <= 0 || c.Obstacles.SmallSize <= 0 {
		errs = append(errs, errors.New("obstacles: sizes must be positive"))
	}
	if c.Obstacles.CullMargin < 0 {
		errs = append(errs, fmt.Errorf("obstacles: cull_margin must not be negative, got %g", c.Obstacles.CullMargin))
	}
	if c.Pursuers.FirstDelayMs <= 0 {
		errs = append(errs, errors.New("pursuers: first_delay_ms must be positive"))
	}
	if c.Pursuers.MinIntervalMs <= 0 || c.Pursuers.MinIntervalMs > c.Pursuers.MaxIntervalMs {
		errs = append(errs, fmt.Errorf("pursuers: invalid interval range [%d, %d]", c.Pursuers.MinIntervalMs, c.Pursuers.MaxIntervalMs))
	}
	if c.Pursuers.MinSpeed <= 0 || c.Pursuers.MinSpeed > c.Pursuers.MaxSpeed {
		errs = append(errs, fmt.Errorf("pursuers: invalid speed range [%d, %d]", c.Pursuers.MinSpeed, c.Pursuers.MaxSpeed))
	}
	if c.Pursuers.Size <= 0 || c.Pursuers.MaxActive <= 0 {
		errs = append(errs, errors.New("pursuers: size and max_active must be positive"))
	}
	if c.Difficulty.Scaling.BaseObstacles <= 0 {
		errs = append(errs, errors.New("difficulty: base_obstacles must be positive"))
	}
	if c.Difficulty.Scaling.MaxObstacles < c.Difficulty.Scaling.BaseObstacles {
		errs = append(errs, errors.New("difficulty: max_obstacles must be >= base_obstacles"))
	}
	if c.Difficulty.Scaling.SpeedMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("difficulty: speed_multiplier must be positive, got %g", c.Difficulty.Scaling.SpeedMultiplier))
	}
	switch c.Difficulty.Progression.Type {
	case "score":
		if c.Difficulty.Progression.Step <= 0 {
			errs = append(errs, fmt.Errorf("difficulty: progression step must be positive, got %d", c.Difficulty.Progression.Step))
		}
	case "none":
	default:
		errs = append(errs, fmt.Errorf("difficulty: unknown progression type %q", c.Difficulty.Progression.Type))
	}

	return errors.Join(errs...)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPreset(cfg *DodgeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Scaling.MaxObstacles = max(cfg.Difficulty.Scaling.BaseObstacles, cfg.Difficulty.Scaling.MaxObstacles-2)
		cfg.Difficulty.Scaling.SpeedMultiplier = 0.8
		cfg.Pursuers.FirstDelayMs += 10000
	case DifficultyHard:
		cfg.Difficulty.Scaling.MaxObstacles += 4
		cfg.Difficulty.Scaling.SpeedMultiplier = 1.25
		cfg.Pursuers.FirstDelayMs = max(1000, cfg.Pursuers.FirstDelayMs/2)
	}
}
