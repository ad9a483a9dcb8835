package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a Color Jump mode.
// Search order: customPath -> ~/.colorjump/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Files only need to set the keys they change; the rest keeps the defaults.
func Load(gameID, customPath string) (ColorJumpConfig, error) {
	filename := gameID + ".yaml"

	// A custom path must exist and parse
	if customPath != "" {
		cfg, err := loadFile(gameID, customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, Validate(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := loadFile(gameID, userCfgPath); err == nil {
			return cfg, Validate(cfg)
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(gameID, filepath.Join("configs", filename)); err == nil {
		return cfg, Validate(cfg)
	}

	// Use embedded default YAML
	cfg := DefaultFor(gameID)
	if data := GetDefaultYAML(gameID); data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultFor(gameID), nil // Fallback to hardcoded if embed fails
		}
	}
	return cfg, nil
}

func loadFile(gameID, path string) (ColorJumpConfig, error) {
	cfg := DefaultFor(gameID)
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
	return filepath.Join(home, ".colorjump", "configs", filename)
}

// Validate checks the whole configuration, including the generator section.
func Validate(cfg ColorJumpConfig) error {
	var errs []error
	if err := cfg.Generator.Validate(); err != nil {
		errs = append(errs, err)
	}
	if cfg.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %g", cfg.Physics.Gravity))
	}
	if cfg.Physics.BaseBounce <= 0 || cfg.Physics.MaxBounce < cfg.Physics.BaseBounce {
		errs = append(errs, errors.New("physics: base_bounce must be positive and not above max_bounce"))
	}
	if cfg.Physics.MaxCollisionVelocity <= 0 {
		errs = append(errs, errors.New("physics.max_collision_velocity must be positive"))
	}
	if cfg.Player.Size <= 0 || cfg.Player.ShrinkScale <= 0 || cfg.Player.ShrinkScale > 1 {
		errs = append(errs, errors.New("player: size must be positive and shrink_scale in (0, 1]"))
	}
	if cfg.Player.PenaltyDuration < 0 || cfg.Player.SteerHold < 0 {
		errs = append(errs, errors.New("player: durations must not be negative"))
	}
	if cfg.World.ViewHeight <= 0 || cfg.World.WrapWidth <= 0 {
		errs = append(errs, errors.New("world: view_height and wrap_width must be positive"))
	}
	if cfg.World.CameraSmoothing <= 0 || cfg.World.CameraSmoothing > 1 {
		errs = append(errs, fmt.Errorf("world.camera_smoothing must be in (0, 1], got %g", cfg.World.CameraSmoothing))
	}
	if cfg.World.PlatformWidth <= 0 || cfg.World.PlatformHeight <= 0 || cfg.World.HazardSize <= 0 {
		errs = append(errs, errors.New("world: obstacle sizes must be positive"))
	}
	if cfg.Difficulty.TierSize <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.tier_size must be positive, got %d", cfg.Difficulty.TierSize))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ColorJumpConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		cfg.Generator.MovingPlatformChancePerScoreTier = 0
		return
	}
	cfg.Difficulty.Enabled = true

	gen := &cfg.Generator
	switch preset {
	case DifficultyEasy:
		gen.HazardBaseChance *= 0.5
		gen.HazardScoreThreshold *= 2
		gen.MovingPlatformBaseChance *= 0.5
		gen.MovingPlatformChancePerScoreTier *= 0.5
		cfg.Player.PenaltyDuration += 1
	case DifficultyHard:
		gen.HazardBaseChance = clampF(gen.HazardBaseChance*1.5, 0, 1)
		gen.HazardScoreThreshold /= 2
		gen.MovingPlatformBaseChance = clampF(gen.MovingPlatformBaseChance*1.5, 0, 1)
		gen.MovingPlatformChancePerScoreTier *= 1.5
		cfg.Player.PenaltyDuration = clampF(cfg.Player.PenaltyDuration-1, 0, cfg.Player.PenaltyDuration)
	}
}
