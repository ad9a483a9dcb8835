package config

import (
	_ "embed"

	"github.com/vovakirdan/color-jump/internal/levelgen"
)

//go:embed defaults/colorjump.yaml
var defaultColorJumpYAML []byte

//go:embed defaults/colorjump_classic.yaml
var defaultClassicYAML []byte

// DefaultColorJumpConfig returns the default Color Jump configuration.
func DefaultColorJumpConfig() ColorJumpConfig {
	return ColorJumpConfig{
		Generator: levelgen.DefaultConfig(),
		Physics: ColorJumpPhysics{
			Gravity:              12,
			BaseBounce:           10,
			BounceIncrement:      2,
			MaxBounce:            25,
			MaxCollisionVelocity: 20,
		},
		Player: ColorJumpPlayer{
			Size:            0.5,
			ShrinkScale:     0.5,
			MoveSpeed:       5,
			SteerHold:       0.15,
			PenaltyDuration: 3,
			StartY:          1,
		},
		World: ColorJumpWorld{
			ViewHeight:      12,
			WrapWidth:       7,
			CameraSmoothing: 0.125,
			CullMargin:      10,
			FallMargin:      2,
			PlatformWidth:   1.2,
			PlatformHeight:  0.25,
			HazardSize:      0.5,
			BreakDelay:      0.2,
		},
		Difficulty: DifficultyConfig{
			Enabled:  true,
			TierSize: 50,
			MaxTier:  0,
		},
	}
}

// DefaultClassicConfig returns the configuration of the classic mode.
func DefaultClassicConfig() ColorJumpConfig {
	cfg := DefaultColorJumpConfig()
	cfg.Generator = levelgen.ClassicConfig()
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "colorjump":
		return defaultColorJumpYAML
	case "colorjump_classic":
		return defaultClassicYAML
	default:
		return nil
	}
}

// DefaultFor returns the hardcoded defaults for a game.
func DefaultFor(gameID string) ColorJumpConfig {
	if gameID == "colorjump_classic" {
		return DefaultClassicConfig()
	}
	return DefaultColorJumpConfig()
}
