// Package config provides YAML-based game configuration loading and
// difficulty management for Color Jump.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/color-jump/internal/levelgen"
)

// ColorJumpConfig contains all configuration for a Color Jump mode.
type ColorJumpConfig struct {
	Generator  levelgen.Config  `yaml:"generator"`
	Physics    ColorJumpPhysics `yaml:"physics"`
	Player     ColorJumpPlayer  `yaml:"player"`
	World      ColorJumpWorld   `yaml:"world"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ColorJumpPhysics defines the per-tick integration parameters.
// Units are world units and seconds; y grows upward.
type ColorJumpPhysics struct {
	Gravity              float64 `yaml:"gravity"`
	BaseBounce           float64 `yaml:"base_bounce"`
	BounceIncrement      float64 `yaml:"bounce_increment"` // added per difficulty tier
	MaxBounce            float64 `yaml:"max_bounce"`
	MaxCollisionVelocity float64 `yaml:"max_collision_velocity"`
}

// ColorJumpPlayer defines player parameters.
type ColorJumpPlayer struct {
	Size            float64 `yaml:"size"`
	ShrinkScale     float64 `yaml:"shrink_scale"`
	MoveSpeed       float64 `yaml:"move_speed"`
	SteerHold       float64 `yaml:"steer_hold"`       // seconds a key press keeps steering
	PenaltyDuration float64 `yaml:"penalty_duration"` // grace window after the first penalty
	StartY          float64 `yaml:"start_y"`
}

// ColorJumpWorld defines camera and obstacle parameters.
type ColorJumpWorld struct {
	ViewHeight      float64 `yaml:"view_height"`
	WrapWidth       float64 `yaml:"wrap_width"`
	CameraSmoothing float64 `yaml:"camera_smoothing"`
	CullMargin      float64 `yaml:"cull_margin"`
	FallMargin      float64 `yaml:"fall_margin"`
	PlatformWidth   float64 `yaml:"platform_width"`
	PlatformHeight  float64 `yaml:"platform_height"`
	HazardSize      float64 `yaml:"hazard_size"`
	BreakDelay      float64 `yaml:"break_delay"` // wrong-color platforms vanish after this
}

// DifficultyConfig defines the tier progression.
type DifficultyConfig struct {
	Enabled  bool `yaml:"enabled"`
	TierSize int  `yaml:"tier_size"` // points per tier
	MaxTier  int  `yaml:"max_tier"`  // 0 means unbounded
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the known presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
