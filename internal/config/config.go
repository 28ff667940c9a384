// Package config provides YAML-based game configuration loading and
// difficulty presets for the rider.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/hillrider/internal/rider"
)

// RiderConfig contains all configuration for the rider game.
type RiderConfig struct {
	Physics    RiderPhysics     `yaml:"physics"`
	World      RiderWorld       `yaml:"world"`
	Input      RiderInput       `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RiderPhysics defines the simulation tuning constants.
type RiderPhysics struct {
	Gravity            float64 `yaml:"gravity"`
	SpeedScale         float64 `yaml:"speed_scale"`
	ControlRotateScale float64 `yaml:"control_rotate_scale"`
	MinSpeed           float64 `yaml:"min_speed"`
}

// RiderWorld defines the simulated viewport and sprite size in world pixels.
type RiderWorld struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	PlayerWidth  int `yaml:"player_width"`
	PlayerHeight int `yaml:"player_height"`
}

// RiderInput tunes how terminal key presses are stretched into held keys.
// Terminals report presses and auto-repeats but never releases.
type RiderInput struct {
	InitialHoldMS int `yaml:"initial_hold_ms"` // Covers the keyboard's repeat delay
	RepeatHoldMS  int `yaml:"repeat_hold_ms"`  // Covers the gap between auto-repeats
}

// InitialHold returns the initial hold window as a duration.
func (in RiderInput) InitialHold() time.Duration {
	return time.Duration(in.InitialHoldMS) * time.Millisecond
}

// RepeatHold returns the repeat hold window as a duration.
func (in RiderInput) RepeatHold() time.Duration {
	return time.Duration(in.RepeatHoldMS) * time.Millisecond
}

// DifficultyConfig defines how a difficulty level scales the physics.
type DifficultyConfig struct {
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier    float64 `yaml:"speed_multiplier"`     // Added to speed_scale factor
	GravityMultiplier  float64 `yaml:"gravity_multiplier"`   // Added to gravity factor
	MinSpeedMultiplier float64 `yaml:"min_speed_multiplier"` // Added to min_speed factor
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset.
// An empty string yields an empty preset, meaning "use the config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate checks that the config describes a playable world.
func (c RiderConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", c.World.Width, c.World.Height))
	}
	if c.World.PlayerWidth <= 0 || c.World.PlayerHeight <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %dx%d", c.World.PlayerWidth, c.World.PlayerHeight))
	}
	if c.Physics.Gravity < 0 || c.Physics.SpeedScale < 0 || c.Physics.ControlRotateScale < 0 || c.Physics.MinSpeed < 0 {
		errs = append(errs, errors.New("physics constants must not be negative"))
	}
	if c.Physics.MinSpeed > 1 {
		errs = append(errs, fmt.Errorf("min_speed %.2f is above full throttle", c.Physics.MinSpeed))
	}
	if c.Input.InitialHoldMS < 0 || c.Input.RepeatHoldMS < 0 {
		errs = append(errs, errors.New("input hold windows must not be negative"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid rider config: %w", err)
	}
	return nil
}

// Params converts the config into simulation parameters at the config's
// own difficulty level.
func (c RiderConfig) Params() rider.Params {
	return NewDifficulty(c.Difficulty).Apply(c.baseParams())
}

// baseParams maps the config one-to-one, without difficulty scaling.
func (c RiderConfig) baseParams() rider.Params {
	return rider.Params{
		SpeedScale:         c.Physics.SpeedScale,
		Gravity:            c.Physics.Gravity,
		ControlRotateScale: c.Physics.ControlRotateScale,
		MinSpeed:           c.Physics.MinSpeed,
		ScreenWidth:        float64(c.World.Width),
		ScreenHeight:       float64(c.World.Height),
		PlayerWidth:        float64(c.World.PlayerWidth),
		PlayerHeight:       float64(c.World.PlayerHeight),
	}
}
