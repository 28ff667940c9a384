package config

import (
	_ "embed"
)

//go:embed defaults/rider.yaml
var defaultRiderYAML []byte

// DefaultRiderConfig returns the default rider configuration.
func DefaultRiderConfig() RiderConfig {
	return RiderConfig{
		Physics: RiderPhysics{
			Gravity:            0.1,
			SpeedScale:         7.0,
			ControlRotateScale: 0.1,
			MinSpeed:           0.3,
		},
		World: RiderWorld{
			Width:        600,
			Height:       400,
			PlayerWidth:  30,
			PlayerHeight: 30,
		},
		Input: RiderInput{
			InitialHoldMS: 520,
			RepeatHoldMS:  110,
		},
		Difficulty: DifficultyConfig{
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				SpeedMultiplier:    0.5,
				GravityMultiplier:  0.4,
				MinSpeedMultiplier: 0.6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRiderYAML
}
