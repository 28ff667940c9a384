package config

import (
	"math"

	"github.com/vovakirdan/hillrider/internal/rider"
)

// Difficulty scales simulation parameters by a level between 0.0 and 1.0.
// The level is chosen once per game; a running game never changes its Params.
type Difficulty struct {
	cfg   DifficultyConfig
	level float64
}

// NewDifficulty creates a difficulty at the config's initial level.
func NewDifficulty(cfg DifficultyConfig) *Difficulty {
	return &Difficulty{
		cfg:   cfg,
		level: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// Apply returns base with speed, gravity and the coasting floor scaled up
// from base toward base * (1 + multiplier).
func (d *Difficulty) Apply(base rider.Params) rider.Params {
	s := d.cfg.Scaling
	p := base
	p.SpeedScale = base.SpeedScale * (1.0 + d.level*s.SpeedMultiplier)
	p.Gravity = base.Gravity * (1.0 + d.level*s.GravityMultiplier)
	p.MinSpeed = clampF(base.MinSpeed*(1.0+d.level*s.MinSpeedMultiplier), 0.0, 1.0)
	return p
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
