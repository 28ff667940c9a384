package config

import (
	"math"
	"testing"

	"github.com/vovakirdan/hillrider/internal/rider"
)

func TestDifficultyClampsLevel(t *testing.T) {
	scaling := DefaultRiderConfig().Difficulty.Scaling
	base := rider.DefaultParams()

	tests := []struct {
		name      string
		level     float64
		effective float64
	}{
		{"above range", 3, 1},
		{"below range", -2, 0},
		{"in range", 0.5, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NewDifficulty(DifficultyConfig{InitialLevel: tc.level, Scaling: scaling}).Apply(base)
			expected := NewDifficulty(DifficultyConfig{InitialLevel: tc.effective, Scaling: scaling}).Apply(base)
			if got != expected {
				t.Errorf("Apply() at level %v = %+v, expected %+v", tc.level, got, expected)
			}
		})
	}
}

func TestDifficultyLevelZeroIsIdentity(t *testing.T) {
	cfg := DefaultRiderConfig()
	if got := cfg.Params(); got != rider.DefaultParams() {
		t.Errorf("Params() at level 0 = %+v, expected %+v", got, rider.DefaultParams())
	}
}

func TestDifficultyScalesPhysics(t *testing.T) {
	cfg := DefaultRiderConfig()
	cfg.Difficulty.InitialLevel = 1
	d := NewDifficulty(cfg.Difficulty)

	base := rider.DefaultParams()
	got := d.Apply(base)

	if math.Abs(got.SpeedScale-7*1.5) > 1e-9 {
		t.Errorf("SpeedScale = %v, expected %v", got.SpeedScale, 7*1.5)
	}
	if math.Abs(got.Gravity-0.1*1.4) > 1e-9 {
		t.Errorf("Gravity = %v, expected %v", got.Gravity, 0.1*1.4)
	}
	if math.Abs(got.MinSpeed-0.3*1.6) > 1e-9 {
		t.Errorf("MinSpeed = %v, expected %v", got.MinSpeed, 0.3*1.6)
	}
	// Geometry and steering are untouched.
	if got.ScreenWidth != base.ScreenWidth || got.PlayerHeight != base.PlayerHeight {
		t.Error("Apply() should not change world geometry")
	}
	if got.ControlRotateScale != base.ControlRotateScale {
		t.Error("Apply() should not change steering")
	}
}

func TestDifficultyMinSpeedCapped(t *testing.T) {
	d := NewDifficulty(DifficultyConfig{
		InitialLevel: 1,
		Scaling:      ScalingConfig{MinSpeedMultiplier: 10},
	})
	if got := d.Apply(rider.DefaultParams()); got.MinSpeed > 1 {
		t.Errorf("MinSpeed = %v, expected at most 1", got.MinSpeed)
	}
}
