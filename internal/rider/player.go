package rider

import "math"

// Phase is the rider's state machine position.
type Phase int

const (
	PhaseFlying   Phase = iota // Airborne
	PhaseGrounded              // Touching the terrain
	PhaseCrashing              // Post-crash tumble, input ignored
	PhaseOver                  // Terminal; only a new Game continues play
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseFlying:
		return "Flying"
	case PhaseGrounded:
		return "Grounded"
	case PhaseCrashing:
		return "Crashing"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Playing reports whether the rider is still under player control.
func (p Phase) Playing() bool {
	return p == PhaseFlying || p == PhaseGrounded
}

// Player is the rider's pose and velocity.
// (X, Y) is the top-left corner of the sprite in screen pixels; the sprite
// rotates around its own center. Rot is in radians, clockwise positive.
type Player struct {
	X      float64
	Y      float64
	Rot    float64
	YSpeed float64
	RSpeed float64
}

// wrapAngle folds an angle that left [-π, π] back in at the opposite end.
// The wrap keeps spin direction continuous instead of clamping.
func wrapAngle(a float64) float64 {
	if a > math.Pi {
		return -math.Pi
	}
	if a < -math.Pi {
		return math.Pi
	}
	return a
}
