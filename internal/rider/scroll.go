package rider

import "math"

// Score is one point per this many world pixels scrolled.
const scoreDistance = 30.0

// scroll eases the scroll speed toward the throttle target and advances the
// world offset.
func (g *Game) scroll(cmd Command) {
	prev := g.speed

	g.speed -= (g.speed - cmd.throttle()) * 0.1
	if g.speed < 0 {
		g.speed = 0
	}

	// Friction never stalls a rider that is up to speed unless braking.
	if cmd.Down == 0 && prev >= g.params.MinSpeed && g.speed < g.params.MinSpeed {
		g.speed = g.params.MinSpeed
	}

	g.t += g.params.SpeedScale * g.speed
}

// scoreFor derives the score from a world offset.
func scoreFor(t float64) int {
	return int(math.Floor(t / scoreDistance))
}
