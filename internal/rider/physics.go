package rider

import "math"

const (
	lookAhead    = 5.0  // Distance to the ground sample used for slope
	steerImpulse = 0.05 // Rotational velocity added per tick of steering
	crashAngle   = math.Pi / 2

	tumbleSlide = 5.0  // Pixels the wreck slides left per tick
	tumbleSpin  = 0.15 // Fixed spin rate during the tumble
)

// ride advances the rider one tick.
func (g *Game) ride(cmd Command) {
	p := &g.player
	h := g.params.PlayerHeight

	p1 := g.GroundY(p.X)
	p2 := g.GroundY(p.X + lookAhead)

	if p.Y+h < p1 {
		if g.phase.Playing() {
			g.phase = PhaseFlying
		}
		p.YSpeed += g.params.Gravity
	} else {
		// Snapping onto the surface also absorbs the penetration from velocity.
		p.YSpeed -= p.Y - (p1 - h)
		p.Y = p1 - h

		if g.phase.Playing() {
			g.phase = PhaseGrounded
			if math.Abs(p.Rot) > crashAngle {
				g.crash()
				return
			}
		}
	}

	if g.phase == PhaseCrashing {
		g.tumble()
		return
	}

	angle := math.Atan2(p2-h-p.Y, lookAhead)

	p.Y += p.YSpeed

	if g.phase == PhaseGrounded {
		p.Rot -= (p.Rot - angle) * 0.5
		p.RSpeed -= angle - p.Rot
	}

	p.RSpeed += cmd.steer() * steerImpulse
	p.Rot -= p.RSpeed * g.params.ControlRotateScale
	p.Rot = wrapAngle(p.Rot)
}

// crash starts the tumble. Entering PhaseCrashing happens once per game, so
// the fadeout is queued once.
func (g *Game) crash() {
	g.phase = PhaseCrashing
	g.events.music(MusicFadeout)
}

// tumble slides the wreck off the left edge while it spins.
func (g *Game) tumble() {
	p := &g.player

	p.X -= tumbleSlide
	p.RSpeed = tumbleSpin
	p.Rot = wrapAngle(p.Rot - p.RSpeed)
	p.Y += p.YSpeed

	if p.X+g.params.PlayerWidth < 0 {
		g.phase = PhaseOver
		g.events.sound(SoundCrash)
	}
}
