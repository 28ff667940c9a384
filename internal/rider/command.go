// Package rider implements the hill rider simulation: a rider gliding over
// procedurally generated rolling terrain, balancing rotation against gravity.
//
// The package is pure game logic. It has no knowledge of terminals, windows or
// audio devices; shells feed a Command into Game.Update once per tick and read
// the pose, score and queued events back out.
package rider

// Command is the per-tick intent collected by a shell.
// Fields are independent intensities (usually 0 or 1). Opposing pairs are
// subtracted, so pressing Left and Right together cancels out.
type Command struct {
	Left  int
	Right int
	Up    int
	Down  int
}

// steer returns the rotational input, positive for counter-clockwise.
func (c Command) steer() float64 {
	return float64(c.Left - c.Right)
}

// throttle returns the target speed requested by the player.
func (c Command) throttle() float64 {
	return float64(c.Up - c.Down)
}
