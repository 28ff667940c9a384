package tui

import (
	"time"

	"github.com/vovakirdan/hillrider/internal/config"
	"github.com/vovakirdan/hillrider/internal/core"
)

// HoldTracker turns terminal key presses into held keys.
//
// Terminals send a press and then auto-repeats, never a release. A first
// press holds the action long enough to cover the keyboard's repeat delay;
// each repeat extends the hold by the repeat interval. Letting go of the
// key lets the hold run out.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	until   map[core.Action]time.Time
}

// NewHoldTracker creates a tracker with the configured hold windows.
func NewHoldTracker(in config.RiderInput) *HoldTracker {
	return &HoldTracker{
		initial: in.InitialHold(),
		repeat:  in.RepeatHold(),
		until:   make(map[core.Action]time.Time),
	}
}

// Press records a key press or auto-repeat at now.
// Pressing a direction releases its opposite.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if opp, ok := opposite(a); ok {
		delete(h.until, opp)
	}

	deadline := now.Add(h.initial)
	if until, held := h.until[a]; held && now.Before(until) {
		// A repeat never shortens a hold already granted.
		deadline = now.Add(h.repeat)
		if until.After(deadline) {
			deadline = until
		}
	}
	h.until[a] = deadline
}

// Held reports whether a is still held at now.
func (h *HoldTracker) Held(a core.Action, now time.Time) bool {
	until, ok := h.until[a]
	return ok && now.Before(until)
}

// Apply sets every action still held at now on the frame and forgets the
// expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, until := range h.until {
		if now.Before(until) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}

// Reset releases every key.
func (h *HoldTracker) Reset() {
	clear(h.until)
}

func opposite(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionLeft:
		return core.ActionRight, true
	case core.ActionRight:
		return core.ActionLeft, true
	case core.ActionUp:
		return core.ActionDown, true
	case core.ActionDown:
		return core.ActionUp, true
	default:
		return core.ActionNone, false
	}
}
