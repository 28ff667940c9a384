package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/hillrider/internal/config"
	"github.com/vovakirdan/hillrider/internal/core"
)

func newTestTracker() *HoldTracker {
	return NewHoldTracker(config.RiderInput{InitialHoldMS: 500, RepeatHoldMS: 100})
}

func TestHoldTrackerInitialHold(t *testing.T) {
	h := newTestTracker()
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionUp, t0)

	tests := []struct {
		name     string
		at       time.Duration
		expected bool
	}{
		{"at press", 0, true},
		{"inside repeat delay", 499 * time.Millisecond, true},
		{"hold ran out", 500 * time.Millisecond, false},
		{"long after", 2 * time.Second, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := h.Held(core.ActionUp, t0.Add(tc.at)); got != tc.expected {
				t.Errorf("Held(Up, +%v) = %v, expected %v", tc.at, got, tc.expected)
			}
		})
	}
}

func TestHoldTrackerRepeatNeverShortens(t *testing.T) {
	h := newTestTracker()
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionRight, t0)
	// An early repeat must not cut the initial window short.
	h.Press(core.ActionRight, t0.Add(50*time.Millisecond))

	if !h.Held(core.ActionRight, t0.Add(450*time.Millisecond)) {
		t.Error("early repeat shortened the initial hold")
	}

	// Past the initial window, repeats keep the key alive.
	h.Press(core.ActionRight, t0.Add(480*time.Millisecond))
	if !h.Held(core.ActionRight, t0.Add(560*time.Millisecond)) {
		t.Error("repeat should extend the hold")
	}
	if h.Held(core.ActionRight, t0.Add(580*time.Millisecond)) {
		t.Error("hold should expire one repeat interval after the last repeat")
	}
}

func TestHoldTrackerReleasesOpposite(t *testing.T) {
	tests := []struct {
		first, second core.Action
	}{
		{core.ActionLeft, core.ActionRight},
		{core.ActionRight, core.ActionLeft},
		{core.ActionUp, core.ActionDown},
		{core.ActionDown, core.ActionUp},
	}

	for _, tc := range tests {
		t.Run(tc.first.String()+"->"+tc.second.String(), func(t *testing.T) {
			h := newTestTracker()
			t0 := time.Unix(1000, 0)

			h.Press(tc.first, t0)
			h.Press(tc.second, t0.Add(10*time.Millisecond))

			if h.Held(tc.first, t0.Add(20*time.Millisecond)) {
				t.Errorf("%v should be released by %v", tc.first, tc.second)
			}
			if !h.Held(tc.second, t0.Add(20*time.Millisecond)) {
				t.Errorf("%v should be held", tc.second)
			}
		})
	}
}

func TestHoldTrackerIndependentAxes(t *testing.T) {
	h := newTestTracker()
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionUp, t0)
	h.Press(core.ActionLeft, t0)

	frame := core.NewInputFrame()
	h.Apply(&frame, t0.Add(100*time.Millisecond))

	if !frame.Has(core.ActionUp) || !frame.Has(core.ActionLeft) {
		t.Error("throttle and steering should be held together")
	}
}

func TestHoldTrackerApplyExpires(t *testing.T) {
	h := newTestTracker()
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionDown, t0)

	frame := core.NewInputFrame()
	h.Apply(&frame, t0.Add(time.Second))
	if frame.Has(core.ActionDown) {
		t.Error("expired hold should not reach the frame")
	}
	if len(h.until) != 0 {
		t.Errorf("expired holds should be forgotten, %d left", len(h.until))
	}

	// A press after expiry starts a fresh initial window.
	h.Press(core.ActionDown, t0.Add(2*time.Second))
	if !h.Held(core.ActionDown, t0.Add(2*time.Second+400*time.Millisecond)) {
		t.Error("press after expiry should grant the initial hold")
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := newTestTracker()
	t0 := time.Unix(1000, 0)

	h.Press(core.ActionUp, t0)
	h.Press(core.ActionLeft, t0)
	h.Reset()

	if h.Held(core.ActionUp, t0) || h.Held(core.ActionLeft, t0) {
		t.Error("Reset should release every key")
	}
}
