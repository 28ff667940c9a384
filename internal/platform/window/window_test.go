package window

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/hillrider/internal/audio"
	"github.com/vovakirdan/hillrider/internal/config"
	"github.com/vovakirdan/hillrider/internal/core"
	"github.com/vovakirdan/hillrider/internal/games/ride"
	"github.com/vovakirdan/hillrider/internal/storage"
)

func TestFrameFrom(t *testing.T) {
	tests := []struct {
		name     string
		pressed  []ebiten.Key
		expected []core.Action
	}{
		{"nothing", nil, nil},
		{"arrow", []ebiten.Key{ebiten.KeyArrowUp}, []core.Action{core.ActionUp}},
		{"wasd", []ebiten.Key{ebiten.KeyA, ebiten.KeyS}, []core.Action{core.ActionLeft, core.ActionDown}},
		{"both bindings", []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, []core.Action{core.ActionRight}},
		{"opposites", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowRight}, []core.Action{core.ActionLeft, core.ActionRight}},
		{"unbound", []ebiten.Key{ebiten.KeyZ}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			down := make(map[ebiten.Key]bool)
			for _, k := range tc.pressed {
				down[k] = true
			}
			frame := frameFrom(func(k ebiten.Key) bool { return down[k] })

			for _, a := range tc.expected {
				if !frame.Has(a) {
					t.Errorf("frame should hold %v", a)
				}
			}
			n := 0
			for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
				n += frame.Count(a)
			}
			if n != len(tc.expected) {
				t.Errorf("frame holds %d actions, expected %d", n, len(tc.expected))
			}
		})
	}
}

func TestOverlayLines(t *testing.T) {
	lines := overlayLines(42)
	if lines[0] != "WIPEOUT" {
		t.Errorf("first line = %q, expected WIPEOUT", lines[0])
	}
	if lines[1] != "Score: 42" {
		t.Errorf("score line = %q, expected %q", lines[1], "Score: 42")
	}
}

// rideUntilOver throttles for a while, then lands the rider upside down
// and lets the wreck tumble off screen.
func rideUntilOver(t *testing.T, s *Shell) {
	t.Helper()

	for i := 0; i < 120 && !s.state.GameOver; i++ {
		s.advance(core.NewInputFrame(core.ActionUp))
	}

	if !s.state.GameOver {
		sim := s.game.Sim()
		p := sim.Player()
		p.Y = sim.GroundY(p.X) - sim.Params().PlayerHeight + 1
		p.Rot = math.Pi
		p.YSpeed, p.RSpeed = 0, 0
		sim.SetPlayer(p)
	}

	for i := 0; i < 1000 && !s.state.GameOver; i++ {
		s.advance(core.NewInputFrame())
	}
	if !s.state.GameOver {
		t.Fatal("run never ended")
	}
}

func TestShellSavesScoreWithSeed(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	s := NewShell(ride.New(ride.ModeRide, config.DefaultRiderConfig()), Options{Seed: 7, Store: store})
	rideUntilOver(t, s)

	// Extra ticks after the end must not save again.
	s.advance(core.NewInputFrame())
	s.advance(core.NewInputFrame())

	scores, err := store.AllScores(ride.ModeRide)
	if err != nil {
		t.Fatalf("AllScores() error = %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("AllScores() returned %d entries, expected 1", len(scores))
	}
	if scores[0].Seed != 7 {
		t.Errorf("saved seed = %d, expected 7", scores[0].Seed)
	}
	if scores[0].Score != s.state.Score {
		t.Errorf("saved score = %d, expected %d", scores[0].Score, s.state.Score)
	}
}

func TestShellRestart(t *testing.T) {
	s := NewShell(ride.New(ride.ModeRide, config.DefaultRiderConfig()), Options{Seed: 7})
	firstTable := s.game.Sim().Table()

	// Restart does nothing mid-ride.
	s.advance(core.NewInputFrame(core.ActionRestart))
	if s.game.Sim().Frame() != 0 {
		t.Errorf("mid-ride restart should step normally, frame = %d", s.game.Sim().Frame())
	}

	rideUntilOver(t, s)
	s.advance(core.NewInputFrame(core.ActionRestart))

	if s.state.GameOver {
		t.Fatal("restart should begin a new run")
	}
	if s.game.Sim().Table() != firstTable {
		t.Error("pinned seed should replay the same terrain")
	}
}

type pauseSink struct {
	audio.Nop
	pauses []bool
}

func (p *pauseSink) Pause(paused bool) {
	p.pauses = append(p.pauses, paused)
}

func TestShellPauseHoldsMusic(t *testing.T) {
	sink := &pauseSink{}
	s := NewShell(ride.New(ride.ModeRide, config.DefaultRiderConfig()), Options{Seed: 7, Audio: sink})

	s.advance(core.NewInputFrame(core.ActionUp))
	s.advance(core.NewInputFrame(core.ActionPause))
	s.advance(core.NewInputFrame())
	s.advance(core.NewInputFrame(core.ActionPause))

	if len(sink.pauses) != 2 || !sink.pauses[0] || sink.pauses[1] {
		t.Errorf("pauses = %v, expected [true false]", sink.pauses)
	}
}
