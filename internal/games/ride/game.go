// Package ride adapts the hill rider simulation to the mode registry and
// the terminal shells.
// It registers two modes: "ride" with a per-run seed and "daily" with a
// seed shared by everyone on the same UTC date.
package ride

import (
	"time"

	"github.com/vovakirdan/hillrider/internal/config"
	"github.com/vovakirdan/hillrider/internal/core"
	"github.com/vovakirdan/hillrider/internal/registry"
	"github.com/vovakirdan/hillrider/internal/rider"
)

// Mode identifiers, also used as score table keys.
const (
	ModeRide  = "ride"
	ModeDaily = "daily"
)

func init() {
	registry.Register(ModeRide, func(cfg config.RiderConfig) registry.Game {
		return New(ModeRide, cfg)
	})
	registry.Register(ModeDaily, func(cfg config.RiderConfig) registry.Game {
		return New(ModeDaily, cfg)
	})
}

// Game wraps one rider simulation per run.
type Game struct {
	mode   string
	params rider.Params
	now    func() time.Time

	sim    *rider.Game
	seed   int64
	paused bool
}

// New creates a mode instance. Params are derived from cfg once and stay
// fixed for every run of this instance.
func New(mode string, cfg config.RiderConfig) *Game {
	g := &Game{
		mode:   mode,
		params: cfg.Params(),
		now:    time.Now,
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.mode
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeDaily {
		return "Daily Hill"
	}
	return "Hill Rider"
}

// Reset starts a new run on fresh terrain.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	if g.mode == ModeDaily {
		g.seed = DailySeed(g.now())
	}
	g.sim = rider.New(g.seed, g.params)
	g.paused = false
}

// Step advances the run by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.sim.IsPlaying() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.sim.Update(CommandFrom(in))
	ev := g.sim.Drain()

	return core.StepResult{
		State:  g.State(),
		Sounds: ev.Sounds,
		Musics: ev.Musics,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.IsOver(),
		Paused:   g.paused,
		Seed:     g.seed,
	}
}

// Sim exposes the running simulation to shells that draw it themselves.
func (g *Game) Sim() *rider.Game {
	return g.sim
}

// CommandFrom converts held actions into a rider command.
// Opposite directions held together cancel out in the simulation.
func CommandFrom(in core.InputFrame) rider.Command {
	return rider.Command{
		Left:  in.Count(core.ActionLeft),
		Right: in.Count(core.ActionRight),
		Up:    in.Count(core.ActionUp),
		Down:  in.Count(core.ActionDown),
	}
}

// DailySeed derives the seed for the daily hill from t's UTC date,
// e.g. 20261016.
func DailySeed(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	return int64(y)*10000 + int64(m)*100 + int64(d)
}
