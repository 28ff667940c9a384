package rider

import (
	"math/rand"
	"slices"
)

// Game is one play session. Restarting means constructing a new Game.
//
// A Game has a single writer: the tick driver calling Update. Shells read
// state between ticks and drain the queued events once per tick.
type Game struct {
	rng    Shuffler
	params Params
	ground Table
	player Player
	phase  Phase
	events Events

	frame        int
	score        int
	t            float64 // World x-coordinate of the screen's left edge
	speed        float64 // Scroll speed before SpeedScale
	musicStarted bool
}

// New creates a game whose terrain is generated from seed.
func New(seed int64, params Params) *Game {
	return NewWithRand(rand.New(rand.NewSource(seed)), params)
}

// NewWithRand creates a game that draws its terrain from rng.
func NewWithRand(rng Shuffler, params Params) *Game {
	g := &Game{
		rng:    rng,
		params: params,
		frame:  -1,
		phase:  PhaseFlying,
		player: Player{
			X: params.ScreenWidth/2 - params.PlayerWidth/2,
		},
	}
	g.ResetStage()
	return g
}

// ResetStage regenerates the terrain from the game's generator.
func (g *Game) ResetStage() {
	g.ground = Generate(g.rng)
}

// Update advances the simulation by one tick.
func (g *Game) Update(cmd Command) {
	g.frame++

	if g.phase == PhaseOver {
		return
	}

	if g.phase.Playing() && cmd.Up > 0 && !g.musicStarted {
		g.musicStarted = true
		g.events.music(MusicPlay)
	}

	// The wreck ignores the player entirely.
	if !g.phase.Playing() {
		cmd = Command{}
	}

	g.scroll(cmd)
	g.ride(cmd)
	g.score = scoreFor(g.t)
}

// GroundY returns the screen y-coordinate of the terrain surface at screen x.
func (g *Game) GroundY(x float64) float64 {
	return groundY(&g.ground, g.params.ScreenHeight, g.t, x)
}

// Pending returns a copy of the events queued since the last Drain without
// clearing them.
func (g *Game) Pending() Events {
	return Events{
		Sounds: slices.Clone(g.events.Sounds),
		Musics: slices.Clone(g.events.Musics),
	}
}

// Drain returns the queued events and clears both queues.
func (g *Game) Drain() Events {
	out := g.events
	g.events = Events{}
	return out
}

// Player returns the rider's current pose.
func (g *Game) Player() Player { return g.player }

// SetPlayer overwrites the rider's pose. Intended for harnesses and replays.
func (g *Game) SetPlayer(p Player) { g.player = p }

// Phase returns the rider's state machine position.
func (g *Game) Phase() Phase { return g.phase }

// IsOver reports whether the game has ended.
func (g *Game) IsOver() bool { return g.phase == PhaseOver }

// IsPlaying reports whether the rider is still under player control.
func (g *Game) IsPlaying() bool { return g.phase.Playing() }

// Score returns the distance-derived score.
func (g *Game) Score() int { return g.score }

// Speed returns the current scroll speed before scaling.
func (g *Game) Speed() float64 { return g.speed }

// Offset returns the world offset of the screen's left edge.
func (g *Game) Offset() float64 { return g.t }

// Frame returns the number of the last tick; -1 before the first Update.
func (g *Game) Frame() int { return g.frame }

// MusicStarted reports whether the music start cue has been emitted.
func (g *Game) MusicStarted() bool { return g.musicStarted }

// Params returns the game's tuning constants.
func (g *Game) Params() Params { return g.params }

// Table returns a copy of the terrain table.
func (g *Game) Table() Table { return g.ground }
