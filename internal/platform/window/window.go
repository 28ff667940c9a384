// Package window runs the hill rider in a desktop window with Ebiten.
package window

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/hillrider/internal/audio"
	"github.com/vovakirdan/hillrider/internal/core"
	"github.com/vovakirdan/hillrider/internal/games/ride"
	"github.com/vovakirdan/hillrider/internal/storage"
)

var (
	colorSky     = color.RGBA{0x18, 0x1c, 0x2c, 0xff}
	colorGround  = color.RGBA{0x3a, 0x8c, 0x3a, 0xff}
	colorRider   = color.RGBA{0xf0, 0xd0, 0x40, 0xff}
	colorWreck   = color.RGBA{0xe0, 0x50, 0x40, 0xff}
	colorHUD     = color.White
	colorOverlay = color.RGBA{0x80, 0x00, 0x00, 0x80}
)

const columnWidth = 2 // Terrain is drawn in strips this many pixels wide

// Options carries what a window session needs besides the game itself.
type Options struct {
	Seed   int64          // Zero picks a fresh seed for every run
	Store  *storage.Store // nil disables score saving
	Audio  audio.Sink     // nil plays nothing
	Logger *log.Logger
}

// Shell adapts a ride mode to ebiten.Game.
type Shell struct {
	game     *ride.Game
	opts     Options
	keepSeed bool
	seed     int64
	state    core.GameState
	saved    bool

	sprite *ebiten.Image // Created on first draw
	face   *text.GoXFace
}

// NewShell creates a shell and starts the first run.
func NewShell(game *ride.Game, opts Options) *Shell {
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &Shell{
		game:     game,
		opts:     opts,
		keepSeed: opts.Seed != 0,
		seed:     opts.Seed,
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
	s.restart()
	return s
}

// Update reads the keyboard and advances the simulation one tick.
func (s *Shell) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	frame := frameFrom(ebiten.IsKeyPressed)
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		frame.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		frame.Set(core.ActionRestart)
	}

	s.advance(frame)
	return nil
}

// advance runs one tick: a restart when the run is over and asked for,
// otherwise a simulation step.
func (s *Shell) advance(frame core.InputFrame) {
	if s.state.GameOver {
		if frame.Has(core.ActionRestart) {
			s.restart()
		}
		return
	}

	result := s.game.Step(frame)
	if result.State.Paused != s.state.Paused {
		s.opts.Audio.Pause(result.State.Paused)
	}
	s.state = result.State
	if result.HasAudio() {
		s.opts.Audio.Play(result.Sounds, result.Musics)
	}

	if s.state.GameOver && !s.saved {
		s.saved = true
		s.saveScore()
	}
}

// restart begins a new run, on new terrain unless the seed is pinned.
func (s *Shell) restart() {
	if !s.keepSeed {
		s.seed = time.Now().UnixNano()
	}
	s.game.Reset(core.RuntimeConfig{Seed: s.seed})
	s.state = s.game.State()
	s.saved = false
	s.opts.Logger.Debug("run started", "mode", s.game.ID(), "seed", s.state.Seed)
}

func (s *Shell) saveScore() {
	if s.opts.Store == nil || s.state.Score <= 0 {
		return
	}
	if _, err := s.opts.Store.SaveScore(s.game.ID(), s.state.Score, s.state.Seed); err != nil {
		s.opts.Logger.Warn("could not save score", "mode", s.game.ID(), "err", err)
	}
}

// Layout keeps the world's fixed pixel size; Ebiten scales the window.
func (s *Shell) Layout(outsideWidth, outsideHeight int) (int, int) {
	p := s.game.Sim().Params()
	return int(p.ScreenWidth), int(p.ScreenHeight)
}

// Draw renders terrain, rider, HUD and the crash overlay.
func (s *Shell) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)
	s.drawTerrain(screen)
	s.drawRider(screen)
	s.drawHUD(screen)

	if s.state.GameOver {
		s.drawOverlay(screen)
	}
}

func (s *Shell) drawTerrain(screen *ebiten.Image) {
	sim := s.game.Sim()
	p := sim.Params()

	for x := 0.0; x < p.ScreenWidth; x += columnWidth {
		y := sim.GroundY(x)
		vector.DrawFilledRect(screen, float32(x), float32(y), columnWidth, float32(p.ScreenHeight-y), colorGround, false)
	}
}

func (s *Shell) drawRider(screen *ebiten.Image) {
	sim := s.game.Sim()
	p := sim.Params()
	pl := sim.Player()

	if s.sprite == nil {
		s.sprite = ebiten.NewImage(int(p.PlayerWidth), int(p.PlayerHeight))
	}
	if sim.IsPlaying() {
		s.sprite.Fill(colorRider)
	} else {
		s.sprite.Fill(colorWreck)
	}

	// Rotate around the sprite's center; GeoM rotation is clockwise positive on screen.
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-p.PlayerWidth/2, -p.PlayerHeight/2)
	op.GeoM.Rotate(pl.Rot)
	op.GeoM.Translate(pl.X+p.PlayerWidth/2, pl.Y+p.PlayerHeight/2)
	screen.DrawImage(s.sprite, op)
}

func (s *Shell) drawHUD(screen *ebiten.Image) {
	p := s.game.Sim().Params()

	score := fmt.Sprintf("%d", s.state.Score)
	s.drawText(screen, score, p.ScreenWidth-text.Advance(score, s.face)-10, 10)
	s.drawText(screen, s.game.Title(), 10, 10)

	if s.state.Paused {
		s.drawCentered(screen, "PAUSED", p.ScreenHeight/2)
	}
}

func (s *Shell) drawOverlay(screen *ebiten.Image) {
	p := s.game.Sim().Params()
	vector.DrawFilledRect(screen, 0, 0, float32(p.ScreenWidth), float32(p.ScreenHeight), colorOverlay, false)

	y := p.ScreenHeight/2 - 30
	for _, line := range overlayLines(s.state.Score) {
		s.drawCentered(screen, line, y)
		y += 20
	}
}

// overlayLines is the game over message.
func overlayLines(score int) []string {
	return []string{
		"WIPEOUT",
		fmt.Sprintf("Score: %d", score),
		"Space: ride again  Esc: quit",
	}
}

func (s *Shell) drawCentered(screen *ebiten.Image, str string, y float64) {
	w := s.game.Sim().Params().ScreenWidth
	s.drawText(screen, str, (w-text.Advance(str, s.face))/2, y)
}

func (s *Shell) drawText(screen *ebiten.Image, str string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorHUD)
	text.Draw(screen, str, s.face, op)
}

// Run opens the window and plays until it is closed.
func Run(game *ride.Game, opts Options) error {
	shell := NewShell(game, opts)
	p := game.Sim().Params()

	ebiten.SetWindowSize(int(p.ScreenWidth), int(p.ScreenHeight))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(shell); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
