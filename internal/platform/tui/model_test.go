package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hillrider/internal/config"
	"github.com/vovakirdan/hillrider/internal/core"
	"github.com/vovakirdan/hillrider/internal/rider"
	"github.com/vovakirdan/hillrider/internal/storage"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets []core.RuntimeConfig
	frames [][]core.Action
	state  core.GameState
	sounds []string
	musics []string
}

func (f *fakeGame) ID() string { return "fake" }
func (f *fakeGame) Title() string { return "Fake" }

func (f *fakeGame) Reset(cfg core.RuntimeConfig) {
	f.resets = append(f.resets, cfg)
	f.state = core.GameState{Seed: cfg.Seed}
}

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	var held []core.Action
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionPause} {
		if in.Has(a) {
			held = append(held, a)
		}
	}
	f.frames = append(f.frames, held)

	result := core.StepResult{State: f.state, Sounds: f.sounds, Musics: f.musics}
	f.sounds, f.musics = nil, nil
	return result
}

func (f *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake")
}

func (f *fakeGame) State() core.GameState { return f.state }

func (f *fakeGame) lastFrame() []core.Action {
	if len(f.frames) == 0 {
		return nil
	}
	return f.frames[len(f.frames)-1]
}

// recordingSink remembers every cue it was asked to play.
type recordingSink struct {
	sounds []string
	musics []string
	pauses []bool
}

func (r *recordingSink) Play(sounds, musics []string) {
	r.sounds = append(r.sounds, sounds...)
	r.musics = append(r.musics, musics...)
}

func (r *recordingSink) Pause(paused bool) {
	r.pauses = append(r.pauses, paused)
}

func (r *recordingSink) Close() {}

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestModel(t *testing.T, game *fakeGame, seed int64, opts Options) (GameModel, *testClock) {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	opts.Input = config.RiderInput{InitialHoldMS: 500, RepeatHoldMS: 100}

	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: seed}
	m := NewGameModel(game, cfg, opts)
	clock := &testClock{t: time.Unix(5000, 0)}
	m.now = clock.now
	m.Init()
	return m, clock
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, expected GameModel", next)
	}
	return gm
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	return update(t, m, TickMsg(time.Now()))
}

func hasAction(actions []core.Action, a core.Action) bool {
	for _, got := range actions {
		if got == a {
			return true
		}
	}
	return false
}

func TestGameModelInitResetsWithSeed(t *testing.T) {
	game := &fakeGame{}
	newTestModel(t, game, 77, Options{})

	if len(game.resets) != 1 {
		t.Fatalf("Reset called %d times, expected 1", len(game.resets))
	}
	if game.resets[0].Seed != 77 {
		t.Errorf("Reset seed = %d, expected 77", game.resets[0].Seed)
	}
}

func TestGameModelHeldKeysReachTicks(t *testing.T) {
	game := &fakeGame{}
	m, clock := newTestModel(t, game, 1, Options{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = tick(t, m)
	if !hasAction(game.lastFrame(), core.ActionUp) {
		t.Fatalf("frame %v should hold Up right after the press", game.lastFrame())
	}

	// Still held across ticks inside the initial window.
	clock.advance(300 * time.Millisecond)
	m = tick(t, m)
	if !hasAction(game.lastFrame(), core.ActionUp) {
		t.Errorf("frame %v should still hold Up", game.lastFrame())
	}

	// Without repeats the key is released.
	clock.advance(300 * time.Millisecond)
	tick(t, m)
	if hasAction(game.lastFrame(), core.ActionUp) {
		t.Errorf("frame %v should have released Up", game.lastFrame())
	}
}

func TestGameModelPauseIsOneShot(t *testing.T) {
	game := &fakeGame{}
	m, _ := newTestModel(t, game, 1, Options{})

	m = update(t, m, runeKey('p'))
	m = tick(t, m)
	if !hasAction(game.lastFrame(), core.ActionPause) {
		t.Fatalf("frame %v should carry the pause press", game.lastFrame())
	}

	tick(t, m)
	if hasAction(game.lastFrame(), core.ActionPause) {
		t.Error("pause should reach exactly one tick")
	}
}

func TestGameModelForwardsAudio(t *testing.T) {
	game := &fakeGame{musics: []string{"play"}}
	sink := &recordingSink{}
	m, _ := newTestModel(t, game, 1, Options{Audio: sink})

	m = tick(t, m)
	game.sounds = []string{"crash.wav"}
	tick(t, m)

	if strings.Join(sink.musics, ",") != "play" {
		t.Errorf("musics = %v, expected [play]", sink.musics)
	}
	if strings.Join(sink.sounds, ",") != "crash.wav" {
		t.Errorf("sounds = %v, expected [crash.wav]", sink.sounds)
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	game := &fakeGame{}
	m, _ := newTestModel(t, game, 4242, Options{Store: store})

	game.state = core.GameState{Score: 31, GameOver: true, Seed: 4242}
	m = tick(t, m)
	m = tick(t, m)
	tick(t, m)

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores() error = %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("AllScores() returned %d entries, expected 1", len(scores))
	}
	if scores[0].Score != 31 || scores[0].Seed != 4242 {
		t.Errorf("saved entry = %+v, expected score 31 seed 4242", scores[0])
	}
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	game := &fakeGame{}
	m, _ := newTestModel(t, game, 1, Options{Store: store})

	game.state = core.GameState{GameOver: true, Seed: 1}
	tick(t, m)

	if best, _ := store.BestRun("fake"); best != nil {
		t.Errorf("BestRun() = %+v, expected no saved run", best)
	}
}

func TestGameModelRestart(t *testing.T) {
	tests := []struct {
		name     string
		seed     int64
		keepSeed bool
	}{
		{"pinned seed replays terrain", 99, true},
		{"time seed picks new terrain", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			game := &fakeGame{}
			m, _ := newTestModel(t, game, tc.seed, Options{})
			first := game.resets[0].Seed

			// Restart is ignored while riding.
			m = update(t, m, runeKey('r'))
			m = tick(t, m)
			if len(game.resets) != 1 {
				t.Fatalf("restart while riding reset the game")
			}

			game.state.GameOver = true
			m = tick(t, m)
			m = update(t, m, runeKey('r'))
			m = tick(t, m)

			if len(game.resets) != 2 {
				t.Fatalf("Reset called %d times, expected 2", len(game.resets))
			}
			second := game.resets[1].Seed
			if tc.keepSeed && second != first {
				t.Errorf("restart seed = %d, expected %d", second, first)
			}
			if !tc.keepSeed && second == 0 {
				t.Error("restart should pick a nonzero seed")
			}
			if m.State().GameOver {
				t.Error("state should be fresh after restart")
			}
		})
	}
}

func TestGameModelBackToMenu(t *testing.T) {
	tests := []struct {
		name     string
		state    core.GameState
		expected bool
	}{
		{"riding", core.GameState{}, false},
		{"paused", core.GameState{Paused: true}, true},
		{"over", core.GameState{GameOver: true}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			game := &fakeGame{}
			m, _ := newTestModel(t, game, 1, Options{})

			game.state = tc.state
			m = tick(t, m)
			m = update(t, m, runeKey('b'))

			if got := m.BackToMenu(); got != tc.expected {
				t.Errorf("BackToMenu() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestGameModelQuit(t *testing.T) {
	m, _ := newTestModel(t, &fakeGame{}, 1, Options{})

	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
}

func TestGameModelView(t *testing.T) {
	m, _ := newTestModel(t, &fakeGame{}, 1, Options{})

	if !strings.Contains(m.View(), "fake") {
		t.Errorf("View() should contain the rendered game")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})
	if m.screen.Width() != 20 || m.screen.Height() != 5 {
		t.Errorf("screen = %dx%d after resize, expected 20x5", m.screen.Width(), m.screen.Height())
	}
}

func TestGameModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m, _ := newTestModel(t, &fakeGame{}, 1, Options{ScreenshotDir: dir})

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("found %d screenshots, expected 1", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "fake_") {
		t.Errorf("screenshot name = %q, expected fake_ prefix", entries[0].Name())
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "fake") {
		t.Errorf("screenshot should hold the rendered screen, got %q", string(data))
	}
}

func TestGameModelLeavingFadesMusic(t *testing.T) {
	tests := []struct {
		name  string
		state core.GameState
		key   tea.KeyMsg
	}{
		{"back while paused", core.GameState{Paused: true}, runeKey('b')},
		{"back after wipeout", core.GameState{GameOver: true}, runeKey('b')},
		{"quit mid-ride", core.GameState{}, runeKey('q')},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			game := &fakeGame{musics: []string{rider.MusicPlay}}
			sink := &recordingSink{}
			m, _ := newTestModel(t, game, 1, Options{Audio: sink})

			m = tick(t, m)
			game.state = tc.state
			m = tick(t, m)
			update(t, m, tc.key)

			if got := strings.Join(sink.musics, ","); got != "play,fadeout" {
				t.Errorf("musics = %q, expected %q", got, "play,fadeout")
			}
			if len(sink.pauses) == 0 || sink.pauses[len(sink.pauses)-1] {
				t.Errorf("pauses = %v, music should be resumed for the fade", sink.pauses)
			}
		})
	}
}

func TestGameModelBackMidRideKeepsMusic(t *testing.T) {
	game := &fakeGame{musics: []string{rider.MusicPlay}}
	sink := &recordingSink{}
	m, _ := newTestModel(t, game, 1, Options{Audio: sink})

	m = tick(t, m)
	update(t, m, runeKey('b'))

	if got := strings.Join(sink.musics, ","); got != "play" {
		t.Errorf("musics = %q, back mid-ride should not touch the music", got)
	}
}

func TestGameModelPauseHoldsMusic(t *testing.T) {
	game := &fakeGame{}
	sink := &recordingSink{}
	m, _ := newTestModel(t, game, 1, Options{Audio: sink})

	m = tick(t, m)
	if len(sink.pauses) != 0 {
		t.Fatalf("pauses = %v before any pause", sink.pauses)
	}

	game.state.Paused = true
	m = tick(t, m)
	m = tick(t, m)
	game.state.Paused = false
	tick(t, m)

	if len(sink.pauses) != 2 || !sink.pauses[0] || sink.pauses[1] {
		t.Errorf("pauses = %v, expected [true false]", sink.pauses)
	}
}
