package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hillrider/internal/audio"
	"github.com/vovakirdan/hillrider/internal/config"
	"github.com/vovakirdan/hillrider/internal/core"
	"github.com/vovakirdan/hillrider/internal/registry"
	"github.com/vovakirdan/hillrider/internal/rider"
	"github.com/vovakirdan/hillrider/internal/storage"
)

// Options carries what a play session needs besides the game itself.
type Options struct {
	Store         *storage.Store // nil disables score saving
	Audio         audio.Sink     // nil plays nothing
	Input         config.RiderInput
	Logger        *log.Logger
	ScreenshotDir string // Empty disables Ctrl+S
}

// DefaultScreenshotDir returns ~/.hillrider/screenshots, or empty if the
// home directory is unknown.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hillrider", "screenshots")
}

// GameModel runs one game mode until the player quits or goes back to the menu.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	opts      Options
	config    core.RuntimeConfig
	keepSeed  bool // Restart on the same terrain
	keyMapper *KeyMapper
	hold      *HoldTracker
	pending   core.InputFrame // One-shot presses since the last tick
	gameState core.GameState
	now       func() time.Time

	quitOnBack bool
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a model for the given game.
// A zero seed picks a fresh time-based seed for every run; a fixed seed
// replays the same terrain on restart.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	keepSeed := cfg.Seed != 0
	if !keepSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:      opts,
		config:    cfg,
		keepSeed:  keepSeed,
		keyMapper: NewKeyMapper(),
		hold:      NewHoldTracker(opts.Input),
		pending:   core.NewInputFrame(),
		now:       time.Now,
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.opts.Logger.Debug("run started", "mode", m.game.ID(), "seed", m.game.State().Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world has a fixed size, so a resize only rescales the view.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.stopMusic()
		return m, tea.Quit

	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			m.stopMusic()
			if m.quitOnBack {
				return m, tea.Quit
			}
		}

	case IsHeld(action):
		m.hold.Press(action, m.now())

	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.pending.Set(core.ActionRestart)
		}

	case action != core.ActionNone:
		m.pending.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	if m.pending.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	frame := core.NewInputFrame()
	m.hold.Apply(&frame, m.now())
	if m.pending.Has(core.ActionPause) {
		frame.Set(core.ActionPause)
	}

	result := m.game.Step(frame)
	if result.State.Paused != m.gameState.Paused {
		m.opts.Audio.Pause(result.State.Paused)
	}
	m.gameState = result.State

	if result.HasAudio() {
		m.opts.Audio.Play(result.Sounds, result.Musics)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.pending.Clear()
	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run, on new terrain unless the seed is pinned.
func (m *GameModel) restart() {
	if !m.keepSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.hold.Reset()
	m.pending.Clear()
	m.opts.Logger.Debug("run restarted", "mode", m.game.ID(), "seed", m.gameState.Seed)
}

// stopMusic fades out the run's music. The sink outlives the run.
func (m *GameModel) stopMusic() {
	m.opts.Audio.Pause(false)
	m.opts.Audio.Play(nil, []string{rider.MusicFadeout})
}

// saveScore records a finished run. Scoreless runs are not worth a row.
func (m *GameModel) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Seed); err != nil {
		m.opts.Logger.Warn("could not save score", "mode", m.game.ID(), "err", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	path := filepath.Join(m.opts.ScreenshotDir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the player asked to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the player asked to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last state reported by the game.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Run plays a game in the local terminal.
// It returns true if the player went back to the menu rather than quitting.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewGameModel(game, cfg, opts)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
