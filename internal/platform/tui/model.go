package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ball/internal/core"
	"github.com/vovakirdan/ball/internal/games/ball"
	"github.com/vovakirdan/ball/internal/storage"
)

// maxStep caps the simulated time of one tick, so a suspended terminal
// does not replay seconds of movement at once.
const maxStep = 250 * time.Millisecond

// Options configures a Model.
type Options struct {
	Store  *storage.Store // may be nil
	Logger *log.Logger    // may be nil
	Player string         // name stored with finished runs

	// FixedSeed keeps Config.Seed across restarts instead of drawing a new one.
	FixedSeed bool
}

// Model is the Bubble Tea model that drives one game of Ball.
type Model struct {
	game       *ball.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	held       *HeldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	player     string
	fixedSeed  bool
	quitting   bool
	scoreSaved bool // Whether the run has been saved for the current death
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *ball.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	// Some PTYs report 0x0 until the first resize
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW = core.DefaultConfig().ScreenW
		cfg.ScreenH = core.DefaultConfig().ScreenH
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = "local"
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		held:       NewHeldKeys(DefaultFirstHold, DefaultRepeatHold),
		inputFrame: core.NewInputFrame(),
		player:     player,
		fixedSeed:  opts.FixedSeed,
	}
}

// Init starts the first session and the tick loop.
func (m Model) Init() tea.Cmd {
	m.startSession()
	return tickCmd(m.config.TickRate)
}

// startSession resets the game and refreshes the best score.
func (m *Model) startSession() {
	m.game.Reset(m.config)
	if m.store != nil {
		if best, err := m.store.HighScore(); err == nil {
			m.game.SetBest(best)
		} else {
			m.logger.Warn("could not read high score", "error", err)
		}
	}
	m.logger.Info("session started",
		"player", m.player,
		"seed", m.config.Seed,
		"window", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	k, action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.logger.Info("session ended", "player", m.player, "score", m.gameState.Score)
		return m, tea.Quit
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	case k != 0:
		m.held.Press(k, time.Now())
	}

	return m, nil
}

// handleResize processes window resize events. The session keeps running;
// the next step sees the new window.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width <= 0 || msg.Height <= 0 {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick advances the simulation by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = min(now.Sub(m.lastTick), maxStep)
	}
	m.lastTick = now

	// Restart only after death: a new session, not a respawn
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = now.UnixNano()
		}
		m.held.ReleaseAll()
		m.startSession()
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.inputFrame.Keys = m.held.Keys(now)
	result := m.game.Step(m.inputFrame, max(dt, 0).Seconds())
	wasOver := m.gameState.GameOver
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		m.logger.Info("player died", "player", m.player, "score", m.gameState.Score)
	}

	// Save the run on death (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished session. Failures are logged, never fatal.
func (m *Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	run := storage.Run{
		Player:   m.player,
		Score:    m.gameState.Score,
		Duration: time.Duration(m.game.Elapsed() * float64(time.Second)),
		Seed:     m.config.Seed,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "player", m.player, "score", run.Score, "duration", run.Duration)
}

// saveScreenshot saves the current screen to ~/.ball/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".ball", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *ball.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
