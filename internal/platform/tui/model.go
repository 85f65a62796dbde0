package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/aqua-arcade/internal/core"
	"github.com/vovakirdan/aqua-arcade/internal/registry"
	"github.com/vovakirdan/aqua-arcade/internal/storage"
)

// Model is the Bubble Tea model for running one game. It owns the frame
// clock, maps keys to input frames, and records finished rounds.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	clock      FrameClock
	keyMapper  *KeyMapper
	steering   Steering
	inputFrame core.InputFrame
	gameState  core.GameState
	runID      uuid.UUID
	embedded   bool // Running inside a session model; leaving must not end the program
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the score of the current run has been saved
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for round events.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

// WithMenu makes back and quit return control to an enclosing menu.
func WithMenu() ModelOption {
	return func(m *Model) {
		m.embedded = true
	}
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// A nil store disables score saving.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     log.New(io.Discard),
		config:     cfg,
		clock:      NewFrameClock(cfg.TickRate),
		keyMapper:  NewKeyMapper(),
		steering:   NewSteering(cfg.TickRate / 6),
		inputFrame: core.NewInputFrame(),
		runID:      storage.NewRunID(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.clock.Start()
	return m
}

// Init schedules the first tick.
func (m Model) Init() tea.Cmd {
	return m.clock.Next()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Round control keys act immediately
// because the clock is stopped between rounds.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.finishRun()
		m.quitting = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case action == core.ActionBack && (m.gameState.RoundOver() || m.gameState.Paused):
		m.finishRun()
		m.backToMenu = true
		m.clock.Stop()
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit

	case action == core.ActionAdvance && m.gameState.Won,
		action == core.ActionRestart && m.gameState.GameOver:
		in := core.NewInputFrame()
		in.Set(action)
		return m.step(in)
	}

	m.steering.Press(action)
	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleTick processes simulation ticks from the current clock generation.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.clock.Accept(msg) {
		return m, nil
	}

	m.steering.Apply(&m.inputFrame)
	next, cmd := m.step(m.inputFrame)
	m = next.(Model)
	m.inputFrame.Clear()

	if m.clock.Running() && cmd == nil {
		cmd = m.clock.Next()
	}
	return m, cmd
}

// step runs one game step and reacts to its events.
func (m Model) step(in core.InputFrame) (tea.Model, tea.Cmd) {
	result := m.game.Step(in)
	m.gameState = result.State

	var cmd tea.Cmd
	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventRoundWon, core.EventRoundLost:
			m.recordRound(ev)
			m.steering.Release()
			m.clock.Stop()
		case core.EventLevelStarted:
			if ev.Level == 1 {
				m.runID = storage.NewRunID()
				m.scoreSaved = false
			}
			m.logger.Info("level started", "game", m.game.ID(), "level", ev.Level, "run", m.runID)
			cmd = m.clock.Start()
		}
	}
	return m, cmd
}

// recordRound logs a finished round and stores it. A lost round ends the
// run, so its score goes to the high score table.
func (m *Model) recordRound(ev core.Event) {
	outcome := storage.OutcomeWon
	if ev.Kind == core.EventRoundLost {
		outcome = storage.OutcomeLost
	}
	m.logger.Info("round over",
		"game", m.game.ID(),
		"level", ev.Level,
		"outcome", outcome,
		"score", ev.Score,
		"run", m.runID,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveRound(storage.RoundRecord{
		RunID:   m.runID,
		GameID:  m.game.ID(),
		Level:   ev.Level,
		Outcome: outcome,
		Score:   ev.Score,
	})
	if err != nil {
		m.logger.Warn("could not save round", "error", err)
	}
	if ev.Kind == core.EventRoundLost {
		m.saveScore()
	}
}

// finishRun saves the score of a run abandoned after a won round.
func (m *Model) finishRun() {
	if m.gameState.Won {
		m.saveScore()
	}
}

// saveScore stores the current score once per run.
func (m *Model) saveScore() {
	if m.scoreSaved || m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.scoreSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".aqua", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
