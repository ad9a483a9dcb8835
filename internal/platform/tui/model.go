package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/color-jump/internal/core"
	"github.com/vovakirdan/color-jump/internal/registry"
	"github.com/vovakirdan/color-jump/internal/storage"
)

// DefaultPlayer is the name scores are recorded under when none is given.
const DefaultPlayer = "player"

// Services are the persistence backends a running game reports to.
// Store and Prefs may be nil; the game is then played without scores.
type Services struct {
	Store  *storage.Store
	Prefs  *storage.Prefs
	Player string
	Logger *log.Logger
}

func (s Services) player() string {
	if s.Player == "" {
		return DefaultPlayer
	}
	return s.Player
}

func (s Services) logger() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

// Model is the Bubble Tea model for running a game mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	services   Services
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
	newBest    bool
	embedded   bool // Hosted by a SessionModel; Back returns to its menu
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, svc Services, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		services:   svc,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.resetGame()
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// resetGame restarts the game and hands it the best score known for it.
func (m *Model) resetGame() {
	m.game.Reset(m.config)
	if hs, ok := m.game.(registry.HighScoreSetter); ok {
		hs.SetHighScore(m.bestScore())
	}
}

// bestScore is the larger of the score history maximum and the prefs record.
func (m *Model) bestScore() int {
	best := 0
	if m.services.Store != nil {
		if s, err := m.services.Store.HighScore(m.game.ID()); err == nil {
			best = s
		}
	}
	if m.services.Prefs != nil {
		if rec, err := m.services.Prefs.HighScore(m.game.ID()); err == nil && rec.Score > best {
			best = rec.Score
		}
	}
	return best
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Restart only makes sense once the run is over
	if m.inputFrame.Has(core.ActionRestart) && !m.gameState.GameOver {
		delete(m.inputFrame.Actions, core.ActionRestart)
	}

	if m.inputFrame.Has(core.ActionBack) {
		delete(m.inputFrame.Actions, core.ActionBack)
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if !m.embedded {
				m.quitting = true
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The world is measured in world units, so a resize only changes the
	// viewport mapping and the run can continue.
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.resetGame()
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.newBest = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.recordScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordScore writes the final score to the history and the prefs record.
// Failures are logged; the session continues regardless.
func (m *Model) recordScore() {
	score := m.gameState.Score
	if score <= 0 {
		return
	}
	logger := m.services.logger()
	player := m.services.player()

	if m.services.Store != nil {
		if _, err := m.services.Store.SaveScore(m.game.ID(), player, score); err != nil {
			logger.Warn("cannot save score", "game", m.game.ID(), "err", err)
		}
	}
	if m.services.Prefs != nil {
		improved, err := m.services.Prefs.SubmitScore(m.game.ID(), player, score)
		if err != nil {
			logger.Warn("cannot update high score", "game", m.game.ID(), "err", err)
		}
		m.newBest = improved
	}
	logger.Info("run finished", "game", m.game.ID(), "player", player, "score", score, "best", m.newBest)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".colorjump", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.services.logger().Warn("cannot create screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.services.logger().Warn("cannot save screenshot", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// BackToMenu returns true if the player left the finished or paused run.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if the player asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// NewBest returns true if the last finished run improved the stored best.
func (m Model) NewBest() bool {
	return m.newBest
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, svc Services, cfg core.RuntimeConfig) error {
	model := NewModel(game, svc, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
