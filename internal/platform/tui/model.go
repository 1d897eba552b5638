package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Logical canvas size games draw into.
const (
	CanvasWidth  = 400
	CanvasHeight = 600
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model driving one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	presenter  *CanvasPresenter
	player     audio.Player
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	err        error
}

// NewModel creates a new Bubble Tea model for the given game.
// Sound cues are forwarded to player.
func NewModel(game registry.Game, player audio.Player, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if player == nil {
		player = audio.Nop{}
	}
	if logger == nil {
		logger = log.Default()
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH-1) // Last line is the help line
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     screen,
		presenter:  NewCanvasPresenter(screen, CanvasWidth, CanvasHeight),
		player:     player,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
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

// handleKey accumulates actions until the next tick. Quit is handled
// right away so nothing steps or draws after it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Debug("Quit requested", "phase", m.gameState.Phase, "score", m.gameState.Score)
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize refits the canvas; the simulation is unaffected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.presenter.Resize(m.screen.Width(), m.screen.Height())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step, plays its cues and clears input.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	result, err := m.step()
	if err != nil {
		m.err = err
		m.quitting = true
		m.logger.Error("Simulation fault, quitting", "err", err, "phase", m.gameState.Phase)
		return m, tea.Quit
	}

	if result.State.Phase != m.gameState.Phase {
		m.logger.Debug("Phase changed",
			"from", m.gameState.Phase,
			"to", result.State.Phase,
			"score", result.State.Score,
			"speed", result.State.Speed,
		)
	}
	m.gameState = result.State

	for _, s := range result.Sounds {
		m.player.Play(s)
	}

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// step runs Game.Step, converting a panic into an error.
func (m Model) step() (result core.StepResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tui: %s tick panicked: %v", m.game.ID(), r)
		}
	}()
	return m.game.Step(m.inputFrame), nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.presenter)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Err returns the fault that stopped the tick loop, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program and blocks until it exits.
// Run owns player and closes it before returning.
func Run(game registry.Game, player audio.Player, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, player, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if closeErr := model.player.Close(); closeErr != nil {
		logger.Warn("Could not release audio", "err", closeErr)
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
