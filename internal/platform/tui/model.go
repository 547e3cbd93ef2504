package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// footerHeight is the number of rows reserved below the game screen for help.
const footerHeight = 1

// Model is the Bubble Tea model running one 2048 session.
type Model struct {
	game       *t2048.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	renderer   *lipgloss.Renderer
	logger     *log.Logger
	inputFrame core.InputFrame
	drag       *core.Vec // Mouse press position while a drag is in progress
	quitting   bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithRenderer sets the lipgloss renderer used for styled output.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) {
		m.renderer = r
	}
}

// WithLogger sets the logger passed to the game.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewModel creates a new Bubble Tea model for a 2048 session.
func NewModel(cfg config.Config, rc core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.TickRate <= 0 {
		rc.TickRate = cfg.TickRate
	}

	m := Model{
		config:     rc,
		keys:       NewKeyMap(cfg.Input.Keys),
		help:       help.New(),
		logger:     log.New(io.Discard),
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.game = t2048.New(cfg, t2048.WithLogger(m.logger))
	m.screen = core.NewScreen(rc.ScreenW, max(rc.ScreenH-footerHeight, 0))
	m.help.Width = rc.ScreenW
	return m
}

// gameConfig returns the runtime config with the footer subtracted.
func (m Model) gameConfig() core.RuntimeConfig {
	rc := m.config
	rc.ScreenH = max(rc.ScreenH-footerHeight, 0)
	return rc
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse turns a left-button drag that starts on the game screen into a swipe.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		screen := core.NewRect(0, 0, m.screen.Width(), m.screen.Height())
		if msg.Button == tea.MouseButtonLeft && screen.Contains(msg.X, msg.Y) {
			m.drag = &core.Vec{X: float64(msg.X), Y: float64(msg.Y)}
		}
	case tea.MouseActionRelease:
		if m.drag != nil {
			m.inputFrame.SetSwipe(dragToSwipe(*m.drag, core.Vec{X: float64(msg.X), Y: float64(msg.Y)}))
			m.drag = nil
		}
	}
	return m, nil
}

// dragToSwipe converts a drag between two screen positions into board
// orientation, where y grows upward.
func dragToSwipe(from, to core.Vec) core.Vec {
	d := to.Sub(from)
	d.Y = -d.Y
	return d
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	rc := m.gameConfig()
	m.screen.Resize(rc.ScreenW, rc.ScreenH)
	m.game.Resize(rc.ScreenW, rc.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.gameConfig())
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.game.Step(m.inputFrame)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.renderer) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program on the local terminal.
func Run(cfg config.Config, rc core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(cfg, rc, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drags become swipes
	)

	_, err := p.Run()
	return err
}
