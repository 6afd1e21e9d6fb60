package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockwars/internal/audio"
	"github.com/vovakirdan/blockwars/internal/core"
	"github.com/vovakirdan/blockwars/internal/logging"
)

// Options configures a terminal game session.
type Options struct {
	// Cols and Rows are the terminal size in cells. One row is kept for the help bar.
	Cols, Rows int

	// CellWidth and CellHeight are the virtual pixels per cell.
	CellWidth, CellHeight int

	// KeyHoldFrames is how many ticks a direction stays held after a key press.
	// Terminals report presses only, never releases.
	KeyHoldFrames int

	TickRate int
	Seed     int64

	Audio  audio.Player
	Logger *log.Logger
}

// Model runs one game session inside Bubble Tea.
type Model struct {
	game   core.Game
	config core.RuntimeConfig
	screen *core.Screen
	canvas *Canvas
	keys   KeyMap
	help   help.Model
	audio  audio.Player
	logger *log.Logger

	holdFrames int
	held       map[core.Action]int // Direction -> ticks left
	pending    core.InputFrame     // One-shot actions for the next tick
	state      core.GameState
	quitting   bool
}

// NewModel creates a session and resets game for the terminal's pixel extents.
func NewModel(game core.Game, opts Options) Model {
	rows := max(opts.Rows-1, 1)
	screen := core.NewScreen(max(opts.Cols, 1), rows)
	canvas := NewCanvas(screen, opts.CellWidth, opts.CellHeight)
	w, h := canvas.PixelSize()

	cfg := core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	player := opts.Audio
	if player == nil {
		player = audio.Nop{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	hlp := help.New()
	hlp.Width = opts.Cols

	game.Reset(cfg)

	return Model{
		game:       game,
		config:     cfg,
		screen:     screen,
		canvas:     canvas,
		keys:       DefaultKeyMap(),
		help:       hlp,
		audio:      player,
		logger:     logger,
		holdFrames: max(opts.KeyHoldFrames, 1),
		held:       make(map[core.Action]int),
		pending:    core.NewInputFrame(),
		state:      game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.pending.Set(core.ActionFire)
		}
		return m, nil
	case tea.WindowSizeMsg:
		// Screen extents are fixed for the session; only the help bar follows the terminal.
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch {
	case action == core.ActionNone:
	case isDirection(action):
		m.held[action] = m.holdFrames
		delete(m.held, opposite(action))
	default:
		m.pending.Set(action)
	}
	return m, nil
}

// Frame returns the input the next tick will see.
func (m Model) Frame() core.InputFrame {
	frame := m.pending.Clone()
	for a := range m.held {
		frame.Set(a)
	}
	return frame
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.Frame())
	m.state = result.State
	audio.PlayEvents(m.audio, result.Events)
	m.logEvents(result)

	for a, n := range m.held {
		if n <= 1 {
			delete(m.held, a)
			continue
		}
		m.held[a] = n - 1
	}
	m.pending.Clear()

	if m.state.Stopped() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(result core.StepResult) {
	for _, e := range result.Events {
		switch e {
		case core.EventStart:
			m.logger.Info("session started", "width", m.config.ScreenW, "height", m.config.ScreenH)
		case core.EventLevelUp:
			m.logger.Info("level up", "level", result.State.Level, "score", result.State.Score)
		case core.EventPlayerDeath:
			m.logger.Info("player died", "level", result.State.Level, "score", result.State.Score)
		}
	}
}

// View renders the game.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.canvas)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// ProgramOptions returns the Bubble Tea options a session needs.
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}
