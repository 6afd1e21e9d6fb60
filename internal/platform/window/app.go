// Package window runs Block Wars in a full-screen ebiten window.
package window

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/blockwars/internal/audio"
	"github.com/vovakirdan/blockwars/internal/config"
	"github.com/vovakirdan/blockwars/internal/core"
	"github.com/vovakirdan/blockwars/internal/logging"
)

// Options configures a window session.
type Options struct {
	Title    string
	Window   config.WindowConfig
	TickRate int
	Seed     int64
	Audio    audio.Player
	Logger   *log.Logger
}

// App adapts a core.Game to ebiten's game loop.
// Update runs one logic frame; Draw only renders, so explosions age once per
// tick no matter how often the display refreshes.
type App struct {
	game    core.Game
	config  core.RuntimeConfig
	audio   audio.Player
	logger  *log.Logger
	surface *Surface
	input   *InputPoller
	state   core.GameState
}

// NewApp resets game for the given screen extents.
func NewApp(game core.Game, cfg core.RuntimeConfig, player audio.Player, logger *log.Logger) *App {
	if player == nil {
		player = audio.Nop{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	game.Reset(cfg)
	return &App{
		game:    game,
		config:  cfg,
		audio:   player,
		logger:  logger,
		surface: NewSurface(),
		input:   NewInputPoller(),
		state:   game.State(),
	}
}

// Update advances the game by one tick.
func (a *App) Update() error {
	result := a.game.Step(a.input.Poll())
	a.state = result.State
	audio.PlayEvents(a.audio, result.Events)
	a.logEvents(result)

	if a.state.Stopped() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current game state.
func (a *App) Draw(screen *ebiten.Image) {
	a.surface.SetTarget(screen)
	a.game.Render(a.surface)
}

// Layout keeps the logical screen fixed for the whole session.
func (a *App) Layout(_, _ int) (int, int) {
	return a.config.ScreenW, a.config.ScreenH
}

// State returns the game state after the last tick.
func (a *App) State() core.GameState {
	return a.state
}

func (a *App) logEvents(result core.StepResult) {
	for _, e := range result.Events {
		switch e {
		case core.EventStart:
			a.logger.Info("session started", "width", a.config.ScreenW, "height", a.config.ScreenH)
		case core.EventLevelUp:
			a.logger.Info("level up", "level", result.State.Level, "score", result.State.Score)
		case core.EventPlayerDeath:
			a.logger.Info("player died", "level", result.State.Level, "score", result.State.Score)
		}
	}
}

// ScreenSize picks the session's pixel extents.
// Full-screen sessions use the monitor's resolution when it is known.
func ScreenSize(cfg config.WindowConfig, monitorW, monitorH int) (w, h int) {
	if cfg.Fullscreen && monitorW > 0 && monitorH > 0 {
		return monitorW, monitorH
	}
	return cfg.Width, cfg.Height
}

// Run opens the window and blocks until the session stops.
func Run(game core.Game, opts Options) error {
	var monitorW, monitorH int
	if m := ebiten.Monitor(); m != nil {
		monitorW, monitorH = m.Size()
	}
	w, h := ScreenSize(opts.Window, monitorW, monitorH)

	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetFullscreen(opts.Window.Fullscreen)
	ebiten.SetTPS(tickRate)
	ebiten.SetWindowClosingHandled(true)

	cfg := core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: tickRate,
		Seed:     opts.Seed,
	}
	app := NewApp(game, cfg, opts.Audio, opts.Logger)

	app.logger.Debug("opening window", "width", w, "height", h, "fullscreen", opts.Window.Fullscreen)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
