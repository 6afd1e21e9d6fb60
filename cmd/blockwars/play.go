package main

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockwars/internal/audio"
	"github.com/vovakirdan/blockwars/internal/config"
	"github.com/vovakirdan/blockwars/internal/games/blockwars"
	"github.com/vovakirdan/blockwars/internal/logging"
	"github.com/vovakirdan/blockwars/internal/platform/tui"
	"github.com/vovakirdan/blockwars/internal/platform/window"
)

var (
	flagBackend  string
	flagWindowed bool
	flagMute     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Block Wars",
	Long: `Start a game in the configured front end.

Controls:
  Arrows/WASD       - Move (gamepad left stick too)
  Space/Click       - Fire in the last moved direction (gamepad button 0 too)
  Esc               - End the game
  Q/Ctrl+C          - Quit (terminal)

Backends:
  window    - Full-screen window at the monitor's resolution (default)
  terminal  - Play inside the terminal

Examples:
  blockwars play
  blockwars play --backend terminal
  blockwars play --windowed --seed 42
  blockwars play --config ./my-blockwars.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	registerPlayFlags(playCmd)
}

func registerPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagBackend, "backend", "", "Front end: window or terminal (default from config)")
	cmd.Flags().BoolVar(&flagWindowed, "windowed", false, "Open a window instead of going full screen")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagBackend != "" {
		cfg.Backend = flagBackend
	}
	if flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	switch cfg.Backend {
	case config.BackendTerminal:
		return playTerminal(cfg, seed)
	default:
		return playWindow(cfg, seed)
	}
}

func playWindow(cfg config.Config, seed int64) error {
	logger, err := logging.New(os.Stderr, cfg.Log)
	if err != nil {
		return err
	}

	var player audio.Player = audio.Nop{}
	if cfg.Audio.Enabled {
		player = audio.NewEbitenPlayer(audio.LoadBank(cfg.Audio, logger))
	}

	game := blockwars.New()
	return window.Run(game, window.Options{
		Title:    game.Title(),
		Window:   cfg.Window,
		TickRate: cfg.TickRate,
		Seed:     seed,
		Audio:    player,
		Logger:   logger,
	})
}

func playTerminal(cfg config.Config, seed int64) error {
	// Stdout belongs to the TUI, so logs go to the configured file or nowhere
	logger, closeLog, err := logging.Open(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	player := terminalAudio(cfg.Audio, logger)

	cols, rows := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cols, rows = w, h
	}

	model := tui.NewModel(blockwars.New(), tui.Options{
		Cols:          cols,
		Rows:          rows,
		CellWidth:     cfg.Terminal.CellWidth,
		CellHeight:    cfg.Terminal.CellHeight,
		KeyHoldFrames: cfg.Terminal.KeyHoldFrames,
		TickRate:      cfg.TickRate,
		Seed:          seed,
		Audio:         player,
		Logger:        logger,
	})

	final, err := tea.NewProgram(model, tui.ProgramOptions()...).Run()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if m, ok := final.(tui.Model); ok {
		fmt.Printf("Final score: %d (level %d)\n", m.State().Score, m.State().Level)
	}
	return nil
}

// terminalAudio opens the sound device, staying silent when it is unavailable.
func terminalAudio(cfg config.AudioConfig, logger *log.Logger) audio.Player {
	if !cfg.Enabled {
		return audio.Nop{}
	}
	player, err := audio.NewOtoPlayer(audio.LoadBank(cfg, logger))
	if err != nil {
		logger.Warn("playing without sound", "error", err)
		return audio.Nop{}
	}
	return player
}
