// Package config provides YAML-based configuration loading for Block Wars.
// Gameplay constants are not configurable; the file only covers the front
// ends, audio assets, logging and the SSH server.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Front ends selectable with the backend key or the --backend flag.
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// Validation errors returned by Config.Validate.
var (
	ErrInvalidTickRate = errors.New("tick_rate must be between 1 and 240")
	ErrUnknownBackend  = errors.New("unknown backend")
	ErrInvalidWindow   = errors.New("window size must be positive")
	ErrInvalidCellSize = errors.New("terminal cell size must be positive")
	ErrInvalidKeyHold  = errors.New("terminal key_hold_frames must not be negative")
)

// Config is the complete application configuration.
type Config struct {
	TickRate int            `yaml:"tick_rate"`
	Backend  string         `yaml:"backend"`
	Audio    AudioConfig    `yaml:"audio"`
	Window   WindowConfig   `yaml:"window"`
	Terminal TerminalConfig `yaml:"terminal"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// AudioConfig names the sound clips loaded at start-up.
type AudioConfig struct {
	Enabled bool      `yaml:"enabled"`
	Dir     string    `yaml:"dir"` // Clip file names are relative to this directory
	Clips   ClipFiles `yaml:"clips"`
}

// ClipFiles holds one WAV file name per sound clip.
type ClipFiles struct {
	Start       string `yaml:"start"`
	Fire        string `yaml:"fire"`
	PlayerDeath string `yaml:"player_death"`
	LevelUp     string `yaml:"level_up"`
	EnemyDeath  string `yaml:"enemy_death"`
	Explosion   string `yaml:"explosion"`
}

// WindowConfig controls the ebiten front end.
type WindowConfig struct {
	Fullscreen bool `yaml:"fullscreen"`
	Width      int  `yaml:"width"`  // Used when the monitor size is unknown or fullscreen is off
	Height     int  `yaml:"height"` // Used when the monitor size is unknown or fullscreen is off
}

// TerminalConfig controls the terminal front end.
type TerminalConfig struct {
	CellWidth     int `yaml:"cell_width"`      // Virtual pixels per terminal column
	CellHeight    int `yaml:"cell_height"`     // Virtual pixels per terminal row
	KeyHoldFrames int `yaml:"key_hold_frames"` // Frames a direction stays held after a key press
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Required by the terminal front end, optional elsewhere
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > 240 {
		return fmt.Errorf("%w: %d", ErrInvalidTickRate, c.TickRate)
	}
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidCellSize, c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if c.Terminal.KeyHoldFrames < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidKeyHold, c.Terminal.KeyHoldFrames)
	}
	return nil
}
