package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blockwars.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It matches defaults/blockwars.yaml.
func Default() Config {
	return Config{
		TickRate: 60,
		Backend:  BackendWindow,
		Audio: AudioConfig{
			Enabled: true,
			Dir:     ".",
			Clips: ClipFiles{
				Start:       "go_sound.wav",
				Fire:        "player_fire_sound.wav",
				PlayerDeath: "player_death_sound.wav",
				LevelUp:     "level_up_sound.wav",
				EnemyDeath:  "enemy_death_sound.wav",
				Explosion:   "explosion_sound.wav",
			},
		},
		Window: WindowConfig{
			Fullscreen: true,
			Width:      1280,
			Height:     720,
		},
		Terminal: TerminalConfig{
			CellWidth:     8,
			CellHeight:    16,
			KeyHoldFrames: 8,
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.blockwars/blockwars.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
