// Package audio loads the Block Wars sound clips and plays them.
//
// Clips are decoded once at start-up into 16-bit stereo PCM at SampleRate.
// A clip whose file is missing or unreadable stays silent; the game keeps
// running and a warning is logged.
package audio

import (
	"github.com/vovakirdan/blockwars/internal/config"
	"github.com/vovakirdan/blockwars/internal/core"
)

// SampleRate is the rate every clip is resampled to.
const SampleRate = 44100

// Clip identifies one sound effect.
type Clip int

const (
	ClipStart Clip = iota
	ClipFire
	ClipPlayerDeath
	ClipLevelUp
	ClipEnemyDeath
	ClipExplosion
	clipCount
)

// String returns the clip's config key.
func (c Clip) String() string {
	switch c {
	case ClipStart:
		return "start"
	case ClipFire:
		return "fire"
	case ClipPlayerDeath:
		return "player_death"
	case ClipLevelUp:
		return "level_up"
	case ClipEnemyDeath:
		return "enemy_death"
	case ClipExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// fileName returns the configured file for the clip.
func fileName(files config.ClipFiles, c Clip) string {
	switch c {
	case ClipStart:
		return files.Start
	case ClipFire:
		return files.Fire
	case ClipPlayerDeath:
		return files.PlayerDeath
	case ClipLevelUp:
		return files.LevelUp
	case ClipEnemyDeath:
		return files.EnemyDeath
	case ClipExplosion:
		return files.Explosion
	default:
		return ""
	}
}

// ClipForEvent maps a game event to the clip that announces it.
func ClipForEvent(e core.Event) (Clip, bool) {
	switch e {
	case core.EventStart:
		return ClipStart, true
	case core.EventFire:
		return ClipFire, true
	case core.EventPlayerDeath:
		return ClipPlayerDeath, true
	case core.EventLevelUp:
		return ClipLevelUp, true
	case core.EventEnemyDeath:
		return ClipEnemyDeath, true
	case core.EventExplosion:
		return ClipExplosion, true
	default:
		return 0, false
	}
}

// Player plays clips without blocking the caller.
type Player interface {
	PlayOnce(c Clip)
}

// Nop is a Player that stays silent.
type Nop struct{}

// PlayOnce does nothing.
func (Nop) PlayOnce(Clip) {}

// PlayEvents plays the clip of every event in order.
func PlayEvents(p Player, events []core.Event) {
	for _, e := range events {
		if c, ok := ClipForEvent(e); ok {
			p.PlayOnce(c)
		}
	}
}
