package audio

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const channelCount = 2

// OtoPlayer plays clips straight on the system audio device.
// The terminal front end uses it since it has no ebiten audio context.
type OtoPlayer struct {
	ctx   *oto.Context
	ready chan struct{}
	bank  *Bank
}

// NewOtoPlayer opens the audio device.
func NewOtoPlayer(bank *Bank) (*OtoPlayer, error) {
	ctx, ready, err := oto.NewContext(SampleRate, channelCount, oto.FormatSignedInt16LE)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	return &OtoPlayer{ctx: ctx, ready: ready, bank: bank}, nil
}

// PlayOnce starts the clip on its own player and returns immediately.
// Clips requested before the device is ready are dropped.
func (p *OtoPlayer) PlayOnce(c Clip) {
	pcm := p.bank.PCM(c)
	if len(pcm) == 0 {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}

	go func() {
		player := p.ctx.NewPlayer(bytes.NewReader(pcm))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}
