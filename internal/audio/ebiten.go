package audio

import (
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// EbitenPlayer plays clips through ebiten's audio context.
// The window front end uses it; each call starts an independent player.
type EbitenPlayer struct {
	ctx  *eaudio.Context
	bank *Bank
}

// NewEbitenPlayer reuses the process-wide ebiten audio context or creates it.
func NewEbitenPlayer(bank *Bank) *EbitenPlayer {
	ctx := eaudio.CurrentContext()
	if ctx == nil {
		ctx = eaudio.NewContext(SampleRate)
	}
	return &EbitenPlayer{ctx: ctx, bank: bank}
}

// PlayOnce starts the clip and returns immediately.
func (p *EbitenPlayer) PlayOnce(c Clip) {
	pcm := p.bank.PCM(c)
	if len(pcm) == 0 {
		return
	}
	p.ctx.NewPlayerFromBytes(pcm).Play()
}
