package audio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/blockwars/internal/config"
)

// Bank holds the decoded PCM data of every clip.
// A nil entry is a silent clip.
type Bank struct {
	pcm [clipCount][]byte
}

// LoadBank decodes every configured clip.
// Files that cannot be loaded are logged and left silent.
func LoadBank(cfg config.AudioConfig, logger *log.Logger) *Bank {
	b := &Bank{}
	if !cfg.Enabled {
		logger.Debug("audio disabled")
		return b
	}

	dir := config.ExpandHome(cfg.Dir)
	for c := Clip(0); c < clipCount; c++ {
		name := fileName(cfg.Clips, c)
		if name == "" {
			continue
		}
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, name)
		}

		pcm, err := decodeFile(path)
		if err != nil {
			logger.Warn("sound not loaded, clip will be silent", "clip", c, "path", path, "error", err)
			continue
		}
		b.pcm[c] = pcm
		logger.Debug("sound loaded", "clip", c, "bytes", len(pcm))
	}
	return b
}

// PCM returns the clip's 16-bit stereo samples, or nil when it is silent.
func (b *Bank) PCM(c Clip) []byte {
	if b == nil || c < 0 || c >= clipCount {
		return nil
	}
	return b.pcm[c]
}

// Loaded reports how many clips have sound.
func (b *Bank) Loaded() int {
	if b == nil {
		return 0
	}
	n := 0
	for _, pcm := range b.pcm {
		if len(pcm) > 0 {
			n++
		}
	}
	return n
}

func decodeFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a WAV stream into 16-bit stereo PCM at SampleRate.
func Decode(r io.Reader) ([]byte, error) {
	stream, err := wav.DecodeWithSampleRate(SampleRate, r)
	if err != nil {
		return nil, fmt.Errorf("decode wav: %w", err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read wav samples: %w", err)
	}
	return pcm, nil
}
