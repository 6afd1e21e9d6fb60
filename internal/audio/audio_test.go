package audio

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockwars/internal/config"
	"github.com/vovakirdan/blockwars/internal/core"
)

// wavBytes builds a 16-bit stereo PCM WAV file with the given number of frames.
func wavBytes(frames int) []byte {
	const (
		channels      = 2
		bitsPerSample = 16
	)
	dataLen := frames * channels * bitsPerSample / 8

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(SampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(SampleRate*channels*bitsPerSample/8))
	binary.Write(&buf, binary.LittleEndian, uint16(channels*bitsPerSample/8))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	for i := 0; i < frames*channels; i++ {
		binary.Write(&buf, binary.LittleEndian, int16(i*100))
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	pcm, err := Decode(bytes.NewReader(wavBytes(64)))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(pcm) == 0 || len(pcm)%4 != 0 {
		t.Errorf("decoded %d bytes, expected whole 16-bit stereo frames", len(pcm))
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode(strings.NewReader("not a wav file")); err == nil {
		t.Error("expected an error for non-WAV input")
	}
}

func TestLoadBankMissingFilesAreSilent(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "fire.wav"), wavBytes(64), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.wav"), []byte("junk"), 0o600); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	cfg := config.AudioConfig{
		Enabled: true,
		Dir:     dir,
		Clips: config.ClipFiles{
			Fire:       "fire.wav",
			Start:      "missing.wav",
			LevelUp:    "broken.wav",
			EnemyDeath: "",
		},
	}
	bank := LoadBank(cfg, log.New(&logs))

	if len(bank.PCM(ClipFire)) == 0 {
		t.Error("fire clip should be loaded")
	}
	for _, c := range []Clip{ClipStart, ClipLevelUp, ClipEnemyDeath} {
		if bank.PCM(c) != nil {
			t.Errorf("clip %v should be silent", c)
		}
	}
	if bank.Loaded() != 1 {
		t.Errorf("Loaded() = %d, expected 1", bank.Loaded())
	}

	out := logs.String()
	if strings.Count(out, "sound not loaded") != 2 {
		t.Errorf("expected two warnings (missing and broken), got:\n%s", out)
	}
	if !strings.Contains(out, "missing.wav") || !strings.Contains(out, "broken.wav") {
		t.Errorf("warnings should name the files, got:\n%s", out)
	}
}

func TestLoadBankDisabled(t *testing.T) {
	var logs bytes.Buffer
	cfg := config.Default().Audio
	cfg.Enabled = false
	bank := LoadBank(cfg, log.New(&logs))

	if bank.Loaded() != 0 {
		t.Errorf("disabled bank loaded %d clips", bank.Loaded())
	}
	if strings.Contains(logs.String(), "sound not loaded") {
		t.Error("disabled audio should not warn about files")
	}
}

func TestNilBankIsSilent(t *testing.T) {
	var b *Bank
	if b.PCM(ClipFire) != nil {
		t.Error("nil bank returned samples")
	}
	if b.Loaded() != 0 {
		t.Errorf("nil bank Loaded() = %d, expected 0", b.Loaded())
	}
}

func TestClipForEvent(t *testing.T) {
	tests := []struct {
		event core.Event
		want  Clip
	}{
		{core.EventStart, ClipStart},
		{core.EventFire, ClipFire},
		{core.EventPlayerDeath, ClipPlayerDeath},
		{core.EventLevelUp, ClipLevelUp},
		{core.EventEnemyDeath, ClipEnemyDeath},
		{core.EventExplosion, ClipExplosion},
	}

	for _, tc := range tests {
		got, ok := ClipForEvent(tc.event)
		if !ok || got != tc.want {
			t.Errorf("ClipForEvent(%v) = %v, %v; expected %v", tc.event, got, ok, tc.want)
		}
	}
}

type recordingPlayer struct {
	played []Clip
}

func (p *recordingPlayer) PlayOnce(c Clip) {
	p.played = append(p.played, c)
}

func TestPlayEventsKeepsOrder(t *testing.T) {
	p := &recordingPlayer{}
	PlayEvents(p, []core.Event{core.EventEnemyDeath, core.EventExplosion, core.EventLevelUp})

	want := []Clip{ClipEnemyDeath, ClipExplosion, ClipLevelUp}
	if len(p.played) != len(want) {
		t.Fatalf("played %v, expected %v", p.played, want)
	}
	for i := range want {
		if p.played[i] != want[i] {
			t.Errorf("played[%d] = %v, expected %v", i, p.played[i], want[i])
		}
	}
}

func TestClipFileNamesMatchConfig(t *testing.T) {
	files := config.Default().Audio.Clips
	if fileName(files, ClipStart) != "go_sound.wav" {
		t.Errorf("start clip file = %q", fileName(files, ClipStart))
	}
	for c := Clip(0); c < clipCount; c++ {
		if fileName(files, c) == "" {
			t.Errorf("clip %v has no default file", c)
		}
	}
}
