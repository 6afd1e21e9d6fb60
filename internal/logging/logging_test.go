package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/blockwars/internal/config"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"", false, true},
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := New(&buf, config.LogConfig{Level: tc.level})
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}

			logger.Debug("debug line")
			logger.Info("info line")
			out := buf.String()

			if got := strings.Contains(out, "debug line"); got != tc.wantDebug {
				t.Errorf("debug logged = %v, expected %v", got, tc.wantDebug)
			}
			if got := strings.Contains(out, "info line"); got != tc.wantInfo {
				t.Errorf("info logged = %v, expected %v", got, tc.wantInfo)
			}
		})
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, config.LogConfig{Level: "loud"}); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

func TestLinesCarryPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, config.LogConfig{})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello", "score", 100)

	out := buf.String()
	if !strings.Contains(out, Prefix) || !strings.Contains(out, "score=100") {
		t.Errorf("unexpected log line %q", out)
	}
}

func TestOpenWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "blockwars.log")
	logger, closeFn, err := Open(config.LogConfig{File: path}, nil)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	logger.Warn("missing sound", "clip", "fire")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "missing sound") {
		t.Errorf("log file content = %q", data)
	}
}

func TestOpenFallsBackWithoutFile(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := Open(config.LogConfig{}, &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn()

	logger.Info("to fallback")
	if !strings.Contains(buf.String(), "to fallback") {
		t.Errorf("fallback writer got %q", buf.String())
	}
}
