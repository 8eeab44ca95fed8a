package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func fixedClock(l *Logger) {
	l.sink.now = func() time.Time { return time.Date(2026, 1, 2, 21, 4, 5, 6_000_000, time.UTC) }
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"Warning", LevelWarn},
		{"error", LevelError},
		{"nonsense", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn)
	l.SetOutput(&buf)
	fixedClock(l)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("shown %d", 4)

	want := "21:04:05.006 [WARN] shown 3\n21:04:05.006 [ERROR] shown 4\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_Named(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug)
	l.SetOutput(&buf)
	fixedClock(l)

	l.Named("ui").Named("resize").Info("settled at %dx%d", 80, 24)

	want := "21:04:05.006 [INFO] ui.resize: settled at 80x24\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}

	// Level changes on the parent apply to derived loggers.
	buf.Reset()
	l.SetLevel(LevelError)
	l.Named("ui").Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestLogger_Enabled(t *testing.T) {
	l := New(LevelInfo)
	if l.Enabled(LevelDebug) {
		t.Error("debug should be disabled at info level")
	}
	if !l.Enabled(LevelError) {
		t.Error("error should be enabled at info level")
	}
	if Discard().Enabled(LevelError) {
		t.Error("discard logger should not enable any level")
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nightsky.log")

	l, closeFn, err := Open(path, LevelInfo)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	l.Info("hello")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "[INFO] hello") {
		t.Errorf("log file = %q, want INFO line", data)
	}
}

func TestOpen_BadPath(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "missing", "x.log"), LevelInfo)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
