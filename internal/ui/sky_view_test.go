package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestView_StatusLine(t *testing.T) {
	m := newTestModel(true)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 20})
	m, _ = update(t, m, FrameMsg(time.Unix(0, 0)))
	m, _ = update(t, m, FrameMsg(time.Unix(0, int64(50*time.Millisecond))))

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 20 {
		t.Fatalf("view has %d lines, want 19 sky lines + status", len(lines))
	}

	status := lines[len(lines)-1]
	for _, want := range []string{"nightsky", "720x228 px", "130 stars", "0 meteors", "20 fps", "q: quit"} {
		if !strings.Contains(status, want) {
			t.Errorf("status %q missing %q", status, want)
		}
	}
}

func TestView_StatusTruncatedToWidth(t *testing.T) {
	m := newTestModel(true)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 6})
	m, _ = update(t, m, FrameMsg(time.Unix(0, 0)))

	lines := strings.Split(m.View(), "\n")
	status := lines[len(lines)-1]
	if n := len([]rune(status)); n > 20 {
		t.Errorf("status is %d runes wide, want <= 20", n)
	}
}

func TestView_TinyTerminal(t *testing.T) {
	m := newTestModel(true)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 1})
	m, _ = update(t, m, FrameMsg(time.Unix(0, 0)))

	// Only the status line fits, so the scene has no area to draw.
	if m.View() != "" {
		t.Errorf("View = %q, want empty", m.View())
	}
}
