// Package ui provides the terminal host using Bubble Tea.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/nightsky/internal/debounce"
	"github.com/litescript/nightsky/internal/logging"
	"github.com/litescript/nightsky/internal/raster"
	"github.com/litescript/nightsky/internal/sky"
)

// Msg types for Bubble Tea
type (
	// FrameMsg triggers drawing the next frame.
	FrameMsg time.Time

	// resizeSettledMsg is delivered once the resize quiet period for gen
	// has passed.
	resizeSettledMsg struct {
		gen uint64
	}
)

// termSize is a terminal size in cells.
type termSize struct {
	cols, rows int
}

// Options configures the terminal host.
type Options struct {
	Scene         *sky.Scene
	FrameInterval time.Duration
	Debounce      time.Duration
	DotSize       float64
	ShowStatus    bool
	Logger        *logging.Logger
	// Renderer is used for all styling. Nil means the lipgloss default.
	Renderer *lipgloss.Renderer
}

// Model is the root Bubble Tea model. It owns the scene and the raster the
// scene is drawn into.
type Model struct {
	// Dependencies
	scene    *sky.Scene
	canvas   *raster.Canvas
	resize   *debounce.Debouncer[termSize]
	log      *logging.Logger
	renderer *lipgloss.Renderer

	// Settings
	frameInterval time.Duration
	showStatus    bool

	// UI state
	width    int
	height   int
	ready    bool
	start    time.Time
	last     time.Time
	fps      float64
	frame    string
	rebuilds int
	now      func() time.Time
}

// New creates the root model.
func New(opts Options) Model {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = 33 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.Scene == nil {
		opts.Scene = sky.NewScene(sky.DefaultConfig(), nil)
	}

	return Model{
		scene:         opts.Scene,
		canvas:        raster.New(0, 0, opts.DotSize),
		resize:        debounce.New[termSize](opts.Debounce),
		log:           opts.Logger.Named("ui"),
		renderer:      opts.Renderer,
		frameInterval: opts.FrameInterval,
		showStatus:    opts.ShowStatus,
		now:           time.Now,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.frameInterval)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		size := termSize{cols: msg.Width, rows: msg.Height}
		if !m.ready {
			// First size seen: build the sky right away.
			m.ready = true
			m.apply(size)
			return m, nil
		}
		gen := m.resize.Trigger(m.now(), size)
		m.log.Debug("resize to %dx%d queued (gen %d)", size.cols, size.rows, gen)
		return m, settleCmd(m.resize.Quiet(), gen)

	case resizeSettledMsg:
		if size, ok := m.resize.Settle(msg.gen); ok {
			m.apply(size)
		}

	case FrameMsg:
		m.drawFrame(time.Time(msg))
		return m, frameCmd(m.frameInterval)
	}

	return m, nil
}

// apply sizes the raster and rebuilds the scene for a terminal size.
func (m *Model) apply(size termSize) {
	m.width, m.height = size.cols, size.rows

	lines := size.rows
	if m.showStatus {
		lines -= statusLines
	}
	if lines < 0 {
		lines = 0
	}

	m.canvas.Resize(size.cols, lines*2)
	m.scene.Resize(m.canvas.Width(), m.canvas.Height())
	m.rebuilds++
	m.frame = ""

	vp := m.scene.Viewport()
	m.log.Info("sky rebuilt for %dx%d cells (%.0fx%.0f px, %d stars)",
		size.cols, size.rows, vp.W, vp.H, len(m.scene.Stars()))
}

func (m *Model) drawFrame(t time.Time) {
	if m.start.IsZero() {
		m.start = t
	}
	if !m.scene.Frame(t.Sub(m.start), m.canvas) {
		return
	}

	if !m.last.IsZero() {
		if dt := t.Sub(m.last).Seconds(); dt > 0 {
			inst := 1 / dt
			if m.fps == 0 {
				m.fps = inst
			} else {
				m.fps += (inst - m.fps) * 0.1
			}
		}
	}
	m.last = t
	m.frame = m.canvas.ANSI(m.renderer)
}

// Rebuilds returns how many times the scene has been resized.
func (m Model) Rebuilds() int {
	return m.rebuilds
}

// Scene returns the scene being animated.
func (m Model) Scene() *sky.Scene {
	return m.scene
}

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func settleCmd(quiet time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(quiet, func(time.Time) tea.Msg {
		return resizeSettledMsg{gen: gen}
	})
}
