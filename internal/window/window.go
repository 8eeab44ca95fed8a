// Package window runs the night sky in a desktop window using Ebitengine.
package window

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/litescript/nightsky/internal/config"
	"github.com/litescript/nightsky/internal/debounce"
	"github.com/litescript/nightsky/internal/logging"
	"github.com/litescript/nightsky/internal/sky"
)

type size struct {
	w, h int
}

// Game implements ebiten.Game around a sky scene.
type Game struct {
	ctx    context.Context
	scene  *sky.Scene
	canvas *Canvas
	resize *debounce.Debouncer[size]
	log    *logging.Logger

	now   func() time.Time
	start time.Time
	seen  size
	sized bool
}

// NewGame creates a game that stops when ctx is cancelled.
func NewGame(ctx context.Context, scene *sky.Scene, debounceFor time.Duration, logger *logging.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Game{
		ctx:    ctx,
		scene:  scene,
		canvas: NewCanvas(),
		resize: debounce.New[size](debounceFor),
		log:    logger.Named("window"),
		now:    time.Now,
	}
}

// Update implements ebiten.Game. It applies a settled resize and ends the
// game once the context is done.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		g.log.Debug("context done, closing window")
		return ebiten.Termination
	}
	if s, ok := g.resize.Poll(g.now()); ok {
		g.apply(s)
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.start.IsZero() {
		g.start = g.now()
	}
	g.canvas.SetTarget(screen)
	g.scene.Frame(g.now().Sub(g.start), g.canvas)
}

// Layout implements ebiten.Game. The logical screen tracks the window so the
// sky always fills it at native resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := size{w: outsideWidth, h: outsideHeight}
	switch {
	case !g.sized:
		g.sized = true
		g.seen = s
		g.apply(s)
	case s != g.seen:
		g.seen = s
		g.resize.Trigger(g.now(), s)
	}
	return max(s.w, 1), max(s.h, 1)
}

func (g *Game) apply(s size) {
	g.scene.Resize(float64(s.w), float64(s.h))
	g.log.Info("sky rebuilt for %dx%d px", s.w, s.h)
}

// Run opens a window and blocks until it is closed or ctx is cancelled.
func Run(ctx context.Context, scene *sky.Scene, cfg config.Config, logger *logging.Logger) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := NewGame(ctx, scene, cfg.Resize.Debounce, logger)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
