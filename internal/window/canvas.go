package window

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/litescript/nightsky/internal/sky"
)

const (
	// A blurred edge is approximated by this many translucent rings.
	shadowRings = 6

	// Gradient strokes are split into this many flat-coloured segments.
	strokeSegments = 12
)

// Canvas draws sky passes onto an Ebitengine image.
type Canvas struct {
	dst *ebiten.Image

	// The sky gradient only changes with the target size, so it is drawn
	// once into an offscreen image and copied every frame.
	backdrop    *ebiten.Image
	backdropFor sky.Gradient
	backdropW   int
	backdropH   int
}

var _ sky.Canvas = (*Canvas)(nil)

// NewCanvas creates a canvas with no target.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// SetTarget selects the image subsequent calls draw on.
func (c *Canvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

// Clear implements sky.Canvas.
func (c *Canvas) Clear() {
	c.dst.Clear()
}

// FillGradient implements sky.Canvas.
func (c *Canvas) FillGradient(g sky.Gradient) {
	b := c.dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}

	if c.backdrop == nil || c.backdropW != w || c.backdropH != h || !slices.Equal(c.backdropFor, g) {
		if c.backdrop != nil {
			c.backdrop.Deallocate()
		}
		c.backdrop = ebiten.NewImage(w, h)
		for y := 0; y < h; y++ {
			col := g.At((float64(y) + 0.5) / float64(h))
			vector.DrawFilledRect(c.backdrop, 0, float32(y), float32(w), 1, col, false)
		}
		c.backdropFor = slices.Clone(g)
		c.backdropW, c.backdropH = w, h
	}

	c.dst.DrawImage(c.backdrop, nil)
}

// FillRect implements sky.Canvas.
func (c *Canvas) FillRect(x, y, w, h float64, col sky.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col, false)
}

// FillCircle implements sky.Canvas.
func (c *Canvas) FillCircle(cx, cy, r float64, col sky.Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), col, true)
}

// FillCircleShadow implements sky.Canvas. The shadow is drawn as rings of
// decreasing size whose alpha adds up towards the disc edge.
func (c *Canvas) FillCircleShadow(cx, cy, r float64, col, shadow sky.Color, blur float64) {
	if blur > 0 {
		layer := shadow.WithAlpha(shadow.A / shadowRings)
		for i := shadowRings; i >= 1; i-- {
			rr := r + blur*float64(i)/shadowRings
			c.FillCircle(cx, cy, rr, layer)
		}
	}
	c.FillCircle(cx, cy, r, col)
}

// StrokeLine implements sky.Canvas.
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, g sky.Gradient) {
	if width <= 0 {
		return
	}
	dx, dy := x1-x0, y1-y0
	for i := 0; i < strokeSegments; i++ {
		t0 := float64(i) / strokeSegments
		t1 := float64(i+1) / strokeSegments
		col := g.At((t0 + t1) / 2)
		vector.StrokeLine(c.dst,
			float32(x0+dx*t0), float32(y0+dy*t0),
			float32(x0+dx*t1), float32(y0+dy*t1),
			float32(width), col, true)
	}
	// Round cap at the bright end; the other end is transparent.
	c.FillCircle(x1, y1, width/2, g.At(1))
}
