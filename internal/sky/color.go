package sky

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a straight (non-premultiplied) RGB colour with an alpha channel.
// It implements color.Color so hosts can hand it to image and GPU APIs.
type Color struct {
	colorful.Color
	A float64 // 0..1
}

// RGBA builds a Color from 8-bit channels and a 0..1 alpha.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{
		Color: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255},
		A:     clamp01(a),
	}
}

// Hex parses "#rrggbb" into an opaque Color. It panics on malformed input and
// is meant for package-level palettes only.
func Hex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("sky: bad colour literal %q: %v", s, err))
	}
	return Color{Color: c, A: 1}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// RGBA implements color.Color with alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	cc := c.Clamped()
	alpha := clamp01(c.A)
	r = uint32(cc.R*alpha*0xffff + 0.5)
	g = uint32(cc.G*alpha*0xffff + 0.5)
	b = uint32(cc.B*alpha*0xffff + 0.5)
	a = uint32(alpha*0xffff + 0.5)
	return r, g, b, a
}

// Stop is one colour stop of a linear gradient.
type Stop struct {
	Offset float64
	Color  Color
}

// Gradient is a list of stops ordered by ascending offset.
type Gradient []Stop

// At samples the gradient at t. Values outside the first and last stop take
// the colour of that stop.
func (g Gradient) At(t float64) Color {
	switch {
	case len(g) == 0:
		return Color{}
	case t <= g[0].Offset:
		return g[0].Color
	case t >= g[len(g)-1].Offset:
		return g[len(g)-1].Color
	}
	for i := 1; i < len(g); i++ {
		lo, hi := g[i-1], g[i]
		if t > hi.Offset {
			continue
		}
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.Color
		}
		f := (t - lo.Offset) / span
		return Color{
			Color: lo.Color.BlendRgb(hi.Color.Color, f),
			A:     lo.Color.A + (hi.Color.A-lo.Color.A)*f,
		}
	}
	return g[len(g)-1].Color
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
