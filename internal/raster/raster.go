// Package raster implements sky.Canvas on a grid of coloured dots.
//
// Each dot stands for a square of Dot virtual pixels, so a scene sized to
// Width() x Height() draws at its normal scale while the grid stays small
// enough for a terminal. Shapes are sampled at dot centres with a one dot
// wide coverage ramp: anything smaller than a dot still leaves a faint mark.
package raster

import (
	"image"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/nightsky/internal/sky"
)

// Canvas is an opaque dot buffer. Create one with New.
type Canvas struct {
	cols, rows int
	dot        float64
	px         []colorful.Color
}

var _ sky.Canvas = (*Canvas)(nil)

// New creates a cols x rows canvas where each dot covers dot virtual pixels.
func New(cols, rows int, dot float64) *Canvas {
	if dot <= 0 {
		dot = 1
	}
	c := &Canvas{dot: dot}
	c.Resize(cols, rows)
	return c
}

// Resize changes the grid size. The contents are cleared.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols, c.rows = cols, rows
	n := cols * rows
	if cap(c.px) >= n {
		c.px = c.px[:n]
	} else {
		c.px = make([]colorful.Color, n)
	}
	c.Clear()
}

// Cols returns the grid width in dots.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the grid height in dots.
func (c *Canvas) Rows() int { return c.rows }

// Dot returns the virtual pixel size of one dot.
func (c *Canvas) Dot() float64 { return c.dot }

// Width returns the width in virtual pixels.
func (c *Canvas) Width() float64 { return float64(c.cols) * c.dot }

// Height returns the height in virtual pixels.
func (c *Canvas) Height() float64 { return float64(c.rows) * c.dot }

// At returns the colour of the dot at column x, row y.
func (c *Canvas) At(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return colorful.Color{}
	}
	return c.px[y*c.cols+x]
}

// Clear paints every dot black.
func (c *Canvas) Clear() {
	for i := range c.px {
		c.px[i] = colorful.Color{}
	}
}

// FillGradient paints a vertical gradient over the whole canvas.
func (c *Canvas) FillGradient(g sky.Gradient) {
	h := c.Height()
	if h == 0 {
		return
	}
	for y := 0; y < c.rows; y++ {
		col := g.At((float64(y) + 0.5) * c.dot / h)
		for x := 0; x < c.cols; x++ {
			c.blend(x, y, col, 1)
		}
	}
}

// FillRect blends a rectangle over every dot whose centre it contains.
func (c *Canvas) FillRect(x, y, w, h float64, col sky.Color) {
	x0, y0, x1, y1 := c.span(x, y, x+w, y+h)
	for j := y0; j <= y1; j++ {
		cy := c.centre(j)
		if cy < y || cy >= y+h {
			continue
		}
		for i := x0; i <= x1; i++ {
			cx := c.centre(i)
			if cx < x || cx >= x+w {
				continue
			}
			c.blend(i, j, col, 1)
		}
	}
}

// FillCircle blends a disc.
func (c *Canvas) FillCircle(cx, cy, r float64, col sky.Color) {
	if r <= 0 {
		return
	}
	reach := r + c.dot
	x0, y0, x1, y1 := c.span(cx-reach, cy-reach, cx+reach, cy+reach)
	for j := y0; j <= y1; j++ {
		for i := x0; i <= x1; i++ {
			d := math.Hypot(c.centre(i)-cx, c.centre(j)-cy)
			c.blend(i, j, col, c.coverage(r-d))
		}
	}
}

// FillCircleShadow blends a soft shadow that fades out over blur pixels past
// the edge, then the disc itself.
func (c *Canvas) FillCircleShadow(cx, cy, r float64, col, shadow sky.Color, blur float64) {
	if blur > 0 {
		reach := r + blur
		x0, y0, x1, y1 := c.span(cx-reach, cy-reach, cx+reach, cy+reach)
		for j := y0; j <= y1; j++ {
			for i := x0; i <= x1; i++ {
				d := math.Hypot(c.centre(i)-cx, c.centre(j)-cy)
				c.blend(i, j, shadow, shadowFalloff(d-r, blur))
			}
		}
	}
	c.FillCircle(cx, cy, r, col)
}

// StrokeLine draws a round-capped line with a gradient running from
// (x0, y0) to (x1, y1).
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, g sky.Gradient) {
	if width <= 0 {
		return
	}
	half := width / 2
	reach := half + c.dot
	bx0, by0, bx1, by1 := c.span(
		math.Min(x0, x1)-reach, math.Min(y0, y1)-reach,
		math.Max(x0, x1)+reach, math.Max(y0, y1)+reach,
	)

	dx, dy := x1-x0, y1-y0
	lenSq := dx*dx + dy*dy

	for j := by0; j <= by1; j++ {
		py := c.centre(j)
		for i := bx0; i <= bx1; i++ {
			px := c.centre(i)
			t := 0.0
			if lenSq > 0 {
				t = ((px-x0)*dx + (py-y0)*dy) / lenSq
				t = math.Max(0, math.Min(1, t))
			}
			d := math.Hypot(px-(x0+dx*t), py-(y0+dy*t))
			cov := c.coverage(half - d)
			if cov == 0 {
				continue
			}
			c.blend(i, j, g.At(t), cov)
		}
	}
}

// Image copies the canvas into an image, one pixel per dot.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.cols, c.rows))
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			r, g, b := c.px[y*c.cols+x].Clamped().RGB255()
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 0xff})
		}
	}
	return img
}

// coverage maps a signed distance inside an edge to a 0..1 weight across
// one dot.
func (c *Canvas) coverage(inside float64) float64 {
	v := inside/c.dot + 0.5
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 1
	}
	return v
}

func shadowFalloff(outside, blur float64) float64 {
	if outside <= 0 {
		return 1
	}
	if outside >= blur {
		return 0
	}
	f := 1 - outside/blur
	return f * f
}

func (c *Canvas) blend(x, y int, col sky.Color, weight float64) {
	a := col.A * weight
	if a <= 0 {
		return
	}
	i := y*c.cols + x
	if a >= 1 {
		c.px[i] = col.Color
		return
	}
	c.px[i] = c.px[i].BlendRgb(col.Color, a)
}

func (c *Canvas) centre(i int) float64 {
	return (float64(i) + 0.5) * c.dot
}

// span converts a virtual pixel box into inclusive dot indices clipped to the
// grid. An empty intersection yields x0 > x1.
func (c *Canvas) span(x0, y0, x1, y1 float64) (int, int, int, int) {
	ix0 := max(int(math.Floor(x0/c.dot)), 0)
	iy0 := max(int(math.Floor(y0/c.dot)), 0)
	ix1 := min(int(math.Floor(x1/c.dot)), c.cols-1)
	iy1 := min(int(math.Floor(y1/c.dot)), c.rows-1)
	return ix0, iy0, ix1, iy1
}
