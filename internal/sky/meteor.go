package sky

import (
	"math"
	"math/rand/v2"
)

// Edge is the side of the viewport a meteor enters from.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

const (
	meteorPadding         = 20.0 // px outside the edge
	meteorAngleJitter     = 0.6  // rad either side of 45°
	meteorTailFactor      = 0.5
	meteorReferenceHeight = 800.0
	meteorHeadScale       = 0.8

	// Meteors whose direction is shorter than this are dropped.
	minMeteorLength = 0.1
)

// Meteor is a streak travelling from Start towards End and beyond.
type Meteor struct {
	StartX, StartY float64
	EndX, EndY     float64
	Progress       float64 // 0 at start, 1 at end
	Speed          float64 // progress per frame
	Width          float64 // px
	Edge           Edge
}

// Head returns the current position of the meteor head.
func (m Meteor) Head() (x, y float64) {
	return m.StartX + (m.EndX-m.StartX)*m.Progress,
		m.StartY + (m.EndY-m.StartY)*m.Progress
}

// Length returns the length of the start to end vector.
func (m Meteor) Length() float64 {
	return math.Hypot(m.EndX-m.StartX, m.EndY-m.StartY)
}

// Degenerate reports whether the meteor has no usable direction.
func (m Meteor) Degenerate() bool {
	return m.Length() < minMeteorLength
}

func newMeteor(rng *rand.Rand, cfg Config, vp Viewport) Meteor {
	edge := Edge(rng.IntN(4))
	angle := math.Pi/4 + between(rng, -meteorAngleJitter, meteorAngleJitter)
	dx := math.Cos(angle) * vp.W * cfg.MeteorLength
	dy := math.Sin(angle) * vp.W * cfg.MeteorLength

	m := Meteor{
		Speed: between(rng, cfg.MeteorSpeedMin, cfg.MeteorSpeedMax),
		Width: between(rng, 1.2, 2.5),
		Edge:  edge,
	}

	switch edge {
	case EdgeLeft:
		m.StartX = -meteorPadding
		m.StartY = between(rng, meteorPadding, vp.H-meteorPadding)
	case EdgeTop:
		m.StartX = between(rng, meteorPadding, vp.W-meteorPadding)
		m.StartY = -meteorPadding
	case EdgeRight:
		m.StartX = vp.W + meteorPadding
		m.StartY = between(rng, meteorPadding, vp.H-meteorPadding)
		dx, dy = -dx, -dy
	case EdgeBottom:
		m.StartX = between(rng, meteorPadding, vp.W-meteorPadding)
		m.StartY = vp.H + meteorPadding
		dx, dy = -dx, -dy
	}
	m.EndX = m.StartX + dx
	m.EndY = m.StartY + dy

	return m
}

// meteorTrail returns the trail gradient for the given brightness.
func meteorTrail(brightness float64) Gradient {
	return Gradient{
		{0, RGBA(255, 250, 240, 0)},
		{0.4, RGBA(255, 240, 210, brightness*0.5)},
		{1, RGBA(255, 255, 250, brightness)},
	}
}

// drawMeteors renders and advances every meteor, pruning in place. It walks
// the slice back to front so removals never skip an element, and returns the
// surviving meteors in their original order.
func drawMeteors(c Canvas, vp Viewport, cfg Config, meteors []Meteor) []Meteor {
	if len(meteors) == 0 {
		return meteors
	}

	trail := meteorTrail(cfg.MeteorBrightness)
	head := RGBA(255, 255, 250, cfg.MeteorBrightness)
	lineScale := vp.H / meteorReferenceHeight

	for i := len(meteors) - 1; i >= 0; i-- {
		m := &meteors[i]
		if m.Degenerate() {
			meteors = removeMeteor(meteors, i)
			continue
		}

		curX, curY := m.Head()
		dirX := m.EndX - m.StartX
		dirY := m.EndY - m.StartY
		tailX := curX - dirX*meteorTailFactor
		tailY := curY - dirY*meteorTailFactor

		c.StrokeLine(tailX, tailY, curX, curY, m.Width*lineScale, trail)
		c.FillCircle(curX, curY, m.Width*meteorHeadScale, head)

		m.Progress += m.Speed
		if m.Progress > cfg.ExitProgress {
			meteors = removeMeteor(meteors, i)
		}
	}
	return meteors
}

func removeMeteor(meteors []Meteor, i int) []Meteor {
	copy(meteors[i:], meteors[i+1:])
	return meteors[:len(meteors)-1]
}
