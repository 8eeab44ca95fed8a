package sky

import (
	"math"
	"math/rand/v2"
)

const (
	// Star radii are authored against this viewport height.
	starReferenceHeight = 700.0

	twinkleAmplitude = 0.2
	twinkleOffset    = 0.25
	minBrightness    = 0.3
	maxBrightness    = 1.0

	// Stars brighter and larger than this get a glow pass.
	glowBrightness = 0.85
	glowRadius     = 1.5
	glowBlur       = 8.0
)

var (
	starColor = RGBA(255, 245, 230, 1)
	starGlow  = RGBA(255, 200, 170, 1)
)

// Star is a fixed point of light. Position is normalized to the viewport so
// the field keeps its layout across sizes.
type Star struct {
	X, Y         float64 // 0..1
	Radius       float64 // px at reference height
	Base         float64 // base brightness, 0.4..1
	TwinkleSpeed float64 // rad per ms
	Phase        float64 // rad
}

func newStar(rng *rand.Rand, cfg Config) Star {
	return Star{
		X:            rng.Float64(),
		Y:            rng.Float64(),
		Radius:       between(rng, cfg.StarRadiusMin, cfg.StarRadiusMax),
		Base:         between(rng, 0.4, 1.0),
		TwinkleSpeed: between(rng, 0.003, 0.018),
		Phase:        between(rng, 0, 2*math.Pi),
	}
}

// StarBrightness returns the twinkled brightness of s at ms milliseconds,
// always within [0.3, 1.0].
func StarBrightness(s Star, ms float64) float64 {
	twinkle := math.Sin(ms*s.TwinkleSpeed+s.Phase)*twinkleAmplitude + twinkleOffset
	return clamp(s.Base+twinkle, minBrightness, maxBrightness)
}

// drawStars paints every star at its twinkled brightness.
func drawStars(c Canvas, vp Viewport, stars []Star, ms float64) {
	scale := vp.H / starReferenceHeight
	for _, s := range stars {
		bright := StarBrightness(s, ms)
		x := s.X * vp.W
		y := s.Y * vp.H
		r := s.Radius * scale
		fill := starColor.WithAlpha(bright)

		if s.Base > glowBrightness && r > glowRadius {
			c.FillCircleShadow(x, y, r, fill, starGlow.WithAlpha(bright*0.5), glowBlur)
			continue
		}
		c.FillCircle(x, y, r, fill)
	}
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
