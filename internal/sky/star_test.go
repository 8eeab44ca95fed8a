package sky

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStarBrightness_Bounds(t *testing.T) {
	s := NewSeededScene(DefaultConfig(), 11)
	s.Resize(1600, 900)

	for _, st := range s.Stars() {
		for ms := 0.0; ms < 60_000; ms += 97 {
			b := StarBrightness(st, ms)
			if b < 0.3 || b > 1.0 {
				t.Fatalf("StarBrightness(%+v, %v) = %v, want within [0.3, 1.0]", st, ms, b)
			}
		}
	}
}

func TestStarBrightness_Clamping(t *testing.T) {
	tests := []struct {
		name string
		star Star
		ms   float64
		want float64
	}{
		// sin(π/2) = 1 → 0.4 + 0.2 + 0.25
		{"peak", Star{Base: 0.4, TwinkleSpeed: 1, Phase: math.Pi / 2}, 0, 0.85},
		// sin(-π/2) = -1 → 0.4 - 0.2 + 0.25
		{"trough", Star{Base: 0.4, TwinkleSpeed: 1, Phase: -math.Pi / 2}, 0, 0.45},
		{"clamped high", Star{Base: 0.9, TwinkleSpeed: 1, Phase: math.Pi / 2}, 0, 1.0},
		{"clamped low", Star{Base: -0.5, TwinkleSpeed: 1, Phase: 0}, 0, 0.3},
		{"time advances phase", Star{Base: 0.4, TwinkleSpeed: 0.01, Phase: 0}, 50 * math.Pi, 0.85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, StarBrightness(tt.star, tt.ms), 1e-9)
		})
	}
}

func TestDrawStars_ScalesWithViewport(t *testing.T) {
	stars := []Star{{X: 0.25, Y: 0.5, Radius: 2, Base: 0.5}}
	rec := &recorder{}

	drawStars(rec, Viewport{W: 400, H: 1400}, stars, 0)

	assert.Equal(t, []string{"circle"}, rec.kinds())
	assert.InDelta(t, 100.0, rec.ops[0].x, 1e-9)
	assert.InDelta(t, 700.0, rec.ops[0].y, 1e-9)
	assert.InDelta(t, 4.0, rec.ops[0].r, 1e-9)
}

func TestDrawStars_GlowThreshold(t *testing.T) {
	vp := Viewport{W: 700, H: 700}
	tests := []struct {
		name string
		star Star
		want string
	}{
		{"bright and large", Star{Radius: 2, Base: 0.9}, "shadow"},
		{"bright but small", Star{Radius: 1.5, Base: 0.9}, "circle"},
		{"large but dim", Star{Radius: 2.5, Base: 0.85}, "circle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			drawStars(rec, vp, []Star{tt.star}, 0)
			assert.Equal(t, []string{tt.want}, rec.kinds())
		})
	}
}

func TestDrawStars_DoesNotMutate(t *testing.T) {
	s := NewSeededScene(DefaultConfig(), 5)
	s.Resize(800, 600)
	before := s.Stars()

	for i := 0; i < 10; i++ {
		s.Frame(time.Duration(i)*time.Second, &recorder{})
	}
	assert.Equal(t, before, s.Stars())
}
