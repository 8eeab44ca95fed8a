package sky

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScene_StartsIdle(t *testing.T) {
	s := NewSeededScene(DefaultConfig(), 1)

	assert.Equal(t, StateIdle, s.State())
	assert.Empty(t, s.Stars())

	rec := &recorder{}
	assert.False(t, s.Frame(time.Second, rec), "idle scene should not draw")
	assert.Empty(t, rec.ops)
}

func TestResize_StartsRunning(t *testing.T) {
	s := NewSeededScene(DefaultConfig(), 1)
	s.Resize(1280, 800)

	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, Viewport{W: 1280, H: 800}, s.Viewport())
}

func TestResize_ZeroSizeStaysIdle(t *testing.T) {
	s := NewSeededScene(DefaultConfig(), 1)
	s.Resize(0, 600)

	assert.Equal(t, StateIdle, s.State())
	assert.False(t, s.Frame(0, &recorder{}))
}

func TestResize_ZeroSizeAfterRunningSkipsFrames(t *testing.T) {
	s := NewSeededScene(DefaultConfig(), 1)
	s.Resize(800, 600)
	s.Resize(0, 0)

	assert.Equal(t, StateRunning, s.State())
	rec := &recorder{}
	assert.False(t, s.Frame(0, rec))
	assert.Empty(t, rec.ops)

	s.Resize(640, 480)
	assert.True(t, s.Frame(0, rec))
}

func TestResize_RebuildsStarsAndClearsMeteors(t *testing.T) {
	s := NewSeededScene(DefaultConfig(), 7)
	s.Resize(1024, 768)
	s.meteors = append(s.meteors,
		Meteor{StartX: 0, StartY: 0, EndX: 100, EndY: 100, Speed: 0.01},
		Meteor{StartX: 10, StartY: 0, EndX: 110, EndY: 100, Speed: 0.01},
	)
	before := s.Stars()

	s.Resize(1920, 1080)

	assert.Len(t, s.Stars(), 130)
	assert.Empty(t, s.Meteors())
	assert.NotEqual(t, before, s.Stars(), "star field should be regenerated")
}

func TestResize_SameSizeTwice(t *testing.T) {
	s := NewSeededScene(DefaultConfig(), 3)

	s.Resize(800, 600)
	first := s.Stars()
	firstMoon := DefaultMoon.Resolve(s.Viewport())

	s.Resize(800, 600)
	second := s.Stars()
	secondMoon := DefaultMoon.Resolve(s.Viewport())

	require.Len(t, first, len(second))
	assert.Equal(t, firstMoon, secondMoon)
	assert.NotEqual(t, first, second, "positions are re-randomized")

	for _, stars := range [][]Star{first, second} {
		for _, st := range stars {
			assert.GreaterOrEqual(t, st.X, 0.0)
			assert.Less(t, st.X, 1.0)
			assert.GreaterOrEqual(t, st.Y, 0.0)
			assert.Less(t, st.Y, 1.0)
			assert.GreaterOrEqual(t, st.Radius, 0.8)
			assert.LessOrEqual(t, st.Radius, 2.6)
			assert.GreaterOrEqual(t, st.Base, 0.4)
			assert.LessOrEqual(t, st.Base, 1.0)
			assert.GreaterOrEqual(t, st.TwinkleSpeed, 0.003)
			assert.LessOrEqual(t, st.TwinkleSpeed, 0.018)
			assert.GreaterOrEqual(t, st.Phase, 0.0)
			assert.LessOrEqual(t, st.Phase, 2*math.Pi)
		}
	}
}

func TestSeededScene_Deterministic(t *testing.T) {
	a := NewSeededScene(DefaultConfig(), 42)
	b := NewSeededScene(DefaultConfig(), 42)
	a.Resize(800, 600)
	b.Resize(800, 600)

	assert.Equal(t, a.Stars(), b.Stars())
}

func TestFrame_PassOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MeteorChance = 0
	s := NewSeededScene(cfg, 1)
	s.Resize(800, 800)
	s.stars = []Star{
		{X: 0.1, Y: 0.1, Radius: 1, Base: 0.5},
		{X: 0.5, Y: 0.5, Radius: 2.5, Base: 0.95}, // glows
	}
	s.meteors = []Meteor{{StartX: 0, StartY: 0, EndX: 100, EndY: 100, Speed: 0.01, Width: 2}}

	rec := &recorder{}
	require.True(t, s.Frame(0, rec))

	want := []string{
		"clear",
		"gradient", "rect", // sky and haze
		"circle", "circle", "circle", "shadow", "circle", // moon
		"circle", "shadow", // stars
		"line", "circle", // meteor
	}
	assert.Equal(t, want, rec.kinds())
}

func TestFrame_MoonHaloShrinksInward(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StarCount = 0
	cfg.MeteorChance = 0
	s := NewSeededScene(cfg, 1)
	s.Resize(1000, 800)

	rec := &recorder{}
	require.True(t, s.Frame(0, rec))

	halos := rec.ops[3:6]
	assert.InDelta(t, 48+30*3*0.8, halos[0].r, 1e-9)
	assert.InDelta(t, 48+30*1*0.8, halos[2].r, 1e-9)
	assert.Greater(t, halos[0].fill.A, halos[2].fill.A, "outer layer is drawn with the larger alpha first")
	assert.InDelta(t, 800.0, halos[0].x, 1e-9)
	assert.InDelta(t, 144.0, halos[0].y, 1e-9)

	face := rec.ops[6]
	assert.Equal(t, "shadow", face.kind)
	assert.InDelta(t, 48.0, face.r, 1e-9)
}

func TestFrame_MeteorCountNeverExceedsMax(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MeteorChance = 1
	cfg.StarCount = 5
	s := NewSeededScene(cfg, 9)
	s.Resize(1280, 720)

	for i := 0; i < 2000; i++ {
		s.Frame(time.Duration(i)*16*time.Millisecond, &recorder{})
		require.LessOrEqual(t, len(s.Meteors()), cfg.MaxMeteors, "frame %d", i)
	}
	assert.Greater(t, s.Stats().Spawned, uint64(cfg.MaxMeteors), "meteors should be replaced as they exit")
}

func TestFrame_NoSpawnWithZeroChance(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MeteorChance = 0
	s := NewSeededScene(cfg, 9)
	s.Resize(1280, 720)

	for i := 0; i < 500; i++ {
		s.Frame(time.Duration(i)*time.Millisecond, &recorder{})
	}
	assert.Empty(t, s.Meteors())
	assert.Equal(t, uint64(500), s.Stats().Frames)
}

func TestStats(t *testing.T) {
	s := NewSeededScene(DefaultConfig(), 1)
	s.Resize(320, 200)

	st := s.Stats()
	assert.Equal(t, StateRunning, st.State)
	assert.Equal(t, 130, st.Stars)
	assert.Equal(t, 0, st.Meteors)
	assert.Equal(t, "running", st.State.String())
}
