// Package sky renders a looping night sky: a gradient backdrop, a glowing
// moon, twinkling stars and the occasional meteor.
//
// A Scene owns all animation state. Hosts size it with Resize and call Frame
// once per display frame with a Canvas to draw into.
package sky

import (
	"math/rand/v2"
	"time"
)

// Viewport is the drawable area in pixels.
type Viewport struct {
	W, H float64
}

// Valid reports whether the viewport has a drawable area.
func (v Viewport) Valid() bool {
	return v.W > 0 && v.H > 0
}

// State is the frame driver state.
type State int

const (
	// StateIdle means the scene has never been given a valid size.
	StateIdle State = iota
	// StateRunning means frames are being drawn.
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Scene is the animation context shared by every render pass.
// It is not safe for concurrent use.
type Scene struct {
	cfg  Config
	rng  *rand.Rand
	moon Moon

	state    State
	viewport Viewport
	stars    []Star
	meteors  []Meteor

	frames  uint64
	spawned uint64
}

// NewScene creates an idle scene drawing its randomness from rng.
// A nil rng seeds one from the runtime source.
func NewScene(cfg Config, rng *rand.Rand) *Scene {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Scene{
		cfg:  cfg,
		rng:  rng,
		moon: DefaultMoon,
	}
}

// NewSeededScene creates a scene with a deterministic PCG source.
func NewSeededScene(cfg Config, seed uint64) *Scene {
	return NewScene(cfg, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Resize sets the viewport, regenerates the whole star field and drops every
// meteor in flight. The first valid size starts the frame driver.
func (s *Scene) Resize(w, h float64) {
	s.viewport = Viewport{W: w, H: h}

	s.stars = s.stars[:0]
	for i := 0; i < s.cfg.StarCount; i++ {
		s.stars = append(s.stars, newStar(s.rng, s.cfg))
	}
	s.meteors = s.meteors[:0]

	if s.state == StateIdle && s.viewport.Valid() {
		s.state = StateRunning
	}
}

// Frame draws one frame at timestamp ts (time since the animation began)
// and advances the meteors. It reports false, drawing nothing, while the
// scene is idle or the viewport is empty.
func (s *Scene) Frame(ts time.Duration, c Canvas) bool {
	if s.state != StateRunning || !s.viewport.Valid() || c == nil {
		return false
	}

	ms := float64(ts) / float64(time.Millisecond)

	c.Clear()
	drawSky(c, s.viewport)
	drawMoon(c, s.viewport, s.moon)
	drawStars(c, s.viewport, s.stars, ms)
	s.maybeSpawn()
	s.meteors = drawMeteors(c, s.viewport, s.cfg, s.meteors)

	s.frames++
	return true
}

func (s *Scene) maybeSpawn() {
	if s.rng.Float64() >= s.cfg.MeteorChance || len(s.meteors) >= s.cfg.MaxMeteors {
		return
	}
	s.meteors = append(s.meteors, newMeteor(s.rng, s.cfg, s.viewport))
	s.spawned++
}

// State returns the frame driver state.
func (s *Scene) State() State { return s.state }

// Viewport returns the current viewport.
func (s *Scene) Viewport() Viewport { return s.viewport }

// Config returns the scene configuration.
func (s *Scene) Config() Config { return s.cfg }

// Stars returns a copy of the star field.
func (s *Scene) Stars() []Star {
	return append([]Star(nil), s.stars...)
}

// Meteors returns a copy of the meteors in flight.
func (s *Scene) Meteors() []Meteor {
	return append([]Meteor(nil), s.meteors...)
}

// Stats is a point-in-time summary of the scene.
type Stats struct {
	State    State
	Viewport Viewport
	Stars    int
	Meteors  int
	Frames   uint64
	Spawned  uint64
}

// Stats returns a summary of the scene.
func (s *Scene) Stats() Stats {
	return Stats{
		State:    s.state,
		Viewport: s.viewport,
		Stars:    len(s.stars),
		Meteors:  len(s.meteors),
		Frames:   s.frames,
		Spawned:  s.spawned,
	}
}
