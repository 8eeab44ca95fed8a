package sky

// Moon describes the moon relative to the viewport.
type Moon struct {
	X, Y   float64 // fraction of width and height
	Radius float64 // px at reference height
	Glow   float64 // px at reference height
}

// DefaultMoon sits in the upper right.
var DefaultMoon = Moon{X: 0.8, Y: 0.18, Radius: 48, Glow: 30}

const (
	moonReferenceHeight = 800.0
	moonGlowLayers      = 3
	moonShadowBlur      = 30.0
)

var (
	skyGradient = Gradient{
		{0, Hex("#0a1030")},
		{0.45, Hex("#1a1f3a")},
		{0.75, Hex("#3b2c44")},
		{1, Hex("#6d4c5c")},
	}
	skyHaze = RGBA(70, 50, 80, 0.06)

	moonHalo    = RGBA(255, 220, 180, 1)
	moonFace    = Hex("#fbe9d2")
	moonShadow  = Hex("#ffd9b0")
	moonBlemish = RGBA(180, 140, 110, 0.3)
)

// MoonGeometry is the moon resolved against a viewport.
type MoonGeometry struct {
	X, Y   float64
	Radius float64
	Glow   float64
}

// Resolve scales the moon to vp.
func (m Moon) Resolve(vp Viewport) MoonGeometry {
	scale := vp.H / moonReferenceHeight
	return MoonGeometry{
		X:      m.X * vp.W,
		Y:      m.Y * vp.H,
		Radius: m.Radius * scale,
		Glow:   m.Glow * scale,
	}
}

func drawSky(c Canvas, vp Viewport) {
	c.FillGradient(skyGradient)
	c.FillRect(0, 0, vp.W, vp.H, skyHaze)
}

func drawMoon(c Canvas, vp Viewport, m Moon) {
	g := m.Resolve(vp)

	// Outermost halo first so the inner, denser layers stack on top.
	for i := moonGlowLayers; i > 0; i-- {
		alpha := 0.1 + float64(i)*0.06
		c.FillCircle(g.X, g.Y, g.Radius+g.Glow*float64(i)*0.8, moonHalo.WithAlpha(alpha))
	}

	c.FillCircleShadow(g.X, g.Y, g.Radius, moonFace, moonShadow, moonShadowBlur)
	c.FillCircle(g.X-g.Radius*0.2, g.Y-g.Radius*0.1, g.Radius*0.15, moonBlemish)
}
