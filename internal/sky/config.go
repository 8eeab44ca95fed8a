package sky

// Config holds the tunable parameters of a scene.
type Config struct {
	StarCount     int     `yaml:"star_count"`
	StarRadiusMin float64 `yaml:"star_radius_min"` // px at reference height
	StarRadiusMax float64 `yaml:"star_radius_max"`

	MeteorChance     float64 `yaml:"meteor_chance"` // per frame
	MaxMeteors       int     `yaml:"max_meteors"`
	MeteorSpeedMin   float64 `yaml:"meteor_speed_min"` // progress per frame
	MeteorSpeedMax   float64 `yaml:"meteor_speed_max"`
	MeteorLength     float64 `yaml:"meteor_length"` // fraction of viewport width
	MeteorBrightness float64 `yaml:"meteor_brightness"`

	// ExitProgress is the progress past which a meteor is dropped. Values
	// above 1 let the streak travel beyond its end point and fade out.
	ExitProgress float64 `yaml:"exit_progress"`
}

// DefaultConfig returns the stock night sky.
func DefaultConfig() Config {
	return Config{
		StarCount:        130,
		StarRadiusMin:    0.8,
		StarRadiusMax:    2.6,
		MeteorChance:     0.012,
		MaxMeteors:       3,
		MeteorSpeedMin:   0.005,
		MeteorSpeedMax:   0.015,
		MeteorLength:     0.15,
		MeteorBrightness: 0.9,
		ExitProgress:     1.5,
	}
}
