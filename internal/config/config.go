// Package config loads nightsky settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/litescript/nightsky/internal/sky"
)

// Default values for host settings.
const (
	DefaultResizeDebounce = 80 * time.Millisecond
	DefaultFrameInterval  = 33 * time.Millisecond
	DefaultDotSize        = 6.0
	DefaultWindowWidth    = 1280
	DefaultWindowHeight   = 800
	DefaultWindowTitle    = "nightsky"
)

// Config is the complete configuration file.
type Config struct {
	Scene    sky.Config     `yaml:"scene"`
	Resize   ResizeConfig   `yaml:"resize"`
	Terminal TerminalConfig `yaml:"terminal"`
	Window   WindowConfig   `yaml:"window"`
}

// ResizeConfig controls how resize bursts are coalesced.
type ResizeConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// TerminalConfig controls the terminal host.
type TerminalConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	// DotSize is how many scene pixels one half-cell stands for.
	DotSize float64 `yaml:"dot_size"`
}

// WindowConfig controls the window host.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() Config {
	return Config{
		Scene: sky.DefaultConfig(),
		Resize: ResizeConfig{
			Debounce: DefaultResizeDebounce,
		},
		Terminal: TerminalConfig{
			FrameInterval: DefaultFrameInterval,
			DotSize:       DefaultDotSize,
		},
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
	}
}

// ValidationError reports a field with an unusable value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LoadConfig reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateConfig checks every field and joins all problems found.
func ValidateConfig(cfg *Config) error {
	var errs []error
	check := func(ok bool, field, msg string) {
		if !ok {
			errs = append(errs, ValidationError{Field: field, Message: msg})
		}
	}

	s := cfg.Scene
	check(s.StarCount >= 0, "scene.star_count", "must be >= 0")
	check(s.StarRadiusMin > 0, "scene.star_radius_min", "must be > 0")
	check(s.StarRadiusMin <= s.StarRadiusMax, "scene.star_radius_max", "must be >= star_radius_min")
	check(s.MeteorChance >= 0 && s.MeteorChance <= 1, "scene.meteor_chance", "must be within [0, 1]")
	check(s.MaxMeteors >= 0, "scene.max_meteors", "must be >= 0")
	check(s.MeteorSpeedMin > 0, "scene.meteor_speed_min", "must be > 0")
	check(s.MeteorSpeedMin <= s.MeteorSpeedMax, "scene.meteor_speed_max", "must be >= meteor_speed_min")
	check(s.MeteorLength > 0, "scene.meteor_length", "must be > 0")
	check(s.MeteorBrightness >= 0 && s.MeteorBrightness <= 1, "scene.meteor_brightness", "must be within [0, 1]")
	check(s.ExitProgress > 0, "scene.exit_progress", "must be > 0")

	check(cfg.Resize.Debounce >= 0, "resize.debounce", "must be >= 0")
	check(cfg.Terminal.FrameInterval > 0, "terminal.frame_interval", "must be > 0")
	check(cfg.Terminal.DotSize > 0, "terminal.dot_size", "must be > 0")
	check(cfg.Window.Width > 0, "window.width", "must be > 0")
	check(cfg.Window.Height > 0, "window.height", "must be > 0")

	return errors.Join(errs...)
}
