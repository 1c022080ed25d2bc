package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/neuralfield/parameter"
	"github.com/lixenwraith/neuralfield/render"
	"github.com/lixenwraith/neuralfield/scene"
)

// DefaultPath is the config file looked up in the working directory
const DefaultPath = "neuralfield.toml"

// Theme values
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Limits accepted by Validate
const (
	MinFPS       = 1
	MaxFPS       = 240
	MaxParticles = 20000
)

// Config holds page and backdrop settings
type Config struct {
	Theme       string `toml:"theme"`
	FPS         int    `toml:"fps"`
	Particles   int    `toml:"particles"`
	MaxSegments int    `toml:"max_segments"`
	Drift       string `toml:"drift"`
	Seed        uint64 `toml:"seed"`
	Hint        bool   `toml:"hint"`
	Color       string `toml:"color"` // "auto", "256", "truecolor"
	Blend       string `toml:"blend"` // "alpha", "add", "max", "screen"
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Theme:       ThemeAuto,
		FPS:         int(time.Second / parameter.FrameUpdateInterval),
		Particles:   parameter.ParticleCount,
		MaxSegments: parameter.GraphMaxSegments,
		Drift:       scene.DriftOscillate.String(),
		Hint:        true,
		Color:       "auto",
		Blend:       render.BlendNameAlpha,
	}
}

// Load reads path over the defaults
// A missing file is not an error and yields Default()
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML over the defaults and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate reports every invalid field
func (c Config) Validate() error {
	var errs []error
	switch c.Theme {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		errs = append(errs, fmt.Errorf("theme %q: want auto, dark or light", c.Theme))
	}
	if c.FPS < MinFPS || c.FPS > MaxFPS {
		errs = append(errs, fmt.Errorf("fps %d: want %d..%d", c.FPS, MinFPS, MaxFPS))
	}
	if c.Particles < 1 || c.Particles > MaxParticles {
		errs = append(errs, fmt.Errorf("particles %d: want 1..%d", c.Particles, MaxParticles))
	}
	if c.MaxSegments < 1 {
		errs = append(errs, fmt.Errorf("max_segments %d: want at least 1", c.MaxSegments))
	}
	if _, ok := scene.ParseDriftMode(c.Drift); !ok {
		errs = append(errs, fmt.Errorf("drift %q: want oscillate or accumulate", c.Drift))
	}
	switch c.Color {
	case "", "auto", "256", "truecolor":
	default:
		errs = append(errs, fmt.Errorf("color %q: want auto, 256 or truecolor", c.Color))
	}
	if _, ok := render.ParseBlend(c.Blend); !ok {
		errs = append(errs, fmt.Errorf("blend %q: want alpha, add, max or screen", c.Blend))
	}
	return errors.Join(errs...)
}

// FrameInterval converts FPS to the loop interval
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FPS)
}

// DriftMode returns the parsed drift mode, oscillate for unknown values
func (c Config) DriftMode() scene.DriftMode {
	m, _ := scene.ParseDriftMode(c.Drift)
	return m
}

// BlendMode returns the parsed glyph blend, alpha for unknown values
func (c Config) BlendMode() render.BlendMode {
	m, _ := render.ParseBlend(c.Blend)
	return m
}

// Marshal encodes the config as TOML
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// DetectDark reports whether the terminal background is dark
// It writes a query to the terminal and reads the reply, so it must run before a screen owns the tty
var DetectDark = termenv.HasDarkBackground

// ResolveDark resolves the theme flag, mapping "auto" to termDark
func (c Config) ResolveDark(termDark bool) bool {
	switch c.Theme {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	default:
		return termDark
	}
}
