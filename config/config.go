// Package config loads the TOML configuration file and builds the
// palette and layout the engine runs with. Every field has a sensible
// default; an absent file yields a complete working configuration.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/beatglow/constants"
	"github.com/lixenwraith/beatglow/layout"
	"github.com/lixenwraith/beatglow/palette"
	"github.com/lixenwraith/beatglow/vmath"
)

// Config is the full file schema
type Config struct {
	// Palette is the ordered list of base colours as "#RRGGBB" hex
	Palette []string `toml:"palette"`

	// TransitionTime is attached to every panel frame, tenths of a
	// second
	TransitionTime int `toml:"transition_time"`

	// FrameMs is the engine step cadence in milliseconds
	FrameMs int `toml:"frame_ms"`

	Layout Layout `toml:"layout"`
	Audio  Audio  `toml:"audio"`
}

// Layout describes the panel arrangement. Explicit panels take
// precedence over the generated grid.
type Layout struct {
	Rows    int     `toml:"rows"`
	Cols    int     `toml:"cols"`
	Spacing float64 `toml:"spacing"`
	Panels  []Panel `toml:"panels"`
}

// Panel is one explicitly placed panel
type Panel struct {
	ID int     `toml:"id"`
	X  float64 `toml:"x"`
	Y  float64 `toml:"y"`
}

// Audio holds input stream settings
type Audio struct {
	SampleRate int `toml:"sample_rate"`
}

// Default returns the configuration used when no file is given: a 3x3
// staggered grid and a warm-to-cool six-colour palette
func Default() Config {
	return Config{
		Palette: []string{
			"#ff0000", "#ff8000", "#ffff00",
			"#00ff00", "#0080ff", "#8000ff",
		},
		TransitionTime: constants.DefaultTransitionTime,
		FrameMs:        int(constants.DefaultFrameInterval.Milliseconds()),
		Layout: Layout{
			Rows:    3,
			Cols:    3,
			Spacing: constants.AdjacentPanelDistance,
		},
		Audio: Audio{
			SampleRate: constants.DefaultSampleRate,
		},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// BuildPalette parses the configured hex colours
func (c Config) BuildPalette() (palette.Palette, error) {
	pal := make(palette.Palette, 0, len(c.Palette))
	for _, hex := range c.Palette {
		col, err := palette.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", hex, err)
		}
		pal = append(pal, col)
	}
	return pal, nil
}

// BuildLayout assembles and validates the panel layout
func (c Config) BuildLayout() (layout.Layout, error) {
	var lay layout.Layout
	if len(c.Layout.Panels) > 0 {
		lay = make(layout.Layout, 0, len(c.Layout.Panels))
		for _, p := range c.Layout.Panels {
			lay = append(lay, layout.Panel{
				ID:       p.ID,
				Centroid: vmath.Vec2{X: p.X, Y: p.Y},
			})
		}
	} else {
		lay = layout.Grid(c.Layout.Rows, c.Layout.Cols, c.Layout.Spacing)
	}
	if err := lay.Validate(); err != nil {
		return nil, err
	}
	return lay, nil
}
