// Package config holds the badge style definition and optional TOML overrides.
//
// The built-in style reproduces the canonical badge look: a 44px gradient
// chip with a sparkle and "AI" caption on the left, and a dark label segment
// on the right. A config file can adjust dimensions, palette, and the font
// stack, and can replace the badge catalog entirely:
//
//	[style]
//	height = 20
//	padding = 10
//
//	[style.colors]
//	gradient_start = "#7B5CF9"
//	gradient_end = "#E549FF"
//
//	[[badges]]
//	label = "AI Generated"
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dotnetdave/ai-usage-badges/pkg/badge"
	"github.com/dotnetdave/ai-usage-badges/pkg/errors"
)

// Colors is the badge palette.
type Colors struct {
	RightFill     string `toml:"right_fill"`     // label segment background
	RightText     string `toml:"right_text"`     // label text
	GradientStart string `toml:"gradient_start"` // chip gradient, top-left stop
	GradientEnd   string `toml:"gradient_end"`   // chip gradient, bottom-right stop
	Outline       string `toml:"outline"`        // translucent border around both segments
	ChipText      string `toml:"chip_text"`      // "AI" caption
	Sparkle       string `toml:"sparkle"`        // sparkle glyph fill
}

// Style controls badge geometry and appearance.
type Style struct {
	LeftWidth  int     `toml:"left_width"` // gradient chip width
	Height     int     `toml:"height"`
	Padding    int     `toml:"padding"`    // horizontal padding around the label
	CharWidth  float64 `toml:"char_width"` // rough average glyph width for the font stack
	FontFamily string  `toml:"font_family"`
	Colors     Colors  `toml:"colors"`
}

// DefaultStyle returns the canonical badge style.
func DefaultStyle() Style {
	return Style{
		LeftWidth:  44,
		Height:     20,
		Padding:    10,
		CharWidth:  7.0,
		FontFamily: `Inter, 'Segoe UI', 'Helvetica Neue', Arial, sans-serif`,
		Colors: Colors{
			RightFill:     "#111827",
			RightText:     "#E5E7EB",
			GradientStart: "#7B5CF9",
			GradientEnd:   "#E549FF",
			Outline:       "rgba(255,255,255,0.18)",
			ChipText:      "#FFFFFF",
			Sparkle:       "#FDF7FF",
		},
	}
}

// Validate checks the style for usable dimensions and parseable colors.
func (s Style) Validate() error {
	if s.LeftWidth <= 0 || s.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "style dimensions must be positive (left_width=%d, height=%d)", s.LeftWidth, s.Height)
	}
	if s.Padding < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "style padding cannot be negative")
	}
	if s.CharWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "style char_width must be positive")
	}
	// Gradient stops must be plain hex so the native renderer can interpolate.
	if err := errors.ValidateHexColor(s.Colors.GradientStart); err != nil {
		return err
	}
	if err := errors.ValidateHexColor(s.Colors.GradientEnd); err != nil {
		return err
	}
	if err := errors.ValidateHexColor(s.Colors.RightFill); err != nil {
		return err
	}
	for _, c := range []string{s.Colors.RightText, s.Colors.Outline, s.Colors.ChipText, s.Colors.Sparkle} {
		if err := errors.ValidateColor(c); err != nil {
			return err
		}
	}
	return nil
}

// badgeEntry is a single [[badges]] table in the config file.
type badgeEntry struct {
	Label string `toml:"label"`
}

// file is the on-disk TOML layout. Style fields are pointers so unset values
// fall through to the defaults.
type file struct {
	Style  styleOverride `toml:"style"`
	Badges []badgeEntry  `toml:"badges"`
}

type styleOverride struct {
	LeftWidth  *int           `toml:"left_width"`
	Height     *int           `toml:"height"`
	Padding    *int           `toml:"padding"`
	CharWidth  *float64       `toml:"char_width"`
	FontFamily *string        `toml:"font_family"`
	Colors     colorsOverride `toml:"colors"`
}

type colorsOverride struct {
	RightFill     *string `toml:"right_fill"`
	RightText     *string `toml:"right_text"`
	GradientStart *string `toml:"gradient_start"`
	GradientEnd   *string `toml:"gradient_end"`
	Outline       *string `toml:"outline"`
	ChipText      *string `toml:"chip_text"`
	Sparkle       *string `toml:"sparkle"`
}

// Config is the merged result of defaults plus an optional config file.
type Config struct {
	Style  Style
	Badges []badge.Badge
}

// Default returns the built-in style and catalog.
func Default() Config {
	return Config{Style: DefaultStyle(), Badges: badge.Catalog()}
}

// Load reads a TOML config file and merges it over the defaults.
// Unknown keys are rejected to catch typos early. An empty or absent
// [[badges]] list keeps the built-in catalog.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML config bytes and merges them over the defaults.
func Parse(data []byte) (Config, error) {
	var f file
	meta, err := toml.Decode(string(data), &f)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key: %s", undecoded[0].String())
	}

	cfg := Default()
	applyStyle(&cfg.Style, f.Style)
	if err := cfg.Style.Validate(); err != nil {
		return Config{}, err
	}

	if len(f.Badges) > 0 {
		badges := make([]badge.Badge, 0, len(f.Badges))
		for _, entry := range f.Badges {
			b, err := badge.New(entry.Label)
			if err != nil {
				return Config{}, err
			}
			badges = append(badges, b)
		}
		if err := badge.Validate(badges); err != nil {
			return Config{}, err
		}
		cfg.Badges = badges
	}

	return cfg, nil
}

func applyStyle(s *Style, o styleOverride) {
	if o.LeftWidth != nil {
		s.LeftWidth = *o.LeftWidth
	}
	if o.Height != nil {
		s.Height = *o.Height
	}
	if o.Padding != nil {
		s.Padding = *o.Padding
	}
	if o.CharWidth != nil {
		s.CharWidth = *o.CharWidth
	}
	if o.FontFamily != nil {
		s.FontFamily = *o.FontFamily
	}
	c := &s.Colors
	oc := o.Colors
	if oc.RightFill != nil {
		c.RightFill = *oc.RightFill
	}
	if oc.RightText != nil {
		c.RightText = *oc.RightText
	}
	if oc.GradientStart != nil {
		c.GradientStart = *oc.GradientStart
	}
	if oc.GradientEnd != nil {
		c.GradientEnd = *oc.GradientEnd
	}
	if oc.Outline != nil {
		c.Outline = *oc.Outline
	}
	if oc.ChipText != nil {
		c.ChipText = *oc.ChipText
	}
	if oc.Sparkle != nil {
		c.Sparkle = *oc.Sparkle
	}
}
