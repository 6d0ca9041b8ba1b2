package pipeline

import (
	"reflect"
	"testing"

	"github.com/dotnetdave/ai-usage-badges/pkg/badge"
	"github.com/dotnetdave/ai-usage-badges/pkg/config"
	"github.com/dotnetdave/ai-usage-badges/pkg/errors"
)

func TestParseScales(t *testing.T) {
	tests := []struct {
		input string
		want  map[string]float64
	}{
		{"", map[string]float64{"1x": 1.0, "2x": 2.0}},
		{"1x", map[string]float64{"1x": 1.0}},
		{"1x,2x,3x", map[string]float64{"1x": 1.0, "2x": 2.0, "3x": 3.0}},
		{"0.5x, 1.5x", map[string]float64{"0.5x": 0.5, "1.5x": 1.5}},
	}

	for _, tt := range tests {
		got, err := ParseScales(tt.input)
		if err != nil {
			t.Errorf("ParseScales(%q) error: %v", tt.input, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseScales(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseScalesErrors(t *testing.T) {
	for _, bad := range []string{"2", "x", "2x2", "two-x", "0x", "-1x", "9x", "1x,,2x"} {
		if _, err := ParseScales(bad); !errors.Is(err, errors.ErrCodeInvalidScale) {
			t.Errorf("ParseScales(%q) error = %v, want INVALID_SCALE", bad, err)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("ValidateFormats(svg,png) error: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "webp"}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ValidateFormats(webp) error = %v, want INVALID_FORMAT", err)
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{OutDir: "dist"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}

	if !opts.wantsFormat(FormatSVG) || !opts.wantsFormat(FormatPNG) {
		t.Errorf("default formats = %v", opts.Formats)
	}
	if opts.Renderer != "auto" {
		t.Errorf("Renderer = %q, want auto", opts.Renderer)
	}
	if opts.Style.Height != 20 {
		t.Errorf("default style height = %d, want 20", opts.Style.Height)
	}
	if len(opts.Badges) != 9 {
		t.Errorf("default badges = %d, want 9", len(opts.Badges))
	}
	if !reflect.DeepEqual(opts.Scales, DefaultScales()) {
		t.Errorf("Scales = %v, want defaults", opts.Scales)
	}
}

func TestOptionsValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"empty out dir", Options{}, errors.ErrCodeInvalidPath},
		{"bad format", Options{OutDir: "d", Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad scale", Options{OutDir: "d", Scales: map[string]float64{"0x": 0}}, errors.ErrCodeInvalidScale},
		{"bad style", Options{OutDir: "d", Style: config.Style{LeftWidth: -1, Height: 20, CharWidth: 7}}, errors.ErrCodeInvalidConfig},
		{"bad badges", Options{OutDir: "d", Badges: []badge.Badge{{Label: "X", Slug: ""}}}, errors.ErrCodeInvalidLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestSortedScaleLabels(t *testing.T) {
	scales := map[string]float64{"4x": 4, "1x": 1, "2x": 2, "0.5x": 0.5}
	got := sortedScaleLabels(scales)
	want := []string{"0.5x", "1x", "2x", "4x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sortedScaleLabels() = %v, want %v", got, want)
	}
}

func TestResultSummary(t *testing.T) {
	r := &Result{Stats: Stats{SVGCount: 9}}
	if got := r.Summary(); got != "9 SVGs" {
		t.Errorf("Summary() = %q", got)
	}

	r = &Result{
		Stats:        Stats{SVGCount: 9, PNGCount: 18},
		SpritePath:   "sprites/sprite.svg",
		ManifestPath: "badges/index.json",
	}
	if got := r.Summary(); got != "9 SVGs, 18 PNGs, sprite, manifest" {
		t.Errorf("Summary() = %q", got)
	}
}
