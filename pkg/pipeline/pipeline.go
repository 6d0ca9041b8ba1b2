// Package pipeline provides the core generation pipeline for the badge
// assets.
//
// This package implements the complete svg → raster → sprite → manifest
// sequence behind the CLI. Centralizing it keeps the command layer thin and
// gives every entry point the same defaults, caching, and logging.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. SVG: Build every badge document from the catalog and style
//  2. Raster: Rasterize each document to PNG at the requested scales
//  3. Sprite: Compose all badge bodies into one sprite sheet
//  4. Manifest: Write the JSON index describing the generated assets
//
// Only the raster stage can fail per badge; its failures degrade to skips so
// a machine without any renderer still produces the SVG assets.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{OutDir: "dist"}
//	result, err := runner.Execute(ctx, opts)
package pipeline

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dotnetdave/ai-usage-badges/pkg/badge"
	"github.com/dotnetdave/ai-usage-badges/pkg/config"
	"github.com/dotnetdave/ai-usage-badges/pkg/errors"
	"github.com/dotnetdave/ai-usage-badges/pkg/render/raster"
)

// =============================================================================
// Defaults
// =============================================================================

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
}

// DefaultScales are the raster exports produced when none are requested.
func DefaultScales() map[string]float64 {
	return map[string]float64{"1x": 1.0, "2x": 2.0}
}

// =============================================================================
// Options
// =============================================================================

// Options configures a pipeline run.
type Options struct {
	// OutDir is the root of the generated asset tree.
	OutDir string

	// Formats selects the outputs to write ("svg", "png").
	Formats []string

	// Scales maps scale labels to factors for raster exports
	// (e.g. "2x" -> 2.0). Empty means DefaultScales.
	Scales map[string]float64

	// Renderer selects the raster backend: auto, rsvg, or native.
	Renderer string

	// Sprite controls whether the sprite sheet is written.
	Sprite bool

	// Manifest controls whether index.json is written.
	Manifest bool

	// Style is the badge style; zero value means config.DefaultStyle.
	Style config.Style

	// Badges is the catalog to generate; empty means the built-in catalog.
	Badges []badge.Badge
}

// SetDefaults applies the standard full-output configuration.
func (o *Options) SetDefaults() {
	o.Formats = []string{FormatSVG, FormatPNG}
	o.Renderer = raster.ModeAuto
	o.Sprite = true
	o.Manifest = true
}

// ValidateAndSetDefaults validates the options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if err := errors.ValidateOutputDir(o.OutDir); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG, FormatPNG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if len(o.Scales) == 0 {
		o.Scales = DefaultScales()
	}
	for label, factor := range o.Scales {
		if err := raster.ValidateScale(factor); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidScale, err, "scale %q", label)
		}
	}
	if o.Renderer == "" {
		o.Renderer = raster.ModeAuto
	}
	if o.Style == (config.Style{}) {
		o.Style = config.DefaultStyle()
	}
	if err := o.Style.Validate(); err != nil {
		return err
	}
	if len(o.Badges) == 0 {
		o.Badges = badge.Catalog()
	}
	return badge.Validate(o.Badges)
}

// wantsFormat reports whether format f was requested.
func (o *Options) wantsFormat(f string) bool {
	for _, v := range o.Formats {
		if v == f {
			return true
		}
	}
	return false
}

// ValidateFormats checks that all requested formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if !ValidFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg' or 'png')", f)
		}
	}
	return nil
}

// ParseScales parses a comma-separated scale list ("1x,2x,3.5x") into a
// label -> factor map. An empty string yields the defaults.
func ParseScales(s string) (map[string]float64, error) {
	if s == "" {
		return DefaultScales(), nil
	}
	scales := make(map[string]float64)
	for _, part := range strings.Split(s, ",") {
		label := strings.TrimSpace(part)
		if !strings.HasSuffix(label, "x") {
			return nil, errors.New(errors.ErrCodeInvalidScale, "invalid scale %q (expected e.g. '2x')", label)
		}
		factor, err := strconv.ParseFloat(strings.TrimSuffix(label, "x"), 64)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidScale, "invalid scale %q (expected e.g. '2x')", label)
		}
		if err := raster.ValidateScale(factor); err != nil {
			return nil, err
		}
		scales[label] = factor
	}
	return scales, nil
}

// sortedScaleLabels returns scale labels ordered by factor, then name, so
// output and logs are deterministic.
func sortedScaleLabels(scales map[string]float64) []string {
	labels := make([]string, 0, len(scales))
	for label := range scales {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if scales[labels[i]] != scales[labels[j]] {
			return scales[labels[i]] < scales[labels[j]]
		}
		return labels[i] < labels[j]
	})
	return labels
}

// =============================================================================
// Result
// =============================================================================

// Stats captures per-stage timing and counters.
type Stats struct {
	SVGCount   int
	PNGCount   int
	CacheHits  int
	PNGSkipped int
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Stats Stats

	// SVGPaths lists the written badge SVGs in catalog order.
	SVGPaths []string

	// PNGPaths maps slug -> scale label -> written path (relative to OutDir).
	PNGPaths map[string]map[string]string

	// SpritePath is the sprite sheet location, empty when disabled.
	SpritePath string

	// ManifestPath is the index.json location, empty when disabled.
	ManifestPath string
}

// Summary returns a short human-readable description of the run.
func (r *Result) Summary() string {
	parts := []string{fmt.Sprintf("%d SVGs", r.Stats.SVGCount)}
	if r.Stats.PNGCount > 0 {
		parts = append(parts, fmt.Sprintf("%d PNGs", r.Stats.PNGCount))
	}
	if r.SpritePath != "" {
		parts = append(parts, "sprite")
	}
	if r.ManifestPath != "" {
		parts = append(parts, "manifest")
	}
	return strings.Join(parts, ", ")
}
