// Package raster converts badge SVG documents to PNG.
//
// Two renderers are provided: RSVG shells out to rsvg-convert for faithful
// output, and Native approximates the badge look in pure Go for machines
// without librsvg. In auto mode the external renderer is preferred and the
// native renderer stands by as a per-badge fallback.
package raster

import (
	"context"

	"github.com/dotnetdave/ai-usage-badges/pkg/errors"
	"github.com/dotnetdave/ai-usage-badges/pkg/render/svg"
)

// Renderer mode names accepted on the command line.
const (
	ModeAuto   = "auto"
	ModeRSVG   = "rsvg"
	ModeNative = "native"
)

// MaxScale bounds raster scale factors to keep output sizes sane.
const MaxScale = 8.0

// Renderer rasterizes a badge document at a given scale factor.
type Renderer interface {
	// Name identifies the renderer in logs and cache keys.
	Name() string
	// Render returns PNG bytes for the document scaled by scale.
	Render(ctx context.Context, doc svg.Document, scale float64) ([]byte, error)
}

// Select resolves a renderer mode to a primary renderer and an optional
// fallback. The fallback is non-nil only in auto mode when the external
// renderer is present: a per-badge rsvg failure then degrades to the native
// renderer instead of failing the run.
func Select(mode string) (primary, fallback Renderer, err error) {
	switch mode {
	case ModeNative:
		return NewNative(), nil, nil
	case ModeRSVG:
		r := &RSVG{}
		if !r.Available() {
			return nil, nil, errors.New(errors.ErrCodeRendererNotFound,
				"rsvg-convert not found on PATH (install librsvg: brew install librsvg / apt install librsvg2-bin)")
		}
		return r, nil, nil
	case ModeAuto, "":
		r := &RSVG{}
		if r.Available() {
			return r, NewNative(), nil
		}
		return NewNative(), nil, nil
	default:
		return nil, nil, errors.New(errors.ErrCodeInvalidInput,
			"unknown renderer mode: %s (must be 'auto', 'rsvg', or 'native')", mode)
	}
}

// ValidateScale checks a raster scale factor.
func ValidateScale(scale float64) error {
	if scale <= 0 || scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidScale, "scale factor %g out of range (0, %g]", scale, MaxScale)
	}
	return nil
}
