package raster

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"github.com/dotnetdave/ai-usage-badges/pkg/badge"
	"github.com/dotnetdave/ai-usage-badges/pkg/config"
	"github.com/dotnetdave/ai-usage-badges/pkg/errors"
	"github.com/dotnetdave/ai-usage-badges/pkg/render/svg"
)

func TestValidateScale(t *testing.T) {
	for _, scale := range []float64{0.5, 1, 2, 8} {
		if err := ValidateScale(scale); err != nil {
			t.Errorf("ValidateScale(%g) error: %v", scale, err)
		}
	}
	for _, scale := range []float64{0, -1, 8.1, 100} {
		if err := ValidateScale(scale); !errors.Is(err, errors.ErrCodeInvalidScale) {
			t.Errorf("ValidateScale(%g) error = %v, want INVALID_SCALE", scale, err)
		}
	}
}

func TestSelect(t *testing.T) {
	primary, _, err := Select(ModeNative)
	if err != nil {
		t.Fatalf("Select(native) error: %v", err)
	}
	if primary.Name() != "native" {
		t.Errorf("primary = %s, want native", primary.Name())
	}

	if _, _, err := Select("cairo"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Select(cairo) error = %v, want INVALID_INPUT", err)
	}

	// Auto always yields a usable primary, whether or not rsvg is installed.
	primary, fallback, err := Select(ModeAuto)
	if err != nil {
		t.Fatalf("Select(auto) error: %v", err)
	}
	if primary == nil {
		t.Fatal("Select(auto) returned nil primary")
	}
	if primary.Name() == "rsvg" && fallback == nil {
		t.Error("auto mode with rsvg primary should carry a native fallback")
	}
	if primary.Name() == "native" && fallback != nil {
		t.Error("auto mode without rsvg should have no fallback")
	}
}

func TestNativeRender(t *testing.T) {
	bd, err := badge.New("AI Drafted")
	if err != nil {
		t.Fatal(err)
	}
	doc := svg.NewBuilder(config.DefaultStyle()).Render(bd)

	for _, scale := range []float64{1, 2} {
		data, err := NewNative().Render(context.Background(), doc, scale)
		if err != nil {
			t.Fatalf("Render(scale=%g) error: %v", scale, err)
		}

		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("output at scale %g is not PNG: %v", scale, err)
		}
		bounds := img.Bounds()
		wantW, wantH := int(float64(doc.Width)*scale), int(float64(doc.Height)*scale)
		if bounds.Dx() != wantW || bounds.Dy() != wantH {
			t.Errorf("scale %g: bounds = %dx%d, want %dx%d", scale, bounds.Dx(), bounds.Dy(), wantW, wantH)
		}
	}
}

func TestNativeRenderScaleError(t *testing.T) {
	doc := svg.NewBuilder(config.DefaultStyle()).Render(badge.Badge{Label: "X", Slug: "x"})
	if _, err := NewNative().Render(context.Background(), doc, 0); !errors.Is(err, errors.ErrCodeInvalidScale) {
		t.Errorf("Render(scale=0) error = %v, want INVALID_SCALE", err)
	}
}

func TestNativeRenderCanceled(t *testing.T) {
	doc := svg.NewBuilder(config.DefaultStyle()).Render(badge.Badge{Label: "X", Slug: "x"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewNative().Render(ctx, doc, 1); err == nil {
		t.Error("Render() with canceled context succeeded")
	}
}
