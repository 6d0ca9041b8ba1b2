package raster

import (
	"bytes"
	"context"
	"image/color"
	"math"
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/dotnetdave/ai-usage-badges/pkg/config"
	"github.com/dotnetdave/ai-usage-badges/pkg/errors"
	"github.com/dotnetdave/ai-usage-badges/pkg/render/svg"
)

// fontCandidates are tried in order for the fallback text faces. Bold cuts
// first to match the badge's 600-weight caption.
var fontCandidates = []string{
	"DejaVuSans-Bold.ttf",
	"Arial Bold.ttf",
	"arialbd.ttf",
	"DejaVuSans.ttf",
	"Arial.ttf",
}

// Native approximates the badge look without external tools: rounded
// rectangles, a horizontally interpolated gradient chip, the sparkle star,
// and best-effort system fonts. SVGs remain the source of truth; this
// renderer only has to look close at badge sizes.
type Native struct {
	style config.Style

	fontOnce sync.Once
	font     *truetype.Font // nil when no usable system font was found
}

// NewNative creates a native renderer with the default style.
func NewNative() *Native {
	return NewNativeWithStyle(config.DefaultStyle())
}

// NewNativeWithStyle creates a native renderer using the given style for
// geometry and palette. The style must be the one the SVGs were built with,
// otherwise chip width and colors drift apart.
func NewNativeWithStyle(style config.Style) *Native {
	return &Native{style: style}
}

// Name implements Renderer.
func (*Native) Name() string { return "native" }

// Render draws the badge directly to PNG at the given scale.
func (n *Native) Render(ctx context.Context, doc svg.Document, scale float64) ([]byte, error) {
	if err := ValidateScale(scale); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := n.style
	width := int(math.Round(float64(doc.Width) * scale))
	height := int(math.Round(float64(doc.Height) * scale))
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeRenderFailed, "badge %s has empty raster bounds", doc.Badge.Slug)
	}

	leftPx := float64(s.LeftWidth) * scale
	padPx := float64(s.Padding) * scale
	radius := math.Max(2, 3*scale) // pill corner radius, matching the SVG rx
	w := float64(width)
	h := float64(height)

	rightFill, err := parseColor(s.Colors.RightFill)
	if err != nil {
		return nil, err
	}
	gradStart, err := parseColor(s.Colors.GradientStart)
	if err != nil {
		return nil, err
	}
	gradEnd, err := parseColor(s.Colors.GradientEnd)
	if err != nil {
		return nil, err
	}
	outline, err := parseColor(s.Colors.Outline)
	if err != nil {
		return nil, err
	}
	sparkle, err := parseColor(s.Colors.Sparkle)
	if err != nil {
		return nil, err
	}
	chipText, err := parseColor(s.Colors.ChipText)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(width, height)

	// Rounded background with outline.
	dc.SetColor(rightFill)
	dc.DrawRoundedRectangle(0, 0, w, h, radius)
	dc.FillPreserve()
	dc.SetColor(outline)
	dc.SetLineWidth(1)
	dc.Stroke()

	// Gradient chip. The rounded right corners are squared off afterwards so
	// only the outer pill corners stay round, matching the SVG stacking.
	grad := gg.NewLinearGradient(0, 0, leftPx, h)
	grad.AddColorStop(0, gradStart)
	grad.AddColorStop(1, gradEnd)
	dc.SetFillStyle(grad)
	dc.DrawRoundedRectangle(0, 0, leftPx, h, radius)
	dc.Fill()
	dc.DrawRectangle(leftPx-radius, 0, radius, h)
	dc.Fill()

	dc.SetColor(outline)
	dc.DrawRoundedRectangle(0, 0, leftPx, h, radius)
	dc.Stroke()

	// Divider seam.
	dc.SetColor(color.NRGBA{R: 255, G: 255, B: 255, A: 20})
	dc.DrawLine(leftPx, 1, leftPx, h-2)
	dc.Stroke()

	// Sparkle star: 10 alternating points starting at 12 o'clock.
	drawStar(dc, 6*scale, h/2, 3.0*scale, 1.25*scale)
	dc.SetColor(sparkle)
	dc.Fill()

	// Font sizes tuned for crisp export at 1x/2x; SVGs are the source of truth.
	aiSize := math.Max(14, h*0.70)
	bodySize := math.Max(14, h*0.68)

	dc.SetFontFace(n.face(aiSize))
	dc.SetColor(chipText)
	dc.DrawStringAnchored("AI", leftPx/2, h/2, 0.5, 0.35)

	dc.SetFontFace(n.face(bodySize))
	dc.SetColor(color.White)
	dc.DrawStringAnchored(doc.Badge.Label, leftPx+padPx, h/2, 0, 0.35)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode %s", doc.Badge.Slug)
	}
	return buf.Bytes(), nil
}

// drawStar traces a 10-point star path centered at (cx, cy).
func drawStar(dc *gg.Context, cx, cy, outer, inner float64) {
	for i := 0; i < 10; i++ {
		angle := gg.Radians(float64(36*i - 90))
		r := outer
		if i%2 == 1 {
			r = inner
		}
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}

// face returns a text face at the given pixel size, preferring a system
// TrueType font and degrading to the fixed-size basic face.
func (n *Native) face(size float64) font.Face {
	n.fontOnce.Do(n.loadFont)
	if n.font == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(n.font, &truetype.Options{Size: size})
}

// loadFont locates and parses the first usable candidate font. All failures
// are soft; the basic face covers machines with no fonts at all.
func (n *Native) loadFont() {
	for _, name := range fontCandidates {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			continue
		}
		n.font = f
		return
	}
}
