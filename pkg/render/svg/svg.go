// Package svg builds the badge SVG documents.
//
// Each badge is a two-segment pill: a gradient chip on the left carrying a
// sparkle glyph and an "AI" caption, and a dark segment on the right carrying
// the label. Output is deterministic: the same style and label always produce
// identical bytes, which keeps generated assets diffable.
package svg

import (
	"bytes"
	"fmt"

	"github.com/dotnetdave/ai-usage-badges/pkg/badge"
	"github.com/dotnetdave/ai-usage-badges/pkg/config"
)

// cornerRadius is the pill corner radius in SVG units.
const cornerRadius = 3

// sparklePath is a 10-point star on an 18x18 grid, scaled down into the chip.
const sparklePath = "M9 2l1.1 3.4L13.5 6 10.1 7.6 9 11 7.9 7.6 4.5 6 7.9 5.4 9 2z"

// dividerStroke is the faint seam between the chip and the label segment.
const dividerStroke = "rgba(255,255,255,0.08)"

// Document is a rendered badge SVG. Body holds the markup between the
// <svg> open and close tags so the sprite builder can re-wrap it in a
// <symbol> without parsing.
type Document struct {
	Badge  badge.Badge
	Width  int
	Height int
	Body   []byte
}

// Bytes returns the complete standalone SVG document.
func (d Document) Bytes() []byte {
	var buf bytes.Buffer
	buf.WriteByte('\n')
	fmt.Fprintf(&buf, "<svg xmlns='http://www.w3.org/2000/svg' width='%d' height='%d' role='img' aria-label='%s'>",
		d.Width, d.Height, EscapeXML(d.Badge.Label))
	buf.Write(d.Body)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// Builder renders badges with a fixed style.
type Builder struct {
	style config.Style
}

// NewBuilder creates a builder for the given style.
func NewBuilder(style config.Style) *Builder {
	return &Builder{style: style}
}

// Width returns the total badge width for a label.
func (b *Builder) Width(label string) int {
	return b.style.LeftWidth + b.rightWidth(label)
}

// rightWidth is the label segment width: padding on both sides plus the
// estimated text width.
func (b *Builder) rightWidth(label string) int {
	return b.style.Padding*2 + TextWidth(label, b.style.CharWidth)
}

// Render produces the SVG document for a single badge.
func (b *Builder) Render(bd badge.Badge) Document {
	s := b.style
	totalWidth := b.Width(bd.Label)
	baseline := s.Height - 6 // visually centered for the default font
	label := EscapeXML(bd.Label)

	var buf bytes.Buffer
	buf.WriteByte('\n')
	fmt.Fprintf(&buf, "  <title>%s</title>\n", label)
	buf.WriteString("  <defs>\n")
	// Gradient ids carry the slug so badges stay self-contained inside the sprite.
	fmt.Fprintf(&buf, "    <linearGradient id='grad-ai-%s' x1='0%%' y1='0%%' x2='100%%' y2='100%%'>\n", bd.Slug)
	fmt.Fprintf(&buf, "      <stop offset='0%%' stop-color='%s'/>\n", s.Colors.GradientStart)
	fmt.Fprintf(&buf, "      <stop offset='100%%' stop-color='%s'/>\n", s.Colors.GradientEnd)
	buf.WriteString("    </linearGradient>\n")
	buf.WriteString("  </defs>\n")

	buf.WriteString("  <g shape-rendering='crispEdges'>\n")
	fmt.Fprintf(&buf, "    <rect rx='%d' width='%d' height='%d' fill='%s' stroke='%s' stroke-width='1'/>\n",
		cornerRadius, totalWidth, s.Height, s.Colors.RightFill, s.Colors.Outline)
	fmt.Fprintf(&buf, "    <rect rx='%d' width='%d' height='%d' fill='url(#grad-ai-%s)' stroke='%s' stroke-width='1'/>\n",
		cornerRadius, s.LeftWidth, s.Height, bd.Slug, s.Colors.Outline)
	buf.WriteString("  </g>\n")

	fmt.Fprintf(&buf, "  <g fill='none' stroke='%s'>\n", dividerStroke)
	fmt.Fprintf(&buf, "    <path d='M %d 1.5 V %s'/>\n", s.LeftWidth, trimFloat(float64(s.Height)-1.5))
	buf.WriteString("  </g>\n")

	buf.WriteString("  <g>\n")
	fmt.Fprintf(&buf, "    <path d='%s' fill='%s' transform='translate(8 %d) scale(0.6)'/>\n",
		sparklePath, s.Colors.Sparkle, s.Height/2-5)
	fmt.Fprintf(&buf, "    <text x='%.1f' y='%d' text-anchor='middle' fill='%s' font-family=\"%s\" font-size='11' font-weight='600'>AI</text>\n",
		float64(s.LeftWidth)/2+4, baseline, s.Colors.ChipText, s.FontFamily)
	fmt.Fprintf(&buf, "    <text x='%d' y='%d' fill='%s' font-family=\"%s\" font-size='11' font-weight='500'>%s</text>\n",
		s.LeftWidth+s.Padding, baseline, s.Colors.RightText, s.FontFamily, label)
	buf.WriteString("  </g>\n")

	return Document{
		Badge:  bd,
		Width:  totalWidth,
		Height: s.Height,
		Body:   buf.Bytes(),
	}
}

// trimFloat formats a float without trailing zeros ("18.5", not "18.50").
func trimFloat(f float64) string {
	if f == float64(int(f)) {
		return fmt.Sprintf("%d", int(f))
	}
	return fmt.Sprintf("%g", f)
}
