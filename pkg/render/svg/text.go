package svg

import (
	"bytes"
	"encoding/xml"
	"math"
	"unicode/utf8"
)

// TextWidth estimates the rendered width of text in SVG units using a flat
// per-glyph average. Counting runes (not bytes) keeps labels with bullets and
// dashes sized the same as their visual length. The estimate is deliberately
// font-independent so output never depends on installed fonts.
func TextWidth(text string, charWidth float64) int {
	return int(math.Ceil(float64(utf8.RuneCountInString(text)) * charWidth))
}

// EscapeXML escapes a string for use in SVG text content and attributes.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
