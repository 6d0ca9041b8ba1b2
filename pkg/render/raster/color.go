package raster

import (
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"github.com/dotnetdave/ai-usage-badges/pkg/errors"
)

var rgbaPattern = regexp.MustCompile(`^rgba\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(0|1|0?\.\d+)\s*\)$`)

// parseColor parses the color forms the style allows: #RGB, #RRGGBB, and
// rgba(r,g,b,a). The alpha fraction is mapped onto 0-255.
func parseColor(value string) (color.Color, error) {
	if strings.HasPrefix(value, "#") {
		return parseHex(value)
	}
	if m := rgbaPattern.FindStringSubmatch(value); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		a, _ := strconv.ParseFloat(m[4], 64)
		if r > 255 || g > 255 || b > 255 {
			return nil, errors.New(errors.ErrCodeInvalidColor, "rgba channel out of range: %q", value)
		}
		return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a*255 + 0.5)}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidColor, "unsupported color value: %q", value)
}

func parseHex(value string) (color.Color, error) {
	hex := strings.TrimPrefix(value, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, errors.New(errors.ErrCodeInvalidColor, "invalid hex color: %q", value)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidColor, "invalid hex color: %q", value)
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}, nil
}
