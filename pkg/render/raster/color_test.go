package raster

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		value string
		want  color.NRGBA
	}{
		{"#111827", color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 255}},
		{"#7B5CF9", color.NRGBA{R: 0x7B, G: 0x5C, B: 0xF9, A: 255}},
		{"#abc", color.NRGBA{R: 0xAA, G: 0xBB, B: 0xCC, A: 255}},
		{"rgba(255,255,255,0.18)", color.NRGBA{R: 255, G: 255, B: 255, A: 46}},
		{"rgba(0, 0, 0, 1)", color.NRGBA{R: 0, G: 0, B: 0, A: 255}},
		{"rgba(16,32,48,0)", color.NRGBA{R: 16, G: 32, B: 48, A: 0}},
	}

	for _, tt := range tests {
		got, err := parseColor(tt.value)
		if err != nil {
			t.Errorf("parseColor(%q) error: %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseColor(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, bad := range []string{"", "purple", "#12", "#12345", "#zzzzzz", "rgba(256,0,0,1)", "rgb(1,2,3)"} {
		if _, err := parseColor(bad); err == nil {
			t.Errorf("parseColor(%q) succeeded, want error", bad)
		}
	}
}
