package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxLabelLength bounds badge labels; anything longer produces an unusable badge.
const maxLabelLength = 200

// ValidateLabel validates a badge label string.
//
// The validation rules are intentionally conservative:
//   - No empty labels
//   - No control characters (including newlines and null bytes)
//   - Maximum length of 200 characters
//
// Labels are otherwise free-form; slug derivation handles punctuation.
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidLabel, "badge label cannot be empty")
	}

	if len(label) > maxLabelLength {
		return New(ErrCodeInvalidLabel, "badge label too long (max %d characters)", maxLabelLength)
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "badge label contains control characters")
		}
	}

	return nil
}

// hexColorRegex matches 3- or 6-digit hex colors with a leading #.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// rgbaColorRegex matches rgba(...) functional notation as used for outlines.
var rgbaColorRegex = regexp.MustCompile(`^rgba\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*(?:0|1|0?\.\d+)\s*\)$`)

// ValidateColor validates a CSS color value used in badge styles.
// Accepted forms are hex (#RGB, #RRGGBB) and rgba(r,g,b,a).
func ValidateColor(value string) error {
	if value == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if hexColorRegex.MatchString(value) || rgbaColorRegex.MatchString(value) {
		return nil
	}
	return New(ErrCodeInvalidColor, "invalid color value: %q", value)
}

// ValidateHexColor validates a color that must be plain hex, such as gradient
// stops that the native renderer needs to interpolate.
func ValidateHexColor(value string) error {
	if !hexColorRegex.MatchString(value) {
		return New(ErrCodeInvalidColor, "invalid hex color: %q", value)
	}
	return nil
}

// ValidateOutputDir validates an output directory path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputDir(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output directory too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}

	return nil
}

// ValidateManifestFilename validates a manifest filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidPath, "manifest filename cannot be empty")
	}

	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidPath, "manifest filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidPath, "manifest filename cannot be a hidden file")
	}

	return nil
}
