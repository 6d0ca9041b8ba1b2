// Package badge defines the provenance badge catalog.
//
// A badge labels how much AI involvement went into a piece of content,
// from "Human Original" to "AI Generated". The catalog is a fixed, ordered
// list; ordering is meaningful (roughly increasing AI involvement) and must
// stay stable so generated assets and manifests diff cleanly between runs.
package badge

import (
	"regexp"
	"strings"

	"github.com/dotnetdave/ai-usage-badges/pkg/errors"
)

// Badge is a single provenance label with its filesystem-safe slug.
type Badge struct {
	Label string // display text, e.g. "AI Drafted • Human Edited"
	Slug  string // derived identifier, e.g. "ai-drafted-human-edited"
}

// catalogLabels is the built-in badge set, ordered from fully human-authored
// to fully AI-generated.
var catalogLabels = []string{
	"Human Original",
	"Human Original • AI Polished",
	"Human Written • AI Reviewed",
	"AI Suggested • Human Approved",
	"Human Curated",
	"Human–AI Co-Created",
	"AI Drafted • Human Edited",
	"AI Drafted",
	"AI Generated",
}

// Catalog returns the built-in badge catalog in its canonical order.
// The returned slice is freshly allocated; callers may modify it.
func Catalog() []Badge {
	badges := make([]Badge, len(catalogLabels))
	for i, label := range catalogLabels {
		badges[i] = Badge{Label: label, Slug: Slugify(label)}
	}
	return badges
}

// New creates a badge from a label, validating it and deriving the slug.
func New(label string) (Badge, error) {
	if err := errors.ValidateLabel(label); err != nil {
		return Badge{}, err
	}
	slug := Slugify(label)
	if slug == "" {
		return Badge{}, errors.New(errors.ErrCodeInvalidLabel, "label %q produces an empty slug", label)
	}
	return Badge{Label: label, Slug: slug}, nil
}

// Find returns the catalog badge matching the given label or slug.
func Find(badges []Badge, key string) (Badge, bool) {
	for _, b := range badges {
		if b.Label == key || b.Slug == key {
			return b, true
		}
	}
	return Badge{}, false
}

// punctReplacer maps label punctuation (dashes, bullets, slashes) to hyphens
// before the catch-all squeeze.
var punctReplacer = strings.NewReplacer("–", "-", "—", "-", "•", "-", "/", "-")

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRuns   = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a badge label to its filesystem-safe slug: lowercase,
// punctuation folded to hyphens, everything else squeezed to single hyphens,
// with leading and trailing hyphens trimmed.
func Slugify(label string) string {
	slug := strings.ToLower(label)
	slug = punctReplacer.Replace(slug)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = hyphenRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// Validate checks a badge list for empty labels and duplicate slugs.
func Validate(badges []Badge) error {
	seen := make(map[string]string, len(badges))
	for _, b := range badges {
		if err := errors.ValidateLabel(b.Label); err != nil {
			return err
		}
		if b.Slug == "" {
			return errors.New(errors.ErrCodeInvalidLabel, "badge %q has an empty slug", b.Label)
		}
		if prev, ok := seen[b.Slug]; ok {
			return errors.New(errors.ErrCodeInvalidLabel, "badges %q and %q collide on slug %q", prev, b.Label, b.Slug)
		}
		seen[b.Slug] = b.Label
	}
	return nil
}
