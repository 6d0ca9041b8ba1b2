package badge

import (
	"strings"
	"testing"

	"github.com/dotnetdave/ai-usage-badges/pkg/errors"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Human Original", "human-original"},
		{"Human Original • AI Polished", "human-original-ai-polished"},
		{"Human Written • AI Reviewed", "human-written-ai-reviewed"},
		{"AI Suggested • Human Approved", "ai-suggested-human-approved"},
		{"Human Curated", "human-curated"},
		{"Human–AI Co-Created", "human-ai-co-created"},
		{"AI Drafted • Human Edited", "ai-drafted-human-edited"},
		{"AI Drafted", "ai-drafted"},
		{"AI Generated", "ai-generated"},
		{"A/B Tested — Manually", "a-b-tested-manually"},
		{"  Spaces  Everywhere  ", "spaces-everywhere"},
		{"---", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.label); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestCatalog(t *testing.T) {
	badges := Catalog()
	if len(badges) != 9 {
		t.Fatalf("Catalog() returned %d badges, want 9", len(badges))
	}
	if badges[0].Label != "Human Original" {
		t.Errorf("first badge = %q, want %q", badges[0].Label, "Human Original")
	}
	if badges[8].Label != "AI Generated" {
		t.Errorf("last badge = %q, want %q", badges[8].Label, "AI Generated")
	}

	seen := map[string]bool{}
	for _, b := range badges {
		if b.Slug == "" {
			t.Errorf("badge %q has empty slug", b.Label)
		}
		if seen[b.Slug] {
			t.Errorf("duplicate slug %q", b.Slug)
		}
		seen[b.Slug] = true
	}
}

func TestCatalogStableOrder(t *testing.T) {
	a, b := Catalog(), Catalog()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("catalog order not stable at index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestNew(t *testing.T) {
	b, err := New("AI Assisted • Lightly")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if b.Slug != "ai-assisted-lightly" {
		t.Errorf("Slug = %q, want %q", b.Slug, "ai-assisted-lightly")
	}

	if _, err := New(""); !errors.Is(err, errors.ErrCodeInvalidLabel) {
		t.Errorf("New(\"\") error = %v, want INVALID_LABEL", err)
	}
	if _, err := New("with\ncontrol"); !errors.Is(err, errors.ErrCodeInvalidLabel) {
		t.Errorf("New(control char) error = %v, want INVALID_LABEL", err)
	}
	if _, err := New(strings.Repeat("x", 201)); !errors.Is(err, errors.ErrCodeInvalidLabel) {
		t.Errorf("New(long) error = %v, want INVALID_LABEL", err)
	}
	if _, err := New("•••"); !errors.Is(err, errors.ErrCodeInvalidLabel) {
		t.Errorf("New(punctuation only) error = %v, want INVALID_LABEL", err)
	}
}

func TestFind(t *testing.T) {
	badges := Catalog()

	if b, ok := Find(badges, "ai-drafted"); !ok || b.Label != "AI Drafted" {
		t.Errorf("Find(slug) = %v, %v", b, ok)
	}
	if b, ok := Find(badges, "Human Curated"); !ok || b.Slug != "human-curated" {
		t.Errorf("Find(label) = %v, %v", b, ok)
	}
	if _, ok := Find(badges, "nope"); ok {
		t.Error("Find(unknown) reported a match")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(Catalog()); err != nil {
		t.Errorf("Validate(Catalog()) error: %v", err)
	}

	dup := []Badge{
		{Label: "AI Drafted", Slug: "ai-drafted"},
		{Label: "AI • Drafted", Slug: "ai-drafted"},
	}
	if err := Validate(dup); !errors.Is(err, errors.ErrCodeInvalidLabel) {
		t.Errorf("Validate(duplicate slugs) error = %v, want INVALID_LABEL", err)
	}

	empty := []Badge{{Label: "Something", Slug: ""}}
	if err := Validate(empty); !errors.Is(err, errors.ErrCodeInvalidLabel) {
		t.Errorf("Validate(empty slug) error = %v, want INVALID_LABEL", err)
	}
}
