package sprite

import (
	"strings"
	"testing"

	"github.com/dotnetdave/ai-usage-badges/pkg/badge"
	"github.com/dotnetdave/ai-usage-badges/pkg/config"
	"github.com/dotnetdave/ai-usage-badges/pkg/render/svg"
)

func TestBuild(t *testing.T) {
	builder := svg.NewBuilder(config.DefaultStyle())
	var docs []svg.Document
	for _, label := range []string{"AI Drafted", "Human Curated"} {
		b, err := badge.New(label)
		if err != nil {
			t.Fatal(err)
		}
		docs = append(docs, builder.Render(b))
	}

	out := string(Build(docs))

	if !strings.HasPrefix(out, "<svg xmlns='http://www.w3.org/2000/svg' aria-hidden='true'>\n") {
		t.Errorf("unexpected sprite header:\n%s", out)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("sprite missing closing tag")
	}
	if got := strings.Count(out, "<symbol "); got != 2 {
		t.Errorf("sprite has %d symbols, want 2", got)
	}
	for _, want := range []string{
		"<symbol id='ai-drafted' viewBox='0 0 134 20'>",
		"<symbol id='human-curated' viewBox='0 0 155 20'>",
		"grad-ai-ai-drafted",
		"grad-ai-human-curated",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("sprite missing %q", want)
		}
	}
	// Symbols embed bodies, not standalone documents.
	if strings.Contains(out, "role='img'") {
		t.Error("sprite contains standalone document markup")
	}
}

func TestBuildEmpty(t *testing.T) {
	out := string(Build(nil))
	if out != "<svg xmlns='http://www.w3.org/2000/svg' aria-hidden='true'>\n</svg>\n" {
		t.Errorf("empty sprite = %q", out)
	}
}
