package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/dotnetdave/ai-usage-badges/pkg/badge"
	"github.com/dotnetdave/ai-usage-badges/pkg/cache"
	"github.com/dotnetdave/ai-usage-badges/pkg/manifest"
	"github.com/dotnetdave/ai-usage-badges/pkg/render/raster"
)

func testBadges(t *testing.T) []badge.Badge {
	t.Helper()
	var badges []badge.Badge
	for _, label := range []string{"AI Drafted", "Human Curated"} {
		b, err := badge.New(label)
		if err != nil {
			t.Fatal(err)
		}
		badges = append(badges, b)
	}
	return badges
}

func quietRunner(c cache.Cache) *Runner {
	return NewRunner(c, log.New(io.Discard))
}

func TestExecute(t *testing.T) {
	outDir := t.TempDir()
	opts := Options{
		OutDir:   outDir,
		Formats:  []string{FormatSVG, FormatPNG},
		Scales:   map[string]float64{"1x": 1.0, "2x": 2.0},
		Renderer: raster.ModeNative,
		Sprite:   true,
		Manifest: true,
		Badges:   testBadges(t),
	}

	result, err := quietRunner(nil).Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Stats.SVGCount != 2 {
		t.Errorf("SVGCount = %d, want 2", result.Stats.SVGCount)
	}
	if result.Stats.PNGCount != 4 {
		t.Errorf("PNGCount = %d, want 4", result.Stats.PNGCount)
	}
	if result.Stats.PNGSkipped != 0 {
		t.Errorf("PNGSkipped = %d, want 0", result.Stats.PNGSkipped)
	}

	for _, rel := range []string{
		"badges/svg/ai-drafted.svg",
		"badges/svg/human-curated.svg",
		"badges/png/1x/ai-drafted.png",
		"badges/png/2x/ai-drafted.png",
		"badges/png/1x/human-curated.png",
		"badges/png/2x/human-curated.png",
		"sprites/sprite.svg",
		"badges/index.json",
	} {
		path := filepath.Join(outDir, filepath.FromSlash(rel))
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected output %s: %v", rel, err)
		}
	}

	if result.PNGPaths["ai-drafted"]["2x"] != "badges/png/2x/ai-drafted.png" {
		t.Errorf("PNGPaths = %v", result.PNGPaths)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "badges", "index.json"))
	if err != nil {
		t.Fatal(err)
	}
	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("manifest invalid: %v", err)
	}
	if len(m.Badges) != 2 {
		t.Errorf("manifest badges = %d, want 2", len(m.Badges))
	}
	if m.Badges[0].PNG["1x"] != "badges/png/1x/ai-drafted.png" {
		t.Errorf("manifest PNG paths = %v", m.Badges[0].PNG)
	}
}

func TestExecuteSVGOnly(t *testing.T) {
	outDir := t.TempDir()
	opts := Options{
		OutDir:  outDir,
		Formats: []string{FormatSVG},
		Badges:  testBadges(t),
	}

	result, err := quietRunner(nil).Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Stats.PNGCount != 0 {
		t.Errorf("PNGCount = %d, want 0", result.Stats.PNGCount)
	}
	if _, err := os.Stat(filepath.Join(outDir, "badges", "png")); !os.IsNotExist(err) {
		t.Error("png directory created for svg-only run")
	}
	if result.SpritePath != "" || result.ManifestPath != "" {
		t.Error("sprite or manifest written without being requested")
	}

	data, err := os.ReadFile(filepath.Join(outDir, "badges", "svg", "ai-drafted.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "aria-label='AI Drafted'") {
		t.Error("written SVG missing label")
	}
}

func TestExecuteCacheHits(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := quietRunner(c)

	opts := Options{
		OutDir:   t.TempDir(),
		Formats:  []string{FormatPNG},
		Scales:   map[string]float64{"1x": 1.0},
		Renderer: raster.ModeNative,
		Badges:   testBadges(t),
	}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute() error: %v", err)
	}
	if first.Stats.CacheHits != 0 {
		t.Errorf("first run CacheHits = %d, want 0", first.Stats.CacheHits)
	}

	opts.OutDir = t.TempDir()
	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute() error: %v", err)
	}
	if second.Stats.CacheHits != 2 {
		t.Errorf("second run CacheHits = %d, want 2", second.Stats.CacheHits)
	}
	if second.Stats.PNGCount != 2 {
		t.Errorf("second run PNGCount = %d, want 2", second.Stats.PNGCount)
	}
}

func TestExecuteCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := Options{OutDir: t.TempDir(), Formats: []string{FormatSVG}}
	if _, err := quietRunner(nil).Execute(ctx, opts); err == nil {
		t.Error("Execute() with canceled context succeeded")
	}
}

func TestExecuteInvalidOptions(t *testing.T) {
	if _, err := quietRunner(nil).Execute(context.Background(), Options{}); err == nil {
		t.Error("Execute() with empty options succeeded")
	}
}
