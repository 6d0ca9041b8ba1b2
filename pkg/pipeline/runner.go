package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dotnetdave/ai-usage-badges/pkg/cache"
	"github.com/dotnetdave/ai-usage-badges/pkg/errors"
	"github.com/dotnetdave/ai-usage-badges/pkg/manifest"
	"github.com/dotnetdave/ai-usage-badges/pkg/observability"
	"github.com/dotnetdave/ai-usage-badges/pkg/render/raster"
	"github.com/dotnetdave/ai-usage-badges/pkg/render/sprite"
	"github.com/dotnetdave/ai-usage-badges/pkg/render/svg"
)

// Runner executes the generation pipeline with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't store
// run results. Multiple goroutines can safely share one Runner with
// different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
// If logger is nil, the default logger is used.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Execute runs the complete svg → raster → sprite → manifest pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}

	result := &Result{PNGPaths: make(map[string]map[string]string)}

	// Stage 1: SVG documents (always built; they feed every other stage).
	docs, err := r.renderDocuments(ctx, opts, result)
	if err != nil {
		observability.Generator().OnRunComplete(ctx, 0, 0, time.Since(start), err)
		return nil, err
	}

	// Stage 2: PNG exports.
	if opts.wantsFormat(FormatPNG) {
		if err := r.rasterize(ctx, opts, docs, result); err != nil {
			observability.Generator().OnRunComplete(ctx, len(docs), result.Stats.PNGCount, time.Since(start), err)
			return nil, err
		}
	}

	// Stage 3: Sprite sheet.
	if opts.Sprite {
		path := filepath.Join(opts.OutDir, "sprites", "sprite.svg")
		if err := writeFile(path, sprite.Build(docs)); err != nil {
			return nil, err
		}
		result.SpritePath = path
		r.Logger.Debug("wrote sprite", "path", path, "symbols", len(docs))
	}

	// Stage 4: Manifest.
	if opts.Manifest {
		path := filepath.Join(opts.OutDir, "badges", "index.json")
		m := manifest.Build(docs, result.PNGPaths)
		if err := m.Write(path); err != nil {
			return nil, err
		}
		result.ManifestPath = path
		r.Logger.Debug("wrote manifest", "path", path)
	}

	r.Logger.Info("generation complete",
		"badges", result.Stats.SVGCount,
		"pngs", result.Stats.PNGCount,
		"cache_hits", result.Stats.CacheHits,
		"duration", time.Since(start).Round(time.Millisecond))
	observability.Generator().OnRunComplete(ctx, len(docs), result.Stats.PNGCount, time.Since(start), nil)

	return result, nil
}

// renderDocuments builds every badge document and, when the svg format is
// requested, writes the standalone files.
func (r *Runner) renderDocuments(ctx context.Context, opts Options, result *Result) ([]svg.Document, error) {
	builder := svg.NewBuilder(opts.Style)
	writeSVGs := opts.wantsFormat(FormatSVG)

	docs := make([]svg.Document, 0, len(opts.Badges))
	for _, b := range opts.Badges {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		doc := builder.Render(b)
		docs = append(docs, doc)
		observability.Generator().OnBadgeRendered(ctx, b.Slug, doc.Width, doc.Height)

		if writeSVGs {
			path := filepath.Join(opts.OutDir, "badges", "svg", b.Slug+".svg")
			if err := writeFile(path, doc.Bytes()); err != nil {
				return nil, err
			}
			result.SVGPaths = append(result.SVGPaths, path)
			r.Logger.Debug("wrote badge", "slug", b.Slug, "width", doc.Width)
		}
	}
	result.Stats.SVGCount = len(docs)
	r.Logger.Info("rendered badges", "count", len(docs))
	return docs, nil
}

// rasterize exports every document at every requested scale. Individual
// badge failures degrade: first to the fallback renderer when one is
// configured, then to skipping that badge's PNG.
func (r *Runner) rasterize(ctx context.Context, opts Options, docs []svg.Document, result *Result) error {
	primary, fallback, err := raster.Select(opts.Renderer)
	if err != nil {
		return err
	}
	r.Logger.Info("rasterizing badges", "renderer", primary.Name(), "scales", len(opts.Scales))

	for _, label := range sortedScaleLabels(opts.Scales) {
		factor := opts.Scales[label]
		for _, doc := range docs {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, renderer, err := r.rasterizeOne(ctx, primary, fallback, doc, factor, result)
			if err != nil {
				r.Logger.Warn("skipping PNG", "slug", doc.Badge.Slug, "scale", label, "err", err)
				result.Stats.PNGSkipped++
				continue
			}

			path := filepath.Join(opts.OutDir, "badges", "png", label, doc.Badge.Slug+".png")
			if err := writeFile(path, data); err != nil {
				return err
			}
			if result.PNGPaths[doc.Badge.Slug] == nil {
				result.PNGPaths[doc.Badge.Slug] = make(map[string]string)
			}
			result.PNGPaths[doc.Badge.Slug][label] = filepath.ToSlash(filepath.Join("badges", "png", label, doc.Badge.Slug+".png"))
			result.Stats.PNGCount++
			r.Logger.Debug("wrote PNG", "slug", doc.Badge.Slug, "scale", label, "renderer", renderer)
		}
	}
	return nil
}

// rasterizeOne produces the PNG for one document and scale, consulting the
// cache first and falling back per badge when the primary renderer fails.
func (r *Runner) rasterizeOne(ctx context.Context, primary, fallback raster.Renderer, doc svg.Document, factor float64, result *Result) ([]byte, string, error) {
	svgBytes := doc.Bytes()
	candidates := []raster.Renderer{primary}
	if fallback != nil {
		candidates = append(candidates, fallback)
	}
	for _, c := range candidates {
		key := cache.RasterKey(svgBytes, factor, c.Name())
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "raster")
			result.Stats.CacheHits++
			return data, c.Name(), nil
		}
	}
	observability.Cache().OnCacheMiss(ctx, "raster")

	start := time.Now()
	observability.Generator().OnRasterStart(ctx, doc.Badge.Slug, factor)
	data, err := primary.Render(ctx, doc, factor)
	renderer := primary.Name()
	if err != nil && fallback != nil {
		r.Logger.Warn("renderer failed, using fallback",
			"slug", doc.Badge.Slug, "renderer", primary.Name(), "fallback", fallback.Name(), "err", err)
		data, err = fallback.Render(ctx, doc, factor)
		renderer = fallback.Name()
	}
	observability.Generator().OnRasterComplete(ctx, doc.Badge.Slug, factor, renderer, time.Since(start), err)
	if err != nil {
		return nil, renderer, err
	}

	// Keyed by the renderer that produced the bytes so outputs from
	// different backends never collide.
	key := cache.RasterKey(svgBytes, factor, renderer)
	if err := r.Cache.Set(ctx, key, data, 0); err != nil {
		r.Logger.Debug("cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "raster", len(data))
	}
	return data, renderer, nil
}

// writeFile writes data, creating parent directories as needed.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
