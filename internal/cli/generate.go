package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dotnetdave/ai-usage-badges/pkg/config"
	"github.com/dotnetdave/ai-usage-badges/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	outDir     string // root of the generated asset tree
	formatsStr string // comma-separated output formats
	scalesStr  string // comma-separated raster scales ("1x,2x")
	renderer   string // raster backend: auto, rsvg, native
	configPath string // optional TOML style/catalog override
	noSprite   bool   // skip the sprite sheet
	noManifest bool   // skip index.json
	noCache    bool   // disable the raster cache
}

// generateCommand creates the generate command, the main entry point.
//
// Default settings produce the full asset tree: SVGs, 1x and 2x PNGs, the
// sprite sheet, and the manifest, using rsvg-convert when installed and the
// native renderer otherwise.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the full badge asset tree",
		Long: `Generate the full badge asset tree.

Writes badges/svg/<slug>.svg for every catalog entry, PNG exports under
badges/png/<scale>/, a combined sprite sheet at sprites/sprite.svg, and a
JSON manifest at badges/index.json.

PNG export prefers rsvg-convert (librsvg) and falls back to an approximate
pure-Go renderer when it is not installed. Rasterized output is cached
locally so unchanged badges are not re-rendered on subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "output directory for the asset tree")
	cmd.Flags().StringVarP(&opts.formatsStr, "formats", "f", "", "output format(s): svg, png (comma-separated, default both)")
	cmd.Flags().StringVar(&opts.scalesStr, "scales", "", "raster scale(s), e.g. '1x,2x' (default 1x,2x)")
	cmd.Flags().StringVar(&opts.renderer, "renderer", "auto", "raster backend: auto, rsvg, native")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML config overriding style and catalog")
	cmd.Flags().BoolVar(&opts.noSprite, "no-sprite", false, "skip the sprite sheet")
	cmd.Flags().BoolVar(&opts.noManifest, "no-manifest", false, "skip the JSON manifest")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the raster cache")

	return cmd
}

// runGenerate resolves flags into pipeline options and executes the run.
func (c *CLI) runGenerate(ctx context.Context, opts *generateOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	scales, err := pipeline.ParseScales(opts.scalesStr)
	if err != nil {
		return err
	}

	pipeOpts := pipeline.Options{
		OutDir:   opts.outDir,
		Formats:  parseFormats(opts.formatsStr),
		Scales:   scales,
		Renderer: opts.renderer,
		Sprite:   !opts.noSprite,
		Manifest: !opts.noManifest,
		Style:    cfg.Style,
		Badges:   cfg.Badges,
	}
	if err := pipeline.ValidateFormats(pipeOpts.Formats); err != nil {
		return err
	}

	p := newProgress(c.Logger)
	result, err := c.newRunner(opts.noCache).Execute(ctx, pipeOpts)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Generated %s", result.Summary()))

	printGenerateSummary(result)
	return nil
}

// printGenerateSummary prints the styled post-run summary.
func printGenerateSummary(result *pipeline.Result) {
	printSuccess("Wrote %d SVGs, %d PNGs", result.Stats.SVGCount, result.Stats.PNGCount)
	if result.Stats.CacheHits > 0 {
		printDetail("%d PNGs served from cache", result.Stats.CacheHits)
	}
	if result.Stats.PNGSkipped > 0 {
		printWarning("%d PNGs skipped (no usable renderer)", result.Stats.PNGSkipped)
	}
	if result.SpritePath != "" {
		printFile(result.SpritePath)
	}
	if result.ManifestPath != "" {
		printFile(result.ManifestPath)
	}
}

// loadConfig loads the TOML config when a path is given, otherwise defaults.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// parseFormats parses a comma-separated format string into a slice.
// If empty, both formats are generated.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG, pipeline.FormatPNG}
	}
	return splitAndTrim(s)
}
