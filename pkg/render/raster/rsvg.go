package raster

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/dotnetdave/ai-usage-badges/pkg/errors"
	"github.com/dotnetdave/ai-usage-badges/pkg/render/svg"
)

// RSVG rasterizes badges with the external rsvg-convert tool.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
type RSVG struct{}

// Name implements Renderer.
func (*RSVG) Name() string { return "rsvg" }

// Available reports whether rsvg-convert is on PATH.
func (*RSVG) Available() bool {
	_, err := exec.LookPath("rsvg-convert")
	return err == nil
}

// Render converts the document to PNG by piping it through rsvg-convert
// with the given zoom factor.
func (r *RSVG) Render(ctx context.Context, doc svg.Document, scale float64) ([]byte, error) {
	if err := ValidateScale(scale); err != nil {
		return nil, err
	}
	if !r.Available() {
		return nil, errors.New(errors.ErrCodeRendererNotFound, "rsvg-convert not found on PATH")
	}

	cmd := exec.CommandContext(ctx, "rsvg-convert", "-f", "png", "-z", fmt.Sprintf("%.2f", scale))
	cmd.Stdin = bytes.NewReader(doc.Bytes())

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "rsvg-convert %s: %s", doc.Badge.Slug, errBuf.String())
	}
	return out.Bytes(), nil
}
