// Package manifest builds the JSON index describing generated badge assets.
//
// The badges array keeps the stable label/slug/path triple consumers key on;
// dimensions and PNG paths are additive. Run-specific values (timestamp, run
// id) are confined to the generator block so badge entries diff cleanly.
package manifest

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/dotnetdave/ai-usage-badges/pkg/buildinfo"
	"github.com/dotnetdave/ai-usage-badges/pkg/errors"
	"github.com/dotnetdave/ai-usage-badges/pkg/render/svg"
)

// Entry describes one generated badge.
type Entry struct {
	Label  string            `json:"label"`
	Slug   string            `json:"slug"`
	Path   string            `json:"path"`
	Width  int               `json:"width"`
	Height int               `json:"height"`
	PNG    map[string]string `json:"png,omitempty"` // scale label -> path
}

// Generator records how and when the manifest was produced.
type Generator struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	RunID     string `json:"run_id"`
	Timestamp string `json:"timestamp"`
}

// Manifest is the root of index.json.
type Manifest struct {
	Generator Generator `json:"generator"`
	Badges    []Entry   `json:"badges"`
}

// Build assembles a manifest from rendered documents. pngPaths maps
// slug -> scale label -> relative PNG path and may be nil when PNG output
// was skipped.
func Build(docs []svg.Document, pngPaths map[string]map[string]string) Manifest {
	m := Manifest{
		Generator: Generator{
			Name:      "badgegen",
			Version:   buildinfo.Version,
			RunID:     uuid.NewString(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
		Badges: make([]Entry, 0, len(docs)),
	}
	for _, doc := range docs {
		entry := Entry{
			Label:  doc.Badge.Label,
			Slug:   doc.Badge.Slug,
			Path:   filepath.ToSlash(filepath.Join("badges", "svg", doc.Badge.Slug+".svg")),
			Width:  doc.Width,
			Height: doc.Height,
		}
		if paths := pngPaths[doc.Badge.Slug]; len(paths) > 0 {
			entry.PNG = paths
		}
		m.Badges = append(m.Badges, entry)
	}
	return m
}

// Encode renders the manifest as two-space indented JSON with a trailing
// newline.
func (m Manifest) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode manifest")
	}
	return buf.Bytes(), nil
}

// Write encodes the manifest and writes it to path, creating parent
// directories as needed.
func (m Manifest) Write(path string) error {
	data, err := m.Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create manifest directory")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write manifest %s", path)
	}
	return nil
}
