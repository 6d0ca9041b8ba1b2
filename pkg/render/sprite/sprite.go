// Package sprite composes individual badge documents into one SVG sprite
// sheet. Consumers reference badges with <use href="sprite.svg#slug"/>.
package sprite

import (
	"bytes"
	"fmt"

	"github.com/dotnetdave/ai-usage-badges/pkg/render/svg"
)

// Build produces the sprite sheet from rendered badge documents. Each badge
// becomes a <symbol> keyed by its slug with the badge's own viewBox, so the
// sprite scales each badge independently. Gradient ids already carry the slug
// and stay unique when the bodies share one document.
func Build(docs []svg.Document) []byte {
	var buf bytes.Buffer
	buf.WriteString("<svg xmlns='http://www.w3.org/2000/svg' aria-hidden='true'>\n")
	for _, doc := range docs {
		fmt.Fprintf(&buf, "  <symbol id='%s' viewBox='0 0 %d %d'>\n", doc.Badge.Slug, doc.Width, doc.Height)
		buf.Write(bytes.TrimSuffix(bytes.TrimPrefix(doc.Body, []byte("\n")), []byte("\n")))
		buf.WriteString("\n  </symbol>\n")
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
