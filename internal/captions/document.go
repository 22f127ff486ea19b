package captions

import (
	"github.com/joseph-ayodele/heritage-figures/internal/entity"
	"github.com/joseph-ayodele/heritage-figures/internal/survey"
)

// ForDocument extracts captions for every page whose attribution offset lies in the
// window. Marker pages and unattributed pages are never scanned. Pages that were
// scanned but yielded nothing map to an empty, non-nil slice.
func (e *Extractor) ForDocument(doc entity.Document, anchors []entity.Anchor, r survey.Resolver, w survey.Window) map[int][]string {
	out := make(map[int][]string)
	for i, text := range doc.Pages {
		page := i + 1
		if _, _, ok := r.ResolveWithin(page, anchors, w); !ok {
			continue
		}
		caps := e.Extract(text)
		if caps == nil {
			caps = []string{}
		}
		out[page] = caps
	}
	return out
}
