// Package associate pairs selected images with captions, finds their raw raster
// files and copies them into the per-record archive.
package associate

import "github.com/joseph-ayodele/heritage-figures/internal/entity"

// Caption is the result of a caption lookup. The zero value is NoCaption.
type Caption struct {
	Text string
	OK   bool
}

// NoCaption marks an image whose rank has no caption on its page.
var NoCaption = Caption{}

// String returns the caption text, or "" for NoCaption.
func (c Caption) String() string {
	if !c.OK {
		return ""
	}
	return c.Text
}

// Pairing holds the ordered caption candidates of every scanned page and pairs them
// with images by rank: the n-th selected image on a page gets the n-th caption.
type Pairing struct {
	byPage map[entity.PageKey][]string
}

func NewPairing() *Pairing {
	return &Pairing{byPage: make(map[entity.PageKey][]string)}
}

// AddDocument records the captions of every scanned page of doc.
func (p *Pairing) AddDocument(doc string, pages map[int][]string) {
	for page, caps := range pages {
		p.AddPage(doc, page, caps)
	}
}

// AddPage records the captions of one page, replacing earlier ones.
func (p *Pairing) AddPage(doc string, page int, caps []string) {
	p.byPage[entity.PageKey{Document: doc, Page: page}] = append([]string(nil), caps...)
}

// CaptionFor returns the caption paired with (doc, page, rank), or NoCaption.
func (p *Pairing) CaptionFor(doc string, page, rank int) Caption {
	caps := p.byPage[entity.PageKey{Document: doc, Page: page}]
	if rank < 0 || rank >= len(caps) {
		return NoCaption
	}
	return Caption{Text: caps[rank], OK: true}
}
