package survey

import (
	"github.com/joseph-ayodele/heritage-figures/constants"
	"github.com/joseph-ayodele/heritage-figures/internal/entity"
)

// DefaultMaxLookback is how many pages past an anchor are still attributed to it.
const DefaultMaxLookback = 2

// Attribution is the record owning a page and the page's distance from the anchor.
type Attribution struct {
	Code   string
	Offset int
}

// Resolver maps pages to records.
type Resolver struct {
	MaxLookback int
}

// NewResolver returns a Resolver; negative lookback falls back to the default.
func NewResolver(maxLookback int) Resolver {
	if maxLookback < 0 {
		maxLookback = DefaultMaxLookback
	}
	return Resolver{MaxLookback: maxLookback}
}

// Resolve finds the last anchor at or before page. It fails when there is none or
// when the page lies more than the lookback past it. The offset is not filtered.
func (r Resolver) Resolve(page int, anchors []entity.Anchor) (Attribution, bool) {
	var last *entity.Anchor
	for i := range anchors {
		if anchors[i].Page > page {
			break
		}
		last = &anchors[i]
	}
	if last == nil {
		return Attribution{}, false
	}
	offset := page - last.Page
	if offset > r.MaxLookback {
		return Attribution{}, false
	}
	return Attribution{Code: last.Code, Offset: offset}, true
}

// ResolveWithin resolves page and applies w. On rejection it reports why.
func (r Resolver) ResolveWithin(page int, anchors []entity.Anchor, w Window) (Attribution, constants.DropReason, bool) {
	a, ok := r.Resolve(page, anchors)
	if !ok {
		return Attribution{}, constants.DropUnresolved, false
	}
	if !w.Admits(a.Offset) {
		return a, constants.DropOffset, false
	}
	return a, "", true
}

// Resolve uses the default lookback.
func Resolve(page int, anchors []entity.Anchor) (Attribution, bool) {
	return Resolver{MaxLookback: DefaultMaxLookback}.Resolve(page, anchors)
}
