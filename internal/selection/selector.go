// Package selection decides which embedded images are survey figures.
package selection

import (
	"log/slog"

	"github.com/joseph-ayodele/heritage-figures/constants"
	"github.com/joseph-ayodele/heritage-figures/internal/entity"
	"github.com/joseph-ayodele/heritage-figures/internal/survey"
)

// Thresholds reject icons, rules and other decoration by size.
type Thresholds struct {
	MinArea     int // rows with width*height below this are dropped
	SmallWidth  int // rows no wider than this ...
	SmallHeight int // ... and no taller than this are dropped
}

// DefaultThresholds returns the thresholds tuned for scanned survey reports.
func DefaultThresholds() Thresholds {
	return Thresholds{MinArea: 50000, SmallWidth: 260, SmallHeight: 70}
}

// Check reports whether the row is large enough; either rule alone rejects it.
func (t Thresholds) Check(row entity.InventoryRow) (constants.DropReason, bool) {
	if row.Area() < t.MinArea {
		return constants.DropArea, false
	}
	if row.Width <= t.SmallWidth && row.Height <= t.SmallHeight {
		return constants.DropThin, false
	}
	return "", true
}

// Drop records a rejected row.
type Drop struct {
	Row    entity.InventoryRow
	Reason constants.DropReason
}

// Result is the outcome of selecting one document's inventory.
type Result struct {
	Selected []entity.SelectedImage
	Dropped  []Drop
}

// Selector attributes inventory rows to records and applies the size thresholds.
type Selector struct {
	resolver   survey.Resolver
	window     survey.Window
	thresholds Thresholds
	logger     *slog.Logger
}

func NewSelector(resolver survey.Resolver, window survey.Window, thresholds Thresholds, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{resolver: resolver, window: window, thresholds: thresholds, logger: logger}
}

// Select keeps rows that resolve to a record inside the window and pass the size
// thresholds. Survivors keep inventory order and are ranked from zero within their page.
func (s *Selector) Select(rows []entity.InventoryRow, anchors []entity.Anchor) Result {
	var res Result
	ranks := pageRanks{}
	for _, row := range rows {
		attr, reason, ok := s.resolver.ResolveWithin(row.Page, anchors, s.window)
		if ok {
			reason, ok = s.thresholds.Check(row)
		}
		if !ok {
			s.logger.Debug("image row dropped",
				"page", row.Page, "index", row.Index,
				"width", row.Width, "height", row.Height,
				"reason", reason)
			res.Dropped = append(res.Dropped, Drop{Row: row, Reason: reason})
			continue
		}
		res.Selected = append(res.Selected, entity.SelectedImage{
			Row:    row,
			Code:   attr.Code,
			Offset: attr.Offset,
			Rank:   ranks.next(row.Page),
		})
	}
	return res
}

// pageRanks hands out zero-based ranks per page.
type pageRanks map[int]int

func (p pageRanks) next(page int) int {
	r := p[page]
	p[page] = r + 1
	return r
}
