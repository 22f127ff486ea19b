// Package survey finds where survey records start inside a report and attributes
// pages to the record they belong to.
package survey

import (
	"regexp"

	"github.com/joseph-ayodele/heritage-figures/constants"
	"github.com/joseph-ayodele/heritage-figures/internal/entity"
)

// reMarker matches the record label followed by a code such as AB123.
var reMarker = regexp.MustCompile(regexp.QuoteMeta(constants.SurveyMarker) + `\s*([A-Z]{2}\d{3})`)

// LocateAnchors scans pages in order and returns one anchor per page that carries the
// record marker, using the first match on the page. Codes are not deduplicated.
func LocateAnchors(pages []string) []entity.Anchor {
	var anchors []entity.Anchor
	for i, text := range pages {
		m := reMarker.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		anchors = append(anchors, entity.Anchor{Page: i + 1, Code: m[1]})
	}
	return anchors
}

// IsRecordCode reports whether s has the two-letter, three-digit record code shape.
func IsRecordCode(s string) bool {
	return reCode.MatchString(s)
}

var reCode = regexp.MustCompile(`^[A-Z]{2}\d{3}$`)
