// Package captions scrapes figure caption candidates from layout-preserved page text.
package captions

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/joseph-ayodele/heritage-figures/constants"
)

var (
	reLineBreak  = regexp.MustCompile(`\r\n|[\n\r\v\x1c\x1d\x1e\x85\x{2028}\x{2029}]`)
	reSpaceRun   = regexp.MustCompile(`[\s\p{Zs}]+`)
	reColumnGap  = regexp.MustCompile(`[\s\p{Zs}]{2,}`) // pdftotext -layout column separator
	rePageFooter = regexp.MustCompile(`^-\s*\d+\s*-$`)
	reGroupLabel = regexp.MustCompile(`^\d+\s*그룹`)
	reLetter     = regexp.MustCompile(`[가-힣A-Za-z]`)
)

// Rules controls which fragments count as captions.
type Rules struct {
	MinLen    int      // inclusive, in runes
	MaxLen    int      // inclusive, in runes
	Keywords  []string // at least one must appear
	Blacklist []string // any occurrence marks boilerplate
}

// DefaultRules returns the rules tuned for geological heritage survey sheets.
func DefaultRules() Rules {
	return Rules{
		MinLen:    4,
		MaxLen:    80,
		Keywords:  constants.DefaultCaptionKeywords(),
		Blacklist: constants.DefaultBoilerplateLabels(),
	}
}

// Extractor applies Rules to page text.
type Extractor struct {
	rules Rules
}

func NewExtractor(rules Rules) *Extractor {
	return &Extractor{rules: rules}
}

// Extract returns the caption candidates of one page in first-seen order, without
// duplicates. Whole lines are screened for boilerplate before being split into
// column fragments, and every fragment is screened again.
func (e *Extractor) Extract(pageText string) []string {
	var out []string
	seen := map[string]struct{}{}

	for _, raw := range reLineBreak.Split(pageText, -1) {
		line := Clean(raw)
		if e.IsBoilerplate(line) {
			continue
		}
		for _, part := range reColumnGap.Split(raw, -1) {
			frag := Clean(part)
			if e.IsBoilerplate(frag) || !e.isCandidate(frag) {
				continue
			}
			if _, dup := seen[frag]; dup {
				continue
			}
			seen[frag] = struct{}{}
			out = append(out, frag)
		}
	}
	return out
}

// Clean trims s and collapses every whitespace run to a single space.
func Clean(s string) string {
	return strings.TrimSpace(reSpaceRun.ReplaceAllString(s, " "))
}

// IsBoilerplate reports whether a cleaned line or fragment can never be a caption:
// empty text, page footers like "- 12 -", group labels like "3그룹", or any
// blacklisted form label.
func (e *Extractor) IsBoilerplate(s string) bool {
	if s == "" {
		return true
	}
	if rePageFooter.MatchString(s) || reGroupLabel.MatchString(s) {
		return true
	}
	for _, b := range e.rules.Blacklist {
		if b != "" && strings.Contains(s, b) {
			return true
		}
	}
	return false
}

func (e *Extractor) isCandidate(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < e.rules.MinLen || n > e.rules.MaxLen {
		return false
	}
	if !reLetter.MatchString(s) {
		return false
	}
	return e.hasKeyword(s)
}

func (e *Extractor) hasKeyword(s string) bool {
	for _, k := range e.rules.Keywords {
		if k != "" && strings.Contains(s, k) {
			return true
		}
	}
	return false
}
