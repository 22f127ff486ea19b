package associate

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// RawFileResolver finds the raster file the materialisation tool wrote for an
// image index of one document.
type RawFileResolver interface {
	Resolve(index int) (path string, ok bool, err error)
}

// PaddingProbe infers the file name from the tool's <prefix>-<index>.<ext> naming.
// The zero-padding width is not stable across tool versions, so 3-digit, 4-digit
// and unpadded indexes are tried in that order. The first width with any match
// wins and the lexicographically first match is returned.
type PaddingProbe struct {
	Dir    string
	Prefix string
}

var probeFormats = []string{"%03d", "%04d", "%d"}

func (p PaddingProbe) Resolve(index int) (string, bool, error) {
	base := escapeGlob(filepath.Join(p.Dir, p.Prefix))
	for _, f := range probeFormats {
		pattern := base + "-" + fmt.Sprintf(f, index) + ".*"
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return "", false, fmt.Errorf("glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			continue
		}
		sort.Strings(matches)
		return matches[0], true, nil
	}
	return "", false, nil
}

// IndexedFiles resolves from an explicit index, for tools that report their output files.
type IndexedFiles map[int]string

func (m IndexedFiles) Resolve(index int) (string, bool, error) {
	p, ok := m[index]
	return p, ok, nil
}

func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '*', r == '?', r == '[', r == ']':
			b.WriteRune('\\')
		case r == '\\' && filepath.Separator != '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
