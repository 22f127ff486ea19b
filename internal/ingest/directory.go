package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joseph-ayodele/heritage-figures/constants"
	"github.com/joseph-ayodele/heritage-figures/internal/common"
)

// DirStats summarizes a directory listing.
type DirStats struct {
	Scanned uint32
	Matched uint32
	Hidden  uint32
}

// ListDocuments returns the documents found directly in root (no recursion), sorted
// by file name. Hidden files and directories are skipped. It fails with
// common.ErrNoDocuments when nothing matches.
func ListDocuments(root string) ([]string, DirStats, error) {
	var stats DirStats
	if strings.TrimSpace(root) == "" {
		return nil, stats, common.NewAppError(common.CodeInput, "root_path is required", common.ErrInvalidInput)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, stats, common.NewAppError(common.CodeInput, fmt.Sprintf("read %s", root), errors.Join(common.ErrIO, err))
	}

	var docs []string
	for _, d := range entries {
		stats.Scanned++
		if IsHidden(d.Name()) {
			stats.Hidden++
			continue
		}
		if d.IsDir() || !constants.IsDocumentExt(filepath.Ext(d.Name())) {
			continue
		}
		stats.Matched++
		docs = append(docs, filepath.Join(root, d.Name()))
	}
	sort.Strings(docs)

	if len(docs) == 0 {
		return nil, stats, common.NewAppError(common.CodeInput, fmt.Sprintf("no PDF files found in %s", root), common.ErrNoDocuments)
	}
	return docs, stats, nil
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
