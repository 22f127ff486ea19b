package tools

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/text/unicode/norm"
)

// PageSeparator is the form feed pdftotext writes after every page.
const PageSeparator = "\f"

// PageTexts returns the layout-preserving text of every page, index 0 being page 1.
func (e *Extractor) PageTexts(ctx context.Context, path string) ([]string, error) {
	// pdftotext -layout -enc UTF-8 <path> -
	out, err := e.run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", path, "-")
	if err != nil {
		return nil, err
	}
	pages := SplitPages(NormalizeText(string(out)))

	if e.cfg.VerifyPageCount {
		e.verifyPageCount(path, pages)
	}
	return pages, nil
}

// SplitPages splits pdftotext output on form feeds. The empty tail after the
// final form feed is kept so that page numbering matches the tool's output.
func SplitPages(text string) []string {
	return strings.Split(text, PageSeparator)
}

// NormalizeText drops invalid UTF-8 and composes Hangul jamo into syllables.
func NormalizeText(s string) string {
	s = strings.ToValidUTF8(s, "")
	return norm.NFC.String(s)
}

func (e *Extractor) verifyPageCount(path string, pages []string) {
	n, err := pdfPageCount(path)
	if err != nil {
		e.logger.Warn("page count check skipped", "path", path, "error", err)
		return
	}
	separators := len(pages) - 1
	if separators != n {
		e.logger.Warn("page split does not match pdf page count",
			"path", path,
			"pdf_pages", n,
			"text_pages", separators,
		)
	}
}

func pdfPageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := api.PageCount(f, nil)
	if err != nil {
		return 0, fmt.Errorf("pdf page count: %w", err)
	}
	return n, nil
}
