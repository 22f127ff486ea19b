package constants

import "strings"

// DocumentExtensions holds the extensions picked up from the input root.
var DocumentExtensions = map[string]struct{}{
	"pdf": {},
}

// DefaultRasterExt is used when an extracted raster file has no extension.
const DefaultRasterExt = ".jpg"

// Output artifact names inside the output directory.
const (
	ManifestCSV    = "manifest.csv"
	ManifestXLSX   = "manifest.xlsx"
	ManifestJSON   = "manifest.json"
	ManifestSQLite = "manifest.db"
	SummaryFile    = "README.txt"
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsDocumentExt reports whether ext (with or without dot) names an input document.
func IsDocumentExt(ext string) bool {
	_, ok := DocumentExtensions[NormalizeExt(ext)]
	return ok
}
