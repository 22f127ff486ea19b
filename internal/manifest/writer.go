package manifest

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/heritage-figures/constants"
	"github.com/joseph-ayodele/heritage-figures/internal/common"
	"github.com/joseph-ayodele/heritage-figures/internal/entity"
)

// Options selects the optional sinks. manifest.csv and README.txt are always written.
type Options struct {
	XLSX   bool
	JSON   bool
	SQLite bool
}

// Result describes what was written.
type Result struct {
	Rows    []Row
	Summary Summary
	Files   []string // paths under the output directory, in write order
}

// Writer emits the manifest artifacts into the output directory.
type Writer struct {
	dir    string
	opts   Options
	logger *slog.Logger
}

func NewWriter(dir string, opts Options, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{dir: dir, opts: opts, logger: logger}
}

// Write sorts the images into manifest rows and writes every enabled artifact.
func (w *Writer) Write(ctx context.Context, images []entity.OutputImage) (Result, error) {
	start := time.Now()
	rows := FromImages(images)
	res := Result{Rows: rows, Summary: Summarize(rows)}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return res, common.NewAppError(common.CodeManifest, "encode csv", err)
	}
	if err := w.writeFile(&res, constants.ManifestCSV, buf.Bytes()); err != nil {
		return res, err
	}

	buf.Reset()
	if err := WriteSummary(&buf, res.Summary); err != nil {
		return res, common.NewAppError(common.CodeManifest, "encode summary", err)
	}
	if err := w.writeFile(&res, constants.SummaryFile, buf.Bytes()); err != nil {
		return res, err
	}

	if w.opts.XLSX {
		b, err := BuildXLSX(rows, res.Summary)
		if err != nil {
			return res, common.NewAppError(common.CodeManifest, "build xlsx", err)
		}
		if err := w.writeFile(&res, constants.ManifestXLSX, b); err != nil {
			return res, err
		}
	}

	if w.opts.JSON {
		b, err := BuildJSON(rows, res.Summary)
		if err != nil {
			return res, common.NewAppError(common.CodeManifest, "build json", err)
		}
		if err := w.writeFile(&res, constants.ManifestJSON, b); err != nil {
			return res, err
		}
	}

	if w.opts.SQLite {
		p := filepath.Join(w.dir, constants.ManifestSQLite)
		if err := WriteSQLite(ctx, p, rows); err != nil {
			return res, common.NewAppError(common.CodeManifest, "write sqlite", err)
		}
		res.Files = append(res.Files, p)
	}

	w.logger.Info("manifest.write.ok",
		"rows", len(rows),
		"surveys", res.Summary.Surveys,
		"with_title", res.Summary.ImagesWithTitle,
		"files", len(res.Files),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (w *Writer) writeFile(res *Result, name string, data []byte) error {
	p := filepath.Join(w.dir, name)
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return common.IOError("mkdir", w.dir, err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return common.IOError("write", p, err)
	}
	res.Files = append(res.Files, p)
	return nil
}
