// Package pipeline runs the figure extraction batch over a directory of survey reports.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/heritage-figures/constants"
	"github.com/joseph-ayodele/heritage-figures/internal/associate"
	"github.com/joseph-ayodele/heritage-figures/internal/captions"
	"github.com/joseph-ayodele/heritage-figures/internal/common"
	"github.com/joseph-ayodele/heritage-figures/internal/ingest"
	"github.com/joseph-ayodele/heritage-figures/internal/manifest"
	"github.com/joseph-ayodele/heritage-figures/internal/selection"
	"github.com/joseph-ayodele/heritage-figures/internal/survey"
	"github.com/joseph-ayodele/heritage-figures/internal/tools"
)

// Report is the outcome of a successful run.
type Report struct {
	RunID        string
	Documents    []string
	Images       int
	Surveys      int
	ManifestPath string
	Files        []string
	Stats        Stats
	Duration     time.Duration
}

// Pipeline wires the stages together for one configuration.
type Pipeline struct {
	cfg       *common.Config
	logger    *slog.Logger
	processor *Processor
	writer    *manifest.Writer
}

// New builds a pipeline backed by the poppler command line tools.
func New(cfg *common.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	ext := tools.NewExtractor(tools.Config{
		Pdftotext:       cfg.Tools.Pdftotext,
		Pdfimages:       cfg.Tools.Pdfimages,
		VerifyPageCount: cfg.Tools.VerifyPageCount,
	}, logger)
	return NewWithTools(cfg, ext, logger)
}

// NewWithTools builds a pipeline over the given extraction tools.
func NewWithTools(cfg *common.Config, t Tools, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	resolver := survey.NewResolver(cfg.Survey.MaxLookback)
	window := survey.Window{MinOffset: cfg.Window.MinOffset, MaxOffset: cfg.Window.MaxOffset}
	capx := captions.NewExtractor(captions.Rules{
		MinLen:    cfg.Captions.MinLen,
		MaxLen:    cfg.Captions.MaxLen,
		Keywords:  cfg.Captions.Keywords,
		Blacklist: cfg.Captions.Blacklist,
	})
	selector := selection.NewSelector(resolver, window, selection.Thresholds{
		MinArea:     cfg.Selection.MinArea,
		SmallWidth:  cfg.Selection.SmallWidth,
		SmallHeight: cfg.Selection.SmallHeight,
	}, logger)
	mat := associate.NewMaterializer(cfg.OutDir, logger)

	return &Pipeline{
		cfg:       cfg,
		logger:    logger,
		processor: NewProcessor(logger, t, resolver, window, capx, selector, mat, cfg.WorkDir),
		writer: manifest.NewWriter(cfg.OutDir, manifest.Options{
			XLSX:   cfg.Manifest.XLSX,
			JSON:   cfg.Manifest.JSON,
			SQLite: cfg.Manifest.SQLite,
		}, logger),
	}
}

// Run processes every document under the configured root in name order and writes
// the manifest. The first tool or filesystem failure aborts the run.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := p.logger.With("run_id", runID)
	ctx = common.WithRunID(ctx, runID)
	ctx = common.WithLogger(ctx, log)

	docs, dirStats, err := ingest.ListDocuments(p.cfg.Root)
	if err != nil {
		log.Error("pipeline.list.failed", "root", p.cfg.Root, "error", err)
		return nil, err
	}
	log.Info("pipeline.start",
		"root", p.cfg.Root,
		"documents", len(docs),
		"scanned", dirStats.Scanned,
		"hidden", dirStats.Hidden,
	)

	for _, dir := range []string{p.cfg.OutDir, p.cfg.WorkDir} {
		if err := resetDir(dir); err != nil {
			return nil, err
		}
	}

	state := NewRunState()
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := p.processor.ProcessDocument(ctx, doc, state); err != nil {
			log.Error("pipeline.document.failed", "document", doc, "error", err)
			return nil, fmt.Errorf("process %s: %w", doc, err)
		}
	}

	res, err := p.writer.Write(ctx, state.Images)
	if err != nil {
		log.Error("pipeline.manifest.failed", "error", err)
		return nil, err
	}

	rep := &Report{
		RunID:        runID,
		Documents:    docs,
		Images:       res.Summary.TotalImages,
		Surveys:      res.Summary.Surveys,
		ManifestPath: filepath.Join(p.cfg.OutDir, constants.ManifestCSV),
		Files:        res.Files,
		Stats:        state.Stats,
		Duration:     time.Since(start),
	}
	log.Info("pipeline.done", append(state.Stats.LogAttrs(),
		"surveys", rep.Surveys,
		"images_with_title", res.Summary.ImagesWithTitle,
		"duration_ms", rep.Duration.Milliseconds(),
	)...)
	return rep, nil
}

// resetDir removes dir and everything under it, then recreates it empty.
func resetDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return common.IOError("remove", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return common.IOError("mkdir", dir, err)
	}
	return nil
}
