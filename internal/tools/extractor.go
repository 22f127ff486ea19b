package tools

import (
	"context"
	"log/slog"
)

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdfimages string // binary name or absolute path; if empty -> "pdfimages"

	// VerifyPageCount cross-checks the form-feed page split against the PDF page tree.
	VerifyPageCount bool
}

// Extractor wraps the poppler command line tools used to pull text and rasters out of a PDF.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	return NewExtractorWithRunner(cfg, execRunner{}, logger)
}

// NewExtractorWithRunner is NewExtractor with a caller supplied Runner.
func NewExtractorWithRunner(cfg Config, runner Runner, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdfimages == "" {
		cfg.Pdfimages = "pdfimages"
	}
	if runner == nil {
		runner = execRunner{}
	}
	return &Extractor{cfg: cfg, runner: runner, logger: logger}
}

// run executes a tool and converts a failure into a ToolError.
func (e *Extractor) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, errb, err := e.runner.Run(ctx, name, e.logger, args...)
	if err != nil {
		return nil, newToolError(name, args, errb, err)
	}
	return out, nil
}
