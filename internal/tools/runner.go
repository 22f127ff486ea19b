package tools

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/joseph-ayodele/heritage-figures/internal/common"
)

// stderrLogLimit caps how much tool stderr is copied into a log line.
const stderrLogLimit = 8 << 10

// Runner lets us stub external commands in tests.
type Runner interface {
	Run(ctx context.Context, name string, logger *slog.Logger, args ...string) (stdout, stderr []byte, err error)
}

// execRunner runs poppler binaries as child processes. Output is buffered in full;
// pdftotext and pdfimages -list are small compared to the rasters pdfimages writes to disk.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, logger *slog.Logger, args ...string) ([]byte, []byte, error) {
	log := toolLogger(ctx, logger).With("tool", name)
	log.Debug("tool.exec.start", "args", strings.Join(args, " "))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		log.Error("tool.exec.failed",
			"args", strings.Join(args, " "),
			"exit_code", exitCode(err),
			"elapsed_ms", elapsed,
			"error", err,
			"stderr", truncate(stderr.String(), stderrLogLimit),
		)
		return stdout.Bytes(), stderr.Bytes(), err
	}
	log.Debug("tool.exec.ok",
		"elapsed_ms", elapsed,
		"stdout_bytes", stdout.Len(),
		"stderr_bytes", stderr.Len(),
	)
	return stdout.Bytes(), stderr.Bytes(), nil
}

// toolLogger tags logger with the run and document carried by ctx.
func toolLogger(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	if id := common.RunIDFromContext(ctx); id != "" {
		logger = logger.With("run_id", id)
	}
	if doc := common.DocumentFromContext(ctx); doc != "" {
		logger = logger.With("document", doc)
	}
	return logger
}

// exitCode returns the process exit status, or -1 when the tool never ran to exit.
func exitCode(err error) int {
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	return -1
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
