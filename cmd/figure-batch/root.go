package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joseph-ayodele/heritage-figures/constants"
	"github.com/joseph-ayodele/heritage-figures/internal/common"
	"github.com/joseph-ayodele/heritage-figures/internal/pipeline"
)

var cfgFile string

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"root":      "root",
	"out":       "out_dir",
	"work":      "work_dir",
	"log-level": "log_level",
	"xlsx":      "manifest.xlsx",
	"json":      "manifest.json",
	"sqlite":    "manifest.sqlite",
}

var rootCmd = &cobra.Command{
	Use:   "figure-batch",
	Short: "Extract survey figures and their captions from heritage survey reports",
	Long: `figure-batch scans a directory of geological heritage survey reports (PDF),
attributes every embedded photo to the survey record whose sheet precedes it,
pairs it with a caption from the page text and copies it into a per-record
folder. A manifest.csv and README.txt describing the result are written to
the output directory.

Requires pdftotext and pdfimages (poppler-utils) on PATH unless configured.

Examples:
  figure-batch                          # process ./*.pdf into ./extracted_images
  figure-batch --root ./reports --xlsx  # also write manifest.xlsx
  FIGURES_WINDOW_MAX_OFFSET=3 figure-batch`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBatch,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (default: ./figures.yaml)")
	f.String("root", ".", "directory holding the input PDF files")
	f.String("out", "", "output directory (default: <root>/extracted_images)")
	f.String("work", "", "working directory for raw rasters (default: <root>/.tmp_image_extract)")
	f.String("log-level", "info", "log level: debug, info, warn or error")
	f.Bool("xlsx", false, "also write "+constants.ManifestXLSX)
	f.Bool("json", false, "also write "+constants.ManifestJSON)
	f.Bool("sqlite", false, "also write "+constants.ManifestSQLite+" (SQLite)")
}

func runBatch(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	cfg, err := common.LoadConfig(v, cfgFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	rep, err := pipeline.New(cfg, logger).Run(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Extracted images: %d\n", rep.Images)
	fmt.Fprintf(out, "Survey count: %d\n", rep.Surveys)
	fmt.Fprintf(out, "Manifest: %s\n", rep.ManifestPath)
	return nil
}

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}
