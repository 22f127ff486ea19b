package common

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/joseph-ayodele/heritage-figures/constants"
)

// Config holds all application configuration
type Config struct {
	Root      string          `mapstructure:"root"`
	OutDir    string          `mapstructure:"out_dir"`
	WorkDir   string          `mapstructure:"work_dir"`
	LogLevel  string          `mapstructure:"log_level"`
	Tools     ToolsConfig     `mapstructure:"tools"`
	Survey    SurveyConfig    `mapstructure:"survey"`
	Window    WindowConfig    `mapstructure:"window"`
	Selection SelectionConfig `mapstructure:"selection"`
	Captions  CaptionsConfig  `mapstructure:"captions"`
	Manifest  ManifestConfig  `mapstructure:"manifest"`
}

// ToolsConfig names the external extraction binaries.
type ToolsConfig struct {
	Pdftotext       string `mapstructure:"pdftotext"`
	Pdfimages       string `mapstructure:"pdfimages"`
	VerifyPageCount bool   `mapstructure:"verify_page_count"`
}

// SurveyConfig tunes record attribution.
type SurveyConfig struct {
	MaxLookback int `mapstructure:"max_lookback"`
}

// WindowConfig is the admissible page offset range shared by captions and images.
type WindowConfig struct {
	MinOffset int `mapstructure:"min_offset"`
	MaxOffset int `mapstructure:"max_offset"`
}

// SelectionConfig holds the geometric image thresholds.
type SelectionConfig struct {
	MinArea     int `mapstructure:"min_area"`
	SmallWidth  int `mapstructure:"small_width"`
	SmallHeight int `mapstructure:"small_height"`
}

// CaptionsConfig holds caption gating rules.
type CaptionsConfig struct {
	MinLen    int      `mapstructure:"min_len"`
	MaxLen    int      `mapstructure:"max_len"`
	Keywords  []string `mapstructure:"keywords"`
	Blacklist []string `mapstructure:"blacklist"`
}

// ManifestConfig toggles the optional manifest sinks. CSV and README are always written.
type ManifestConfig struct {
	XLSX   bool `mapstructure:"xlsx"`
	JSON   bool `mapstructure:"json"`
	SQLite bool `mapstructure:"sqlite"`
}

// EnvPrefix is prepended to every environment override, e.g. FIGURES_WINDOW_MAX_OFFSET.
const EnvPrefix = "FIGURES"

// SetDefaults registers every key so that env overrides and Unmarshal see them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("root", ".")
	v.SetDefault("out_dir", "")
	v.SetDefault("work_dir", "")
	v.SetDefault("log_level", "info")

	v.SetDefault("tools.pdftotext", "pdftotext")
	v.SetDefault("tools.pdfimages", "pdfimages")
	v.SetDefault("tools.verify_page_count", true)

	v.SetDefault("survey.max_lookback", 2)

	v.SetDefault("window.min_offset", 1)
	v.SetDefault("window.max_offset", 2)

	v.SetDefault("selection.min_area", 50000)
	v.SetDefault("selection.small_width", 260)
	v.SetDefault("selection.small_height", 70)

	v.SetDefault("captions.min_len", 4)
	v.SetDefault("captions.max_len", 80)
	v.SetDefault("captions.keywords", constants.DefaultCaptionKeywords())
	v.SetDefault("captions.blacklist", constants.DefaultBoilerplateLabels())

	v.SetDefault("manifest.xlsx", false)
	v.SetDefault("manifest.json", false)
	v.SetDefault("manifest.sqlite", false)
}

// LoadConfig reads defaults, an optional config file and FIGURES_* environment
// variables into a Config. Flags bound on v take precedence over all of them.
func LoadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("figures")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, NewAppError(CodeConfig, "read config file", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, NewAppError(CodeConfig, "unmarshal config", err)
	}
	cfg.applyDerived()
	return &cfg, nil
}

// applyDerived fills directories that default relative to Root.
func (c *Config) applyDerived() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.OutDir == "" {
		c.OutDir = filepath.Join(c.Root, "extracted_images")
	}
	if c.WorkDir == "" {
		c.WorkDir = filepath.Join(c.Root, ".tmp_image_extract")
	}
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	v := NewValidator().
		Field("root", c.Root, Required).
		Field("out_dir", c.OutDir, Required).
		Field("work_dir", c.WorkDir, Required).
		Field("tools.pdftotext", c.Tools.Pdftotext, Required).
		Field("tools.pdfimages", c.Tools.Pdfimages, Required).
		Field("survey.max_lookback", c.Survey.MaxLookback, Min(0)).
		Field("window.min_offset", c.Window.MinOffset, Min(0)).
		Field("window.max_offset", c.Window.MaxOffset, Min(c.Window.MinOffset)).
		Field("selection.min_area", c.Selection.MinArea, Min(0)).
		Field("captions.min_len", c.Captions.MinLen, Min(1)).
		Field("captions.max_len", c.Captions.MaxLen, Min(c.Captions.MinLen)).
		Field("captions.keywords", c.Captions.Keywords, NonEmpty).
		Field("log_level", c.LogLevel, OneOf("debug", "info", "warn", "error"))

	// Both directories are removed at the start of a run.
	if within(c.OutDir, c.Root) {
		v.Add(ValidationError{Field: "out_dir", Value: c.OutDir, Message: "must not contain root"})
	}
	if within(c.WorkDir, c.Root) {
		v.Add(ValidationError{Field: "work_dir", Value: c.WorkDir, Message: "must not contain root"})
	}
	if within(c.OutDir, c.WorkDir) || within(c.WorkDir, c.OutDir) {
		v.Add(ValidationError{Field: "work_dir", Value: c.WorkDir, Message: "must not overlap out_dir"})
	}
	if c.Window.MaxOffset > c.Survey.MaxLookback {
		v.Add(ValidationError{Field: "window.max_offset", Value: c.Window.MaxOffset, Message: "must not exceed survey.max_lookback"})
	}
	if err := v.Error(); err != nil {
		return NewAppError(CodeConfig, "invalid configuration", fmt.Errorf("%w: %v", ErrValidation, err))
	}
	return nil
}

// within reports whether path is dir or lies below it.
func within(dir, path string) bool {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// SlogLevel maps LogLevel onto slog levels, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
