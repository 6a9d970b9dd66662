// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/scalefield/console/lib/console"
	"github.com/scalefield/console/lib/tui"
)

// MinPanelWidth is the narrowest detail panel that still fits a
// label column and a value column.
const MinPanelWidth = 24

// Compression values accepted by export_compression.
const (
	CompressionNone = "none"
	CompressionZstd = "zstd"
)

// Config is the console configuration.
type Config struct {
	// Theme is "auto", "dark", or "light". Auto asks the terminal for
	// its background color.
	Theme string `yaml:"theme"`

	// PanelWidth is the detail panel width in columns.
	PanelWidth int `yaml:"panel_width"`

	// EnterDelay is how long the panel stays mounted off-screen before
	// it starts sliding in.
	EnterDelay Duration `yaml:"enter_delay"`

	// ExitDuration is the slide length in both directions.
	ExitDuration Duration `yaml:"exit_duration"`

	// Bundle is a data bundle file. Empty means the built-in dataset.
	Bundle string `yaml:"bundle"`

	// Identity is an age identity file for .age bundles.
	Identity string `yaml:"identity"`

	// Database is a SQLite database whose tables back the table
	// editor. Empty means the bundle's tables.
	Database string `yaml:"database"`

	// ExportDir is where the "e" key writes page exports.
	ExportDir string `yaml:"export_dir"`

	// ExportCompression is "none" or "zstd".
	ExportCompression string `yaml:"export_compression"`

	// StartPage is the route shown at startup: "overview",
	// "analytics", "settings" or a collection kind such as
	// "deployments".
	StartPage string `yaml:"start_page"`

	// LogFile, if set, receives a copy of every log record.
	LogFile string `yaml:"log_file"`

	// Watch reloads the bundle when its file changes.
	Watch bool `yaml:"watch"`
}

// Duration is a time.Duration written as a Go duration string in
// configuration files ("10ms", "1.5s"). Bare integers are
// milliseconds.
type Duration time.Duration

// UnmarshalYAML parses a duration scalar.
func (duration *Duration) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}
	parsed, err := ParseDuration(text)
	if err != nil {
		return err
	}
	*duration = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration in Go syntax.
func (duration Duration) MarshalYAML() (any, error) {
	return time.Duration(duration).String(), nil
}

// Std returns the value as a time.Duration.
func (duration Duration) Std() time.Duration { return time.Duration(duration) }

// ParseDuration accepts Go duration strings and bare millisecond
// counts.
func ParseDuration(text string) (time.Duration, error) {
	text = strings.TrimSpace(text)
	if milliseconds, err := strconv.Atoi(text); err == nil {
		return time.Duration(milliseconds) * time.Millisecond, nil
	}
	parsed, err := time.ParseDuration(text)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", text, err)
	}
	return parsed, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Theme:             "auto",
		PanelWidth:        56,
		EnterDelay:        Duration(10 * time.Millisecond),
		ExitDuration:      Duration(300 * time.Millisecond),
		ExportDir:         ".",
		ExportCompression: CompressionNone,
		StartPage:         string(console.KindDeployment),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/scalefield/console.yaml, or
// the ~/.config equivalent.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		homeDir, _ := os.UserHomeDir()
		base = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(base, "scalefield", "console.yaml")
}

// Load finds the configuration file through SCALEFIELD_CONFIG or the
// default path and loads it. When neither names an existing file the
// defaults are returned with environment overrides applied.
func Load() (*Config, error) {
	if path := os.Getenv("SCALEFIELD_CONFIG"); path != "" {
		return LoadFile(path)
	}

	path := DefaultPath()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if err := cfg.applyEnvironment(); err != nil {
			return nil, err
		}
		cfg.expandVariables()
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path, which must exist, then
// applies SCALEFIELD_* environment overrides.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.applyEnvironment(); err != nil {
		return nil, err
	}
	cfg.expandVariables()

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		// JSON is valid YAML once comments and trailing commas are
		// stripped, so both go through the same decoder and the same
		// field tags.
		data = jsonc.ToJSON(data)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// applyEnvironment overrides file values with SCALEFIELD_* variables.
func (c *Config) applyEnvironment() error {
	fields := map[string]*string{
		"SCALEFIELD_THEME":      &c.Theme,
		"SCALEFIELD_BUNDLE":     &c.Bundle,
		"SCALEFIELD_IDENTITY":   &c.Identity,
		"SCALEFIELD_DATABASE":   &c.Database,
		"SCALEFIELD_EXPORT_DIR": &c.ExportDir,
		"SCALEFIELD_PAGE":       &c.StartPage,
		"SCALEFIELD_LOG_FILE":   &c.LogFile,
	}
	for name, field := range fields {
		if value, ok := os.LookupEnv(name); ok {
			*field = value
		}
	}

	if value, ok := os.LookupEnv("SCALEFIELD_PANEL_WIDTH"); ok {
		width, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("SCALEFIELD_PANEL_WIDTH: %w", err)
		}
		c.PanelWidth = width
	}
	if value, ok := os.LookupEnv("SCALEFIELD_WATCH"); ok {
		watch, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("SCALEFIELD_WATCH: %w", err)
		}
		c.Watch = watch
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in the
// path fields.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME":            os.Getenv("HOME"),
		"XDG_CONFIG_HOME": os.Getenv("XDG_CONFIG_HOME"),
	}
	c.Bundle = expandVars(c.Bundle, vars)
	c.Identity = expandVars(c.Identity, vars)
	c.Database = expandVars(c.Database, vars)
	c.ExportDir = expandVars(c.ExportDir, vars)
	c.LogFile = expandVars(c.LogFile, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(tui.ThemeNames, strings.ToLower(c.Theme)) && c.Theme != "" {
		errs = append(errs, fmt.Errorf("theme must be one of: %v", tui.ThemeNames))
	}

	if c.PanelWidth < MinPanelWidth {
		errs = append(errs, fmt.Errorf("panel_width must be at least %d, got %d", MinPanelWidth, c.PanelWidth))
	}

	if c.EnterDelay < 0 {
		errs = append(errs, fmt.Errorf("enter_delay must not be negative"))
	}
	if c.ExitDuration < 0 {
		errs = append(errs, fmt.Errorf("exit_duration must not be negative"))
	}

	if c.StartPage != "" && !console.ValidRoute(c.StartPage) {
		errs = append(errs, fmt.Errorf("unknown start_page %q", c.StartPage))
	}

	switch c.ExportCompression {
	case "", CompressionNone, CompressionZstd:
	default:
		errs = append(errs, fmt.Errorf("export_compression must be %q or %q", CompressionNone, CompressionZstd))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
