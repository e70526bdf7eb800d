package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for studylog, stored in ~/.studylog/config.yaml.
type Config struct {
	// DataDir holds the entry store. Empty = ~/.studylog.
	DataDir string `yaml:"data_dir"`
	// Backend selects the entry store: file, sqlite or memory.
	Backend string `yaml:"backend"`
	// Categories are the values offered and accepted by `studylog add`.
	Categories []string `yaml:"categories"`
	// DefaultSort is the list order used when --sort is not given.
	DefaultSort string `yaml:"default_sort"`
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

const (
	DefaultBackend    = "file"
	DefaultSort       = "newest"
	DefaultLogLevel   = "warn"
	defaultDirName    = ".studylog"
	defaultConfigName = "config.yaml"
	envDataDir        = "STUDYLOG_DIR"
	envBackend        = "STUDYLOG_BACKEND"
	envLogLevel       = "STUDYLOG_LOG_LEVEL"
)

// DefaultCategories mirrors the options of the entry form.
var DefaultCategories = []string{
	"DSA",
	"Web Development",
	"System Design",
	"Machine Learning",
	"Competitive Programming",
	"Other",
}

// configTemplate is the annotated config written on first run.
const configTemplate = `# studylog configuration
#
# All settings are optional; anything left out falls back to the default
# shown here. Environment variables STUDYLOG_DIR, STUDYLOG_BACKEND and
# STUDYLOG_LOG_LEVEL override the file.

# Where entries are stored. Empty means ~/.studylog.
data_dir: ""

# Entry store backend:
#   file   - entries.json in data_dir (default)
#   sqlite - studylog.db in data_dir
#   memory - nothing is persisted
backend: file

# Categories accepted by "studylog add" and offered as list filters.
categories:
  - DSA
  - Web Development
  - System Design
  - Machine Learning
  - Competitive Programming
  - Other

# List order when --sort is not given: newest, oldest, mostProblems, mostHours.
default_sort: newest

# Log level written to stderr: debug, info, warn, error.
log_level: warn
`

// Default returns a Config pre-filled with built-in defaults.
func Default() Config {
	return Config{
		Backend:     DefaultBackend,
		Categories:  append([]string(nil), DefaultCategories...),
		DefaultSort: DefaultSort,
		LogLevel:    DefaultLogLevel,
	}
}

// BaseDir returns the default root data directory (~/.studylog).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, defaultDirName), nil
}

// DefaultPath returns ~/.studylog/config.yaml.
func DefaultPath() (string, error) {
	base, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, defaultConfigName), nil
}

// Load reads the config file at path, creating it with annotated defaults on
// first run. An empty path means DefaultPath. Environment overrides are
// applied last, and DataDir is always resolved to a concrete directory.
func Load(path string) (Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Default(), err
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
	case err != nil:
		return Default(), fmt.Errorf("reading config file %s: %w", path, err)
	default:
		var fromFile Config
		if err := yaml.Unmarshal(data, &fromFile); err != nil {
			return Default(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
		}
		cfg = fromFile
		cfg.fillDefaults()
	}

	cfg.applyEnvOverrides()
	if cfg.DataDir == "" {
		base, err := BaseDir()
		if err != nil {
			return cfg, err
		}
		cfg.DataDir = base
	}
	return cfg, nil
}

// fillDefaults replaces zero-value fields with built-in defaults so callers
// always get a usable Config even if the file is only partially filled in.
func (c *Config) fillDefaults() {
	if c.Backend == "" {
		c.Backend = DefaultBackend
	}
	if len(c.Categories) == 0 {
		c.Categories = append([]string(nil), DefaultCategories...)
	}
	if c.DefaultSort == "" {
		c.DefaultSort = DefaultSort
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(envDataDir); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv(envBackend); v != "" {
		c.Backend = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		c.LogLevel = v
	}
}

// HasCategory reports whether name is one of the configured categories.
func (c Config) HasCategory(name string) bool {
	return slices.Contains(c.Categories, name)
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
