// Package config loads Caddie IQ settings from a YAML file with
// environment overrides layered on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/HendryAvila/caddie-iq/internal/advice"
	"github.com/HendryAvila/caddie-iq/internal/logging"
	"github.com/HendryAvila/caddie-iq/internal/store"
	"github.com/HendryAvila/caddie-iq/internal/tracking"
)

// Environment variables that override file values.
const (
	EnvDataDir   = "CADDIE_DATA_DIR"
	EnvBackend   = "CADDIE_BACKEND"
	EnvLogLevel  = "CADDIE_LOG_LEVEL"
	EnvLogFormat = "CADDIE_LOG_FORMAT"
)

// FileName is the config file looked up inside the data dir.
const FileName = "config.yaml"

// Config holds every tunable setting.
type Config struct {
	// DataDir is where the file backend and SQLite database live.
	DataDir string `yaml:"data_dir"`

	// Backend selects the store: file, sqlite or memory.
	Backend string `yaml:"backend"`

	// LogLevel sets verbosity (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`

	// HistoryLimit caps the finished rounds shown by the status view.
	HistoryLimit int `yaml:"history_limit"`

	// CloseMatchYards is the bag match window around the adjusted distance.
	CloseMatchYards int `yaml:"close_match_yards"`
}

// DefaultDataDir returns ~/.caddie, or .caddie when the home dir is unknown.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".caddie"
	}
	return filepath.Join(home, ".caddie")
}

// DefaultPath returns the config file inside the default data dir.
func DefaultPath() string {
	return filepath.Join(DefaultDataDir(), FileName)
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		DataDir:         DefaultDataDir(),
		Backend:         store.KindFile,
		LogLevel:        "info",
		LogFormat:       logging.FormatText,
		HistoryLimit:    tracking.DefaultHistoryLimit,
		CloseMatchYards: advice.CloseMatchYards,
	}
}

// LoadConfig loads configuration from path, merged over the defaults.
// A missing file is not an error; a malformed one is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.DataDir != "" {
		cfg.DataDir = expandHome(fileCfg.DataDir)
	}
	if fileCfg.Backend != "" {
		cfg.Backend = fileCfg.Backend
	}
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogFormat != "" {
		cfg.LogFormat = fileCfg.LogFormat
	}
	if fileCfg.HistoryLimit != 0 {
		cfg.HistoryLimit = fileCfg.HistoryLimit
	}
	if fileCfg.CloseMatchYards != 0 {
		cfg.CloseMatchYards = fileCfg.CloseMatchYards
	}

	return cfg, nil
}

// ApplyEnv overrides values from the environment. lookup is usually
// os.LookupEnv; tests pass a map-backed func.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvDataDir); ok && v != "" {
		c.DataDir = expandHome(v)
	}
	if v, ok := lookup(EnvBackend); ok && v != "" {
		c.Backend = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.LogFormat = v
	}
}

// MergeWithFlags lets CLI flags take precedence. Nil means "not set".
func (c *Config) MergeWithFlags(dataDir, backend, logLevel *string) {
	if dataDir != nil {
		c.DataDir = expandHome(*dataDir)
	}
	if backend != nil {
		c.Backend = *backend
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	validBackends := map[string]bool{
		store.KindFile:   true,
		store.KindSQLite: true,
		store.KindMemory: true,
	}
	if !validBackends[c.Backend] {
		return fmt.Errorf("invalid backend %q, must be one of: file, sqlite, memory", c.Backend)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.LogFormat != logging.FormatText && c.LogFormat != logging.FormatJSON {
		return fmt.Errorf("invalid log_format %q, must be text or json", c.LogFormat)
	}
	if c.Backend != store.KindMemory && c.DataDir == "" {
		return fmt.Errorf("data_dir cannot be empty for the %s backend", c.Backend)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be > 0, got %d", c.HistoryLimit)
	}
	if c.CloseMatchYards < 0 {
		return fmt.Errorf("close_match_yards must be >= 0, got %d", c.CloseMatchYards)
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || len(p) > 1 && p[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}
