// Package config loads the roster settings from an optional YAML file with
// ROSTER_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/roster/query"
)

// EnvPrefix prefixes every environment override, e.g. ROSTER_DATASET_PATH.
const EnvPrefix = "ROSTER"

// ErrInvalid is wrapped by every [Config.Validate] failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds all roster settings.
type Config struct {
	Dataset DatasetConfig `mapstructure:"dataset" yaml:"dataset"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Query   QueryConfig   `mapstructure:"query" yaml:"query"`
}

// DatasetConfig locates the staff dataset.
type DatasetConfig struct {
	// Path is a .json, .yaml or .yml file
	Path string `mapstructure:"path" yaml:"path"`
}

// LoggingConfig controls the CLI logger.
type LoggingConfig struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...)
	Level string `mapstructure:"level" yaml:"level"`
	// Format is "console" or "json"
	Format string `mapstructure:"format" yaml:"format"`
}

// QueryConfig tunes the ranking reports.
type QueryConfig struct {
	// TieBreak is "first-seen" or "alphabetical"
	TieBreak string `mapstructure:"tie_break" yaml:"tie_break"`
	// TopSkills is how many skills the top-skills report lists
	TopSkills int `mapstructure:"top_skills" yaml:"top_skills"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{Path: "staff.json"},
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Query:   QueryConfig{TieBreak: query.FirstSeen.String(), TopSkills: 3},
	}
}

// Load reads path, if not empty, over the defaults and applies ROSTER_*
// environment overrides (ROSTER_LOGGING_LEVEL=debug). The result is validated.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys the
// config file does not mention.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("dataset.path", d.Dataset.Path)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("query.tie_break", d.Query.TieBreak)
	v.SetDefault("query.top_skills", d.Query.TopSkills)
}

// Save writes c to path as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate checks c for values the roster cannot use.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Dataset.Path) == "" {
		return fmt.Errorf("%w: dataset.path cannot be empty", ErrInvalid)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: logging.format %q, must be console or json", ErrInvalid, c.Logging.Format)
	}
	if _, err := c.TieBreak(); err != nil {
		return fmt.Errorf("%w: query.tie_break: %v", ErrInvalid, err)
	}
	if c.Query.TopSkills < 1 {
		return fmt.Errorf("%w: query.top_skills must be at least 1", ErrInvalid)
	}
	return nil
}

// TieBreak returns the configured ranking tie-break policy.
func (c *Config) TieBreak() (query.TieBreak, error) {
	return query.ParseTieBreak(c.Query.TieBreak)
}

// NewLogger builds the logger described by c, writing to w.
func (c LoggingConfig) NewLogger(w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Level)
	}
	if c.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
