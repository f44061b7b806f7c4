// Package config provides configuration management for perfstats.
// Settings are read from an optional YAML file, layered over defaults, and
// finally overridden by environment variables with the PERFSTATS_ prefix.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/observability/log"
	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/report"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds all configuration settings.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Dataset DatasetConfig `yaml:"dataset"`
	Report  ReportConfig  `yaml:"report"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error (default: info)
	Encoding string `yaml:"encoding"` // json or console (default: console)
	Sampling bool   `yaml:"sampling"` // drop repeated messages after the first 100 per second (default: false)
}

// DatasetConfig contains input settings.
type DatasetConfig struct {
	Paths       []string `yaml:"paths"`       // Dataset files, extended by CLI arguments
	Concurrency int      `yaml:"concurrency"` // Files decoded in parallel (default: 4)
}

// ReportConfig contains output settings.
type ReportConfig struct {
	Format string   `yaml:"format"` // text, json or yaml (default: text)
	Fields []string `yaml:"fields"` // Fields to summarize; empty means all
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
		Dataset: DatasetConfig{
			Concurrency: 4,
		},
		Report: ReportConfig{
			Format: string(report.FormatText),
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is not empty), then environment overrides. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		if err = cfg.decode(bytes.NewReader(raw)); err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides settings from PERFSTATS_* environment variables.
func (c *Config) ApplyEnv() {
	c.Log.Level = getEnv("PERFSTATS_LOG_LEVEL", c.Log.Level)
	c.Log.Encoding = getEnv("PERFSTATS_LOG_ENCODING", c.Log.Encoding)
	c.Log.Sampling = getEnvBool("PERFSTATS_LOG_SAMPLING", c.Log.Sampling)
	c.Dataset.Concurrency = getEnvInt("PERFSTATS_DATASET_CONCURRENCY", c.Dataset.Concurrency)
	c.Report.Format = getEnv("PERFSTATS_REPORT_FORMAT", c.Report.Format)
	c.Report.Fields = getEnvList("PERFSTATS_REPORT_FIELDS", c.Report.Fields)
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	var errs []error
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("unknown log encoding %q", c.Log.Encoding))
	}
	if c.Dataset.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("dataset concurrency must not be negative, got %d", c.Dataset.Concurrency))
	}
	if _, err := report.ParseFormat(c.Report.Format); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// LogLevel returns the parsed log level; call after Validate.
func (c *Config) LogLevel() log.Level {
	level, _ := log.ParseLevel(c.Log.Level)
	return level
}

// getEnv retrieves a string environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value.
// If the environment variable exists but cannot be parsed as an integer,
// it returns the default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated environment variable, dropping blanks.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
