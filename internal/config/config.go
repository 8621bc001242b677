// Package config loads the optional hummus YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"hummus/internal/symbols"
)

// EnvPath names the environment variable consulted when no --config flag is given.
const EnvPath = "HUMMUS_CONFIG"

// Format selects how the table is written by list and export.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats returns the accepted output formats.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatYAML}
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds the resolved settings.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	Format      Format `yaml:"format"`
	DefaultEnum string `yaml:"default_enum"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Format:   FormatTable,
	}
}

// ResolvePath returns flagPath if set, else $HUMMUS_CONFIG, else "".
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvPath)
}

// Load reads the file at path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	if err := decode(f, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks every field and names the first offending one.
func (c Config) Validate() error {
	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("log_level: must be one of %v, got %q", logLevels, c.LogLevel)
	}
	if !slices.Contains(Formats(), c.Format) {
		return fmt.Errorf("format: must be one of %v, got %q", Formats(), c.Format)
	}
	if c.DefaultEnum != "" {
		if _, err := symbols.Lookup(c.DefaultEnum); err != nil {
			return fmt.Errorf("default_enum: %w", err)
		}
	}
	return nil
}
