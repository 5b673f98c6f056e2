// Package config loads optional YAML overrides for the scan CLI's
// defaults (concurrency, PNG output path, metrics listen address).
// CLI flags always win over a loaded file; a missing --config flag is
// not an error, the CLI simply runs with flag-only defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the subset of scan behavior an operator can override
// from a file instead of the command line.
type Config struct {
	Concurrency int    `yaml:"concurrency"`
	PNGPath     string `yaml:"png_path"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// Load reads and decodes a YAML config file at filename.
func Load(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// ApplyDefaults overlays cfg's fields onto CLI flag values that are
// still at their defaults (concurrency <= 1, empty strings), returning
// the effective values; a config concurrency of 1 or less is ignored.
// Flags the caller already set explicitly should be passed through
// unchanged rather than overlaid, so that an explicit CLI flag always
// wins over the file.
func (cfg *Config) ApplyDefaults(concurrency int, pngPath, metricsAddr string) (int, string, string) {
	if cfg == nil {
		return concurrency, pngPath, metricsAddr
	}
	if concurrency <= 1 && cfg.Concurrency > 1 {
		concurrency = cfg.Concurrency
	}
	if pngPath == "" && cfg.PNGPath != "" {
		pngPath = cfg.PNGPath
	}
	if metricsAddr == "" && cfg.MetricsAddr != "" {
		metricsAddr = cfg.MetricsAddr
	}
	return concurrency, pngPath, metricsAddr
}
