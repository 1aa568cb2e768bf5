package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// config holds the CLI defaults. Flags override file values.
type config struct {
	Locale      string   `yaml:"locale"`
	Format      string   `yaml:"format"`
	MinimumUnit string   `yaml:"minimum_unit"`
	Suppress    []string `yaml:"suppress"`
}

// defaultConfig matches the library defaults.
func defaultConfig() config {
	return config{
		Format:      "%0.2f",
		MinimumUnit: "seconds",
	}
}

// loadConfig reads the YAML config at path, or ~/.speakhuman.yaml when path
// is empty. A missing file is not an error; a malformed one is.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".speakhuman.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Format == "" {
		cfg.Format = "%0.2f"
	}
	if cfg.MinimumUnit == "" {
		cfg.MinimumUnit = "seconds"
	}
	return cfg, nil
}
