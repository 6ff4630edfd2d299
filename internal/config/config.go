// Package config resolves client settings from a YAML file, the environment
// and command-line overrides, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultAPIURL = "http://localhost:8000"

type Config struct {
	APIURL    string `yaml:"api_url"`
	ExportDir string `yaml:"export_dir"`
	Format    string `yaml:"format"`
}

// Load builds the configuration. path may be empty; a missing file at an
// explicit path is an error.
func Load(path string) (Config, error) {
	loadEnvFiles(".env")

	cfg := Config{}
	if path != "" {
		fileCfg, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = fileCfg
	}

	if v := firstEnv("DOCANALYZER_API_URL", "VITE_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := firstEnv("DOCANALYZER_EXPORT_DIR"); v != "" {
		cfg.ExportDir = v
	}
	if v := firstEnv("DOCANALYZER_FORMAT"); v != "" {
		cfg.Format = v
	}

	if strings.TrimSpace(cfg.APIURL) == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "."
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	return cfg, cfg.Validate()
}

var ErrInvalidFormat = errors.New("format must be one of text, json, yaml")

func (c Config) Validate() error {
	switch c.Format {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("%w (got %q)", ErrInvalidFormat, c.Format)
}

func readFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}
