// Package config loads the tool configuration file. Every field has a
// working default so the tool runs without any file present.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// DefaultPath is where the tool looks for its configuration.
const DefaultPath = ".blueprint/config.yaml"

// Fetch holds the work-tracking API connection settings.
type Fetch struct {
	BaseURL    string `yaml:"base_url"`
	Project    string `yaml:"project"`
	APIKeyPath string `yaml:"api_key_path"`
}

// Log holds the logging settings.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Enrich holds the optional wording-enrichment settings.
type Enrich struct {
	Model string `yaml:"model"`
}

// Config is the full tool configuration.
type Config struct {
	App        string `yaml:"app"`
	Strict     bool   `yaml:"strict"`
	Phrasebank string `yaml:"phrasebank"`
	Fetch      Fetch  `yaml:"fetch"`
	Log        Log    `yaml:"log"`
	Enrich     Enrich `yaml:"enrich"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		App:        "QuickDraw",
		Phrasebank: ".blueprint/phrasebank.db",
		Fetch: Fetch{
			APIKeyPath: ".blueprint/api-key",
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
		Enrich: Enrich{
			Model: "gemini-2.0-flash",
		},
	}
}

// Load reads the configuration at path, applied over the defaults. A
// missing file at the default path is not an error; a missing file at an
// explicitly chosen path is.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
