package story

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// LoadFromPath reads a story file (YAML or JSON) and returns the parsed
// Story. Format is detected by extension (.yaml/.yml/.json) or, failing
// that, by content.
func LoadFromPath(path string) (*Story, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read story: %w", err)
	}
	return Load(data, filepath.Ext(path))
}

// Load parses a story from bytes. ext is the file extension for the format
// hint; empty means detect from content.
func Load(data []byte, ext string) (*Story, error) {
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	switch ext {
	case ".yaml":
		return parse(data, true)
	case ".json":
		return parse(data, false)
	}
	if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		return parse(data, false)
	}
	return parse(data, true)
}

func parse(data []byte, asYAML bool) (*Story, error) {
	var s Story
	if asYAML {
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse story yaml: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse story json: %w", err)
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
