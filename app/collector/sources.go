package collector

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source is one feed in a sources file.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadSources reads a YAML sources file and returns its feeds in file order.
func LoadSources(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var parsed sourcesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	if len(parsed.Sources) == 0 {
		return nil, fmt.Errorf("sources file %s lists no feeds", path)
	}

	for i, source := range parsed.Sources {
		if source.URL == "" {
			return nil, fmt.Errorf("source at index %d is missing a url", i)
		}
	}

	return parsed.Sources, nil
}
