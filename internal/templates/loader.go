package templates

import (
	"embed"
	"fmt"
	"os"

	"battletext/internal/logging"

	"gopkg.in/yaml.v3"
)

// embeddedData holds the built-in English template store.
//
//go:embed data/en.yaml
var embeddedData embed.FS

const embeddedPath = "data/en.yaml"

// Parse decodes a YAML store of the form namespace -> category -> string.
func Parse(data []byte) (*Store, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse template store: %w", err)
	}
	return FromMap(raw), nil
}

// LoadEmbedded returns the built-in store.
func LoadEmbedded() (*Store, error) {
	timer := logging.StartTimer(logging.CategoryTemplates, "LoadEmbedded")
	defer timer.Stop()

	data, err := embeddedData.ReadFile(embeddedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded templates: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	logging.Get(logging.CategoryTemplates).Info("Loaded embedded templates: %d namespaces, %d entries", len(s.namespaces), s.Len())
	return s, nil
}

// LoadFile reads an external store in the embedded format.
func LoadFile(path string) (*Store, error) {
	timer := logging.StartTimer(logging.CategoryTemplates, "LoadFile")
	defer timer.Stop()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Get(logging.CategoryTemplates).Info("Loaded templates from %s: %d namespaces, %d entries", path, len(s.namespaces), s.Len())
	return s, nil
}

// Load returns the embedded store overlaid with the file at path, if any.
// The result is validated.
func Load(path string) (*Store, error) {
	s, err := LoadEmbedded()
	if err != nil {
		return nil, err
	}
	if path != "" {
		overlay, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		s.Merge(overlay)
	}
	if err := s.Validate(); err != nil {
		logging.Get(logging.CategoryTemplates).Error("Template store invalid: %v", err)
		return nil, fmt.Errorf("invalid template store: %w", err)
	}
	return s, nil
}
