// Package prompts provides read-only access to externally managed prompt
// templates. Templates live in a YAML file owned by whoever curates the
// prompts; the store only looks them up.
package prompts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Template is a single named prompt template. The text may contain the
// placeholders {{location}}, {{faces}} and {{model}}.
type Template struct {
	Name   string `yaml:"name"`
	Active bool   `yaml:"active"`
	Text   string `yaml:"text"`
}

// Store looks up the active default prompt template.
type Store interface {
	// ActiveTemplate returns the active "default" template text, or
	// ok=false when none is configured.
	ActiveTemplate() (text string, ok bool)
}

// FileStore reads templates from a YAML file once at construction.
type FileStore struct {
	templates []Template
}

// NewFileStore loads the template file at path. A missing file is not an
// error: the store is simply empty and callers fall back to the built-in
// template.
func NewFileStore(path string) (*FileStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileStore{}, nil
		}
		return nil, fmt.Errorf("failed to read templates file: %w", err)
	}

	var doc struct {
		Templates []Template `yaml:"templates"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse templates file: %w", err)
	}

	return &FileStore{templates: doc.Templates}, nil
}

// ActiveTemplate returns the first active template named "default".
func (s *FileStore) ActiveTemplate() (string, bool) {
	for _, t := range s.templates {
		if t.Active && t.Name == "default" && t.Text != "" {
			return t.Text, true
		}
	}
	return "", false
}

// EmptyStore is a Store with no templates, used when no template file is
// configured.
type EmptyStore struct{}

// ActiveTemplate always reports no template.
func (EmptyStore) ActiveTemplate() (string, bool) { return "", false }
