package template

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a template from a YAML document.
func LoadYAML(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}
	return ParseYAML(data)
}

// ParseYAML decodes a YAML template and checks its required fields.
func ParseYAML(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("failed to decode template: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// Validate checks the fields every encoding must provide.
func (t *Template) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"cover title", t.Cover.Title},
		{"cover summary", t.Cover.Summary},
		{"cover url", t.Cover.URL},
		{"cover publication date", t.Cover.PublicationDate},
		{"cover next release", t.Cover.NextRelease},
		{"cover email", t.Cover.Email},
		{"cover telephone", t.Cover.Telephone},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}

	if len(t.Contents) == 0 {
		return fmt.Errorf("%w: contents", ErrMissingSection)
	}
	for i, c := range t.Contents {
		if c.Subsection == "" {
			return fmt.Errorf("%w: subsection name of contents definition %d", ErrMissingField, i+1)
		}
		if len(c.Tables) == 0 {
			return fmt.Errorf("%w: tables of contents definition %q", ErrMissingField, c.Subsection)
		}
		for j, m := range c.Tables {
			if m.Name == "" {
				return fmt.Errorf("%w: name of table %d in %q", ErrMissingField, j+1, c.Subsection)
			}
		}
	}

	for i, s := range t.Index {
		if !s.HasData() {
			continue
		}
		if s.TabName == "" {
			return fmt.Errorf("%w: tab name of index section %d", ErrMissingField, i+1)
		}
	}
	return nil
}
