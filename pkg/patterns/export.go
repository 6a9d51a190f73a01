package patterns

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// CatalogEntry is the exported form of an Entry.
type CatalogEntry struct {
	Category    string   `yaml:"category" json:"category"`
	Name        string   `yaml:"name" json:"name"`
	Source      string   `yaml:"source" json:"source"`
	Flags       []string `yaml:"flags,omitempty" json:"flags,omitempty"`
	Mode        string   `yaml:"mode" json:"mode"`
	Engine      string   `yaml:"engine" json:"engine"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// Catalog is the exported form of a Registry.
type Catalog struct {
	Patterns []CatalogEntry `yaml:"patterns" json:"patterns"`
}

// Catalog describes every entry, ordered by category then name.
func (r *Registry) Catalog() Catalog {
	entries := r.Entries()
	c := Catalog{Patterns: make([]CatalogEntry, 0, len(entries))}
	for _, e := range entries {
		c.Patterns = append(c.Patterns, CatalogEntry{
			Category:    string(e.Category()),
			Name:        e.Name(),
			Source:      e.Source(),
			Flags:       e.Flags().Names(),
			Mode:        e.Mode().String(),
			Engine:      e.Engine().String(),
			Description: e.Description(),
		})
	}
	return c
}

// ExportYAML writes the catalog to w as a YAML document.
func (r *Registry) ExportYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.Catalog()); err != nil {
		return fmt.Errorf("failed to encode catalog as yaml: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes the catalog to w as indented JSON.
func (r *Registry) ExportJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r.Catalog()); err != nil {
		return fmt.Errorf("failed to encode catalog as json: %w", err)
	}
	return nil
}
