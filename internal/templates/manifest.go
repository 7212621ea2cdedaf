package templates

import (
	"fmt"

	"go.yaml.in/yaml/v3"
)

// ManifestFile is the name of the manifest at the root of a template set.
const ManifestFile = "manifest.yaml"

// Manifest describes a template set.
type Manifest struct {
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Requires    string  `yaml:"requires,omitempty" json:"requires,omitempty"`
	Templates   []Entry `yaml:"templates" json:"templates"`
}

// Entry maps a template id to its file inside the set.
type Entry struct {
	ID          string `yaml:"id" json:"id"`
	File        string `yaml:"file" json:"file"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// ParseManifest unmarshals manifest YAML. It does not validate it.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// Lookup returns the entry with the given id.
func (m *Manifest) Lookup(id string) (Entry, bool) {
	for _, e := range m.Templates {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
