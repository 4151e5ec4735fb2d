package templates

import (
	"fmt"

	"github.com/plantops/roundsdb/data"
	"gopkg.in/yaml.v3"
)

// RoundType is one round template: a named round sheet with its fixed set of
// units. Sections and items inside a unit are user-defined at runtime and do
// not appear here.
type RoundType struct {
	Name  string   `yaml:"name" json:"name"`
	Units []string `yaml:"units" json:"units"`
}

type catalog struct {
	RoundTypes []RoundType `yaml:"round_types"`
}

// Load parses the embedded round-type catalog.
func Load() ([]RoundType, error) {
	var c catalog
	if err := yaml.Unmarshal(data.RoundTypesYAML, &c); err != nil {
		return nil, fmt.Errorf("failed to parse round type templates: %w", err)
	}
	if len(c.RoundTypes) == 0 {
		return nil, fmt.Errorf("round type catalog is empty")
	}
	return c.RoundTypes, nil
}

// Find returns the template with the given name, or nil.
func Find(list []RoundType, name string) *RoundType {
	for i := range list {
		if list[i].Name == name {
			return &list[i]
		}
	}
	return nil
}
