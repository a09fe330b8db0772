package content

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed categories.yaml
var defaultCategories embed.FS

// Category is one post category, with its Nepali display name
type Category struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	NameNp string `yaml:"name_np" json:"name_np"`
}

// Registry holds the set of post categories the site accepts
type Registry struct {
	Categories []Category `yaml:"categories" json:"categories"`
}

// LoadRegistry loads the category registry. When path is empty the embedded
// defaults are used; otherwise the file at path replaces them entirely.
func LoadRegistry(path string) (*Registry, error) {
	var data []byte
	var err error

	if path == "" {
		data, err = defaultCategories.ReadFile("categories.yaml")
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- operator-supplied config path
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read category registry: %w", err)
	}

	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse category registry: %w", err)
	}
	if len(reg.Categories) == 0 {
		return nil, fmt.Errorf("category registry is empty")
	}

	return &reg, nil
}

// IsValid reports whether id names a known category
func (r *Registry) IsValid(id string) bool {
	for _, c := range r.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
