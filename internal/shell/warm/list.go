// Package warm drives batch pre-generation of ingredient icons.
//
// A warm run walks a fixed list of common ingredient names, resolves each to
// its canonical slug and enqueues an icon-generation request, so that the
// most frequent ingredients already have icons before any user asks for one.
package warm

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// Ingredient List
// =============================================================================

// Ingredient is one entry of the warm list.
type Ingredient struct {
	Name    string `yaml:"name"`
	Variant string `yaml:"variant,omitempty"`
}

// listFile is the YAML shape of an external warm list.
type listFile struct {
	Ingredients []Ingredient `yaml:"ingredients"`
}

// DefaultList returns the built-in list of common ingredients warmed when
// no list file is configured.
func DefaultList() []Ingredient {
	return []Ingredient{
		{Name: "yellow onion"},
		{Name: "red onion"},
		{Name: "green onion"},
		{Name: "shallot"},
		{Name: "garlic"},
		{Name: "tomato"},
		{Name: "cherry tomato"},
		{Name: "bell pepper"},
		{Name: "jalapeno"},
		{Name: "carrot"},
		{Name: "potato"},
		{Name: "sweet potato"},
		{Name: "mushroom"},
		{Name: "ginger"},
		{Name: "cilantro"},
		{Name: "parsley"},
		{Name: "basil"},
		{Name: "butter"},
		{Name: "milk"},
		{Name: "heavy cream"},
		{Name: "egg"},
		{Name: "olive oil"},
		{Name: "vegetable oil"},
		{Name: "flour"},
		{Name: "sugar"},
		{Name: "brown sugar"},
		{Name: "salt"},
		{Name: "chicken breast"},
		{Name: "ground beef"},
		{Name: "bacon"},
		{Name: "rice"},
		{Name: "pasta"},
		{Name: "lemon"},
		{Name: "lime"},
	}
}

// LoadList reads a warm list from a YAML file. Entries without a name are
// rejected rather than silently skipped.
func LoadList(path string) ([]Ingredient, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read list file: %w", err)
	}

	var file listFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse list file: %w", err)
	}

	if len(file.Ingredients) == 0 {
		return nil, fmt.Errorf("list file %s contains no ingredients", path)
	}
	for i, ing := range file.Ingredients {
		if ing.Name == "" {
			return nil, fmt.Errorf("list file %s: entry %d has no name", path, i)
		}
	}

	return file.Ingredients, nil
}
