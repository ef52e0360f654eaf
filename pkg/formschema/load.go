package formschema

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Set holds schemas keyed by name.
type Set map[string]*Schema

// Names returns the schema names in sorted order.
func (s Set) Names() []string {
	return slices.Sorted(maps.Keys(s))
}

func (s Set) Get(name string) (*Schema, error) {
	schema, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}
	return schema, nil
}

// LoadDir parses every *.html file in dir, using the first form of each
// document. The schema name is the file name without extension.
// Subdirectories are ignored.
func LoadDir(dir string, opts ...Option) (Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("formschema: read dir: %w", err)
	}

	set := make(Set)
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".html" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".html")
		schema, err := loadFile(filepath.Join(dir, entry.Name()), append(opts, WithName(name)))
		if err != nil {
			return nil, fmt.Errorf("formschema: %s: %w", entry.Name(), err)
		}
		set[name] = schema
	}
	return set, nil
}

func loadFile(path string, opts []Option) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, "form", opts...)
}
