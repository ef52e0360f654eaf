package validator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// PatternFile is the YAML layout accepted by LoadPatterns:
//
//	validators:
//	  zip: '^\d{5}$'
//	  slug: '^[a-z0-9-]+$'
//	messages:
//	  zip: must be a 5 digit ZIP code
type PatternFile struct {
	Validators map[string]string `yaml:"validators"`
	Messages   map[string]string `yaml:"messages"`
}

// LoadPatterns decodes a pattern file from r and registers every entry in reg.
// Registration stops at the first invalid pattern.
func LoadPatterns(r io.Reader, reg *Registry) error {
	var file PatternFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.Join(ErrInvalidPatternFile, err)
	}

	// Sorted so the failing entry is deterministic.
	names := make([]string, 0, len(file.Validators))
	for name := range file.Validators {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		if err := reg.RegisterPattern(name, file.Validators[name]); err != nil {
			return err
		}
		if msg, ok := file.Messages[name]; ok && msg != "" {
			reg.SetMessage(name, msg)
		}
	}
	return nil
}

// LoadPatternFile opens path and passes it to LoadPatterns.
func LoadPatternFile(path string, reg *Registry) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open pattern file: %w", err)
	}
	defer f.Close()
	return LoadPatterns(f, reg)
}
