package helatype

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SchemeFile is the YAML source of a scheme
type SchemeFile struct {
	Identifier  string `yaml:"identifier"`
	LangCode    string `yaml:"lang-code"`
	DisplayName string `yaml:"display-name"`
	Author      string `yaml:"author"`

	Entries []struct {
		Romanized string `yaml:"romanized"`
		Glyph     string `yaml:"glyph"`
		Category  string `yaml:"category"`
	} `yaml:"entries"`

	VowelSigns []struct {
		Romanized string `yaml:"romanized"`
		Glyph     string `yaml:"glyph"`
	} `yaml:"vowel-signs"`
}

// LoadSchemeFile reads a YAML scheme source
func LoadSchemeFile(path string) (*SchemeFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSchemeFile(data)
}

// ParseSchemeFile parses a YAML scheme source
func ParseSchemeFile(data []byte) (*SchemeFile, error) {
	var sf SchemeFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("couldn't parse scheme source: %w", err)
	}
	return &sf, nil
}

// Details of the scheme
func (sf *SchemeFile) Details() SchemeDetails {
	return SchemeDetails{
		Identifier:  sf.Identifier,
		LangCode:    sf.LangCode,
		DisplayName: sf.DisplayName,
		Author:      sf.Author,
	}
}

// MappingEntries converts the entries, failing on the first unknown
// category
func (sf *SchemeFile) MappingEntries() ([]MappingEntry, error) {
	var entries []MappingEntry
	for i, e := range sf.Entries {
		category, err := ParseCategory(e.Category)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i+1, e.Romanized, err)
		}
		entries = append(entries, MappingEntry{e.Romanized, e.Glyph, category})
	}
	return entries, nil
}

// Signs converts the vowel signs
func (sf *SchemeFile) Signs() []VowelSign {
	var signs []VowelSign
	for _, s := range sf.VowelSigns {
		signs = append(signs, VowelSign{s.Romanized, s.Glyph})
	}
	return signs
}

// Compile writes the scheme source into the scheme file at path
func (sf *SchemeFile) Compile(path string, config SchemeConfig) (*Scheme, error) {
	entries, err := sf.MappingEntries()
	if err != nil {
		return nil, err
	}

	scheme, err := OpenScheme(path)
	if err != nil {
		return nil, err
	}
	scheme.Config = config

	err = scheme.SetDetails(sf.Details())
	if err == nil {
		err = scheme.Import(context.Background(), entries, sf.Signs())
	}
	if err != nil {
		scheme.Close()
		return nil, err
	}

	tracer().Infof("compiled %d entries and %d vowel signs into %s", len(entries), len(sf.VowelSigns), path)
	return scheme, nil
}
