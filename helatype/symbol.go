package helatype

/**
 * helatype - A Sinhala transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"errors"
	"fmt"
	"strings"
)

// Category of a mapping entry
type Category int

/* Available categories */
const (
	CategoryVowel     Category = 1
	CategoryConsonant Category = 2
	CategorySpecial   Category = 3 // Standalone modifiers, handled like consonants
)

var (
	// ErrInvalidEntry is returned for entries a scheme refuses to store
	ErrInvalidEntry = errors.New("invalid mapping entry")

	// ErrDuplicateEntry is returned when a key is already mapped
	ErrDuplicateEntry = errors.New("duplicate mapping entry")
)

func (c Category) String() string {
	switch c {
	case CategoryVowel:
		return "vowel"
	case CategoryConsonant:
		return "consonant"
	case CategorySpecial:
		return "special"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	return c >= CategoryVowel && c <= CategorySpecial
}

// ParseCategory parses "vowel", "consonant" or "special", ignoring case
func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "vowel", "vowels":
		return CategoryVowel, nil
	case "consonant", "consonants":
		return CategoryConsonant, nil
	case "special":
		return CategorySpecial, nil
	}
	return 0, fmt.Errorf("%w: unknown category %q", ErrInvalidEntry, name)
}

// MappingEntry maps a romanized form to a Sinhala glyph
type MappingEntry struct {
	Romanized string
	Glyph     string
	Category  Category
}

// VowelSign maps a romanized vowel fragment to its combining form.
// Glyph is empty for the inherent vowel.
type VowelSign struct {
	Romanized string
	Glyph     string
}

// Conflict describes a romanized key defined more than once
type Conflict struct {
	Romanized string
	Glyphs    []string
	// Tables the key was found in, "vowel", "consonant" or "vowel-sign"
	Tables []string
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s => %s (%s)", c.Romanized, strings.Join(c.Glyphs, ", "), strings.Join(c.Tables, ", "))
}

// validKey checks the key is 1 to MaxKeyLength Latin letters
func validKey(key string) bool {
	if len(key) == 0 || len(key) > MaxKeyLength {
		return false
	}
	for i := 0; i < len(key); i++ {
		if !isLatinLetter(key[i]) {
			return false
		}
	}
	return true
}

func validateEntry(entry MappingEntry) error {
	if entry.Romanized == "" || entry.Glyph == "" {
		return fmt.Errorf("%w: romanized form or glyph is empty", ErrInvalidEntry)
	}
	if !validKey(entry.Romanized) {
		return fmt.Errorf("%w: %q should be 1 to %d latin letters", ErrInvalidEntry, entry.Romanized, MaxKeyLength)
	}
	if !entry.Category.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidEntry, entry.Category)
	}
	return nil
}

func validateVowelSign(sign VowelSign) error {
	// Glyph may be empty for the inherent vowel
	if !validKey(sign.Romanized) {
		return fmt.Errorf("%w: vowel sign %q should be 1 to %d latin letters", ErrInvalidEntry, sign.Romanized, MaxKeyLength)
	}
	return nil
}
