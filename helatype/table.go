package helatype

/**
 * helatype - A Sinhala transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"fmt"
	"strings"

	"github.com/derekparker/trie"
)

// index is a frozen lookup from romanized keys to glyphs
type index struct {
	trie    *trie.Trie
	longest int
}

type pair struct {
	key   string
	glyph string
}

// newIndex builds an index from pairs. When a key repeats, the last
// glyph wins.
func newIndex(pairs []pair) *index {
	final := make(map[string]string, len(pairs))
	for _, p := range pairs {
		final[p.key] = p.glyph
	}

	ix := &index{trie: trie.New()}
	for key, glyph := range final {
		ix.trie.Add(key, glyph)
		if len(key) > ix.longest {
			ix.longest = len(key)
		}
	}
	return ix
}

func (ix *index) get(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	node, ok := ix.trie.Find(key)
	if !ok {
		return "", false
	}
	glyph, _ := node.Meta().(string)
	return glyph, true
}

func (ix *index) has(key string) bool {
	_, ok := ix.get(key)
	return ok
}

// longestMatch walks the trie along s from position i, at most maxLen
// bytes deep, and returns the glyph of the deepest complete key on that
// path together with its length.
func (ix *index) longestMatch(s string, i int, maxLen int) (string, int, bool) {
	node := ix.trie.Root()
	depth := 0
	for depth < maxLen && i+depth < len(s) && isLatinLetter(s[i+depth]) {
		next, ok := node.Children()[rune(s[i+depth])]
		if !ok {
			break
		}
		node = next
		depth++
	}

	// A path can run past the last complete key on it ("nda" walks n-d
	// when only "n" and "ndh" exist), so back off to the key.
	for n := depth; n >= 1; n-- {
		if glyph, ok := ix.get(s[i : i+n]); ok {
			return glyph, n, true
		}
	}
	return "", 0, false
}

// Table holds the vowel, consonant and vowel sign lookups the engine
// reads. A Table never changes after NewTable returns.
type Table struct {
	vowels     *index
	consonants *index
	vowelSigns *index

	entries   []MappingEntry
	signs     []VowelSign
	conflicts []Conflict
}

// NewTable builds the lookups from entries and vowel signs. Special
// entries go to the consonant lookup. Entries with an unknown category
// are dropped. A key repeated within one lookup keeps its last glyph,
// see Conflicts for finding those.
func NewTable(entries []MappingEntry, signs []VowelSign) *Table {
	var (
		vowels     []pair
		consonants []pair
		vowelSigns []pair
	)

	table := &Table{}

	for _, entry := range entries {
		switch entry.Category {
		case CategoryVowel:
			vowels = append(vowels, pair{entry.Romanized, entry.Glyph})
		case CategoryConsonant, CategorySpecial:
			consonants = append(consonants, pair{entry.Romanized, entry.Glyph})
		default:
			tracer().Debugf("dropping %q => %q, unknown category %d", entry.Romanized, entry.Glyph, int(entry.Category))
			continue
		}
		table.entries = append(table.entries, entry)
	}

	for _, sign := range signs {
		vowelSigns = append(vowelSigns, pair{sign.Romanized, sign.Glyph})
		table.signs = append(table.signs, sign)
	}

	table.vowels = newIndex(vowels)
	table.consonants = newIndex(consonants)
	table.vowelSigns = newIndex(vowelSigns)
	table.conflicts = findConflicts(vowels, consonants, vowelSigns)

	if len(table.conflicts) > 0 {
		tracer().Infof("mapping table has %d conflicting keys", len(table.conflicts))
	}

	return table
}

// findConflicts lists keys defined more than once in a lookup and keys
// shared by the vowel and consonant lookups. Order follows first
// appearance.
func findConflicts(vowels, consonants, vowelSigns []pair) []Conflict {
	type occurrence struct {
		glyph string
		table string
	}

	var order []string
	seen := map[string][]occurrence{}

	add := func(pairs []pair, table string) {
		for _, p := range pairs {
			if _, ok := seen[p.key]; !ok {
				order = append(order, p.key)
			}
			seen[p.key] = append(seen[p.key], occurrence{p.glyph, table})
		}
	}
	add(vowels, "vowel")
	add(consonants, "consonant")

	// Vowel signs share their keys with vowels on purpose. Only repeats
	// inside the sign lookup count.
	signCount := map[string][]string{}
	var signOrder []string
	for _, p := range vowelSigns {
		if _, ok := signCount[p.key]; !ok {
			signOrder = append(signOrder, p.key)
		}
		signCount[p.key] = append(signCount[p.key], p.glyph)
	}

	var conflicts []Conflict
	for _, key := range order {
		occurrences := seen[key]
		if len(occurrences) < 2 {
			continue
		}
		c := Conflict{Romanized: key}
		for _, o := range occurrences {
			c.Glyphs = append(c.Glyphs, o.glyph)
			c.Tables = append(c.Tables, o.table)
		}
		conflicts = append(conflicts, c)
	}
	for _, key := range signOrder {
		glyphs := signCount[key]
		if len(glyphs) < 2 {
			continue
		}
		c := Conflict{Romanized: key, Glyphs: glyphs}
		for range glyphs {
			c.Tables = append(c.Tables, "vowel-sign")
		}
		conflicts = append(conflicts, c)
	}

	return conflicts
}

// Conflicts returns the keys that were defined more than once
func (t *Table) Conflicts() []Conflict {
	return append([]Conflict(nil), t.conflicts...)
}

// Validate returns an error naming every conflicting key, nil if there
// is none
func (t *Table) Validate() error {
	if len(t.conflicts) == 0 {
		return nil
	}

	var descriptions []string
	for _, c := range t.conflicts {
		descriptions = append(descriptions, c.String())
	}
	return fmt.Errorf("%w: %s", ErrDuplicateEntry, strings.Join(descriptions, "; "))
}

// Entries returns the vowel, consonant and special entries the table was
// built from, in their original order
func (t *Table) Entries() []MappingEntry {
	return append([]MappingEntry(nil), t.entries...)
}

// VowelSigns returns the vowel signs the table was built from
func (t *Table) VowelSigns() []VowelSign {
	return append([]VowelSign(nil), t.signs...)
}

// Vowel looks up a standalone vowel
func (t *Table) Vowel(romanized string) (string, bool) {
	return t.vowels.get(romanized)
}

// Consonant looks up a consonant or special entry
func (t *Table) Consonant(romanized string) (string, bool) {
	return t.consonants.get(romanized)
}

// VowelSign looks up the combining form of a vowel
func (t *Table) VowelSign(romanized string) (string, bool) {
	return t.vowelSigns.get(romanized)
}

// LongestKey is the length of the longest romanized key in any lookup
func (t *Table) LongestKey() int {
	longest := t.vowels.longest
	if t.consonants.longest > longest {
		longest = t.consonants.longest
	}
	if t.vowelSigns.longest > longest {
		longest = t.vowelSigns.longest
	}
	return longest
}
