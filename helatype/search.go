package helatype

import (
	"strings"

	"golang.org/x/text/cases"
)

// Search returns the entries whose romanized form contains query,
// ignoring case, or whose glyph contains query. An empty query returns
// every entry.
func (t *Table) Search(query string) []MappingEntry {
	query = strings.TrimSpace(query)
	if query == "" {
		return t.Entries()
	}

	fold := cases.Fold()
	needle := fold.String(query)

	var results []MappingEntry
	for _, entry := range t.entries {
		if strings.Contains(fold.String(entry.Romanized), needle) || strings.Contains(entry.Glyph, query) {
			results = append(results, entry)
		}
	}
	return results
}
