package helatype

import "testing"

func TestSearch(t *testing.T) {
	table := NewTable(SinhalaEntries(), SinhalaVowelSigns())

	assertEqual(t, len(table.Search("")), len(SinhalaEntries()))

	var keys []string
	for _, entry := range table.Search("TH") {
		keys = append(keys, entry.Romanized)
	}
	assertEqual(t, keys, []string{"th", "Th"})

	results := table.Search("ක")
	assertEqual(t, len(results), 1)
	assertEqual(t, results[0].Romanized, "k")

	assertEqual(t, len(table.Search("qqq")), 0)
}
