package helatype

import (
	"context"
	"errors"
	"path"
	"testing"
)

// initTestScheme opens a fresh scheme file for a test
func initTestScheme(t *testing.T) *Scheme {
	scheme, err := OpenScheme(path.Join(t.TempDir(), "test.scheme"))
	checkError(err)
	t.Cleanup(func() { scheme.Close() })
	return scheme
}

func TestCreateEntryWithoutBuffering(t *testing.T) {
	scheme := initTestScheme(t)

	err := scheme.CreateEntry(MappingEntry{"k", "ක", CategoryConsonant}, false)
	checkError(err)

	entries, err := scheme.Entries(context.Background())
	checkError(err)
	assertEqual(t, entries, []MappingEntry{{"k", "ක", CategoryConsonant}})
}

func TestCreateEntryWithBuffering(t *testing.T) {
	scheme := initTestScheme(t)

	checkError(scheme.CreateEntry(MappingEntry{"k", "ක", CategoryConsonant}, true))
	checkError(scheme.CreateEntry(MappingEntry{"a", "අ", CategoryVowel}, true))
	checkError(scheme.CreateVowelSign(VowelSign{"a", ""}, true))

	// Visible before flushing, through the same transaction
	entries, err := scheme.Entries(context.Background())
	checkError(err)
	assertEqual(t, len(entries), 2)

	checkError(scheme.Flush())

	signs, err := scheme.VowelSigns(context.Background())
	checkError(err)
	assertEqual(t, signs, []VowelSign{{"a", ""}})
}

func TestDiscardBuffered(t *testing.T) {
	scheme := initTestScheme(t)

	checkError(scheme.CreateEntry(MappingEntry{"k", "ක", CategoryConsonant}, true))
	checkError(scheme.Discard())

	entries, err := scheme.Entries(context.Background())
	checkError(err)
	assertEqual(t, len(entries), 0)
}

func TestDuplicateEntries(t *testing.T) {
	scheme := initTestScheme(t)

	checkError(scheme.CreateEntry(MappingEntry{"a", "අ", CategoryVowel}, false))

	// Same key, same table
	err := scheme.CreateEntry(MappingEntry{"a", "ආ", CategoryVowel}, false)
	assertEqual(t, errors.Is(err, ErrDuplicateEntry), true)

	// Same key, other table
	err = scheme.CreateEntry(MappingEntry{"a", "ක", CategoryConsonant}, false)
	assertEqual(t, errors.Is(err, ErrDuplicateEntry), true)

	checkError(scheme.CreateVowelSign(VowelSign{"i", "ි"}, false))
	err = scheme.CreateVowelSign(VowelSign{"i", "ී"}, false)
	assertEqual(t, errors.Is(err, ErrDuplicateEntry), true)

	scheme.Config.IgnoreDuplicates = true

	checkError(scheme.CreateEntry(MappingEntry{"a", "ආ", CategoryVowel}, false))
	checkError(scheme.CreateVowelSign(VowelSign{"i", "ී"}, false))

	entries, err := scheme.Entries(context.Background())
	checkError(err)
	assertEqual(t, entries, []MappingEntry{{"a", "අ", CategoryVowel}})
}

func TestInvalidEntries(t *testing.T) {
	scheme := initTestScheme(t)

	invalid := []MappingEntry{
		{"", "ක", CategoryConsonant},
		{"k", "", CategoryConsonant},
		{"kkkk", "ක", CategoryConsonant},
		{"k1", "ක", CategoryConsonant},
		{"k", "ක", Category(0)},
	}

	for _, entry := range invalid {
		err := scheme.CreateEntry(entry, false)
		assertEqual(t, errors.Is(err, ErrInvalidEntry), true)
	}

	err := scheme.CreateVowelSign(VowelSign{"", "ි"}, false)
	assertEqual(t, errors.Is(err, ErrInvalidEntry), true)
}

func TestDeleteEntries(t *testing.T) {
	scheme := initTestScheme(t)

	checkError(scheme.Import(context.Background(), []MappingEntry{
		{"a", "අ", CategoryVowel},
		{"k", "ක", CategoryConsonant},
		{"f", "ෆ", CategorySpecial},
	}, nil))

	checkError(scheme.DeleteEntries("k", 0))
	checkError(scheme.DeleteEntries("", CategorySpecial))

	entries, err := scheme.Entries(context.Background())
	checkError(err)
	assertEqual(t, entries, []MappingEntry{{"a", "අ", CategoryVowel}})

	assertEqual(t, scheme.DeleteEntries("", 0) != nil, true)
}

func TestImportFailsAsAWhole(t *testing.T) {
	scheme := initTestScheme(t)

	err := scheme.Import(context.Background(), []MappingEntry{
		{"k", "ක", CategoryConsonant},
		{"k", "ඛ", CategoryConsonant},
	}, nil)
	assertEqual(t, errors.Is(err, ErrDuplicateEntry), true)

	entries, err := scheme.Entries(context.Background())
	checkError(err)
	assertEqual(t, len(entries), 0)
}

func TestSchemeTable(t *testing.T) {
	scheme := initTestScheme(t)

	_, err := scheme.Table(context.Background())
	assertEqual(t, err != nil, true)

	checkError(scheme.Import(context.Background(), SinhalaEntries(), SinhalaVowelSigns()))

	table, err := scheme.Table(context.Background())
	checkError(err)
	assertEqual(t, table.Validate(), nil)

	engine := New(table)
	for _, input := range []string{"kohomadha", "sathya priya", "ammaa 123"} {
		assertEqual(t, engine.Transliterate(input), Transliterate(input))
	}
}

func TestSetSchemeDetails(t *testing.T) {
	schemePath := path.Join(t.TempDir(), "details.scheme")

	scheme, err := OpenScheme(schemePath)
	checkError(err)

	err = scheme.SetDetails(SchemeDetails{LangCode: "sinhala"})
	assertEqual(t, err != nil, true)

	sd := SchemeDetails{
		Identifier:  "si-test",
		LangCode:    "si",
		DisplayName: "Test",
		Author:      "Anon",
	}
	checkError(scheme.SetDetails(sd))
	checkError(scheme.Close())

	scheme, err = OpenScheme(schemePath)
	checkError(err)
	defer scheme.Close()

	assertEqual(t, scheme.Details.Identifier, "si-test")
	assertEqual(t, scheme.Details.LangCode, "si")
	assertEqual(t, scheme.Details.Author, "Anon")
	assertEqual(t, scheme.Details.CompiledDate != "", true)
}

const testSchemeSource = `
identifier: si-mini
lang-code: si
display-name: Mini Sinhala
author: Anon
entries:
  - {romanized: a, glyph: අ, category: vowel}
  - {romanized: k, glyph: ක, category: Consonant}
  - {romanized: t, glyph: ට, category: consonant}
  - {romanized: f, glyph: ෆ, category: special}
vowel-signs:
  - {romanized: a, glyph: ""}
  - {romanized: i, glyph: "ි"}
`

func TestCompileSchemeFile(t *testing.T) {
	sf, err := LoadSchemeFile(makeFile("mini.yaml", testSchemeSource))
	checkError(err)

	assertEqual(t, sf.Details().DisplayName, "Mini Sinhala")

	scheme, err := sf.Compile(path.Join(t.TempDir(), "mini.scheme"), SchemeConfig{})
	checkError(err)
	defer scheme.Close()

	assertEqual(t, scheme.Details.Identifier, "si-mini")

	table, err := scheme.Table(context.Background())
	checkError(err)

	engine := New(table)
	assertEqual(t, engine.Transliterate("tra"), "ට්‍ර")
	assertEqual(t, engine.Transliterate("kif"), "කිෆ්")
}

func TestSchemeFileUnknownCategory(t *testing.T) {
	sf, err := ParseSchemeFile([]byte("entries:\n  - {romanized: k, glyph: ක, category: matra}\n"))
	checkError(err)

	_, err = sf.MappingEntries()
	assertEqual(t, errors.Is(err, ErrInvalidEntry), true)

	_, err = ParseSchemeFile([]byte("entries: ["))
	assertEqual(t, err != nil, true)
}

func TestSchemeTableRejectsOverlap(t *testing.T) {
	scheme := initTestScheme(t)

	checkError(scheme.CreateEntry(MappingEntry{"k", "ක", CategoryConsonant}, false))

	// Written behind the store's back, as another tool might
	_, err := scheme.conn.Exec("INSERT INTO symbols (category, pattern, value) VALUES (?, ?, ?)", int(CategoryVowel), "k", "අ")
	checkError(err)

	table, err := scheme.Table(context.Background())
	assertEqual(t, table == nil, true)
	assertEqual(t, errors.Is(err, ErrDuplicateEntry), true)
}

func TestFailedRollbackKeepsWriteError(t *testing.T) {
	scheme := initTestScheme(t)

	checkError(scheme.CreateEntry(MappingEntry{"k", "ක", CategoryConsonant}, true))

	// Ending the transaction under the store makes both the write and
	// the rollback after it fail
	checkError(scheme.tx.Rollback())

	err := scheme.CreateEntry(MappingEntry{"g", "ග", CategoryConsonant}, true)
	assertEqual(t, err != nil, true)
	assertEqual(t, errors.Is(err, ErrDuplicateEntry), false)
	assertEqual(t, scheme.tx == nil, true)

	// The store is usable again
	checkError(scheme.CreateEntry(MappingEntry{"g", "ග", CategoryConsonant}, true))
	checkError(scheme.Flush())

	entries, err := scheme.Entries(context.Background())
	checkError(err)
	assertEqual(t, entries, []MappingEntry{{"g", "ග", CategoryConsonant}})
}
