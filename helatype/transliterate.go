package helatype

/**
 * helatype - A Sinhala transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"strings"
	"sync"
)

// Engine transliterates Singlish with a fixed Table
type Engine struct {
	table *Table
}

// New makes an engine reading table
func New(table *Table) *Engine {
	return &Engine{table: table}
}

// Table the engine reads from
func (e *Engine) Table() *Table {
	return e.table
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the engine for the built-in Sinhala mappings. The
// table is built on first use.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New(NewTable(sinhalaEntries, sinhalaVowelSigns))
	})
	return defaultEngine
}

// Transliterate text with the built-in Sinhala mappings
func Transliterate(text string) string {
	return Default().Transliterate(text)
}

// Transliterate converts every run of romanized Sinhala in text.
// Anything that is not a Latin letter is copied as it is, and so are
// Latin letters no mapping starts with.
func (e *Engine) Transliterate(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text) * 3)

	t := e.table

	i := 0
	for i < len(text) {
		ch := text[i]

		if !isLatinLetter(ch) {
			size := runeLength(text[i:])
			b.WriteString(text[i : i+size])
			i += size
			continue
		}

		// Longest consonant first, so that "th" is never split into "t" + "h"
		if base, baseLen, ok := t.consonants.longestMatch(text, i, MaxKeyLength); ok {
			b.WriteString(base)
			i = e.resolveAfterConsonant(&b, text, i+baseLen)
			continue
		}

		if vowel, n, ok := t.vowels.longestMatch(text, i, 2); ok {
			b.WriteString(vowel)
			i += n
			continue
		}

		b.WriteByte(ch)
		i++
	}

	return b.String()
}

// resolveAfterConsonant writes what follows a consonant base at p: a
// cluster mark, then either a vowel sign or hal kirima. Returns the
// position scanning continues from.
func (e *Engine) resolveAfterConsonant(b *strings.Builder, text string, p int) int {
	t := e.table

	if cluster, ok := e.cluster(text, p); ok {
		b.WriteString(cluster)
		p++
	}

	sign, n, found := t.vowelSigns.longestMatch(text, p, 2)

	// The inherent vowel has an empty sign, it still counts as a vowel
	if (found && sign != "") || t.vowels.has(substring(text, p, 1)) {
		b.WriteString(sign)
		return p + n
	}

	b.WriteString(HalKirima)
	return p
}

// cluster checks for rakaransaya or yansaya at p. An r or y right
// after the base always joins it, no matter what follows.
func (e *Engine) cluster(text string, p int) (string, bool) {
	if p >= len(text) {
		return "", false
	}

	switch text[p] {
	case 'r':
		return Rakaransaya, true
	case 'y':
		return Yansaya, true
	}
	return "", false
}
