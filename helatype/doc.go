/*
Package helatype converts romanized Sinhala ("Singlish") into Sinhala
Unicode script.

The engine scans its input once, left to right. At every Latin letter it
looks for the longest consonant key, then resolves rakaransaya / yansaya
clusters, the vowel sign that follows, or an explicit hal kirima when no
vowel follows. Everything that is not a Latin letter is copied unchanged.

	engine := helatype.New(helatype.NewTable(helatype.SinhalaEntries(), helatype.SinhalaVowelSigns()))
	out := engine.Transliterate("lankaava")

Tables and engines are immutable once built and may be shared between
goroutines.

Mapping data can also be kept in a scheme store (a SQLite file, see
OpenScheme), compiled from a YAML scheme source (see LoadSchemeFile).
Saved outputs are kept in a History store.

helatype - A Sinhala transliteration library.
Licensed under AGPL-3.0-only
*/
package helatype

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'helatype'
func tracer() tracing.Trace {
	return tracing.Select("helatype")
}
