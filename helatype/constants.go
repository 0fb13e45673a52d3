package helatype

/**
 * helatype - A Sinhala transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"os"
	"path"
	"time"
)

/* General */
const ZWJ = "\u200d"

/* Sinhala marks */
const (
	// HalKirima suppresses the inherent vowel of a consonant
	HalKirima = "්"

	// Rakaransaya is the combining form of a following ර
	Rakaransaya = HalKirima + ZWJ + "ර"

	// Yansaya is the combining form of a following ය
	Yansaya = HalKirima + ZWJ + "ය"
)

// MaxKeyLength is the longest romanized key a table accepts
const MaxKeyLength = 3

/* Scheme metadata keys */
const (
	metadataSchemeIdentifier   = "scheme-id"
	metadataSchemeLangCode     = "lang-code"
	metadataSchemeDisplayName  = "scheme-display-name"
	metadataSchemeAuthor       = "scheme-author"
	metadataSchemeCompiledDate = "scheme-compiled-date"
)

// schemaVersion is stamped into PRAGMA user_version of scheme files
const schemaVersion = 1

// queryTimeout bounds every statement sent to a store
const queryTimeout = 5 * time.Second

// DefaultHistoryPath returns where saved outputs live when nothing else
// is configured
func DefaultHistoryPath() string {
	var dir string

	home := os.Getenv("XDG_DATA_HOME")
	if home == "" {
		home = os.Getenv("HOME")
		dir = path.Join(home, ".local", "share", "helatype")
	} else {
		dir = path.Join(home, "helatype")
	}

	return path.Join(dir, "history.db")
}
