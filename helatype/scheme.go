package helatype

/**
 * helatype - A Sinhala transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"context"
	sql "database/sql"
	"errors"
	"fmt"
	"sync"
	"time"
)

// SchemeDetails of a scheme file
type SchemeDetails struct {
	Identifier   string
	LangCode     string
	DisplayName  string
	Author       string
	CompiledDate string
}

// SchemeConfig changes how a scheme accepts new entries
type SchemeConfig struct {
	// Skip entries whose key is already mapped instead of failing
	IgnoreDuplicates bool
}

// Scheme is a mapping table persisted in a SQLite file
type Scheme struct {
	conn    *sql.DB
	Path    string
	Details SchemeDetails
	Config  SchemeConfig

	mu sync.Mutex
	tx *sql.Tx // set while buffering
}

// OpenScheme opens the scheme file at path, creating it if needed
func OpenScheme(path string) (*Scheme, error) {
	conn, err := openDB(path)
	if err != nil {
		return nil, err
	}

	scheme := &Scheme{conn: conn, Path: path}

	err = scheme.ensureSchemaExists()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = scheme.loadDetails()
	if err != nil {
		conn.Close()
		return nil, err
	}

	return scheme, nil
}

func (scheme *Scheme) ensureSchemaExists() error {
	queries := []string{
		`
		create table if not exists metadata (key TEXT UNIQUE, value TEXT);
		`,
		`
		create table if not exists symbols (id INTEGER PRIMARY KEY AUTOINCREMENT, category INTEGER, pattern TEXT, value TEXT);
		`,
		`
		create table if not exists vowel_signs (id INTEGER PRIMARY KEY AUTOINCREMENT, pattern TEXT UNIQUE, value TEXT);
		`,
		`
		create index if not exists index_metadata on metadata (key);
		`,
		`
		create index if not exists index_pattern on symbols (pattern);
		`}

	return execQueries(scheme.conn, queries)
}

func (scheme *Scheme) loadDetails() error {
	ctx, cancelFunc := context.WithTimeout(context.Background(), queryTimeout)
	defer cancelFunc()

	rows, err := scheme.conn.QueryContext(ctx, "SELECT key, value FROM metadata")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key   string
			value string
		)
		if err := rows.Scan(&key, &value); err != nil {
			return err
		}

		switch key {
		case metadataSchemeIdentifier:
			scheme.Details.Identifier = value
		case metadataSchemeLangCode:
			scheme.Details.LangCode = value
		case metadataSchemeDisplayName:
			scheme.Details.DisplayName = value
		case metadataSchemeAuthor:
			scheme.Details.Author = value
		case metadataSchemeCompiledDate:
			scheme.Details.CompiledDate = value
		}
	}

	return rows.Err()
}

// q returns the open transaction while buffering, the connection
// otherwise. Callers hold scheme.mu.
func (scheme *Scheme) q() querier {
	if scheme.tx != nil {
		return scheme.tx
	}
	return scheme.conn
}

func (scheme *Scheme) startBuffering() error {
	if scheme.tx != nil {
		return nil
	}

	tx, err := scheme.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to start buffering: %w", err)
	}
	scheme.tx = tx
	return nil
}

// Flush writes buffered changes to the file and compacts it
func (scheme *Scheme) Flush() error {
	scheme.mu.Lock()
	defer scheme.mu.Unlock()

	err := scheme.stampVersion()
	if err != nil {
		return err
	}

	if scheme.tx == nil {
		return nil
	}

	tracer().Debugf("writing changes to %s", scheme.Path)
	err = scheme.tx.Commit()
	scheme.tx = nil
	if err != nil {
		return fmt.Errorf("failed to flush changes: %w", err)
	}

	tracer().Debugf("compacting %s", scheme.Path)
	_, err = scheme.conn.Exec("VACUUM")
	if err != nil {
		return fmt.Errorf("failed to compact db: %w", err)
	}

	return nil
}

// Discard drops buffered changes
func (scheme *Scheme) Discard() error {
	scheme.mu.Lock()
	defer scheme.mu.Unlock()

	return scheme.discard()
}

func (scheme *Scheme) discard() error {
	if scheme.tx == nil {
		return nil
	}

	err := scheme.tx.Rollback()
	scheme.tx = nil
	return err
}

func (scheme *Scheme) stampVersion() error {
	_, err := scheme.q().ExecContext(context.Background(), fmt.Sprintf("PRAGMA user_version=%d", schemaVersion))
	return err
}

// CreateEntry stores a vowel, consonant or special entry. With buffered
// set, changes stay in a transaction until Flush.
func (scheme *Scheme) CreateEntry(entry MappingEntry, buffered bool) error {
	if err := validateEntry(entry); err != nil {
		return err
	}

	scheme.mu.Lock()
	defer scheme.mu.Unlock()

	if buffered {
		if err := scheme.startBuffering(); err != nil {
			return err
		}
	}

	err := scheme.persistEntry(entry)
	if err != nil {
		if buffered {
			if rerr := scheme.discard(); rerr != nil {
				tracer().Errorf("failed to discard buffered changes of %s: %s", scheme.Path, rerr.Error())
			}
		}
		return err
	}

	if !buffered {
		return scheme.stampVersion()
	}
	return nil
}

func (scheme *Scheme) persistEntry(entry MappingEntry) error {
	ctx, cancelFunc := context.WithTimeout(context.Background(), queryTimeout)
	defer cancelFunc()

	// Vowels and consonants are looked up at the same position, a key may
	// only be in one of them
	var existing string
	err := scheme.q().QueryRowContext(ctx, "SELECT value FROM symbols WHERE pattern = ? ORDER BY id DESC LIMIT 1", entry.Romanized).Scan(&existing)
	if err == nil {
		if scheme.Config.IgnoreDuplicates {
			tracer().Infof("%s => %s is already available. Ignoring duplicate entry", entry.Romanized, existing)
			return nil
		}
		return fmt.Errorf("%w: there is already a mapping for '%s => %s'", ErrDuplicateEntry, entry.Romanized, existing)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	_, err = scheme.q().ExecContext(ctx, "INSERT INTO symbols (category, pattern, value) VALUES (?, ?, trim(?))", int(entry.Category), entry.Romanized, entry.Glyph)
	if err != nil {
		return fmt.Errorf("failed to persist entry: %w", err)
	}

	return nil
}

// CreateVowelSign stores the combining form of a vowel
func (scheme *Scheme) CreateVowelSign(sign VowelSign, buffered bool) error {
	if err := validateVowelSign(sign); err != nil {
		return err
	}

	scheme.mu.Lock()
	defer scheme.mu.Unlock()

	if buffered {
		if err := scheme.startBuffering(); err != nil {
			return err
		}
	}

	err := scheme.persistVowelSign(sign)
	if err != nil {
		if buffered {
			if rerr := scheme.discard(); rerr != nil {
				tracer().Errorf("failed to discard buffered changes of %s: %s", scheme.Path, rerr.Error())
			}
		}
		return err
	}

	if !buffered {
		return scheme.stampVersion()
	}
	return nil
}

func (scheme *Scheme) persistVowelSign(sign VowelSign) error {
	ctx, cancelFunc := context.WithTimeout(context.Background(), queryTimeout)
	defer cancelFunc()

	var existing string
	err := scheme.q().QueryRowContext(ctx, "SELECT value FROM vowel_signs WHERE pattern = ?", sign.Romanized).Scan(&existing)
	if err == nil {
		if scheme.Config.IgnoreDuplicates {
			tracer().Infof("vowel sign %s is already available. Ignoring duplicate entry", sign.Romanized)
			return nil
		}
		return fmt.Errorf("%w: there is already a vowel sign for '%s'", ErrDuplicateEntry, sign.Romanized)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	_, err = scheme.q().ExecContext(ctx, "INSERT INTO vowel_signs (pattern, value) VALUES (?, ?)", sign.Romanized, sign.Glyph)
	if err != nil {
		return fmt.Errorf("failed to persist vowel sign: %w", err)
	}

	return nil
}

// DeleteEntries removes entries by romanized form, category or both.
// A zero category matches every category.
func (scheme *Scheme) DeleteEntries(romanized string, category Category) error {
	if romanized == "" && category == 0 {
		return fmt.Errorf("either romanized form or category must be specified for removal")
	}
	if category != 0 && !category.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidEntry, category)
	}

	query := "DELETE FROM symbols WHERE 1=1"
	var values []interface{}

	if romanized != "" {
		query += " AND pattern = ?"
		values = append(values, romanized)
	}

	if category != 0 {
		query += " AND category = ?"
		values = append(values, int(category))
	}

	scheme.mu.Lock()
	defer scheme.mu.Unlock()

	ctx, cancelFunc := context.WithTimeout(context.Background(), queryTimeout)
	defer cancelFunc()

	result, err := scheme.q().ExecContext(ctx, query, values...)
	if err != nil {
		return fmt.Errorf("failed to remove entries: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	tracer().Debugf("removed %d entries", rowsAffected)

	return nil
}

// Entries returns the stored entries in the order they were created
func (scheme *Scheme) Entries(ctx context.Context) ([]MappingEntry, error) {
	scheme.mu.Lock()
	defer scheme.mu.Unlock()

	rows, err := scheme.q().QueryContext(ctx, "SELECT pattern, value, category FROM symbols ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []MappingEntry
	for rows.Next() {
		var (
			item     MappingEntry
			category int
		)
		if err := rows.Scan(&item.Romanized, &item.Glyph, &category); err != nil {
			return nil, err
		}
		item.Category = Category(category)
		results = append(results, item)
	}

	return results, rows.Err()
}

// VowelSigns returns the stored vowel signs in the order they were created
func (scheme *Scheme) VowelSigns(ctx context.Context) ([]VowelSign, error) {
	scheme.mu.Lock()
	defer scheme.mu.Unlock()

	rows, err := scheme.q().QueryContext(ctx, "SELECT pattern, value FROM vowel_signs ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []VowelSign
	for rows.Next() {
		var item VowelSign
		if err := rows.Scan(&item.Romanized, &item.Glyph); err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	return results, rows.Err()
}

// Table compiles the stored entries into a lookup table. Keys stored
// twice, or shared by a vowel and a consonant, are an error.
func (scheme *Scheme) Table(ctx context.Context) (*Table, error) {
	entries, err := scheme.Entries(ctx)
	if err != nil {
		return nil, err
	}

	signs, err := scheme.VowelSigns(ctx)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("scheme %s has no entries", scheme.Path)
	}

	table := NewTable(entries, signs)
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("scheme %s: %w", scheme.Path, err)
	}
	return table, nil
}

// Import stores entries and vowel signs in one transaction. Nothing is
// stored if one of them fails.
func (scheme *Scheme) Import(ctx context.Context, entries []MappingEntry, signs []VowelSign) error {
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			scheme.Discard()
			return ctx.Err()
		default:
		}

		if err := scheme.CreateEntry(entry, true); err != nil {
			scheme.Discard()
			return err
		}
	}

	for _, sign := range signs {
		if err := scheme.CreateVowelSign(sign, true); err != nil {
			scheme.Discard()
			return err
		}
	}

	return scheme.Flush()
}

// SetDetails stores the scheme details
func (scheme *Scheme) SetDetails(sd SchemeDetails) error {
	if len(sd.LangCode) != 2 {
		return fmt.Errorf("language code should be one of ISO 639-1 two letter codes")
	}

	if sd.CompiledDate == "" {
		sd.CompiledDate = time.Now().UTC().Format(time.RFC3339)
	}

	type item struct {
		name  string
		key   string
		value string
	}

	items := []item{
		{"language code", metadataSchemeLangCode, sd.LangCode},
		{"scheme identifier", metadataSchemeIdentifier, sd.Identifier},
		{"display name", metadataSchemeDisplayName, sd.DisplayName},
		{"author", metadataSchemeAuthor, sd.Author},
		{"compiled date", metadataSchemeCompiledDate, sd.CompiledDate},
	}

	scheme.mu.Lock()
	defer scheme.mu.Unlock()

	for _, o := range items {
		_, err := scheme.q().ExecContext(context.Background(), "INSERT OR REPLACE INTO metadata (key, value) VALUES (?, ?)", o.key, o.value)
		if err != nil {
			return err
		}
		tracer().Debugf("set %s to: %s", o.name, o.value)
	}

	scheme.Details = sd
	return nil
}

// Close the scheme file. Buffered changes that were not flushed are lost.
func (scheme *Scheme) Close() error {
	scheme.mu.Lock()
	if err := scheme.discard(); err != nil {
		tracer().Errorf("failed to discard buffered changes of %s: %s", scheme.Path, err.Error())
	}
	scheme.mu.Unlock()

	return scheme.conn.Close()
}
