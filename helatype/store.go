package helatype

/**
 * helatype - A Sinhala transliteration library
 * Licensed under AGPL-3.0-only
 */

import (
	"context"
	sql "database/sql"
	"fmt"
	"os"
	"path/filepath"

	// sqlite
	_ "modernc.org/sqlite"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func openDB(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return nil, fmt.Errorf("couldn't create directory for %s: %w", path, err)
			}
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// SQLite serializes writers anyway. One connection keeps buffered
	// changes and :memory: databases on the same handle.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("couldn't open %s: %w", path, err)
	}

	return conn, nil
}

func execQueries(conn querier, queries []string) error {
	for _, query := range queries {
		ctx, cancelFunc := context.WithTimeout(context.Background(), queryTimeout)
		_, err := conn.ExecContext(ctx, query)
		cancelFunc()

		if err != nil {
			return err
		}
	}
	return nil
}
