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
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmptyText is returned when saving blank text
	ErrEmptyText = errors.New("nothing to save")

	// ErrNotFound is returned for unknown history items
	ErrNotFound = errors.New("history item not found")
)

// HistoryItem is a saved output
type HistoryItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"` // milliseconds since epoch
}

// History keeps saved outputs in a SQLite file
type History struct {
	conn *sql.DB
	Path string

	now func() time.Time
}

// OpenHistory opens the history file at path, creating it if needed
func OpenHistory(path string) (*History, error) {
	conn, err := openDB(path)
	if err != nil {
		return nil, err
	}

	queries := []string{
		"CREATE TABLE IF NOT EXISTS history (seq INTEGER PRIMARY KEY AUTOINCREMENT, id TEXT UNIQUE, text TEXT, created_at INTEGER);",
		"CREATE INDEX IF NOT EXISTS index_created_at ON history (created_at);",
	}
	if err := execQueries(conn, queries); err != nil {
		conn.Close()
		return nil, err
	}

	return &History{conn: conn, Path: path, now: time.Now}, nil
}

// Save text as a new item
func (h *History) Save(ctx context.Context, text string) (HistoryItem, error) {
	if strings.TrimSpace(text) == "" {
		return HistoryItem{}, ErrEmptyText
	}

	item := HistoryItem{
		ID:        uuid.NewString(),
		Text:      text,
		Timestamp: h.now().UnixMilli(),
	}

	ctx, cancelFunc := context.WithTimeout(ctx, queryTimeout)
	defer cancelFunc()

	_, err := h.conn.ExecContext(ctx, "INSERT INTO history (id, text, created_at) VALUES (?, ?, ?)", item.ID, item.Text, item.Timestamp)
	if err != nil {
		return HistoryItem{}, fmt.Errorf("failed to save history item: %w", err)
	}

	tracer().Debugf("saved history item %s", item.ID)
	return item, nil
}

// List items newest first. limit <= 0 lists everything.
func (h *History) List(ctx context.Context, limit int) ([]HistoryItem, error) {
	if limit <= 0 {
		limit = -1
	}

	ctx, cancelFunc := context.WithTimeout(ctx, queryTimeout)
	defer cancelFunc()

	rows, err := h.conn.QueryContext(ctx, "SELECT id, text, created_at FROM history ORDER BY created_at DESC, seq DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []HistoryItem
	for rows.Next() {
		var item HistoryItem
		if err := rows.Scan(&item.ID, &item.Text, &item.Timestamp); err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	return results, rows.Err()
}

// Delete the item with id
func (h *History) Delete(ctx context.Context, id string) error {
	ctx, cancelFunc := context.WithTimeout(ctx, queryTimeout)
	defer cancelFunc()

	result, err := h.conn.ExecContext(ctx, "DELETE FROM history WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// Clear removes every item
func (h *History) Clear(ctx context.Context) error {
	ctx, cancelFunc := context.WithTimeout(ctx, queryTimeout)
	defer cancelFunc()

	_, err := h.conn.ExecContext(ctx, "DELETE FROM history")
	return err
}

// Close the history file
func (h *History) Close() error {
	return h.conn.Close()
}
