package db

import (
	"database/sql"
	"errors"
	"fmt"
)

// Merge adds per-document paragraph counts in a single transaction.
func (db *DB) Merge(counts map[string]int) error {
	if len(counts) == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO paragraph_counts (paragraph, count)
		VALUES (?, ?)
		ON CONFLICT(paragraph) DO UPDATE SET count = count + excluded.count
	`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for paragraph, n := range counts {
		if _, err := stmt.Exec(paragraph, n); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to upsert paragraph count: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit paragraph counts: %w", err)
	}
	return nil
}

// Count returns the stored count for paragraph, 0 if unseen.
func (db *DB) Count(paragraph string) (int, error) {
	var n int
	err := db.QueryRow("SELECT count FROM paragraph_counts WHERE paragraph = ?", paragraph).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query paragraph count: %w", err)
	}
	return n, nil
}

// Len returns the number of distinct paragraphs stored.
func (db *DB) Len() (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM paragraph_counts").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count paragraphs: %w", err)
	}
	return n, nil
}
