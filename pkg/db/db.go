// Package db provides the SQLite-backed paragraph frequency store used when
// the corpus frequency table should spill out of process memory.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const DefaultDBName = "paragraph-counts.db"

type DB struct {
	*sql.DB
	path    string
	tempDir string // removed on Close when the DB owns it
}

// openDB opens a SQLite database at the given path
func openDB(dbPath string) (*sql.DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps ":memory:" databases coherent and
	// serializes writers without busy retries.
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = sqlDB.Close() // Close error less important than PRAGMA error
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return sqlDB, nil
}

// OpenSpill creates a fresh database inside a new temporary directory under
// parentDir (os.TempDir() when empty). The directory and database are
// deleted on Close, so nothing survives the run.
func OpenSpill(parentDir string) (*DB, error) {
	if parentDir != "" {
		if err := os.MkdirAll(parentDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create spill directory: %w", err)
		}
	}
	tempDir, err := os.MkdirTemp(parentDir, "corpus-enricher-")
	if err != nil {
		return nil, fmt.Errorf("failed to create spill directory: %w", err)
	}

	dbPath := filepath.Join(tempDir, DefaultDBName)
	sqlDB, err := openDB(dbPath)
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return nil, err
	}

	db := &DB{
		DB:      sqlDB,
		path:    dbPath,
		tempDir: tempDir,
	}

	if err := db.InitSchema(); err != nil {
		_ = db.Close() // Close error less important than schema error
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Path returns the database file path
func (db *DB) Path() string {
	return db.path
}

// InitSchema initializes the database schema
func (db *DB) InitSchema() error {
	_, err := db.Exec(schema)
	return err
}

// Close closes the database and removes its spill directory, if any.
func (db *DB) Close() error {
	err := db.DB.Close()
	if db.tempDir != "" {
		if rmErr := os.RemoveAll(db.tempDir); rmErr != nil && err == nil {
			err = fmt.Errorf("failed to remove spill directory: %w", rmErr)
		}
	}
	return err
}
