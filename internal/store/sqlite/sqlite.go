package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/ybabel/BeurerScaleManager/internal/store"
	_ "modernc.org/sqlite"
)

// Store implements the store.Store contract using modernc.org/sqlite. It
// wraps the single shared connection for the process; the owning scope opens
// and closes it exactly once, every other component borrows it.
type Store struct {
	dbPath string
	db     *sql.DB
}

// New creates a Store for the database file at dbPath. The file is not
// touched until Open.
func New(dbPath string) *Store {
	return &Store{dbPath: dbPath}
}

// Open opens the SQLite database with safe defaults, creating the file if it
// does not exist.
func (s *Store) Open() error {
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite supports one writer at a time; a single connection keeps all
	// schema operations on the same handle.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	s.db = db
	return nil
}

// Close closes the database connection. A never-opened store closes cleanly.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// DB returns the underlying sql.DB for direct queries by data owners.
// Schema operations should go through the Store methods.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Exec prepares and runs a single raw statement against the shared handle.
// Statements carry no values, only DDL, so there is nothing to parameterize.
func (s *Store) Exec(stmt string) error {
	if s.db == nil {
		return store.ErrNotOpened
	}
	prepared, err := s.db.Prepare(stmt)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer prepared.Close()
	if _, err := prepared.Exec(); err != nil {
		return fmt.Errorf("failed to execute statement: %w", err)
	}
	return nil
}

// TableExists reports whether name is present in the live catalog. The
// catalog is queried on every call; nothing is cached.
func (s *Store) TableExists(name string) (bool, error) {
	if s.db == nil {
		return false, store.ErrNotOpened
	}
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`,
		name,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query catalog for %q: %w", name, err)
	}
	return count > 0, nil
}

// CheckState returns the current state of the datastore.
func (s *Store) CheckState() (store.StoreState, error) {
	if s.db == nil {
		return store.StateMissing, store.ErrNotOpened
	}
	exists, err := s.TableExists(store.VersionTable)
	if err != nil {
		return store.StateUninitialized, fmt.Errorf("failed to check %s table: %w", store.VersionTable, err)
	}
	if !exists {
		return store.StateUninitialized, nil
	}
	return store.StateReady, nil
}
