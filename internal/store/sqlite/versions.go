package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ybabel/BeurerScaleManager/internal/store"
)

// GetVersion returns the schema version recorded for name in the bookkeeping
// table. Three outcomes:
//
//   - a recorded version, when a well-formed record exists;
//   - store.VersionNotTracked (0) with a nil error, when the bookkeeping
//     table exists but holds no record for name;
//   - store.VersionUnknown (-1) with an error wrapping
//     store.ErrVersionUnknown, when the bookkeeping table is missing or the
//     record is malformed.
//
// The two sentinels are distinct failure states; callers must not conflate
// either with a real version.
func (s *Store) GetVersion(name string) (int, error) {
	if s.db == nil {
		return store.VersionUnknown, fmt.Errorf("%w: %v", store.ErrVersionUnknown, store.ErrNotOpened)
	}

	hasTable, err := s.TableExists(store.VersionTable)
	if err != nil {
		return store.VersionUnknown, fmt.Errorf("%w: %v", store.ErrVersionUnknown, err)
	}
	if !hasTable {
		return store.VersionUnknown, fmt.Errorf("%w: %s table is missing", store.ErrVersionUnknown, store.VersionTable)
	}

	var version sql.NullInt64
	err = s.db.QueryRow(
		`SELECT version FROM `+QuoteIdentifier(store.VersionTable)+` WHERE tableName = ?`,
		name,
	).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return store.VersionNotTracked, nil
	}
	if err != nil {
		return store.VersionUnknown, fmt.Errorf("%w: %v", store.ErrVersionUnknown, err)
	}
	if !version.Valid || version.Int64 < 0 {
		return store.VersionUnknown, fmt.Errorf("%w: malformed record for %q", store.ErrVersionUnknown, name)
	}
	return int(version.Int64), nil
}

// SetVersion records version for name, replacing any existing record so the
// bookkeeping table always holds exactly one authoritative record per table.
// Stamping requires both the bookkeeping table and the managed table to be
// physically present.
func (s *Store) SetVersion(name string, version int) error {
	if s.db == nil {
		return store.ErrNotOpened
	}
	if version < 0 {
		return fmt.Errorf("version must be non-negative, got %d", version)
	}

	hasBookkeeping, err := s.TableExists(store.VersionTable)
	if err != nil {
		return err
	}
	if !hasBookkeeping {
		return fmt.Errorf("cannot set version for %q: %s table is missing", name, store.VersionTable)
	}

	exists, err := s.TableExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("cannot set version for %q: table does not exist", name)
	}

	_, err = s.db.Exec(
		`INSERT INTO `+QuoteIdentifier(store.VersionTable)+` (tableName, version) VALUES (?, ?)
		 ON CONFLICT(tableName) DO UPDATE SET version = excluded.version`,
		name, version,
	)
	if err != nil {
		return fmt.Errorf("failed to set version for %q: %w", name, err)
	}
	return nil
}
