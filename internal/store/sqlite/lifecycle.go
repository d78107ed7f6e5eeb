package sqlite

import (
	"fmt"

	"github.com/ybabel/BeurerScaleManager/internal/store"
)

// EnsureTable creates the named table if it is absent. A present table is a
// no-op success regardless of its column set; callers track schema changes
// through the version registry, not by comparing definitions.
func (s *Store) EnsureTable(name string, cols []store.Column) error {
	exists, err := s.TableExists(name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	stmt, err := BuildCreateTable(name, cols)
	if err != nil {
		return err
	}
	if err := s.Exec(stmt); err != nil {
		return fmt.Errorf("failed to create table %q: %w", name, err)
	}
	return nil
}

// DropTable drops the named table; dropping an absent table is a no-op
// success. The bookkeeping record is left in place: it is historical metadata
// about what has existed, not a live presence flag.
func (s *Store) DropTable(name string) error {
	exists, err := s.TableExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	if err := s.Exec("DROP TABLE " + QuoteIdentifier(name) + ";"); err != nil {
		return fmt.Errorf("failed to drop table %q: %w", name, err)
	}
	return nil
}
