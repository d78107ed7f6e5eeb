package sqlite

import (
	"fmt"
	"strings"

	"github.com/ybabel/BeurerScaleManager/internal/store"
)

// QuoteIdentifier quotes a table or column name so reserved words survive as
// identifiers. Embedded double quotes are doubled per the SQL standard.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// BuildCreateTable assembles a CREATE TABLE statement from an ordered column
// definition list. Column order is preserved verbatim; names are quoted,
// type clauses are emitted as given. Pure function, no I/O.
func BuildCreateTable(name string, cols []store.Column) (string, error) {
	if name == "" {
		return "", fmt.Errorf("table name is empty")
	}
	if len(cols) == 0 {
		return "", fmt.Errorf("table %q: %w", name, store.ErrNoColumns)
	}

	seen := make(map[string]bool, len(cols))
	defs := make([]string, 0, len(cols))
	for _, col := range cols {
		if col.Name == "" {
			return "", fmt.Errorf("table %q: column name is empty", name)
		}
		if seen[col.Name] {
			return "", fmt.Errorf("table %q: %w: %s", name, store.ErrDuplicateColumn, col.Name)
		}
		seen[col.Name] = true

		def := QuoteIdentifier(col.Name)
		if col.Type != "" {
			def += " " + col.Type
		}
		defs = append(defs, def)
	}

	return "CREATE TABLE " + QuoteIdentifier(name) + " (" + strings.Join(defs, ", ") + ");", nil
}
