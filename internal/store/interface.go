package store

import "errors"

// VersionTable is the reserved bookkeeping table. It holds one record per
// managed table: the table's name and the schema version installed for it.
// The on-disk layout is fixed for compatibility with existing databases.
const VersionTable = "TablesVersions"

// Version sentinels returned by GetVersion.
const (
	// VersionNotTracked means the bookkeeping table has no record for the
	// table: it was never provisioned through this layer.
	VersionNotTracked = 0

	// VersionUnknown means the version cannot be determined: the bookkeeping
	// table itself is missing, or its record is malformed. Callers must not
	// treat this as "version 0".
	VersionUnknown = -1
)

var (
	// ErrNotOpened is returned when an operation runs before Open.
	ErrNotOpened = errors.New("database not opened")

	// ErrVersionUnknown wraps every failure that leaves a table's version
	// undeterminable, so callers can errors.Is instead of comparing the
	// VersionUnknown sentinel.
	ErrVersionUnknown = errors.New("table version unknown")

	// ErrNoColumns is returned for a table definition with an empty column
	// list. Such a definition is rejected before any SQL is built.
	ErrNoColumns = errors.New("table definition has no columns")

	// ErrDuplicateColumn is returned when a table definition names the same
	// column twice.
	ErrDuplicateColumn = errors.New("duplicate column in table definition")
)

// Column is one entry of an ordered table definition. Type is the raw column
// type clause ("TEXT PRIMARY KEY", "REAL NOT NULL", ...) and is emitted
// verbatim; Name is quoted as an identifier.
type Column struct {
	Name string
	Type string
}

// StoreState represents the initialization state of the datastore.
type StoreState int

const (
	StateMissing       StoreState = iota // file doesn't exist
	StateUninitialized                   // file exists but bookkeeping table absent
	StateReady                           // bookkeeping table present
)

func (s StoreState) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	default:
		return "invalid"
	}
}

// Store is the complete surface this layer exposes to data owners. A single
// implementation holds the one shared connection for the whole process; all
// schema operations are serialized by the application's main sequence of
// execution, so implementations need no internal locking.
type Store interface {
	// Open opens the datastore connection.
	Open() error

	// Close closes the datastore connection. Must be called exactly once,
	// after all schema operations have concluded.
	Close() error

	// Exec prepares and runs a single raw statement.
	Exec(stmt string) error

	// TableExists reports whether the named table is present in the live
	// catalog. A failure to query the catalog is an error, never "false".
	TableExists(name string) (bool, error)

	// EnsureTable creates the table if absent; a present table is a no-op
	// success. It does not stamp a version: the caller picks its own
	// numbering scheme and calls SetVersion after a fresh create.
	EnsureTable(name string, cols []Column) error

	// DropTable drops the table; an absent table is a no-op success. The
	// bookkeeping record is deliberately left in place.
	DropTable(name string) error

	// GetVersion returns the version recorded for the named table, or one
	// of the sentinels. The VersionUnknown case also carries an error
	// wrapping ErrVersionUnknown.
	GetVersion(name string) (int, error)

	// SetVersion upserts the version record for the named table. The table
	// itself and the bookkeeping table must already exist.
	SetVersion(name string, version int) error

	// CheckState returns the current state of the datastore.
	CheckState() (StoreState, error)
}

// Owner is a data owner: an external collaborator responsible for one managed
// table. The bootstrap sequencer consumes exactly these three values.
type Owner interface {
	// TableName returns the managed table's name.
	TableName() string

	// Columns returns the ordered column definition list.
	Columns() []Column

	// Version returns the schema version to stamp after a fresh create.
	Version() int
}
