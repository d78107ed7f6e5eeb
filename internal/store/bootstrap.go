package store

import (
	"fmt"
	"strings"

	"github.com/ybabel/BeurerScaleManager/internal/logger"
)

// BootstrapState tracks the startup sequence of the persistence layer.
type BootstrapState int

const (
	BootstrapUnopened BootstrapState = iota // nothing done yet
	BootstrapOpening                        // acquiring the shared handle
	BootstrapOpened                         // handle acquired, bookkeeping table ensured
	BootstrapReady                          // all registered owners provisioned
	BootstrapFailed                         // terminal failure at any earlier step
)

func (s BootstrapState) String() string {
	switch s {
	case BootstrapUnopened:
		return "unopened"
	case BootstrapOpening:
		return "opening"
	case BootstrapOpened:
		return "opened"
	case BootstrapReady:
		return "ready"
	case BootstrapFailed:
		return "failed"
	default:
		return "invalid"
	}
}

// versionTableColumns is the fixed layout of the bookkeeping table.
var versionTableColumns = []Column{
	{Name: "tableName", Type: "TEXT PRIMARY KEY"},
	{Name: "version", Type: "INTEGER"},
}

// ProvisionError reports the data owners that failed to provision during
// bootstrap. Owners that succeeded before or after a failure stay provisioned;
// partial success is reported, not silently dropped.
type ProvisionError struct {
	Failed []string
}

func (e *ProvisionError) Error() string {
	return fmt.Sprintf("provisioning failed for: %s", strings.Join(e.Failed, ", "))
}

// Bootstrap owns the startup sequence: it opens the shared store handle,
// ensures the bookkeeping table, then asks every registered data owner's
// table into existence. It is the single owning scope for the handle and the
// only component allowed to close it.
type Bootstrap struct {
	store  Store
	log    logger.Logger
	state  BootstrapState
	owners []Owner
}

// NewBootstrap creates a sequencer over st. A nil log falls back to the
// package default.
func NewBootstrap(st Store, log logger.Logger) *Bootstrap {
	if log == nil {
		log = logger.Default
	}
	return &Bootstrap{store: st, log: log, state: BootstrapUnopened}
}

// Register adds data owners to provision during Run, in call order.
func (b *Bootstrap) Register(owners ...Owner) {
	b.owners = append(b.owners, owners...)
}

// State returns the current bootstrap state.
func (b *Bootstrap) State() BootstrapState {
	return b.state
}

// Run drives the sequence to BootstrapReady or BootstrapFailed. It runs at
// most once
// per Bootstrap; a second call is an error. An open or bookkeeping-table
// failure is fatal and short-circuits; owner failures are collected and
// reported together as a *ProvisionError after every owner has been tried.
func (b *Bootstrap) Run() error {
	if b.state != BootstrapUnopened {
		return fmt.Errorf("bootstrap already run (state %s)", b.state)
	}

	b.state = BootstrapOpening
	if err := b.store.Open(); err != nil {
		b.state = BootstrapFailed
		return fmt.Errorf("failed to open store: %w", err)
	}

	if err := b.store.EnsureTable(VersionTable, versionTableColumns); err != nil {
		b.state = BootstrapFailed
		return fmt.Errorf("failed to create version table %s: %w", VersionTable, err)
	}
	b.state = BootstrapOpened

	var failed []string
	for _, owner := range b.owners {
		if err := b.provision(owner); err != nil {
			b.log.Error("provisioning %s: %v", owner.TableName(), err)
			failed = append(failed, owner.TableName())
			continue
		}
	}
	if len(failed) > 0 {
		b.state = BootstrapFailed
		return &ProvisionError{Failed: failed}
	}

	b.state = BootstrapReady
	b.log.Info("store ready, %d table(s) managed", len(b.owners))
	return nil
}

// provision creates the owner's table if absent and stamps its version. An
// already-present table is left untouched, version record included.
func (b *Bootstrap) provision(owner Owner) error {
	name := owner.TableName()
	exists, err := b.store.TableExists(name)
	if err != nil {
		return err
	}
	if exists {
		b.log.Debug("table %s already present", name)
		return nil
	}
	if err := b.store.EnsureTable(name, owner.Columns()); err != nil {
		return err
	}
	if err := b.store.SetVersion(name, owner.Version()); err != nil {
		return err
	}
	b.log.Info("table %s created at version %d", name, owner.Version())
	return nil
}

// Close releases the shared handle. Safe to call regardless of the terminal
// state; the underlying store tolerates a close before a successful open.
func (b *Bootstrap) Close() error {
	return b.store.Close()
}
