package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ledgerkit/transfer-service/pkg/storage"
	"github.com/lib/pq"
)

// Store implements the storage.Store interface on PostgreSQL via lib/pq.
// Exclusive account locks are plain row locks (SELECT ... FOR UPDATE) scoped
// to one database transaction, which is the atomic unit.
type Store struct {
	DB *sql.DB
}

// New creates a new Store on the given database handle.
func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

// Make sure we conform to the interface.
var _ storage.Store = (*Store)(nil)

// Atomically runs fn inside one database transaction. Any error from fn
// rolls the transaction back in full; deadlocks and lock-wait timeouts
// raised by Postgres surface as storage.ErrLockConflict.
func (s *Store) Atomically(ctx context.Context, fn func(uow storage.UnitOfWork) error) error {
	dbTx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin unit of work: %w", err)
	}

	if err := fn(&unitOfWork{tx: dbTx}); err != nil {
		if rbErr := dbTx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			slog.Error("failed to roll back unit of work", "error", rbErr)
		}
		return coerceLockErr(err)
	}

	if err := dbTx.Commit(); err != nil {
		return coerceLockErr(fmt.Errorf("failed to commit unit of work: %w", err))
	}
	return nil
}

// Postgres error codes that signal a lock conflict: deadlock_detected,
// lock_not_available and serialization_failure.
func coerceLockErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40P01", "55P03", "40001":
			return fmt.Errorf("%w: %v", storage.ErrLockConflict, err)
		}
	}
	return err
}
