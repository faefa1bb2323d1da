package storage

import (
	"context"

	"github.com/ledgerkit/transfer-service/pkg/models"
)

// UnitOfWork is the write surface available inside a single atomic unit.
// Every write is effective only if the enclosing unit commits.
type UnitOfWork interface {
	// LockAccounts acquires an exclusive row lock on each of the given
	// accounts and returns them in ascending-ID order. The locks are held
	// until the unit of work commits or rolls back. IDs that do not exist
	// are silently absent from the result.
	LockAccounts(ctx context.Context, ids []string) ([]models.Account, error)

	// SaveAccount persists the account's balance.
	SaveAccount(ctx context.Context, account *models.Account) error

	// SaveTransaction persists the transaction record, inserting or
	// updating as needed.
	SaveTransaction(ctx context.Context, tx *models.Transaction) error
}

// Atomizer runs a function inside one all-or-nothing unit of work. If fn
// returns an error the unit is rolled back and the error is returned
// unchanged; otherwise the unit commits. A lock-wait timeout or deadlock
// signalled by the underlying store surfaces as ErrLockConflict.
type Atomizer interface {
	Atomically(ctx context.Context, fn func(uow UnitOfWork) error) error
}
