package storage

import (
	"context"

	"github.com/ledgerkit/transfer-service/pkg/models"
)

// AccountReader defines the read-only account operations available outside a
// unit of work. These reads do not take row locks.
type AccountReader interface {
	// CountAccounts returns how many of the given account IDs exist. It is
	// used as a cheap existence probe before any unit of work is opened.
	CountAccounts(ctx context.Context, ids []string) (int, error)

	// GetAccountSummaries retrieves the identity fields of the given
	// accounts, keyed by account ID. Missing IDs are simply absent from the
	// result.
	GetAccountSummaries(ctx context.Context, ids []string) (map[string]models.AccountSummary, error)
}
