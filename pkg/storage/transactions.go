package storage

import (
	"context"

	"github.com/ledgerkit/transfer-service/pkg/models"
)

// TransactionReader defines the interface for reading transaction data.
type TransactionReader interface {
	// FindTransaction retrieves a transaction by its ID. It returns
	// ErrTransactionNotFound if no such transaction exists.
	FindTransaction(ctx context.Context, txID string) (*models.Transaction, error)

	// ListTransactionsByAccount retrieves every transaction in which the
	// account appears as sender or receiver, in unspecified order.
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]models.Transaction, error)
}
