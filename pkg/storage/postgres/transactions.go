package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ledgerkit/transfer-service/pkg/models"
	"github.com/ledgerkit/transfer-service/pkg/storage"
)

const transactionColumns = `id, sender_id, receiver_id, amount_in_cents,
	COALESCE(description, ''), status, COALESCE(reversal_reason, ''),
	created_at, updated_at`

// FindTransaction retrieves a transaction by ID, or
// storage.ErrTransactionNotFound if no row exists.
func (s *Store) FindTransaction(ctx context.Context, txID string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	var tx models.Transaction
	err := s.DB.QueryRowContext(ctx, query, txID).Scan(
		&tx.ID, &tx.SenderID, &tx.ReceiverID, &tx.AmountInCents,
		&tx.Description, &tx.Status, &tx.ReversalReason,
		&tx.CreatedAt, &tx.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return &tx, nil
}

// ListTransactionsByAccount retrieves every transaction where the account is
// sender or receiver. Ordering is left to the caller.
func (s *Store) ListTransactionsByAccount(ctx context.Context, accountID string) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE sender_id = $1 OR receiver_id = $1`

	rows, err := s.DB.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.SenderID, &tx.ReceiverID, &tx.AmountInCents,
			&tx.Description, &tx.Status, &tx.ReversalReason,
			&tx.CreatedAt, &tx.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return txs, nil
}
