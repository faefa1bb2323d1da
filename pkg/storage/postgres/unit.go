package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ledgerkit/transfer-service/pkg/models"
	"github.com/ledgerkit/transfer-service/pkg/storage"
	"github.com/lib/pq"
)

// unitOfWork implements storage.UnitOfWork on one *sql.Tx.
type unitOfWork struct {
	tx *sql.Tx
}

var _ storage.UnitOfWork = (*unitOfWork)(nil)

// LockAccounts takes an exclusive row lock on each account and returns them
// in ascending-ID order. ORDER BY inside FOR UPDATE fixes the order in which
// Postgres acquires the locks, which is what keeps concurrent units from
// deadlocking on overlapping pairs.
func (u *unitOfWork) LockAccounts(ctx context.Context, ids []string) ([]models.Account, error) {
	const query = `SELECT id, email, name, balance_in_cents FROM accounts
		WHERE id = ANY($1) ORDER BY id ASC FOR UPDATE`

	rows, err := u.tx.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(&account.ID, &account.Email, &account.Name, &account.BalanceInCents); err != nil {
			return nil, fmt.Errorf("failed to scan locked account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read locked accounts: %w", err)
	}
	return accounts, nil
}

// SaveAccount persists the account's balance within the unit.
func (u *unitOfWork) SaveAccount(ctx context.Context, account *models.Account) error {
	const query = `UPDATE accounts SET balance_in_cents = $2 WHERE id = $1`

	if _, err := u.tx.ExecContext(ctx, query, account.ID, account.BalanceInCents); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

// SaveTransaction upserts the transaction row. The engine saves the record
// twice inside a transfer (PENDING then COMPLETED); the ON CONFLICT branch
// collapses that into a single durable state.
func (u *unitOfWork) SaveTransaction(ctx context.Context, tx *models.Transaction) error {
	const query = `INSERT INTO transactions
		(id, sender_id, receiver_id, amount_in_cents, description, status, reversal_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, NULLIF($7, ''), $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			reversal_reason = EXCLUDED.reversal_reason,
			updated_at = EXCLUDED.updated_at`

	if _, err := u.tx.ExecContext(ctx, query,
		tx.ID, tx.SenderID, tx.ReceiverID, tx.AmountInCents, tx.Description,
		tx.Status, tx.ReversalReason, tx.CreatedAt, tx.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}
