package postgres

import (
	"context"
	"fmt"

	"github.com/ledgerkit/transfer-service/pkg/models"
	"github.com/lib/pq"
)

// CountAccounts returns how many of the given account IDs exist. No locks
// are taken.
func (s *Store) CountAccounts(ctx context.Context, ids []string) (int, error) {
	const query = `SELECT COUNT(*) FROM accounts WHERE id = ANY($1)`

	var count int
	if err := s.DB.QueryRowContext(ctx, query, pq.Array(ids)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}

// GetAccountSummaries retrieves the identity fields of the given accounts,
// keyed by ID.
func (s *Store) GetAccountSummaries(ctx context.Context, ids []string) (map[string]models.AccountSummary, error) {
	const query = `SELECT id, email, name FROM accounts WHERE id = ANY($1)`

	rows, err := s.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to query account summaries: %w", err)
	}
	defer rows.Close()

	summaries := make(map[string]models.AccountSummary, len(ids))
	for rows.Next() {
		var summary models.AccountSummary
		if err := rows.Scan(&summary.ID, &summary.Email, &summary.Name); err != nil {
			return nil, fmt.Errorf("failed to scan account summary: %w", err)
		}
		summaries[summary.ID] = summary
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read account summaries: %w", err)
	}
	return summaries, nil
}
