package ledger

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/ledgerkit/transfer-service/pkg/models"
	"github.com/ledgerkit/transfer-service/pkg/storage"
)

// GetTransfer returns the transaction merged with the identity of its sender
// and receiver. It reads at the store's default consistency and takes no
// locks.
func (e *Engine) GetTransfer(ctx context.Context, transactionID string) (*models.TransferView, error) {
	tx, err := e.store.FindTransaction(ctx, transactionID)
	if err != nil {
		if errors.Is(err, storage.ErrTransactionNotFound) {
			return nil, fail(ErrNotFound, "Transaction not found")
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	summaries, err := e.store.GetAccountSummaries(ctx, []string{tx.SenderID, tx.ReceiverID})
	if err != nil {
		return nil, fmt.Errorf("failed to get account summaries: %w", err)
	}

	view := newTransferView(*tx, summaries)
	return &view, nil
}

// ListTransfersForAccount returns every transaction in which the account is
// sender or receiver, most recent first. The store returns rows in
// unspecified order; the ordering is applied here.
func (e *Engine) ListTransfersForAccount(ctx context.Context, accountID string) ([]models.TransferView, error) {
	txs, err := e.store.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	sort.Slice(txs, func(i, j int) bool {
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})

	idSet := make(map[string]struct{})
	for _, tx := range txs {
		idSet[tx.SenderID] = struct{}{}
		idSet[tx.ReceiverID] = struct{}{}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	summaries := map[string]models.AccountSummary{}
	if len(ids) > 0 {
		summaries, err = e.store.GetAccountSummaries(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to get account summaries: %w", err)
		}
	}

	views := make([]models.TransferView, len(txs))
	for i, tx := range txs {
		views[i] = newTransferView(tx, summaries)
	}
	return views, nil
}

func newTransferView(tx models.Transaction, summaries map[string]models.AccountSummary) models.TransferView {
	return models.TransferView{
		Transaction: tx,
		Sender:      summaries[tx.SenderID],
		Receiver:    summaries[tx.ReceiverID],
	}
}
