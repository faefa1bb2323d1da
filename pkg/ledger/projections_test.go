package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/ledgerkit/transfer-service/pkg/models"
	"github.com/ledgerkit/transfer-service/pkg/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTransfer(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := newTestStore()
		engine := NewEngine(store, nil)
		tx, err := engine.Transfer(ctx, "acct-a", "acct-b", 300, "books")
		require.NoError(t, err)

		view, err := engine.GetTransfer(ctx, tx.ID)

		require.NoError(t, err)
		assert.Equal(t, tx.ID, view.ID)
		assert.Equal(t, models.COMPLETED, view.Status)
		assert.Equal(t, models.AccountSummary{ID: "acct-a", Email: "a@example.com", Name: "Alice"}, view.Sender)
		assert.Equal(t, models.AccountSummary{ID: "acct-b", Email: "b@example.com", Name: "Bob"}, view.Receiver)
	})

	t.Run("Not Found", func(t *testing.T) {
		engine := NewEngine(newTestStore(), nil)

		_, err := engine.GetTransfer(ctx, "no-such-tx")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.EqualError(t, err, "Transaction not found")
	})
}

func TestListTransfersForAccount(t *testing.T) {
	ctx := context.Background()

	seed := func(store *memory.Store, id, sender, receiver string, createdAt time.Time) {
		store.SeedTransaction(models.Transaction{
			ID:            id,
			SenderID:      sender,
			ReceiverID:    receiver,
			AmountInCents: 100,
			Status:        models.COMPLETED,
			CreatedAt:     createdAt,
			UpdatedAt:     createdAt,
		})
	}

	t.Run("Most Recent First, Both Roles", func(t *testing.T) {
		store := newTestStore()
		engine := NewEngine(store, nil)

		base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		seed(store, "tx-oldest", "acct-a", "acct-b", base)
		seed(store, "tx-middle", "acct-b", "acct-a", base.Add(time.Minute))
		seed(store, "tx-newest", "acct-a", "acct-c", base.Add(2*time.Minute))
		seed(store, "tx-unrelated", "acct-b", "acct-c", base.Add(3*time.Minute))

		views, err := engine.ListTransfersForAccount(ctx, "acct-a")

		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, "tx-newest", views[0].ID)
		assert.Equal(t, "tx-middle", views[1].ID)
		assert.Equal(t, "tx-oldest", views[2].ID)

		// Each view carries the denormalized participant identities.
		assert.Equal(t, "Alice", views[2].Sender.Name)
		assert.Equal(t, "Bob", views[2].Receiver.Name)
	})

	t.Run("No Transfers", func(t *testing.T) {
		engine := NewEngine(newTestStore(), nil)

		views, err := engine.ListTransfersForAccount(ctx, "acct-c")

		require.NoError(t, err)
		assert.Empty(t, views)
	})
}
