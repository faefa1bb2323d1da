package ledger

import (
	"context"

	"github.com/ledgerkit/transfer-service/pkg/models"
)

// Service is the engine's caller-facing surface. The API layer depends on
// this interface rather than on the Engine itself.
type Service interface {
	// Transfer moves amountInCents from senderID to receiverID and returns
	// the COMPLETED transaction.
	Transfer(ctx context.Context, senderID, receiverID string, amountInCents int64, description string) (*models.Transaction, error)

	// Reverse undoes a COMPLETED transaction on behalf of one of its
	// participants and returns the REVERSED transaction.
	Reverse(ctx context.Context, transactionID, requesterID, reason string) (*models.Transaction, error)

	// GetTransfer returns a single transaction denormalized with both
	// participants' identity.
	GetTransfer(ctx context.Context, transactionID string) (*models.TransferView, error)

	// ListTransfersForAccount returns every transfer the account took part
	// in, most recent first.
	ListTransfersForAccount(ctx context.Context, accountID string) ([]models.TransferView, error)
}
