package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerkit/transfer-service/pkg/events"
	"github.com/ledgerkit/transfer-service/pkg/models"
	"github.com/ledgerkit/transfer-service/pkg/storage"
)

// DefaultReversalReason is recorded when a reversal is requested without an
// explicit reason.
const DefaultReversalReason = "Requested by user"

// Engine moves monetary value between two accounts and records an immutable
// audit entry for every movement. It owns the locking protocol, the balance
// arithmetic and the transaction status transitions; accounts themselves are
// managed elsewhere.
type Engine struct {
	store     storage.Store
	publisher events.Publisher
}

// NewEngine creates an Engine. The publisher may be nil, in which case no
// events are emitted.
func NewEngine(store storage.Store, publisher events.Publisher) *Engine {
	return &Engine{store: store, publisher: publisher}
}

// Make sure we conform to the interface.
var _ Service = (*Engine)(nil)

// Transfer debits senderID and credits receiverID by amountInCents inside a
// single unit of work, recording a COMPLETED transaction. Row locks on both
// accounts are acquired in ascending-ID order; because every concurrent
// transfer and reversal requests locks in the same relative order, no two
// units can each hold a lock the other needs.
func (e *Engine) Transfer(ctx context.Context, senderID, receiverID string, amountInCents int64, description string) (*models.Transaction, error) {
	if senderID == receiverID {
		return nil, fail(ErrInvalidOperation, "Cannot transfer to yourself")
	}
	if amountInCents <= 0 {
		return nil, fail(ErrInvalidOperation, "Transfer amount must be positive")
	}

	// Cheap existence probe before any locks are taken.
	count, err := e.store.CountAccounts(ctx, []string{senderID, receiverID})
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}
	if count != 2 {
		return nil, fail(ErrNotFound, "One or both accounts not found")
	}

	var created *models.Transaction
	err = e.store.Atomically(ctx, func(uow storage.UnitOfWork) error {
		sender, receiver, err := lockPair(ctx, uow, senderID, receiverID)
		if err != nil {
			return err
		}

		if sender.BalanceInCents < amountInCents {
			return fail(ErrInsufficientFunds, "Insufficient balance")
		}

		now := time.Now()
		tx := &models.Transaction{
			ID:            uuid.New().String(),
			SenderID:      senderID,
			ReceiverID:    receiverID,
			AmountInCents: amountInCents,
			Description:   description,
			Status:        models.PENDING,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := uow.SaveTransaction(ctx, tx); err != nil {
			return fmt.Errorf("failed to save transaction: %w", err)
		}

		sender.BalanceInCents -= amountInCents
		receiver.BalanceInCents += amountInCents
		if err := uow.SaveAccount(ctx, sender); err != nil {
			return fmt.Errorf("failed to save sender: %w", err)
		}
		if err := uow.SaveAccount(ctx, receiver); err != nil {
			return fmt.Errorf("failed to save receiver: %w", err)
		}

		// Promoted before the unit commits, so PENDING is never durable.
		tx.Status = models.COMPLETED
		tx.UpdatedAt = time.Now()
		if err := uow.SaveTransaction(ctx, tx); err != nil {
			return fmt.Errorf("failed to complete transaction: %w", err)
		}

		created = tx
		return nil
	})
	if err != nil {
		return nil, mapUnitErr(err)
	}

	e.publish(ctx, events.Message{
		Type: events.TypeTransferCompleted,
		Payload: events.TransferPayload{
			TransactionID: created.ID,
			SenderID:      created.SenderID,
			ReceiverID:    created.ReceiverID,
			AmountInCents: created.AmountInCents,
			OccurredAt:    created.UpdatedAt,
		},
	})

	return created, nil
}

// Reverse undoes a prior COMPLETED transfer: the original sender is credited
// and the original receiver debited by the original amount, and the
// transaction moves to REVERSED. Only a participant of the original transfer
// may request it, and a transaction can be reversed at most once.
func (e *Engine) Reverse(ctx context.Context, transactionID, requesterID, reason string) (*models.Transaction, error) {
	tx, err := e.store.FindTransaction(ctx, transactionID)
	if err != nil {
		if errors.Is(err, storage.ErrTransactionNotFound) {
			return nil, fail(ErrNotFound, "Transaction not found")
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if requesterID != tx.SenderID && requesterID != tx.ReceiverID {
		return nil, fail(ErrForbidden, "You can only reverse your own transactions")
	}
	if tx.Status != models.COMPLETED {
		return nil, fail(ErrInvalidOperation, "Only completed transactions can be reversed")
	}

	if reason == "" {
		reason = DefaultReversalReason
	}

	err = e.store.Atomically(ctx, func(uow storage.UnitOfWork) error {
		sender, receiver, err := lockPair(ctx, uow, tx.SenderID, tx.ReceiverID)
		if err != nil {
			return err
		}

		sender.BalanceInCents += tx.AmountInCents
		// The receiver is debited without a sufficiency check; an
		// intervening spend can leave its balance negative.
		// TODO: decide whether reversals should be rejected in that case.
		receiver.BalanceInCents -= tx.AmountInCents
		if err := uow.SaveAccount(ctx, sender); err != nil {
			return fmt.Errorf("failed to save sender: %w", err)
		}
		if err := uow.SaveAccount(ctx, receiver); err != nil {
			return fmt.Errorf("failed to save receiver: %w", err)
		}

		tx.Status = models.REVERSED
		tx.ReversalReason = reason
		tx.UpdatedAt = time.Now()
		if err := uow.SaveTransaction(ctx, tx); err != nil {
			return fmt.Errorf("failed to save reversed transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, mapUnitErr(err)
	}

	e.publish(ctx, events.Message{
		Type: events.TypeTransferReversed,
		Payload: events.TransferPayload{
			TransactionID: tx.ID,
			SenderID:      tx.SenderID,
			ReceiverID:    tx.ReceiverID,
			AmountInCents: tx.AmountInCents,
			Reason:        tx.ReversalReason,
			OccurredAt:    tx.UpdatedAt,
		},
	})

	return tx, nil
}

// lockPair acquires exclusive locks on both accounts in ascending-ID order
// and hands back the pair in their caller-facing roles. Both accounts must
// still exist under lock; the pre-lock probe does not guarantee that.
func lockPair(ctx context.Context, uow storage.UnitOfWork, senderID, receiverID string) (sender, receiver *models.Account, err error) {
	ids := []string{senderID, receiverID}
	sort.Strings(ids)

	accounts, err := uow.LockAccounts(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to lock accounts: %w", err)
	}

	for i := range accounts {
		switch accounts[i].ID {
		case senderID:
			sender = &accounts[i]
		case receiverID:
			receiver = &accounts[i]
		}
	}
	if sender == nil || receiver == nil {
		return nil, nil, fail(ErrNotFound, "One or both accounts not found")
	}
	return sender, receiver, nil
}

// mapUnitErr translates store-level conflict signals into the engine's error
// taxonomy and passes everything else through untouched.
func mapUnitErr(err error) error {
	if errors.Is(err, storage.ErrLockConflict) {
		return fail(ErrConflict, "Transfer aborted by a lock conflict, try again")
	}
	return err
}

// publish emits a post-commit event. Failures are logged and never unwind
// the committed unit of work.
func (e *Engine) publish(ctx context.Context, msg events.Message) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(ctx, msg); err != nil {
		slog.Error("failed to publish transfer event", "type", msg.Type, "error", err)
	}
}
