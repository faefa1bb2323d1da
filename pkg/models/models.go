package models

import (
	"time"
)

// TransactionStatus defines the possible states of a ledger transaction.
type TransactionStatus string

const (
	// PENDING exists only inside the unit of work that creates the
	// transaction; it is promoted to COMPLETED before the unit commits and
	// is never durable.
	PENDING   TransactionStatus = "PENDING"
	COMPLETED TransactionStatus = "COMPLETED"
	REVERSED  TransactionStatus = "REVERSED"
)

// Account holds an account holder's identity and balance. Accounts are
// created and managed elsewhere; the engine only reads them and mutates
// BalanceInCents under an exclusive row lock.
type Account struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	BalanceInCents int64  `json:"balance_in_cents"`
}

// Transaction is the immutable audit record of one value movement between
// two accounts.
type Transaction struct {
	ID             string            `json:"id"`
	SenderID       string            `json:"sender_id"`
	ReceiverID     string            `json:"receiver_id"`
	AmountInCents  int64             `json:"amount_in_cents"`
	Description    string            `json:"description,omitempty"`
	Status         TransactionStatus `json:"status"`
	ReversalReason string            `json:"reversal_reason,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// AccountSummary is the identity slice of an account used by the read
// projections.
type AccountSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TransferView is a transaction denormalized with the identity of both
// participants.
type TransferView struct {
	Transaction
	Sender   AccountSummary `json:"sender"`
	Receiver AccountSummary `json:"receiver"`
}
