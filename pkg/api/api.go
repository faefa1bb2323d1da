// Package api holds the request and response shapes of the HTTP surface.
// Request validation beyond basic decoding is owned by the callers of the
// service, so these types stay deliberately thin.
package api

import "time"

// TransactionStatus mirrors the domain status values on the wire.
type TransactionStatus string

// NewTransfer is the request body for POST /transfers.
type NewTransfer struct {
	SenderID      string `json:"sender_id"`
	ReceiverID    string `json:"receiver_id"`
	AmountInCents int64  `json:"amount_in_cents"`
	Description   string `json:"description,omitempty"`
}

// ReverseTransfer is the request body for POST /transfers/{id}/reverse.
// RequesterID is the already-authenticated account on whose behalf the API
// layer is acting.
type ReverseTransfer struct {
	RequesterID string `json:"requester_id"`
	Reason      string `json:"reason,omitempty"`
}

// Transaction is the wire form of a ledger transaction.
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

// AccountSummary is the identity slice of a participant.
type AccountSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TransferView is a transaction denormalized with both participants.
type TransferView struct {
	Transaction
	Sender   AccountSummary `json:"sender"`
	Receiver AccountSummary `json:"receiver"`
}
