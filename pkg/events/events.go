package events

import "time"

// Type identifies the kind of event being published.
type Type string

const (
	TypeTransferCompleted Type = "transfer_completed"
	TypeTransferReversed  Type = "transfer_reversed"
)

// Message is the envelope published after a unit of work commits.
type Message struct {
	Type    Type `json:"type"`
	Payload any  `json:"payload"`
}

// TransferPayload describes a completed or reversed transfer.
type TransferPayload struct {
	TransactionID string    `json:"transaction_id"`
	SenderID      string    `json:"sender_id"`
	ReceiverID    string    `json:"receiver_id"`
	AmountInCents int64     `json:"amount_in_cents"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
