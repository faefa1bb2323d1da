package ledger

import "errors"

// The five error kinds the engine can return. Callers branch on the kind
// with errors.Is; the message carried by the concrete error is the
// human-readable reason.
var (
	// ErrInvalidOperation covers self-transfers, non-positive amounts and
	// reversing a transaction that is not COMPLETED.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrNotFound covers missing accounts and missing transactions.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientFunds is returned when the sender's balance is below
	// the requested amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrForbidden is returned when a reversal is requested by an account
	// that is neither sender nor receiver.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict surfaces a deadlock or lock-wait timeout from the store.
	// The engine never retries; the caller decides.
	ErrConflict = errors.New("conflict or timeout")
)

// Error pairs one of the kinds above with a human-readable reason.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap lets errors.Is match against the kind.
func (e *Error) Unwrap() error { return e.Kind }

func fail(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}
