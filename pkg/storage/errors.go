package storage

import "errors"

// ErrTransactionNotFound is returned when a transaction lookup finds no row.
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrLockConflict is returned when the underlying store signals a deadlock
// or lock-wait timeout while acquiring row locks. It is never retried by the
// store; the caller decides.
var ErrLockConflict = errors.New("lock conflict or timeout")
