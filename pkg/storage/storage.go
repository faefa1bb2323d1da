package storage

// Store defines the root interface for the entire data layer. It composes
// all capabilities the transfer engine consumes. Components should depend on
// the more granular interfaces where they can.
type Store interface {
	AccountReader
	TransactionReader
	Atomizer
}
