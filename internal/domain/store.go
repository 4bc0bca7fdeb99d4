package domain

// StoreRepository persists the whole ledger as one document.
type StoreRepository interface {
	// Load returns the persisted ledger, or the empty default when the
	// document is missing or unreadable. It never fails the caller.
	Load() *StoreData

	// Save writes the full ledger back. Called after every mutation.
	Save(data *StoreData) error

	// Reset deletes the persisted document.
	Reset() error
}
