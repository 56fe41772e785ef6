// Package store defines the aggregate-store contract the reconciliation
// engine consumes. The engine reads live aggregate references, mutates them
// in place, and relies on the caller to persist; the store is the unit of
// work threaded through event dispatch.
package store

import (
	"errors"

	"github.com/google/uuid"

	"github.com/AlexMyrosh/WealthTrack-sub001/internal/model"
)

// ErrNotFound is returned when a referenced aggregate id does not exist.
var ErrNotFound = errors.New("not found")

// Store is the read/mutate surface the engine requires. Implementations
// return live references; mutating a returned aggregate mutates store
// state. Persistence commit and concurrency control across top-level
// operations are the caller's responsibility.
type Store interface {
	// WalletByID returns the wallet with the given id, or ErrNotFound.
	WalletByID(id uuid.UUID) (*model.Wallet, error)

	// BudgetByID returns the budget with the given id, or ErrNotFound.
	BudgetByID(id uuid.UUID) (*model.Budget, error)

	// Goals returns all goals. withCategories asks the implementation to
	// populate each goal's category set; stores that always hold it may
	// ignore the flag.
	Goals(withCategories bool) ([]*model.Goal, error)

	// Transactions returns all live transactions.
	Transactions() ([]*model.Transaction, error)
}
