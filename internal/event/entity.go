package event

import "github.com/google/uuid"

// EntityID returns the id of the entity an event names, for audit
// trails. Unknown event types yield uuid.Nil.
func EntityID(e Event) uuid.UUID {
	switch v := e.(type) {
	case TransactionCreated:
		return v.ID
	case TransactionUpdated:
		return v.ID
	case TransactionDeleted:
		return v.ID
	case TransferCreated:
		return v.ID
	case TransferUpdated:
		return v.ID
	case TransferDeleted:
		return v.ID
	case WalletCreated:
		return v.ID
	case WalletUpdated:
		return v.ID
	case WalletDeleted:
		return v.ID
	case WalletBalanceChanged:
		return v.ID
	case GoalCreated:
		return v.ID
	case GoalUpdated:
		return v.ID
	default:
		return uuid.Nil
	}
}
