package model

import "github.com/google/uuid"

// Category labels transactions for reporting and goal matching. Transfers
// between wallets carry no category and never match a goal.
type Category struct {
	ID   uuid.UUID
	Name string
}
