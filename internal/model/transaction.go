package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies the direction of a money flow.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single income or expense posted against a wallet.
// Amount is always positive; the type carries the sign.
type Transaction struct {
	ID          uuid.UUID
	WalletID    uuid.UUID
	CategoryID  uuid.UUID // uuid.Nil when uncategorized
	Type        TransactionType
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}
