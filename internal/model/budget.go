package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget groups wallets whose balances roll up into one overall figure.
// OverallBalance equals the sum of Balance over the budget's wallets with
// IsPartOfGeneralBalance set, maintained incrementally.
type Budget struct {
	ID             uuid.UUID
	Name           string
	OverallBalance decimal.Decimal
}
