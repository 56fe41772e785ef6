package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet is an account holding a balance in one currency. Balance is a
// derived figure: the signed sum of all live transactions applied to the
// wallet plus net transfers in and out. It is maintained incrementally by
// the reconciliation engine, never recomputed on read.
type Wallet struct {
	ID                     uuid.UUID
	BudgetID               uuid.UUID
	Name                   string
	Currency               string
	Balance                decimal.Decimal
	IsPartOfGeneralBalance bool
}
