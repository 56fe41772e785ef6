package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer moves an amount between two wallets: the source loses Amount,
// the target gains it. Transfers touch wallet balances only; they never
// contribute to budget deltas directly and are excluded from goal matching.
type Transfer struct {
	ID             uuid.UUID
	SourceWalletID uuid.UUID
	TargetWalletID uuid.UUID
	Amount         decimal.Decimal
	Date           time.Time
	Description    string
}
