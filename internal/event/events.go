// Package event defines the domain events consumed by the reconciliation
// engine. Each event type carries an old/new pair (a Change) for every
// mutable field relevant to reconciliation; the payload shapes are the wire
// contract between the write path and the engine.
package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AlexMyrosh/WealthTrack-sub001/internal/model"
)

// Kind identifies an event type for dispatcher registration and for the
// event-log envelope.
type Kind string

const (
	KindTransactionCreated   Kind = "transaction.created"
	KindTransactionUpdated   Kind = "transaction.updated"
	KindTransactionDeleted   Kind = "transaction.deleted"
	KindTransferCreated      Kind = "transfer.created"
	KindTransferUpdated      Kind = "transfer.updated"
	KindTransferDeleted      Kind = "transfer.deleted"
	KindWalletCreated        Kind = "wallet.created"
	KindWalletUpdated        Kind = "wallet.updated"
	KindWalletDeleted        Kind = "wallet.deleted"
	KindWalletBalanceChanged Kind = "wallet.balance_changed"
	KindGoalCreated          Kind = "goal.created"
	KindGoalUpdated          Kind = "goal.updated"
)

// Event is a domain event the dispatcher can route.
type Event interface {
	Kind() Kind
}

// TransactionCreated announces a new transaction. Fields are the snapshot
// at creation time.
type TransactionCreated struct {
	ID         uuid.UUID             `json:"id"`
	WalletID   uuid.UUID             `json:"wallet_id"`
	CategoryID uuid.UUID             `json:"category_id,omitempty"` // uuid.Nil when uncategorized
	Type       model.TransactionType `json:"type"`
	Amount     decimal.Decimal       `json:"amount"`
	Date       time.Time             `json:"date"`
}

func (TransactionCreated) Kind() Kind { return KindTransactionCreated }

// TransactionUpdated announces field-level changes to an existing
// transaction. Untouched fields carry only their old value.
type TransactionUpdated struct {
	ID         uuid.UUID                     `json:"id"`
	WalletID   Change[uuid.UUID]             `json:"wallet_id"`
	CategoryID Change[uuid.UUID]             `json:"category_id"`
	Type       Change[model.TransactionType] `json:"type"`
	Amount     Change[decimal.Decimal]       `json:"amount"`
	Date       Change[time.Time]             `json:"date"`
}

func (TransactionUpdated) Kind() Kind { return KindTransactionUpdated }

// TransactionDeleted announces removal of a transaction. Fields are the
// snapshot at deletion time, needed to reverse its contribution.
type TransactionDeleted struct {
	ID         uuid.UUID             `json:"id"`
	WalletID   uuid.UUID             `json:"wallet_id"`
	CategoryID uuid.UUID             `json:"category_id,omitempty"`
	Type       model.TransactionType `json:"type"`
	Amount     decimal.Decimal       `json:"amount"`
	Date       time.Time             `json:"date"`
}

func (TransactionDeleted) Kind() Kind { return KindTransactionDeleted }

// TransferCreated announces a new transfer between two wallets.
type TransferCreated struct {
	ID             uuid.UUID       `json:"id"`
	SourceWalletID uuid.UUID       `json:"source_wallet_id"`
	TargetWalletID uuid.UUID       `json:"target_wallet_id"`
	Amount         decimal.Decimal `json:"amount"`
}

func (TransferCreated) Kind() Kind { return KindTransferCreated }

// TransferUpdated announces field-level changes to an existing transfer.
type TransferUpdated struct {
	ID             uuid.UUID               `json:"id"`
	SourceWalletID Change[uuid.UUID]       `json:"source_wallet_id"`
	TargetWalletID Change[uuid.UUID]       `json:"target_wallet_id"`
	Amount         Change[decimal.Decimal] `json:"amount"`
}

func (TransferUpdated) Kind() Kind { return KindTransferUpdated }

// TransferDeleted announces removal of a transfer.
type TransferDeleted struct {
	ID             uuid.UUID       `json:"id"`
	SourceWalletID uuid.UUID       `json:"source_wallet_id"`
	TargetWalletID uuid.UUID       `json:"target_wallet_id"`
	Amount         decimal.Decimal `json:"amount"`
}

func (TransferDeleted) Kind() Kind { return KindTransferDeleted }

// WalletCreated announces a new wallet. Fields are the snapshot at
// creation time.
type WalletCreated struct {
	ID                     uuid.UUID       `json:"id"`
	BudgetID               uuid.UUID       `json:"budget_id"`
	Name                   string          `json:"name"`
	Currency               string          `json:"currency"`
	Balance                decimal.Decimal `json:"balance"`
	IsPartOfGeneralBalance bool            `json:"is_part_of_general_balance"`
}

func (WalletCreated) Kind() Kind { return KindWalletCreated }

// WalletUpdated announces field-level changes to an existing wallet made
// directly by the write path (as opposed to cascaded balance changes).
type WalletUpdated struct {
	ID                     uuid.UUID               `json:"id"`
	BudgetID               Change[uuid.UUID]       `json:"budget_id"`
	Balance                Change[decimal.Decimal] `json:"balance"`
	IsPartOfGeneralBalance Change[bool]            `json:"is_part_of_general_balance"`
}

func (WalletUpdated) Kind() Kind { return KindWalletUpdated }

// WalletDeleted announces removal of a wallet. Fields are the snapshot at
// deletion time.
type WalletDeleted struct {
	ID                     uuid.UUID       `json:"id"`
	BudgetID               uuid.UUID       `json:"budget_id"`
	Balance                decimal.Decimal `json:"balance"`
	IsPartOfGeneralBalance bool            `json:"is_part_of_general_balance"`
}

func (WalletDeleted) Kind() Kind { return KindWalletDeleted }

// WalletBalanceChanged is cascaded by the transaction and transfer
// reconcilers after they move a wallet's balance. Budget id and inclusion
// flag ride along untouched so the budget reconciler can apply its general
// update form.
type WalletBalanceChanged struct {
	ID                     uuid.UUID               `json:"id"`
	BudgetID               Change[uuid.UUID]       `json:"budget_id"`
	Balance                Change[decimal.Decimal] `json:"balance"`
	IsPartOfGeneralBalance Change[bool]            `json:"is_part_of_general_balance"`
}

func (WalletBalanceChanged) Kind() Kind { return KindWalletBalanceChanged }

// GoalCreated announces a new goal; its progress is computed from scratch.
type GoalCreated struct {
	ID uuid.UUID `json:"id"`
}

func (GoalCreated) Kind() Kind { return KindGoalCreated }

// GoalUpdated announces that a goal's filter criteria may have changed;
// its progress is recomputed from scratch.
type GoalUpdated struct {
	ID uuid.UUID `json:"id"`
}

func (GoalUpdated) Kind() Kind { return KindGoalUpdated }
