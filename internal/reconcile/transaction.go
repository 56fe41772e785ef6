// Package reconcile implements the event-driven rules that keep derived
// aggregates (wallet balance, budget overall balance, goal progress)
// consistent under transaction, transfer, and wallet mutations. Balances
// are maintained by signed deltas, never recomputed on read; every handler
// mutates live aggregate references from the scope and leaves persistence
// to the caller.
package reconcile

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AlexMyrosh/WealthTrack-sub001/internal/event"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/log"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/model"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/store"
)

var two = decimal.NewFromInt(2)

// signedAmount returns amount with the sign its type implies for a wallet
// balance: income adds, expense subtracts.
func signedAmount(t model.TransactionType, amount decimal.Decimal) (decimal.Decimal, error) {
	switch t {
	case model.TypeIncome:
		return amount, nil
	case model.TypeExpense:
		return amount.Neg(), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: transaction type %q", ErrUnsupportedOperation, t)
	}
}

// balanceChanged builds the cascade event for a wallet whose balance moved
// from before to its current value. Budget id and inclusion flag ride along
// untouched. Returns nil when the balance did not materially change, so
// no-op updates cascade nothing.
func balanceChanged(w *model.Wallet, before decimal.Decimal) []event.Event {
	if w.Balance.Equal(before) {
		return nil
	}
	return []event.Event{event.WalletBalanceChanged{
		ID:                     w.ID,
		BudgetID:               event.Unchanged(w.BudgetID),
		Balance:                event.Changed(before, w.Balance),
		IsPartOfGeneralBalance: event.Unchanged(w.IsPartOfGeneralBalance),
	}}
}

// TransactionReconciler applies transaction mutations to wallet balances.
type TransactionReconciler struct {
	log *log.Logger
}

// NewTransactionReconciler creates a TransactionReconciler.
func NewTransactionReconciler(logger *log.Logger) *TransactionReconciler {
	return &TransactionReconciler{log: logger}
}

// Created applies a new transaction's signed amount to its wallet.
func (r *TransactionReconciler) Created(scope store.Store, e event.TransactionCreated) ([]event.Event, error) {
	if e.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: negative transaction amount %s", ErrInvalidArgument, e.Amount)
	}
	return r.applyDelta(scope, e.WalletID, e.Type, e.Amount)
}

// Deleted reverses a deleted transaction's effect on its wallet.
func (r *TransactionReconciler) Deleted(scope store.Store, e event.TransactionDeleted) ([]event.Event, error) {
	return r.applyDelta(scope, e.WalletID, e.Type, e.Amount.Neg())
}

func (r *TransactionReconciler) applyDelta(scope store.Store, walletID uuid.UUID, t model.TransactionType, amount decimal.Decimal) ([]event.Event, error) {
	w, err := scope.WalletByID(walletID)
	if err != nil {
		return nil, err
	}
	delta, err := signedAmount(t, amount)
	if err != nil {
		return nil, err
	}
	before := w.Balance
	w.Balance = w.Balance.Add(delta)
	r.log.Debug("wallet balance adjusted", "wallet", w.ID, "delta", delta, "balance", w.Balance)
	return balanceChanged(w, before), nil
}

// Updated applies up to three independent deltas for a changed transaction.
// The order is fixed: each step's delta is defined relative to the wallet
// as mutated by the previous step.
//
//  1. Wallet moved: reverse the old amount/type effect on the old wallet,
//     apply it on the new wallet; the new wallet becomes current.
//  2. Type changed: apply twice the old amount under the new type's sign,
//     reversing the old effect and applying the opposite in one step.
//  3. Amount changed: apply the signed difference under the effective type
//     (new if changed, else old).
//
// An update that changes none of wallet, type, amount, or category is
// skipped entirely and cascades nothing.
func (r *TransactionReconciler) Updated(scope store.Store, e event.TransactionUpdated) ([]event.Event, error) {
	walletMoved := event.Differs(e.WalletID)
	typeChanged := event.Differs(e.Type)
	amountChanged := event.DiffersAmount(e.Amount)
	categoryChanged := event.Differs(e.CategoryID)

	if !walletMoved && !typeChanged && !amountChanged && !categoryChanged {
		return nil, nil
	}

	current, err := scope.WalletByID(e.WalletID.Old)
	if err != nil {
		return nil, err
	}

	touched := []*model.Wallet{current}
	before := map[uuid.UUID]decimal.Decimal{current.ID: current.Balance}

	oldDelta, err := signedAmount(e.Type.Old, e.Amount.Old)
	if err != nil {
		return nil, err
	}

	if walletMoved {
		current.Balance = current.Balance.Sub(oldDelta)

		next, err := scope.WalletByID(*e.WalletID.New)
		if err != nil {
			return nil, err
		}
		if _, seen := before[next.ID]; !seen {
			before[next.ID] = next.Balance
			touched = append(touched, next)
		}
		next.Balance = next.Balance.Add(oldDelta)
		current = next
	}

	if typeChanged {
		delta, err := signedAmount(*e.Type.New, e.Amount.Old.Mul(two))
		if err != nil {
			return nil, err
		}
		current.Balance = current.Balance.Add(delta)
	}

	if amountChanged {
		diff := e.Amount.New.Sub(e.Amount.Old)
		delta, err := signedAmount(e.Type.Effective(), diff)
		if err != nil {
			return nil, err
		}
		current.Balance = current.Balance.Add(delta)
	}

	var out []event.Event
	for _, w := range touched {
		r.log.Debug("wallet balance reconciled", "wallet", w.ID, "balance", w.Balance)
		out = append(out, balanceChanged(w, before[w.ID])...)
	}
	return out, nil
}
