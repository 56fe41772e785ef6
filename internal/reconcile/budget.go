package reconcile

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AlexMyrosh/WealthTrack-sub001/internal/event"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/log"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/store"
)

// BudgetReconciler rolls wallet-level changes up into the owning budget's
// overall balance. Only wallets with IsPartOfGeneralBalance count.
//
// Known limitation carried over from the write path: when a wallet's
// currency changes, the budget balance is not recalculated for
// exchange-rate effects.
type BudgetReconciler struct {
	log *log.Logger
}

// NewBudgetReconciler creates a BudgetReconciler.
func NewBudgetReconciler(logger *log.Logger) *BudgetReconciler {
	return &BudgetReconciler{log: logger}
}

// Created adds a new wallet's balance to its budget, if the wallet counts
// toward the general balance and holds a non-zero amount.
func (r *BudgetReconciler) Created(scope store.Store, e event.WalletCreated) ([]event.Event, error) {
	return r.absorb(scope, e.BudgetID, e.Balance, e.IsPartOfGeneralBalance)
}

// Deleted subtracts a removed wallet's balance from its budget.
func (r *BudgetReconciler) Deleted(scope store.Store, e event.WalletDeleted) ([]event.Event, error) {
	return r.absorb(scope, e.BudgetID, e.Balance.Neg(), e.IsPartOfGeneralBalance)
}

func (r *BudgetReconciler) absorb(scope store.Store, budgetID uuid.UUID, balance decimal.Decimal, included bool) ([]event.Event, error) {
	if !included || balance.IsZero() {
		return nil, nil
	}
	b, err := scope.BudgetByID(budgetID)
	if err != nil {
		return nil, err
	}
	b.OverallBalance = b.OverallBalance.Add(balance)
	r.log.Debug("budget balance adjusted", "budget", b.ID, "delta", balance, "overall", b.OverallBalance)
	return nil, nil
}

// Updated reconciles a direct wallet edit into budget balances.
func (r *BudgetReconciler) Updated(scope store.Store, e event.WalletUpdated) ([]event.Event, error) {
	return r.reconcile(scope, e.BudgetID, e.Balance, e.IsPartOfGeneralBalance)
}

// BalanceChanged reconciles a cascaded wallet balance change (from the
// transaction or transfer reconcilers) into budget balances.
func (r *BudgetReconciler) BalanceChanged(scope store.Store, e event.WalletBalanceChanged) ([]event.Event, error) {
	return r.reconcile(scope, e.BudgetID, e.Balance, e.IsPartOfGeneralBalance)
}

// reconcile applies the general update form. Up to three independent
// deltas, in fixed order, each relative to the current budget:
//
//  1. Budget reassigned: subtract the wallet's old balance from the old
//     budget if it was counted there; add it to the new budget under the
//     effective inclusion flag. The new budget becomes current. The flag
//     transition is fully absorbed here, so step 2 is skipped.
//  2. Inclusion flag flipped: add the old balance when switching to
//     included, subtract when switching to excluded.
//  3. Balance changed: add the signed difference to the current budget,
//     provided the wallet counts under its effective flag.
//
// An update touching none of the three fields is skipped entirely.
func (r *BudgetReconciler) reconcile(scope store.Store, budgetID event.Change[uuid.UUID], balance event.Change[decimal.Decimal], included event.Change[bool]) ([]event.Event, error) {
	budgetMoved := event.Differs(budgetID)
	inclusionFlipped := event.Differs(included)
	balanceMoved := event.DiffersAmount(balance)

	if !budgetMoved && !inclusionFlipped && !balanceMoved {
		return nil, nil
	}

	current, err := scope.BudgetByID(budgetID.Old)
	if err != nil {
		return nil, err
	}

	if budgetMoved {
		if included.Old {
			current.OverallBalance = current.OverallBalance.Sub(balance.Old)
		}
		next, err := scope.BudgetByID(*budgetID.New)
		if err != nil {
			return nil, err
		}
		if included.Effective() {
			next.OverallBalance = next.OverallBalance.Add(balance.Old)
		}
		current = next
	} else if inclusionFlipped {
		if *included.New {
			current.OverallBalance = current.OverallBalance.Add(balance.Old)
		} else {
			current.OverallBalance = current.OverallBalance.Sub(balance.Old)
		}
	}

	if balanceMoved && included.Effective() {
		current.OverallBalance = current.OverallBalance.Add(balance.New.Sub(balance.Old))
	}

	r.log.Debug("budget balance reconciled", "budget", current.ID, "overall", current.OverallBalance)
	return nil, nil
}
