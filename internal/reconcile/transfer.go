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

// TransferReconciler applies transfer mutations to the two wallets
// involved. Every mutation moves equal and opposite amounts, preserving
// the zero-sum invariant at each step.
type TransferReconciler struct {
	log *log.Logger
}

// NewTransferReconciler creates a TransferReconciler.
func NewTransferReconciler(logger *log.Logger) *TransferReconciler {
	return &TransferReconciler{log: logger}
}

// Created debits the source wallet and credits the target by the transfer
// amount. A zero amount is a no-op.
func (r *TransferReconciler) Created(scope store.Store, e event.TransferCreated) ([]event.Event, error) {
	return r.move(scope, e.SourceWalletID, e.TargetWalletID, e.Amount)
}

// Deleted reverses a deleted transfer: credits the source, debits the
// target.
func (r *TransferReconciler) Deleted(scope store.Store, e event.TransferDeleted) ([]event.Event, error) {
	return r.move(scope, e.TargetWalletID, e.SourceWalletID, e.Amount)
}

// move takes amount from one wallet and gives it to the other.
func (r *TransferReconciler) move(scope store.Store, fromID, toID uuid.UUID, amount decimal.Decimal) ([]event.Event, error) {
	if fromID == toID {
		return nil, fmt.Errorf("%w: transfer source and target are the same wallet %s", ErrInvalidArgument, fromID)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("%w: negative transfer amount %s", ErrInvalidArgument, amount)
	}
	if amount.IsZero() {
		return nil, nil
	}
	from, err := scope.WalletByID(fromID)
	if err != nil {
		return nil, err
	}
	to, err := scope.WalletByID(toID)
	if err != nil {
		return nil, err
	}
	fromBefore, toBefore := from.Balance, to.Balance
	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(amount)
	r.log.Debug("transfer applied", "from", from.ID, "to", to.ID, "amount", amount)

	out := balanceChanged(from, fromBefore)
	out = append(out, balanceChanged(to, toBefore)...)
	return out, nil
}

// Updated applies up to three independent cases in fixed order, each
// relative to the current source/target pair:
//
//  1. Amount changed: grow or shrink the existing transfer by the
//     difference (source down, target up).
//  2. Source wallet changed: restore the old source by the effective
//     amount, debit the new source; the new source becomes current.
//  3. Target wallet changed: symmetric with reversed signs.
//
// The effective amount is the new amount when changed, else the old one.
func (r *TransferReconciler) Updated(scope store.Store, e event.TransferUpdated) ([]event.Event, error) {
	amountChanged := event.DiffersAmount(e.Amount)
	sourceMoved := event.Differs(e.SourceWalletID)
	targetMoved := event.Differs(e.TargetWalletID)

	if !amountChanged && !sourceMoved && !targetMoved {
		return nil, nil
	}

	source, err := scope.WalletByID(e.SourceWalletID.Old)
	if err != nil {
		return nil, err
	}
	target, err := scope.WalletByID(e.TargetWalletID.Old)
	if err != nil {
		return nil, err
	}

	touched := []*model.Wallet{source}
	before := map[uuid.UUID]decimal.Decimal{source.ID: source.Balance}
	track := func(w *model.Wallet) {
		if _, seen := before[w.ID]; !seen {
			before[w.ID] = w.Balance
			touched = append(touched, w)
		}
	}
	track(target)

	effective := e.Amount.Effective()

	if amountChanged {
		diff := e.Amount.New.Sub(e.Amount.Old)
		source.Balance = source.Balance.Sub(diff)
		target.Balance = target.Balance.Add(diff)
	}

	if sourceMoved {
		source.Balance = source.Balance.Add(effective)

		next, err := scope.WalletByID(*e.SourceWalletID.New)
		if err != nil {
			return nil, err
		}
		track(next)
		next.Balance = next.Balance.Sub(effective)
		source = next
	}

	if targetMoved {
		target.Balance = target.Balance.Sub(effective)

		next, err := scope.WalletByID(*e.TargetWalletID.New)
		if err != nil {
			return nil, err
		}
		track(next)
		next.Balance = next.Balance.Add(effective)
		target = next
	}

	var out []event.Event
	for _, w := range touched {
		r.log.Debug("wallet balance reconciled", "wallet", w.ID, "balance", w.Balance)
		out = append(out, balanceChanged(w, before[w.ID])...)
	}
	return out, nil
}
