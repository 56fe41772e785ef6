package reconcile

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AlexMyrosh/WealthTrack-sub001/internal/event"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/log"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/model"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/store"
)

// GoalReconciler keeps goal progress consistent. Transactions move goal
// progress by per-transaction deltas; goal edits and wallet deletions
// trigger recomputes. Transfers carry no category and never reach goals.
type GoalReconciler struct {
	log *log.Logger
}

// NewGoalReconciler creates a GoalReconciler.
func NewGoalReconciler(logger *log.Logger) *GoalReconciler {
	return &GoalReconciler{log: logger}
}

// TransactionCreated adds the transaction amount to every matching goal.
func (r *GoalReconciler) TransactionCreated(scope store.Store, e event.TransactionCreated) ([]event.Event, error) {
	return r.applyDelta(scope, e.CategoryID, e.Type, e.Date, e.Amount)
}

// TransactionDeleted subtracts the transaction amount from every matching
// goal.
func (r *GoalReconciler) TransactionDeleted(scope store.Store, e event.TransactionDeleted) ([]event.Event, error) {
	return r.applyDelta(scope, e.CategoryID, e.Type, e.Date, e.Amount.Neg())
}

// Created computes a new goal's progress from scratch.
func (r *GoalReconciler) Created(scope store.Store, e event.GoalCreated) ([]event.Event, error) {
	return nil, r.recompute(scope, e.ID)
}

// Updated recomputes a goal's progress against its possibly-changed
// filter criteria.
func (r *GoalReconciler) Updated(scope store.Store, e event.GoalUpdated) ([]event.Event, error) {
	return nil, r.recompute(scope, e.ID)
}

// WalletDeleted subtracts, from every goal, the matching transactions of
// the deleted wallet.
func (r *GoalReconciler) WalletDeleted(scope store.Store, e event.WalletDeleted) ([]event.Event, error) {
	goals, err := scope.Goals(true)
	if err != nil {
		return nil, err
	}
	txs, err := scope.Transactions()
	if err != nil {
		return nil, err
	}
	for _, g := range goals {
		for _, t := range txs {
			if t.WalletID == e.ID && g.Matches(t) {
				g.ActualMoneyAmount = g.ActualMoneyAmount.Sub(t.Amount)
			}
		}
	}
	return nil, nil
}

func (r *GoalReconciler) applyDelta(scope store.Store, categoryID uuid.UUID, t model.TransactionType, date time.Time, amount decimal.Decimal) ([]event.Event, error) {
	if categoryID == uuid.Nil {
		return nil, nil
	}
	goals, err := scope.Goals(true)
	if err != nil {
		return nil, err
	}
	probe := &model.Transaction{CategoryID: categoryID, Type: t, Date: date}
	for _, g := range goals {
		if g.Matches(probe) {
			g.ActualMoneyAmount = g.ActualMoneyAmount.Add(amount)
			r.log.Debug("goal progress adjusted", "goal", g.ID, "delta", amount, "actual", g.ActualMoneyAmount)
		}
	}
	return nil, nil
}

// recompute resets a goal's progress and sums every live transaction
// matching its criteria.
func (r *GoalReconciler) recompute(scope store.Store, goalID uuid.UUID) error {
	goals, err := scope.Goals(true)
	if err != nil {
		return err
	}
	var goal *model.Goal
	for _, g := range goals {
		if g.ID == goalID {
			goal = g
			break
		}
	}
	if goal == nil {
		return fmt.Errorf("goal %s: %w", goalID, store.ErrNotFound)
	}

	txs, err := scope.Transactions()
	if err != nil {
		return err
	}
	total := decimal.Zero
	for _, t := range txs {
		if goal.Matches(t) {
			total = total.Add(t.Amount)
		}
	}
	goal.ActualMoneyAmount = total
	r.log.Debug("goal progress recomputed", "goal", goal.ID, "actual", total)
	return nil
}
