package reconcile

import (
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/dispatch"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/event"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/log"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/store"
)

// Engine is the reconciliation entry point: it owns the dispatcher with
// every reconciler registered in a fixed order and applies events against
// a caller-supplied scope.
type Engine struct {
	dispatcher *dispatch.Dispatcher
	log        *log.Logger
}

// NewEngine builds the engine registry. Registration order is load-bearing
// for kinds with multiple handlers: balance reconciliation runs before
// goal reconciliation on transaction events, and budget reconciliation
// runs before goal reconciliation on wallet deletion.
func NewEngine(logger *log.Logger) *Engine {
	d := dispatch.New()

	transactions := NewTransactionReconciler(logger)
	transfers := NewTransferReconciler(logger)
	budgets := NewBudgetReconciler(logger)
	goals := NewGoalReconciler(logger)

	dispatch.On(d, transactions.Created)
	dispatch.On(d, transactions.Updated)
	dispatch.On(d, transactions.Deleted)

	dispatch.On(d, transfers.Created)
	dispatch.On(d, transfers.Updated)
	dispatch.On(d, transfers.Deleted)

	dispatch.On(d, budgets.Created)
	dispatch.On(d, budgets.Updated)
	dispatch.On(d, budgets.Deleted)
	dispatch.On(d, budgets.BalanceChanged)

	dispatch.On(d, goals.TransactionCreated)
	dispatch.On(d, goals.TransactionDeleted)
	dispatch.On(d, goals.Created)
	dispatch.On(d, goals.Updated)
	dispatch.On(d, goals.WalletDeleted)

	return &Engine{dispatcher: d, log: logger}
}

// Apply publishes one event through the registry against scope. Handlers
// run sequentially; the first failure aborts the remaining chain and is
// returned as-is, with prior mutations left in the scope.
func (e *Engine) Apply(scope store.Store, evt event.Event) error {
	e.log.Debug("applying event", "kind", evt.Kind())
	return e.dispatcher.Publish(scope, evt)
}
