package reconcile

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AlexMyrosh/WealthTrack-sub001/internal/log"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/model"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/store"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// fixture is an in-memory scope with builder helpers so tests read as a
// scenario setup.
type fixture struct {
	scope *store.Memory
}

func newFixture() *fixture {
	return &fixture{scope: store.NewMemory()}
}

func (f *fixture) budget(balance string) *model.Budget {
	b := &model.Budget{ID: uuid.New(), Name: "budget", OverallBalance: dec(balance)}
	f.scope.PutBudget(b)
	return b
}

func (f *fixture) wallet(budgetID uuid.UUID, balance string, included bool) *model.Wallet {
	w := &model.Wallet{
		ID:                     uuid.New(),
		BudgetID:               budgetID,
		Name:                   "wallet",
		Currency:               "USD",
		Balance:                dec(balance),
		IsPartOfGeneralBalance: included,
	}
	f.scope.PutWallet(w)
	return w
}

func (f *fixture) goal(t model.TransactionType, start, end time.Time, categories ...uuid.UUID) *model.Goal {
	g := &model.Goal{
		ID:          uuid.New(),
		Name:        "goal",
		Type:        t,
		StartDate:   start,
		EndDate:     end,
		CategoryIDs: categories,
	}
	f.scope.PutGoal(g)
	return g
}

func (f *fixture) transaction(walletID, categoryID uuid.UUID, t model.TransactionType, amount string, date time.Time) *model.Transaction {
	tx := &model.Transaction{
		ID:         uuid.New(),
		WalletID:   walletID,
		CategoryID: categoryID,
		Type:       t,
		Amount:     dec(amount),
		Date:       date,
	}
	f.scope.PutTransaction(tx)
	return tx
}

func discard() *log.Logger {
	return log.Discard()
}
