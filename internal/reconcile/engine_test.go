package reconcile

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexMyrosh/WealthTrack-sub001/internal/event"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/model"
)

func TestEngine_TransactionCascadesToBudget(t *testing.T) {
	f := newFixture()
	b := f.budget("1000")
	w := f.wallet(b.ID, "100", true)
	groceries := uuid.New()
	g := f.goal(model.TypeIncome, day(2025, 1, 1), day(2025, 12, 31), groceries)
	engine := NewEngine(discard())

	err := engine.Apply(f.scope, event.TransactionCreated{
		ID:         uuid.New(),
		WalletID:   w.ID,
		CategoryID: groceries,
		Type:       model.TypeIncome,
		Amount:     dec("30"),
		Date:       day(2025, 6, 15),
	})
	require.NoError(t, err)

	assert.True(t, w.Balance.Equal(dec("130")), "wallet level")
	assert.True(t, b.OverallBalance.Equal(dec("1030")), "budget level via cascade")
	assert.True(t, g.ActualMoneyAmount.Equal(dec("30")), "goal level")
}

func TestEngine_ExcludedWalletDoesNotMoveBudget(t *testing.T) {
	f := newFixture()
	b := f.budget("1000")
	w := f.wallet(b.ID, "100", false)
	engine := NewEngine(discard())

	err := engine.Apply(f.scope, event.TransactionCreated{
		ID:       uuid.New(),
		WalletID: w.ID,
		Type:     model.TypeExpense,
		Amount:   dec("40"),
	})
	require.NoError(t, err)

	assert.True(t, w.Balance.Equal(dec("60")))
	assert.True(t, b.OverallBalance.Equal(dec("1000")))
}

func TestEngine_TransferCascadesAcrossBudgets(t *testing.T) {
	f := newFixture()
	b1 := f.budget("100")
	b2 := f.budget("20")
	a := f.wallet(b1.ID, "100", true)
	c := f.wallet(b2.ID, "20", true)
	engine := NewEngine(discard())

	err := engine.Apply(f.scope, event.TransferCreated{
		ID:             uuid.New(),
		SourceWalletID: a.ID,
		TargetWalletID: c.ID,
		Amount:         dec("40"),
	})
	require.NoError(t, err)

	assert.True(t, a.Balance.Equal(dec("60")))
	assert.True(t, c.Balance.Equal(dec("60")))
	assert.True(t, b1.OverallBalance.Equal(dec("60")))
	assert.True(t, b2.OverallBalance.Equal(dec("60")))
}

func TestEngine_NoOpUpdateCascadesNothing(t *testing.T) {
	f := newFixture()
	b := f.budget("1000")
	w := f.wallet(b.ID, "100", true)
	engine := NewEngine(discard())

	err := engine.Apply(f.scope, event.TransactionUpdated{
		ID:       uuid.New(),
		WalletID: event.Changed(w.ID, w.ID),
		Type:     event.Unchanged(model.TypeIncome),
		Amount:   event.Changed(dec("30"), dec("30")),
	})
	require.NoError(t, err)

	assert.True(t, w.Balance.Equal(dec("100")))
	assert.True(t, b.OverallBalance.Equal(dec("1000")))
}

func TestEngine_ErrorAbortsChain(t *testing.T) {
	// The balance reconciler runs before the goal reconciler on
	// transaction events; its failure must leave goal progress untouched.
	f := newFixture()
	groceries := uuid.New()
	g := f.goal(model.TypeExpense, day(2025, 1, 1), day(2025, 12, 31), groceries)
	engine := NewEngine(discard())

	err := engine.Apply(f.scope, event.TransactionCreated{
		ID:         uuid.New(),
		WalletID:   uuid.New(), // missing wallet
		CategoryID: groceries,
		Type:       model.TypeExpense,
		Amount:     dec("25"),
		Date:       day(2025, 6, 15),
	})
	require.Error(t, err)
	assert.True(t, g.ActualMoneyAmount.IsZero())
}

func TestEngine_WalletDeletionHitsBudgetAndGoals(t *testing.T) {
	f := newFixture()
	b := f.budget("1500")
	w := f.wallet(b.ID, "500", true)
	groceries := uuid.New()

	f.transaction(w.ID, groceries, model.TypeExpense, "25", day(2025, 6, 15))
	g := f.goal(model.TypeExpense, day(2025, 1, 1), day(2025, 12, 31), groceries)
	g.ActualMoneyAmount = dec("25")
	engine := NewEngine(discard())

	err := engine.Apply(f.scope, event.WalletDeleted{
		ID:                     w.ID,
		BudgetID:               b.ID,
		Balance:                dec("500"),
		IsPartOfGeneralBalance: true,
	})
	require.NoError(t, err)

	assert.True(t, b.OverallBalance.Equal(dec("1000")))
	assert.True(t, g.ActualMoneyAmount.IsZero())
}

// Sequence test: the wallet invariant holds across a series of mutations,
// matching a from-scratch recompute of the surviving transactions.
func TestEngine_WalletInvariantOverSequence(t *testing.T) {
	f := newFixture()
	b := f.budget("0")
	w := f.wallet(b.ID, "0", true)
	engine := NewEngine(discard())

	salary := event.TransactionCreated{ID: uuid.New(), WalletID: w.ID, Type: model.TypeIncome, Amount: dec("1000")}
	rent := event.TransactionCreated{ID: uuid.New(), WalletID: w.ID, Type: model.TypeExpense, Amount: dec("400")}
	require.NoError(t, engine.Apply(f.scope, salary))
	require.NoError(t, engine.Apply(f.scope, rent))
	require.True(t, w.Balance.Equal(dec("600")))

	// Rent goes up.
	require.NoError(t, engine.Apply(f.scope, event.TransactionUpdated{
		ID:       rent.ID,
		WalletID: event.Unchanged(w.ID),
		Type:     event.Unchanged(model.TypeExpense),
		Amount:   event.Changed(dec("400"), dec("450")),
	}))
	require.True(t, w.Balance.Equal(dec("550")))

	// Salary entry turns out to be an expense correction.
	require.NoError(t, engine.Apply(f.scope, event.TransactionUpdated{
		ID:       salary.ID,
		WalletID: event.Unchanged(w.ID),
		Type:     event.Changed(model.TypeIncome, model.TypeExpense),
		Amount:   event.Unchanged(dec("1000")),
	}))
	require.True(t, w.Balance.Equal(dec("-1450")))

	// Delete the correction.
	require.NoError(t, engine.Apply(f.scope, event.TransactionDeleted{
		ID:       salary.ID,
		WalletID: w.ID,
		Type:     model.TypeExpense,
		Amount:   dec("1000"),
	}))
	assert.True(t, w.Balance.Equal(dec("-450")), "live set is a single 450 expense")
	assert.True(t, b.OverallBalance.Equal(dec("-450")), "budget tracked every step")
}
