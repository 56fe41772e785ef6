package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexMyrosh/WealthTrack-sub001/internal/auditlog"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/config"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/event"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/eventlog"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/model"
	"github.com/AlexMyrosh/WealthTrack-sub001/internal/store"
)

// newTestLedger writes a minimal ledger directory with git snapshotting
// disabled so tests do not depend on a git binary.
func newTestLedger(t *testing.T, m *store.Memory) string {
	t.Helper()
	dir := t.TempDir()

	cfg := config.Default("Test Ledger")
	cfg.Git.AutoCommit = false
	require.NoError(t, config.Save(filepath.Join(dir, "wealthtrack.yaml"), cfg))
	require.NoError(t, store.Save(dir, m))
	return dir
}

func writeEvents(t *testing.T, dir string, events []event.Event) string {
	t.Helper()
	path := filepath.Join(dir, "events.jsonl")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, eventlog.Write(f, events))
	require.NoError(t, f.Close())
	return path
}

func TestRunReplay_AppliesEvents(t *testing.T) {
	budget := &model.Budget{ID: uuid.New(), Name: "Household", OverallBalance: decimal.NewFromInt(500)}
	wallet := &model.Wallet{
		ID:                     uuid.New(),
		BudgetID:               budget.ID,
		Name:                   "Checking",
		Currency:               "USD",
		Balance:                decimal.NewFromInt(500),
		IsPartOfGeneralBalance: true,
	}
	m := store.NewMemory()
	m.PutBudget(budget)
	m.PutWallet(wallet)
	dir := newTestLedger(t, m)

	events := writeEvents(t, dir, []event.Event{
		event.TransactionCreated{
			ID:       uuid.New(),
			WalletID: wallet.ID,
			Type:     model.TypeIncome,
			Amount:   decimal.NewFromInt(30),
			Date:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		event.TransactionCreated{
			ID:       uuid.New(),
			WalletID: wallet.ID,
			Type:     model.TypeExpense,
			Amount:   decimal.NewFromInt(20),
			Date:     time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
	})

	require.NoError(t, runReplay(dir, events))

	loaded, err := store.Load(dir)
	require.NoError(t, err)

	gotWallet, err := loaded.WalletByID(wallet.ID)
	require.NoError(t, err)
	assert.True(t, gotWallet.Balance.Equal(decimal.NewFromInt(510)))

	gotBudget, err := loaded.BudgetByID(budget.ID)
	require.NoError(t, err)
	assert.True(t, gotBudget.OverallBalance.Equal(decimal.NewFromInt(510)))

	txs, err := loaded.Transactions()
	require.NoError(t, err)
	assert.Len(t, txs, 2)

	entries, err := auditlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "transaction.created", entries[0].Kind)
	assert.Empty(t, entries[0].CommitHash)
}

func TestRunReplay_WalletDeletionRemovesRows(t *testing.T) {
	budget := &model.Budget{ID: uuid.New(), Name: "Household", OverallBalance: decimal.NewFromInt(800)}
	wallet := &model.Wallet{
		ID:                     uuid.New(),
		BudgetID:               budget.ID,
		Name:                   "Checking",
		Balance:                decimal.NewFromInt(800),
		IsPartOfGeneralBalance: true,
	}
	tx := &model.Transaction{
		ID:       uuid.New(),
		WalletID: wallet.ID,
		Type:     model.TypeExpense,
		Amount:   decimal.NewFromInt(25),
		Date:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}
	m := store.NewMemory()
	m.PutBudget(budget)
	m.PutWallet(wallet)
	m.PutTransaction(tx)
	dir := newTestLedger(t, m)

	events := writeEvents(t, dir, []event.Event{
		event.WalletDeleted{
			ID:                     wallet.ID,
			BudgetID:               budget.ID,
			Balance:                wallet.Balance,
			IsPartOfGeneralBalance: true,
		},
	})

	require.NoError(t, runReplay(dir, events))

	loaded, err := store.Load(dir)
	require.NoError(t, err)

	_, err = loaded.WalletByID(wallet.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	txs, err := loaded.Transactions()
	require.NoError(t, err)
	assert.Empty(t, txs)

	gotBudget, err := loaded.BudgetByID(budget.ID)
	require.NoError(t, err)
	assert.True(t, gotBudget.OverallBalance.IsZero())
}

func TestRunReplay_FailsOnUnknownWallet(t *testing.T) {
	dir := newTestLedger(t, store.NewMemory())

	events := writeEvents(t, dir, []event.Event{
		event.TransactionCreated{
			ID:       uuid.New(),
			WalletID: uuid.New(),
			Type:     model.TypeExpense,
			Amount:   decimal.NewFromInt(10),
			Date:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	})

	err := runReplay(dir, events)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "event 1 (transaction.created)")
	require.ErrorIs(t, err, store.ErrNotFound)

	// Failed replays leave no audit trail.
	entries, err := auditlog.Read(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunReplay_MissingConfig(t *testing.T) {
	dir := t.TempDir()
	err := runReplay(dir, filepath.Join(dir, "events.jsonl"))
	require.Error(t, err)
}
