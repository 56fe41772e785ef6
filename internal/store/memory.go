package store

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/AlexMyrosh/WealthTrack-sub001/internal/model"
)

// Memory is an in-memory Store backing the CLI and tests. It holds every
// aggregate directly; Goals and Transactions return stable, id-sorted
// slices so replay output is deterministic.
type Memory struct {
	wallets      map[uuid.UUID]*model.Wallet
	budgets      map[uuid.UUID]*model.Budget
	categories   map[uuid.UUID]*model.Category
	goals        map[uuid.UUID]*model.Goal
	transactions map[uuid.UUID]*model.Transaction
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		wallets:      make(map[uuid.UUID]*model.Wallet),
		budgets:      make(map[uuid.UUID]*model.Budget),
		categories:   make(map[uuid.UUID]*model.Category),
		goals:        make(map[uuid.UUID]*model.Goal),
		transactions: make(map[uuid.UUID]*model.Transaction),
	}
}

// WalletByID returns the wallet with the given id, or ErrNotFound.
func (m *Memory) WalletByID(id uuid.UUID) (*model.Wallet, error) {
	w, ok := m.wallets[id]
	if !ok {
		return nil, fmt.Errorf("wallet %s: %w", id, ErrNotFound)
	}
	return w, nil
}

// BudgetByID returns the budget with the given id, or ErrNotFound.
func (m *Memory) BudgetByID(id uuid.UUID) (*model.Budget, error) {
	b, ok := m.budgets[id]
	if !ok {
		return nil, fmt.Errorf("budget %s: %w", id, ErrNotFound)
	}
	return b, nil
}

// Goals returns all goals sorted by id. Category sets are always held in
// memory, so withCategories is ignored.
func (m *Memory) Goals(_ bool) ([]*model.Goal, error) {
	goals := make([]*model.Goal, 0, len(m.goals))
	for _, g := range m.goals {
		goals = append(goals, g)
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].ID.String() < goals[j].ID.String()
	})
	return goals, nil
}

// TransactionByID returns the transaction with the given id, or
// ErrNotFound.
func (m *Memory) TransactionByID(id uuid.UUID) (*model.Transaction, error) {
	t, ok := m.transactions[id]
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
	}
	return t, nil
}

// Transactions returns all live transactions sorted by id.
func (m *Memory) Transactions() ([]*model.Transaction, error) {
	txs := make([]*model.Transaction, 0, len(m.transactions))
	for _, t := range m.transactions {
		txs = append(txs, t)
	}
	sort.Slice(txs, func(i, j int) bool {
		return txs[i].ID.String() < txs[j].ID.String()
	})
	return txs, nil
}

// PutWallet adds or replaces a wallet.
func (m *Memory) PutWallet(w *model.Wallet) { m.wallets[w.ID] = w }

// PutBudget adds or replaces a budget.
func (m *Memory) PutBudget(b *model.Budget) { m.budgets[b.ID] = b }

// PutCategory adds or replaces a category.
func (m *Memory) PutCategory(c *model.Category) { m.categories[c.ID] = c }

// PutGoal adds or replaces a goal.
func (m *Memory) PutGoal(g *model.Goal) { m.goals[g.ID] = g }

// PutTransaction adds or replaces a transaction.
func (m *Memory) PutTransaction(t *model.Transaction) { m.transactions[t.ID] = t }

// DeleteWallet removes a wallet by id.
func (m *Memory) DeleteWallet(id uuid.UUID) { delete(m.wallets, id) }

// DeleteTransaction removes a transaction by id.
func (m *Memory) DeleteTransaction(id uuid.UUID) { delete(m.transactions, id) }

// Wallets returns all wallets sorted by id.
func (m *Memory) Wallets() []*model.Wallet {
	ws := make([]*model.Wallet, 0, len(m.wallets))
	for _, w := range m.wallets {
		ws = append(ws, w)
	}
	sort.Slice(ws, func(i, j int) bool {
		return ws[i].ID.String() < ws[j].ID.String()
	})
	return ws
}

// Budgets returns all budgets sorted by id.
func (m *Memory) Budgets() []*model.Budget {
	bs := make([]*model.Budget, 0, len(m.budgets))
	for _, b := range m.budgets {
		bs = append(bs, b)
	}
	sort.Slice(bs, func(i, j int) bool {
		return bs[i].ID.String() < bs[j].ID.String()
	})
	return bs
}

// Categories returns all categories sorted by id.
func (m *Memory) Categories() []*model.Category {
	cs := make([]*model.Category, 0, len(m.categories))
	for _, c := range m.categories {
		cs = append(cs, c)
	}
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].ID.String() < cs[j].ID.String()
	})
	return cs
}
