package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AlexMyrosh/WealthTrack-sub001/internal/model"
)

// Ledger directory layout: one CSV per aggregate type.
const (
	BudgetsFile      = "budgets.csv"
	WalletsFile      = "wallets.csv"
	CategoriesFile   = "categories.csv"
	GoalsFile        = "goals.csv"
	TransactionsFile = "transactions.csv"
)

// CSV headers, one per file.
const (
	BudgetsHeader      = "id,name,overall_balance"
	WalletsHeader      = "id,budget_id,name,currency,balance,is_part_of_general_balance"
	CategoriesHeader   = "id,name"
	GoalsHeader        = "id,name,type,start_date,end_date,planned,actual,category_ids"
	TransactionsHeader = "id,wallet_id,category_id,type,amount,date,description"
)

const dateFormat = "2006-01-02"

// Load reads a ledger directory into an in-memory store. A missing file is
// treated as an empty aggregate set.
func Load(dir string) (*Memory, error) {
	m := NewMemory()

	if err := loadFile(dir, BudgetsFile, 3, func(rec []string) error {
		b, err := unmarshalBudget(rec)
		if err != nil {
			return err
		}
		m.PutBudget(b)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadFile(dir, WalletsFile, 6, func(rec []string) error {
		w, err := unmarshalWallet(rec)
		if err != nil {
			return err
		}
		m.PutWallet(w)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadFile(dir, CategoriesFile, 2, func(rec []string) error {
		c, err := unmarshalCategory(rec)
		if err != nil {
			return err
		}
		m.PutCategory(c)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadFile(dir, GoalsFile, 8, func(rec []string) error {
		g, err := unmarshalGoal(rec)
		if err != nil {
			return err
		}
		m.PutGoal(g)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadFile(dir, TransactionsFile, 7, func(rec []string) error {
		t, err := unmarshalTransaction(rec)
		if err != nil {
			return err
		}
		m.PutTransaction(t)
		return nil
	}); err != nil {
		return nil, err
	}

	return m, nil
}

// Save writes the store back to a ledger directory, one CSV per aggregate
// type, headers included.
func Save(dir string, m *Memory) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	budgets := m.Budgets()
	if err := saveFile(dir, BudgetsFile, BudgetsHeader, len(budgets), func(i int) []string {
		return marshalBudget(budgets[i])
	}); err != nil {
		return err
	}
	wallets := m.Wallets()
	if err := saveFile(dir, WalletsFile, WalletsHeader, len(wallets), func(i int) []string {
		return marshalWallet(wallets[i])
	}); err != nil {
		return err
	}
	categories := m.Categories()
	if err := saveFile(dir, CategoriesFile, CategoriesHeader, len(categories), func(i int) []string {
		return marshalCategory(categories[i])
	}); err != nil {
		return err
	}
	goals, err := m.Goals(true)
	if err != nil {
		return err
	}
	if err := saveFile(dir, GoalsFile, GoalsHeader, len(goals), func(i int) []string {
		return marshalGoal(goals[i])
	}); err != nil {
		return err
	}
	txs, err := m.Transactions()
	if err != nil {
		return err
	}
	if err := saveFile(dir, TransactionsFile, TransactionsHeader, len(txs), func(i int) []string {
		return marshalTransaction(txs[i])
	}); err != nil {
		return err
	}
	return nil
}

func loadFile(dir, name string, fields int, put func([]string) error) error {
	f, err := os.Open(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	if err := readRows(f, fields, put); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return nil
}

func readRows(r io.Reader, fields int, put func([]string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields

	records, err := cr.ReadAll()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	// Skip header row.
	for i, rec := range records[1:] {
		if err := put(rec); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return nil
}

func saveFile(dir, name, header string, n int, row func(int) []string) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if err := cw.Write(strings.Split(header, ",")); err != nil {
		return fmt.Errorf("writing %s header: %w", name, err)
	}
	for i := 0; i < n; i++ {
		if err := cw.Write(row(i)); err != nil {
			return fmt.Errorf("writing %s row %d: %w", name, i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func marshalBudget(b *model.Budget) []string {
	return []string{b.ID.String(), b.Name, b.OverallBalance.String()}
}

func unmarshalBudget(rec []string) (*model.Budget, error) {
	id, err := uuid.Parse(rec[0])
	if err != nil {
		return nil, fmt.Errorf("parsing id %q: %w", rec[0], err)
	}
	balance, err := decimal.NewFromString(rec[2])
	if err != nil {
		return nil, fmt.Errorf("parsing overall_balance %q: %w", rec[2], err)
	}
	return &model.Budget{ID: id, Name: rec[1], OverallBalance: balance}, nil
}

func marshalWallet(w *model.Wallet) []string {
	return []string{
		w.ID.String(),
		w.BudgetID.String(),
		w.Name,
		w.Currency,
		w.Balance.String(),
		strconv.FormatBool(w.IsPartOfGeneralBalance),
	}
}

func unmarshalWallet(rec []string) (*model.Wallet, error) {
	id, err := uuid.Parse(rec[0])
	if err != nil {
		return nil, fmt.Errorf("parsing id %q: %w", rec[0], err)
	}
	budgetID, err := uuid.Parse(rec[1])
	if err != nil {
		return nil, fmt.Errorf("parsing budget_id %q: %w", rec[1], err)
	}
	balance, err := decimal.NewFromString(rec[4])
	if err != nil {
		return nil, fmt.Errorf("parsing balance %q: %w", rec[4], err)
	}
	included, err := strconv.ParseBool(rec[5])
	if err != nil {
		return nil, fmt.Errorf("parsing is_part_of_general_balance %q: %w", rec[5], err)
	}
	return &model.Wallet{
		ID:                     id,
		BudgetID:               budgetID,
		Name:                   rec[2],
		Currency:               rec[3],
		Balance:                balance,
		IsPartOfGeneralBalance: included,
	}, nil
}

func marshalCategory(c *model.Category) []string {
	return []string{c.ID.String(), c.Name}
}

func unmarshalCategory(rec []string) (*model.Category, error) {
	id, err := uuid.Parse(rec[0])
	if err != nil {
		return nil, fmt.Errorf("parsing id %q: %w", rec[0], err)
	}
	return &model.Category{ID: id, Name: rec[1]}, nil
}

func marshalGoal(g *model.Goal) []string {
	ids := make([]string, len(g.CategoryIDs))
	for i, c := range g.CategoryIDs {
		ids[i] = c.String()
	}
	return []string{
		g.ID.String(),
		g.Name,
		string(g.Type),
		g.StartDate.Format(dateFormat),
		g.EndDate.Format(dateFormat),
		g.PlannedMoneyAmount.String(),
		g.ActualMoneyAmount.String(),
		strings.Join(ids, ";"),
	}
}

func unmarshalGoal(rec []string) (*model.Goal, error) {
	id, err := uuid.Parse(rec[0])
	if err != nil {
		return nil, fmt.Errorf("parsing id %q: %w", rec[0], err)
	}
	start, err := time.Parse(dateFormat, rec[3])
	if err != nil {
		return nil, fmt.Errorf("parsing start_date %q: %w", rec[3], err)
	}
	end, err := time.Parse(dateFormat, rec[4])
	if err != nil {
		return nil, fmt.Errorf("parsing end_date %q: %w", rec[4], err)
	}
	planned, err := decimal.NewFromString(rec[5])
	if err != nil {
		return nil, fmt.Errorf("parsing planned %q: %w", rec[5], err)
	}
	actual, err := decimal.NewFromString(rec[6])
	if err != nil {
		return nil, fmt.Errorf("parsing actual %q: %w", rec[6], err)
	}
	var categoryIDs []uuid.UUID
	if rec[7] != "" {
		for _, s := range strings.Split(rec[7], ";") {
			cid, err := uuid.Parse(s)
			if err != nil {
				return nil, fmt.Errorf("parsing category id %q: %w", s, err)
			}
			categoryIDs = append(categoryIDs, cid)
		}
	}
	return &model.Goal{
		ID:                 id,
		Name:               rec[1],
		Type:               model.TransactionType(rec[2]),
		StartDate:          start,
		EndDate:            end,
		PlannedMoneyAmount: planned,
		ActualMoneyAmount:  actual,
		CategoryIDs:        categoryIDs,
	}, nil
}

func marshalTransaction(t *model.Transaction) []string {
	category := ""
	if t.CategoryID != uuid.Nil {
		category = t.CategoryID.String()
	}
	return []string{
		t.ID.String(),
		t.WalletID.String(),
		category,
		string(t.Type),
		t.Amount.String(),
		t.Date.Format(dateFormat),
		t.Description,
	}
}

func unmarshalTransaction(rec []string) (*model.Transaction, error) {
	id, err := uuid.Parse(rec[0])
	if err != nil {
		return nil, fmt.Errorf("parsing id %q: %w", rec[0], err)
	}
	walletID, err := uuid.Parse(rec[1])
	if err != nil {
		return nil, fmt.Errorf("parsing wallet_id %q: %w", rec[1], err)
	}
	categoryID := uuid.Nil
	if rec[2] != "" {
		categoryID, err = uuid.Parse(rec[2])
		if err != nil {
			return nil, fmt.Errorf("parsing category_id %q: %w", rec[2], err)
		}
	}
	amount, err := decimal.NewFromString(rec[4])
	if err != nil {
		return nil, fmt.Errorf("parsing amount %q: %w", rec[4], err)
	}
	date, err := time.Parse(dateFormat, rec[5])
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", rec[5], err)
	}
	return &model.Transaction{
		ID:          id,
		WalletID:    walletID,
		CategoryID:  categoryID,
		Type:        model.TransactionType(rec[3]),
		Amount:      amount,
		Date:        date,
		Description: rec[6],
	}, nil
}
