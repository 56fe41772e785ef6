package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGoal_Matches(t *testing.T) {
	groceries := uuid.New()
	goal := &Goal{
		ID:          uuid.New(),
		Type:        TypeExpense,
		StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		CategoryIDs: []uuid.UUID{groceries},
	}

	base := Transaction{
		ID:         uuid.New(),
		CategoryID: groceries,
		Type:       TypeExpense,
		Amount:     decimal.NewFromInt(25),
		Date:       time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name   string
		mutate func(*Transaction)
		want   bool
	}{
		{"matching", func(*Transaction) {}, true},
		{"uncategorized", func(tx *Transaction) { tx.CategoryID = uuid.Nil }, false},
		{"other category", func(tx *Transaction) { tx.CategoryID = uuid.New() }, false},
		{"wrong type", func(tx *Transaction) { tx.Type = TypeIncome }, false},
		{"before period", func(tx *Transaction) { tx.Date = goal.StartDate.AddDate(0, 0, -1) }, false},
		{"after period", func(tx *Transaction) { tx.Date = goal.EndDate.AddDate(0, 0, 1) }, false},
		{"on start date", func(tx *Transaction) { tx.Date = goal.StartDate }, true},
		{"on end date", func(tx *Transaction) { tx.Date = goal.EndDate }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := base
			tt.mutate(&tx)
			assert.Equal(t, tt.want, goal.Matches(&tx))
		})
	}
}

func TestGoal_HasCategory(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	goal := &Goal{CategoryIDs: []uuid.UUID{a, b}}

	assert.True(t, goal.HasCategory(a))
	assert.True(t, goal.HasCategory(b))
	assert.False(t, goal.HasCategory(uuid.New()))
	assert.False(t, (&Goal{}).HasCategory(a))
}

func TestTransactionType_Valid(t *testing.T) {
	assert.True(t, TypeIncome.Valid())
	assert.True(t, TypeExpense.Valid())
	assert.False(t, TransactionType("transfer").Valid())
	assert.False(t, TransactionType("").Valid())
}
