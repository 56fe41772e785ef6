package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal tracks progress toward a target amount over an inclusive date range.
// ActualMoneyAmount equals the sum of amounts of live transactions whose
// category belongs to the goal's category set, whose type matches the
// goal's type, and whose date falls within [StartDate, EndDate].
type Goal struct {
	ID                 uuid.UUID
	Name               string
	Type               TransactionType
	StartDate          time.Time
	EndDate            time.Time
	PlannedMoneyAmount decimal.Decimal
	ActualMoneyAmount  decimal.Decimal
	CategoryIDs        []uuid.UUID
}

// HasCategory reports whether id belongs to the goal's category set.
func (g *Goal) HasCategory(id uuid.UUID) bool {
	for _, c := range g.CategoryIDs {
		if c == id {
			return true
		}
	}
	return false
}

// InPeriod reports whether d falls within [StartDate, EndDate], inclusive
// on both ends.
func (g *Goal) InPeriod(d time.Time) bool {
	return !d.Before(g.StartDate) && !d.After(g.EndDate)
}

// Matches reports whether t counts toward the goal: categorized with one
// of the goal's categories, same flow type, dated inside the period.
func (g *Goal) Matches(t *Transaction) bool {
	return t.CategoryID != uuid.Nil &&
		g.HasCategory(t.CategoryID) &&
		g.Type == t.Type &&
		g.InPeriod(t.Date)
}
