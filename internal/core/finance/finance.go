// Package finance defines transactions and budgets.
package finance

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a transaction or budget does not exist.
var ErrNotFound = errors.New("finance record not found")

// TransactionKind separates money coming in from money going out.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Transaction represents a single income or expense record.
type Transaction struct {
	ID         string          `json:"id"`
	Kind       TransactionKind `json:"kind"`
	Amount     float64         `json:"amount"`
	Category   string          `json:"category"`
	Note       string          `json:"note,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// BudgetPeriod is the window a budget limit applies to.
type BudgetPeriod string

const (
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodWeekly  BudgetPeriod = "weekly"
)

// Bounds returns the start and end of the period containing now.
func (p BudgetPeriod) Bounds(now time.Time) (time.Time, time.Time) {
	switch p {
	case PeriodWeekly:
		// Week starts Monday.
		offset := (int(now.Weekday()) + 6) % 7
		start := time.Date(now.Year(), now.Month(), now.Day()-offset, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 0, 7)
	default:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0)
	}
}

// Budget caps spending for a category over a recurring period.
type Budget struct {
	ID       string       `json:"id"`
	Category string       `json:"category"`
	Limit    float64      `json:"limit"`
	Period   BudgetPeriod `json:"period"`
	Active   bool         `json:"active"`
}

// TransactionStore defines the interface for transaction persistence.
type TransactionStore interface {
	// Create persists a new transaction. The store populates ID and
	// OccurredAt if not already set.
	Create(ctx context.Context, t *Transaction) error

	// List returns all transactions ordered by occurred_at DESC.
	List(ctx context.Context) ([]Transaction, error)

	// ListRange returns transactions with occurred_at in [from, to),
	// ordered by occurred_at DESC.
	ListRange(ctx context.Context, from, to time.Time) ([]Transaction, error)
}

// BudgetStore defines the interface for budget persistence.
type BudgetStore interface {
	// Create persists a new budget. The store populates ID if not set and
	// defaults Period to monthly and Active to true.
	Create(ctx context.Context, b *Budget) error

	// ListActive returns active budgets ordered by category.
	ListActive(ctx context.Context) ([]Budget, error)
}
