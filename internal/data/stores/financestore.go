package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/pal/internal/core/finance"
	"github.com/colonyops/pal/internal/data/db"
	"github.com/colonyops/pal/pkg/randid"
)

// TransactionStore implements finance.TransactionStore using SQLite.
type TransactionStore struct {
	db *db.DB
}

var _ finance.TransactionStore = (*TransactionStore)(nil)

// NewTransactionStore creates a new SQLite-backed transaction store.
func NewTransactionStore(db *db.DB) *TransactionStore {
	return &TransactionStore{db: db}
}

// Create persists a new transaction.
func (s *TransactionStore) Create(ctx context.Context, t *finance.Transaction) error {
	if t.ID == "" {
		t.ID = randid.Generate(8)
	}
	if t.OccurredAt.IsZero() {
		t.OccurredAt = time.Now()
	}

	_, err := s.db.Conn().ExecContext(ctx, `
		INSERT INTO transactions (id, kind, amount, category, note, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, string(t.Kind), t.Amount, t.Category, t.Note, t.OccurredAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}

	return nil
}

// List returns all transactions ordered by occurred_at DESC.
func (s *TransactionStore) List(ctx context.Context) ([]finance.Transaction, error) {
	return s.query(ctx, `
		SELECT id, kind, amount, category, note, occurred_at
		FROM transactions ORDER BY occurred_at DESC`)
}

// ListRange returns transactions with occurred_at in [from, to).
func (s *TransactionStore) ListRange(ctx context.Context, from, to time.Time) ([]finance.Transaction, error) {
	return s.query(ctx, `
		SELECT id, kind, amount, category, note, occurred_at
		FROM transactions
		WHERE occurred_at >= ? AND occurred_at < ?
		ORDER BY occurred_at DESC`,
		from.UnixNano(), to.UnixNano())
}

func (s *TransactionStore) query(ctx context.Context, query string, args ...any) ([]finance.Transaction, error) {
	rows, err := s.db.Conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	txns := make([]finance.Transaction, 0)
	for rows.Next() {
		var (
			t          finance.Transaction
			kind       string
			occurredAt int64
		)
		if err := rows.Scan(&t.ID, &kind, &t.Amount, &t.Category, &t.Note, &occurredAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Kind = finance.TransactionKind(kind)
		t.OccurredAt = time.Unix(0, occurredAt)
		txns = append(txns, t)
	}

	return txns, rows.Err()
}

// BudgetStore implements finance.BudgetStore using SQLite.
type BudgetStore struct {
	db *db.DB
}

var _ finance.BudgetStore = (*BudgetStore)(nil)

// NewBudgetStore creates a new SQLite-backed budget store.
func NewBudgetStore(db *db.DB) *BudgetStore {
	return &BudgetStore{db: db}
}

// Create persists a new budget.
func (s *BudgetStore) Create(ctx context.Context, b *finance.Budget) error {
	if b.ID == "" {
		b.ID = randid.Generate(8)
	}
	if b.Period == "" {
		b.Period = finance.PeriodMonthly
	}

	_, err := s.db.Conn().ExecContext(ctx, `
		INSERT INTO budgets (id, category, limit_amount, period, active)
		VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.Category, b.Limit, string(b.Period), b.Active,
	)
	if err != nil {
		return fmt.Errorf("create budget: %w", err)
	}

	return nil
}

// ListActive returns active budgets ordered by category.
func (s *BudgetStore) ListActive(ctx context.Context) ([]finance.Budget, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT id, category, limit_amount, period, active
		FROM budgets WHERE active = 1 ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	budgets := make([]finance.Budget, 0)
	for rows.Next() {
		var (
			b      finance.Budget
			period string
		)
		if err := rows.Scan(&b.ID, &b.Category, &b.Limit, &period, &b.Active); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		b.Period = finance.BudgetPeriod(period)
		budgets = append(budgets, b)
	}

	return budgets, rows.Err()
}
