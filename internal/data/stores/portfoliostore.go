package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/colonyops/pal/internal/core/portfolio"
	"github.com/colonyops/pal/internal/data/db"
	"github.com/colonyops/pal/pkg/randid"
)

// PortfolioStore implements portfolio.Store using SQLite.
type PortfolioStore struct {
	db *db.DB
}

var _ portfolio.Store = (*PortfolioStore)(nil)

// NewPortfolioStore creates a new SQLite-backed holding store.
func NewPortfolioStore(db *db.DB) *PortfolioStore {
	return &PortfolioStore{db: db}
}

// Create persists a new holding.
func (s *PortfolioStore) Create(ctx context.Context, h *portfolio.Holding) error {
	if h.ID == "" {
		h.ID = randid.Generate(8)
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}

	_, err := s.db.Conn().ExecContext(ctx, `
		INSERT INTO stock_holdings (id, symbol, quantity, avg_cost, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		h.ID, h.Symbol, h.Quantity, h.AvgCost, h.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("create holding: %w", err)
	}

	return nil
}

// List returns all holdings ordered by symbol.
func (s *PortfolioStore) List(ctx context.Context) ([]portfolio.Holding, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT id, symbol, quantity, avg_cost, created_at
		FROM stock_holdings ORDER BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	holdings := make([]portfolio.Holding, 0)
	for rows.Next() {
		var (
			h         portfolio.Holding
			createdAt int64
		)
		if err := rows.Scan(&h.ID, &h.Symbol, &h.Quantity, &h.AvgCost, &createdAt); err != nil {
			return nil, fmt.Errorf("scan holding: %w", err)
		}
		h.CreatedAt = time.Unix(0, createdAt)
		holdings = append(holdings, h)
	}

	return holdings, rows.Err()
}
