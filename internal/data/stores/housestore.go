package stores

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/colonyops/pal/internal/core/house"
	"github.com/colonyops/pal/internal/data/db"
	"github.com/colonyops/pal/pkg/randid"
)

// HouseStore implements house.Store using SQLite.
type HouseStore struct {
	db *db.DB
}

var _ house.Store = (*HouseStore)(nil)

// NewHouseStore creates a new SQLite-backed house store.
func NewHouseStore(db *db.DB) *HouseStore {
	return &HouseStore{db: db}
}

// Create persists a new house. Utilities are stored as a JSON column.
func (s *HouseStore) Create(ctx context.Context, h *house.House) error {
	if h.ID == "" {
		h.ID = randid.Generate(8)
	}
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now()
	}

	var utilitiesJSON sql.NullString
	if len(h.Utilities) > 0 {
		data, err := json.Marshal(h.Utilities)
		if err != nil {
			return fmt.Errorf("marshal utilities: %w", err)
		}
		utilitiesJSON = sql.NullString{String: string(data), Valid: true}
	}

	_, err := s.db.Conn().ExecContext(ctx, `
		INSERT INTO houses (id, address, utilities, created_at)
		VALUES (?, ?, ?, ?)`,
		h.ID, h.Address, utilitiesJSON, h.CreatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("create house: %w", err)
	}

	return nil
}

// List returns all houses ordered by created_at.
func (s *HouseStore) List(ctx context.Context) ([]house.House, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT id, address, utilities, created_at
		FROM houses ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list houses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	houses := make([]house.House, 0)
	for rows.Next() {
		var (
			h             house.House
			utilitiesJSON sql.NullString
			createdAt     int64
		)
		if err := rows.Scan(&h.ID, &h.Address, &utilitiesJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("scan house: %w", err)
		}

		if utilitiesJSON.Valid {
			if err := json.Unmarshal([]byte(utilitiesJSON.String), &h.Utilities); err != nil {
				return nil, fmt.Errorf("unmarshal utilities: %w", err)
			}
		}
		h.CreatedAt = time.Unix(0, createdAt)
		houses = append(houses, h)
	}

	return houses, rows.Err()
}
