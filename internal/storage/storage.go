package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlenaMolokova/cardvalidator/internal/card"
	"github.com/AlenaMolokova/cardvalidator/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	createCheckQuery = `INSERT INTO card_checks (id, network, last_four, valid, checked_at)
VALUES ($1, $2, $3, $4, $5)`

	networkStatsQuery = `SELECT network, COUNT(*), COUNT(*) FILTER (WHERE valid)
FROM card_checks
GROUP BY network
ORDER BY network`
)

// DBTX is the part of *pgxpool.Pool the storage uses.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type Storage struct {
	db DBTX
}

func NewStorage(db DBTX) (*Storage, error) {
	if db == nil {
		return nil, errors.New("database pool is nil")
	}
	return &Storage{db: db}, nil
}

func (s *Storage) CreateCheck(ctx context.Context, record models.CheckRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if _, err := s.db.Exec(ctx, createCheckQuery,
		record.ID, record.Network, record.LastFour, record.Valid, record.CheckedAt); err != nil {
		return fmt.Errorf("failed to insert card check: %w", err)
	}
	return nil
}

func (s *Storage) GetNetworkStats(ctx context.Context) ([]models.NetworkStats, error) {
	rows, err := s.db.Query(ctx, networkStatsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query network stats: %w", err)
	}
	defer rows.Close()

	stats := make([]models.NetworkStats, 0)
	for rows.Next() {
		var st models.NetworkStats
		if err := rows.Scan(&st.Network, &st.Total, &st.Valid); err != nil {
			return nil, fmt.Errorf("failed to scan network stats: %w", err)
		}
		// rows written by older builds or by hand may not use the canonical tag
		network, _ := card.ParseNetwork(st.Network)
		st.Network = network.String()
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read network stats: %w", err)
	}
	return stats, nil
}
