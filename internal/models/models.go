package models

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ValidationRequest struct {
	CardNumber string `json:"cardNumber"`
}

type ValidationResponse struct {
	IsValid bool   `json:"isValid"`
	Network string `json:"network,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// CheckRecord is what the check log keeps about one accepted request. The
// card number itself is never stored.
type CheckRecord struct {
	ID        uuid.UUID
	Network   string
	LastFour  string
	Valid     bool
	CheckedAt time.Time
}

type NetworkStats struct {
	Network string `json:"network"`
	Total   int64  `json:"total"`
	Valid   int64  `json:"valid"`
}

type CheckStorage interface {
	CreateCheck(ctx context.Context, record CheckRecord) error
	GetNetworkStats(ctx context.Context) ([]NetworkStats, error)
}
