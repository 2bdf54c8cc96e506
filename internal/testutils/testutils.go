package testutils

import (
	"context"

	"github.com/AlenaMolokova/cardvalidator/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

type MockCheckStorage struct {
	mock.Mock
}

func (m *MockCheckStorage) CreateCheck(ctx context.Context, record models.CheckRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockCheckStorage) GetNetworkStats(ctx context.Context) ([]models.NetworkStats, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.NetworkStats), args.Error(1)
}

type MockDB struct {
	mock.Mock
}

func (m *MockDB) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	args := m.Called(append([]any{ctx, sql}, arguments...)...)
	return args.Get(0).(pgconn.CommandTag), args.Error(1)
}

func (m *MockDB) Query(ctx context.Context, sql string, arguments ...any) (pgx.Rows, error) {
	args := m.Called(append([]any{ctx, sql}, arguments...)...)
	rows, _ := args.Get(0).(pgx.Rows)
	return rows, args.Error(1)
}

type MockValidationService struct {
	mock.Mock
}

func (m *MockValidationService) Validate(ctx context.Context, cardNumber string) (*models.ValidationResponse, error) {
	args := m.Called(ctx, cardNumber)
	resp, _ := args.Get(0).(*models.ValidationResponse)
	return resp, args.Error(1)
}

func (m *MockValidationService) Stats(ctx context.Context) ([]models.NetworkStats, error) {
	args := m.Called(ctx)
	stats, _ := args.Get(0).([]models.NetworkStats)
	return stats, args.Error(1)
}
