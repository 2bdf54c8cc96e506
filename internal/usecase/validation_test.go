package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AlenaMolokova/cardvalidator/internal/models"
	"github.com/AlenaMolokova/cardvalidator/internal/testutils"
	"github.com/AlenaMolokova/cardvalidator/internal/usecase"
	"github.com/AlenaMolokova/cardvalidator/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	checks   []string
	rejected []string
}

func (o *recordingObserver) ObserveCheck(network string, valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	o.checks = append(o.checks, network+":"+result)
}

func (o *recordingObserver) ObserveRejected(reason string) {
	o.rejected = append(o.rejected, reason)
}

func TestValidationUseCaseValidate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name             string
		cardNumber       string
		setupMocks       func(*testutils.MockCheckStorage)
		expectedResponse *models.ValidationResponse
		expectedErr      error
		expectedChecks   []string
		expectedRejected []string
	}{
		{
			name:       "valid visa",
			cardNumber: "4532015112830366",
			setupMocks: func(cs *testutils.MockCheckStorage) {
				cs.On("CreateCheck", mock.Anything, mock.MatchedBy(func(r models.CheckRecord) bool {
					return r.Network == "visa" && r.LastFour == "0366" && r.Valid
				})).Return(nil)
			},
			expectedResponse: &models.ValidationResponse{IsValid: true, Network: "visa"},
			expectedChecks:   []string{"visa:valid"},
		},
		{
			name:       "checksum failure is not an error",
			cardNumber: "4532015112830367",
			setupMocks: func(cs *testutils.MockCheckStorage) {
				cs.On("CreateCheck", mock.Anything, mock.MatchedBy(func(r models.CheckRecord) bool {
					return r.Network == "visa" && r.LastFour == "0367" && !r.Valid
				})).Return(nil)
			},
			expectedResponse: &models.ValidationResponse{IsValid: false, Network: "visa"},
			expectedChecks:   []string{"visa:invalid"},
		},
		{
			name:       "unknown network",
			cardNumber: "1234567890123456",
			setupMocks: func(cs *testutils.MockCheckStorage) {
				cs.On("CreateCheck", mock.Anything, mock.AnythingOfType("models.CheckRecord")).Return(nil)
			},
			expectedResponse: &models.ValidationResponse{IsValid: false, Network: "unknown"},
			expectedChecks:   []string{"unknown:invalid"},
		},
		{
			name:       "storage failure does not change the result",
			cardNumber: "5425233430109903",
			setupMocks: func(cs *testutils.MockCheckStorage) {
				cs.On("CreateCheck", mock.Anything, mock.AnythingOfType("models.CheckRecord")).Return(errors.New("db error"))
			},
			expectedResponse: &models.ValidationResponse{IsValid: true, Network: "mastercard"},
			expectedChecks:   []string{"mastercard:valid"},
		},
		{
			name:             "letters are malformed",
			cardNumber:       "4532abc112830366",
			setupMocks:       func(cs *testutils.MockCheckStorage) {},
			expectedErr:      validation.ErrCardNumberDigits,
			expectedRejected: []string{"format"},
		},
		{
			name:             "too short is malformed",
			cardNumber:       "411111",
			setupMocks:       func(cs *testutils.MockCheckStorage) {},
			expectedErr:      validation.ErrCardNumberLength,
			expectedRejected: []string{"format"},
		},
		{
			name:             "separators are malformed",
			cardNumber:       "4532 0151 1283 0366",
			setupMocks:       func(cs *testutils.MockCheckStorage) {},
			expectedErr:      validation.ErrCardNumberDigits,
			expectedRejected: []string{"format"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := &testutils.MockCheckStorage{}
			tt.setupMocks(cs)
			observer := &recordingObserver{}

			uc := usecase.NewValidationUseCase(validation.NewCardNumberValidator(), cs, observer)
			resp, err := uc.Validate(ctx, tt.cardNumber)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, usecase.ErrInvalidFormat)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedResponse, resp)
			}
			assert.Equal(t, tt.expectedChecks, observer.checks)
			assert.Equal(t, tt.expectedRejected, observer.rejected)

			cs.AssertExpectations(t)
		})
	}
}

func TestValidationUseCaseWithoutStorage(t *testing.T) {
	uc := usecase.NewValidationUseCase(validation.NewCardNumberValidator(), nil, nil)

	resp, err := uc.Validate(context.Background(), "374245455400126")
	require.NoError(t, err)
	assert.Equal(t, &models.ValidationResponse{IsValid: true, Network: "amex"}, resp)

	_, err = uc.Stats(context.Background())
	assert.ErrorIs(t, err, usecase.ErrStatsDisabled)
}

func TestValidationUseCaseStats(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		setupMocks    func(*testutils.MockCheckStorage)
		expectedStats []models.NetworkStats
		expectedErr   string
	}{
		{
			name: "stats returned",
			setupMocks: func(cs *testutils.MockCheckStorage) {
				cs.On("GetNetworkStats", mock.Anything).Return([]models.NetworkStats{
					{Network: "visa", Total: 3, Valid: 2},
				}, nil)
			},
			expectedStats: []models.NetworkStats{{Network: "visa", Total: 3, Valid: 2}},
		},
		{
			name: "storage error",
			setupMocks: func(cs *testutils.MockCheckStorage) {
				cs.On("GetNetworkStats", mock.Anything).Return([]models.NetworkStats(nil), errors.New("db error"))
			},
			expectedErr: "failed to get network stats: db error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := &testutils.MockCheckStorage{}
			tt.setupMocks(cs)

			uc := usecase.NewValidationUseCase(validation.NewCardNumberValidator(), cs, nil)
			stats, err := uc.Stats(ctx)

			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStats, stats)
			}
			cs.AssertExpectations(t)
		})
	}
}

func TestValidationUseCaseRecordsTimestamp(t *testing.T) {
	cs := &testutils.MockCheckStorage{}
	before := time.Now()
	cs.On("CreateCheck", mock.Anything, mock.MatchedBy(func(r models.CheckRecord) bool {
		return !r.CheckedAt.Before(before)
	})).Return(nil)

	uc := usecase.NewValidationUseCase(validation.NewCardNumberValidator(), cs, nil)
	_, err := uc.Validate(context.Background(), "6011111111111117")

	require.NoError(t, err)
	cs.AssertExpectations(t)
}
