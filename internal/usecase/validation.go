package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/AlenaMolokova/cardvalidator/internal/card"
	"github.com/AlenaMolokova/cardvalidator/internal/models"
	"github.com/AlenaMolokova/cardvalidator/internal/validation"
)

var (
	ErrInvalidFormat = errors.New("invalid card number format")
	ErrStatsDisabled = errors.New("check statistics are disabled")
)

type CheckObserver interface {
	ObserveCheck(network string, valid bool)
	ObserveRejected(reason string)
}

type ValidationUseCase struct {
	validator validation.RequestValidator
	storage   models.CheckStorage
	observer  CheckObserver
	now       func() time.Time
}

// NewValidationUseCase wires the format gate to the card rules. storage and
// observer may be nil.
func NewValidationUseCase(validator validation.RequestValidator, storage models.CheckStorage, observer CheckObserver) *ValidationUseCase {
	return &ValidationUseCase{
		validator: validator,
		storage:   storage,
		observer:  observer,
		now:       time.Now,
	}
}

// Validate runs the format gate and then the checksum. A failing checksum is a
// normal result; only malformed input produces ErrInvalidFormat.
func (uc *ValidationUseCase) Validate(ctx context.Context, cardNumber string) (*models.ValidationResponse, error) {
	if err := uc.validator.ValidateCardNumber(cardNumber); err != nil {
		if uc.observer != nil {
			uc.observer.ObserveRejected("format")
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	valid := card.IsValid(cardNumber)
	network := card.Classify(cardNumber)

	if uc.observer != nil {
		uc.observer.ObserveCheck(network.String(), valid)
	}

	if uc.storage != nil {
		record := models.CheckRecord{
			Network:   network.String(),
			LastFour:  card.LastFour(cardNumber),
			Valid:     valid,
			CheckedAt: uc.now(),
		}
		if err := uc.storage.CreateCheck(ctx, record); err != nil {
			log.Printf("Failed to record check for %s: %v", card.Mask(cardNumber), err)
		}
	}

	return &models.ValidationResponse{IsValid: valid, Network: network.String()}, nil
}

func (uc *ValidationUseCase) Stats(ctx context.Context) ([]models.NetworkStats, error) {
	if uc.storage == nil {
		return nil, ErrStatsDisabled
	}
	stats, err := uc.storage.GetNetworkStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get network stats: %w", err)
	}
	return stats, nil
}
