package handlers

import (
	"context"

	"github.com/AlenaMolokova/cardvalidator/internal/models"
)

type ValidationService interface {
	Validate(ctx context.Context, cardNumber string) (*models.ValidationResponse, error)
	Stats(ctx context.Context) ([]models.NetworkStats, error)
}
