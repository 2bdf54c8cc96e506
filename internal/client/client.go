package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/AlenaMolokova/cardvalidator/internal/card"
	"github.com/AlenaMolokova/cardvalidator/internal/models"
)

var (
	ErrInvalidFormat   = errors.New("invalid card number format")
	ErrServiceNotFound = errors.New("validation service not found")
	ErrTooManyRequests = errors.New("too many requests, please try again later")
	ErrServer          = errors.New("server error, please try again later")
	ErrUnreachable     = errors.New("unable to connect to validation service, please check your internet connection")
	ErrUnexpected      = errors.New("an unexpected error occurred")
)

const validatePath = "/api/validate"

// Client calls the validation service. It strips separators before sending;
// the server itself only accepts bare digits.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Validate(ctx context.Context, cardNumber string) (*models.ValidationResponse, error) {
	body, err := json.Marshal(models.ValidationRequest{CardNumber: card.Normalize(cardNumber)})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpected, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+validatePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpected, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var result models.ValidationResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return nil, fmt.Errorf("%w: decode response: %v", ErrUnexpected, err)
		}
		return &result, nil
	case http.StatusBadRequest:
		return nil, ErrInvalidFormat
	case http.StatusNotFound:
		return nil, ErrServiceNotFound
	case http.StatusTooManyRequests:
		return nil, ErrTooManyRequests
	case http.StatusInternalServerError:
		return nil, ErrServer
	default:
		return nil, fmt.Errorf("validation failed: %s", serverMessage(resp.Body))
	}
}

// IsRetryable reports whether err is worth an immediate retry.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrUnreachable)
}

func serverMessage(body io.Reader) string {
	var e models.ErrorResponse
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&e); err != nil || e.Error == "" {
		return "unknown error"
	}
	return e.Error
}
