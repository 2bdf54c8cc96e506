package validation

import (
	"errors"
	"regexp"

	"github.com/AlenaMolokova/cardvalidator/internal/constants"
)

var (
	ErrCardNumberRequired = errors.New("cardNumber is required")
	ErrCardNumberLength   = errors.New("cardNumber must be 13 to 19 characters long")
	ErrCardNumberDigits   = errors.New("cardNumber must contain digits only")
)

// RequestValidator is the format gate run before a card number reaches the
// checksum.
type RequestValidator interface {
	ValidateCardNumber(cardNumber string) error
}

type CardNumberValidator struct {
	digitRegex *regexp.Regexp
}

func NewCardNumberValidator() *CardNumberValidator {
	return &CardNumberValidator{
		digitRegex: regexp.MustCompile(`^\d+$`),
	}
}

// ValidateCardNumber rejects anything that is not 13 to 19 ASCII digits.
// Separators are not tolerated here: formatted input is malformed.
func (v *CardNumberValidator) ValidateCardNumber(cardNumber string) error {
	if cardNumber == "" {
		return ErrCardNumberRequired
	}
	if len(cardNumber) < constants.MinCardLength || len(cardNumber) > constants.MaxCardLength {
		return ErrCardNumberLength
	}
	if !v.digitRegex.MatchString(cardNumber) {
		return ErrCardNumberDigits
	}
	return nil
}
