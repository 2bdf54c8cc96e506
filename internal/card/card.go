// Package card holds the payment-card number rules: normalization, network
// classification by prefix and the Luhn checksum with length bounds.
//
// Everything here is a pure function of its input and safe for concurrent use.
package card

import (
	"strings"

	"github.com/AlenaMolokova/cardvalidator/internal/constants"
	"github.com/AlenaMolokova/cardvalidator/internal/utils"
)

// Normalize keeps the ASCII digits of raw in their original order and drops
// everything else.
func Normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
}

// LengthOK reports whether digits has a card-number length.
func LengthOK(digits string) bool {
	return len(digits) >= constants.MinCardLength && len(digits) <= constants.MaxCardLength
}

// IsValid reports whether number is 13 to 19 ASCII digits with a passing Luhn
// checksum. Any non-digit character makes the number invalid; callers that
// accept formatted input should Normalize first.
func IsValid(number string) bool {
	if !LengthOK(number) {
		return false
	}
	return utils.LuhnCheck(number)
}

// IsValidInput accepts the separators people type (spaces and hyphens), removes
// them and then applies IsValid. Letters and other symbols are not stripped and
// make the input invalid.
func IsValidInput(raw string) bool {
	return IsValid(stripSeparators(raw))
}

func stripSeparators(raw string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '\t':
			return -1
		}
		return r
	}, raw)
}

// Format groups every digit of raw in blocks of four separated by spaces.
func Format(raw string) string {
	digits := Normalize(raw)

	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// Mask replaces every digit except the last four with '*'.
func Mask(number string) string {
	digits := Normalize(number)
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// LastFour returns the trailing four digits of number, or fewer if it is short.
func LastFour(number string) string {
	digits := Normalize(number)
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
