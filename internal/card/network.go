package card

import (
	"strings"

	"github.com/AlenaMolokova/cardvalidator/internal/constants"
)

// Network is the card network inferred from the leading digits of a number.
type Network string

const (
	Visa       Network = constants.NetworkVisa
	Mastercard Network = constants.NetworkMastercard
	Amex       Network = constants.NetworkAmex
	Discover   Network = constants.NetworkDiscover
	Unknown    Network = constants.NetworkUnknown
)

// networks lists every tag, Unknown last.
var networks = []Network{Visa, Mastercard, Amex, Discover, Unknown}

func (n Network) String() string {
	return string(n)
}

// ParseNetwork maps a tag name back to a Network. Unrecognized names yield
// Unknown and false.
func ParseNetwork(s string) (Network, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, n := range networks {
		if string(n) == name {
			return n, true
		}
	}
	return Unknown, false
}

type rule struct {
	network Network
	match   func(digits string) bool
}

// rules are evaluated in order; the first match wins.
var rules = []rule{
	{network: Visa, match: hasPrefix("4")},
	{network: Mastercard, match: anyOf(prefixRange(51, 55), prefixRange(22, 27))},
	{network: Amex, match: hasPrefix("34", "37")},
	{network: Discover, match: hasPrefix("6011", "65")},
}

// Classify returns the network of a normalized digit string. It only looks
// at the prefix: length and checksum do not matter, and the empty string is
// Unknown.
func Classify(digits string) Network {
	for _, r := range rules {
		if r.match(digits) {
			return r.network
		}
	}
	return Unknown
}

func hasPrefix(prefixes ...string) func(string) bool {
	return func(digits string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(digits, p) {
				return true
			}
		}
		return false
	}
}

// prefixRange matches when the first two digits, read as a number, fall in
// [lo, hi].
func prefixRange(lo, hi int) func(string) bool {
	return func(digits string) bool {
		if len(digits) < 2 || !isDigit(digits[0]) || !isDigit(digits[1]) {
			return false
		}
		v := int(digits[0]-'0')*10 + int(digits[1]-'0')
		return v >= lo && v <= hi
	}
}

func anyOf(preds ...func(string) bool) func(string) bool {
	return func(digits string) bool {
		for _, p := range preds {
			if p(digits) {
				return true
			}
		}
		return false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
