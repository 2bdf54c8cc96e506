package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		digits   string
		expected Network
	}{
		{name: "visa prefix only", digits: "4", expected: Visa},
		{name: "visa", digits: "4532015112830366", expected: Visa},
		{name: "mastercard 51", digits: "5100", expected: Mastercard},
		{name: "mastercard 54", digits: "5425", expected: Mastercard},
		{name: "mastercard 55", digits: "5555555555554444", expected: Mastercard},
		{name: "mastercard 22", digits: "2223000048410010", expected: Mastercard},
		{name: "mastercard 27", digits: "2720", expected: Mastercard},
		{name: "50 is not mastercard", digits: "5000", expected: Unknown},
		{name: "56 is not mastercard", digits: "5600", expected: Unknown},
		{name: "21 is not mastercard", digits: "2100", expected: Unknown},
		{name: "28 is not mastercard", digits: "2800", expected: Unknown},
		{name: "amex 34", digits: "3400", expected: Amex},
		{name: "amex 37", digits: "374245455400126", expected: Amex},
		{name: "35 is unknown", digits: "3528", expected: Unknown},
		{name: "discover 6011", digits: "6011111111111117", expected: Discover},
		{name: "discover 65", digits: "6500", expected: Discover},
		{name: "6012 is unknown", digits: "6012", expected: Unknown},
		{name: "single 5 is unknown", digits: "5", expected: Unknown},
		{name: "single 6 is unknown", digits: "6", expected: Unknown},
		{name: "empty", digits: "", expected: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.digits))
		})
	}
}

func TestClassifyDependsOnPrefix(t *testing.T) {
	assert.Equal(t, Visa, Classify("4532"))
	assert.Equal(t, Visa, Classify("4532015112830367"), "checksum does not affect classification")

	// growing a prefix can change the result
	assert.Equal(t, Unknown, Classify("6"))
	assert.Equal(t, Discover, Classify("65"))
}

func TestParseNetwork(t *testing.T) {
	for _, n := range networks {
		got, ok := ParseNetwork(n.String())
		assert.True(t, ok)
		assert.Equal(t, n, got)
	}

	got, ok := ParseNetwork(" VISA ")
	assert.True(t, ok)
	assert.Equal(t, Visa, got)

	got, ok = ParseNetwork("jcb")
	assert.False(t, ok)
	assert.Equal(t, Unknown, got)
}
