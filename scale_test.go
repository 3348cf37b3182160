package human

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickUnit(t *testing.T) {
	tests := []struct {
		name      string
		magnitude float64
		symbol    string
	}{
		{
			name:      "zero uses base unit",
			magnitude: 0,
			symbol:    "",
		},
		{
			name:      "below first threshold uses base unit",
			magnitude: 999,
			symbol:    "",
		},
		{
			name:      "exact threshold selects its unit",
			magnitude: 1000,
			symbol:    "K",
		},
		{
			name:      "just under next threshold stays on current unit",
			magnitude: 999999,
			symbol:    "K",
		},
		{
			name:      "exact power of thousand",
			magnitude: 1e6,
			symbol:    "M",
		},
		{
			name:      "negative magnitude selects by absolute value",
			magnitude: -1500,
			symbol:    "K",
		},
		{
			name:      "beyond last threshold uses last unit",
			magnitude: 1e21,
			symbol:    "Qi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := pickUnit(countLadder, tt.magnitude)
			assert.Equal(t, tt.symbol, u.symbol)
		})
	}
}

func TestFormatScaled(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{
			name:     "whole number drops the decimal point",
			value:    5,
			expected: "5",
		},
		{
			name:     "fractional value keeps one digit",
			value:    1.2,
			expected: "1.2",
		},
		{
			name:     "rounds half away from zero",
			value:    1.25,
			expected: "1.3",
		},
		{
			name:     "rounds negative half away from zero",
			value:    -1.25,
			expected: "-1.3",
		},
		{
			name:     "rounds up across the integer boundary",
			value:    999.96,
			expected: "1000",
		},
		{
			name:     "zero",
			value:    0,
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatScaled(tt.value))
		})
	}
}
