package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
		present  bool
	}{
		{"plain integer", "500", 500, true},
		{"dot decimal", "123.45", 123.45, true},
		{"comma decimal", "123,45", 123.45, true},
		{"european thousands", "1.234,56", 1234.56, true},
		{"us thousands", "1,234.56", 1234.56, true},
		{"negative", "-10733000", -10733000, true},
		{"unit clutter", "1 250.5 MW", 1250.5, true},
		{"currency clutter", "$99.9", 99.9, true},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"placeholder nd", "ND", 0, false},
		{"placeholder n/d", "N/D", 0, false},
		{"placeholder na", "na", 0, false},
		{"placeholder n/a", "N/A", 0, false},
		{"placeholder dash", "-", 0, false},
		{"placeholder null", "null", 0, false},
		{"letters only", "abc", 0, false},
		{"separators only", ",.", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.raw)
			assert.Equal(t, tt.present, ok)
			if tt.present {
				assert.InDelta(t, tt.expected, got, 1e-9)
			}
		})
	}
}
