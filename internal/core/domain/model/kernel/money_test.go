package kernel_test

import (
	"testing"

	"quotation/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestRoundForDisplay(t *testing.T) {
	testCases := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"already two places", 60, 60},
		{"float noise", 0.1 + 0.2, 0.3},
		{"half rounds up", 1.005, 1.01},
		{"cbm", 0.006, 0.01},
		{"negative half away from zero", -2.345, -2.35},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, kernel.RoundForDisplay(tc.in), 1e-9)
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "AED 60.00", kernel.FormatCurrency(60))
	assert.Equal(t, "AED 1234.57", kernel.FormatCurrency(1234.567))
	assert.Equal(t, "AED 0.00", kernel.FormatCurrency(0))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1.20", kernel.FormatAmount(1.2))
}
