package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundMoney_HalfUp(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"535.248", "535.25"},
		{"535.245", "535.25"},
		{"535.244", "535.24"},
		{"77.76", "77.76"},
		{"0.005", "0.01"},
		{"0", "0.00"},
	}

	for _, tt := range tests {
		rounded := RoundMoney(decimal.RequireFromString(tt.input))
		assert.Equal(t, tt.expected, rounded.StringFixed(2), "input %s", tt.input)
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$535.25", FormatMoney(decimal.RequireFromString("535.248"), "USD"))
	assert.Equal(t, "€20.00", FormatMoney(decimal.RequireFromString("20"), "EUR"))
	assert.Equal(t, "¥110", FormatMoney(decimal.RequireFromString("110.4"), "JPY"))
	assert.Equal(t, "$12.00", FormatMoney(decimal.RequireFromString("12"), "XXX")) // unknown falls back to USD
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "0.35", Percent(decimal.RequireFromString("35")).String())
	assert.Equal(t, "0.05", Percent(decimal.RequireFromString("5")).String())
	assert.True(t, Percent(decimal.Zero).IsZero())
}

func TestValidateCurrencyCode(t *testing.T) {
	assert.True(t, ValidateCurrencyCode("USD"))
	assert.True(t, ValidateCurrencyCode("GBP"))
	assert.False(t, ValidateCurrencyCode("usd"))
	assert.False(t, ValidateCurrencyCode(""))
}

func TestGetCurrencySymbol(t *testing.T) {
	assert.Equal(t, "£", GetCurrencySymbol("GBP"))
	assert.Equal(t, "$", GetCurrencySymbol("ZZZ"))
}
