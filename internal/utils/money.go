package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

var SupportedCurrencies = map[string]Currency{
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar"},
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"GBP": {Code: "GBP", Symbol: "£", Name: "British Pound"},
	"CAD": {Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	"AUD": {Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	"JPY": {Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	"INR": {Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	"MXN": {Code: "MXN", Symbol: "$", Name: "Mexican Peso"},
}

// RoundMoney rounds a monetary amount to 2 decimal places, half away from
// zero. The pricing engine emits exact values; callers round only when
// persisting or displaying.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// FormatMoney renders an amount with its currency symbol.
func FormatMoney(amount decimal.Decimal, currencyCode string) string {
	currency, exists := SupportedCurrencies[currencyCode]
	if !exists {
		currency = SupportedCurrencies[DefaultCurrency]
	}

	switch currencyCode {
	case "JPY", "KRW": // Currencies without decimal places
		return fmt.Sprintf("%s%s", currency.Symbol, amount.Round(0).StringFixed(0))
	default:
		return fmt.Sprintf("%s%s", currency.Symbol, amount.Round(2).StringFixed(2))
	}
}

// GetCurrencySymbol returns the symbol for a currency code, defaulting to "$".
func GetCurrencySymbol(currencyCode string) string {
	currency, exists := SupportedCurrencies[currencyCode]
	if !exists {
		return "$"
	}
	return currency.Symbol
}

// ValidateCurrencyCode reports whether a currency code is supported.
func ValidateCurrencyCode(code string) bool {
	_, exists := SupportedCurrencies[code]
	return exists
}

// Percent converts a percentage rate into its fractional multiplier,
// e.g. 35 -> 0.35.
func Percent(rate decimal.Decimal) decimal.Decimal {
	return rate.Div(decimal.NewFromInt(100))
}
