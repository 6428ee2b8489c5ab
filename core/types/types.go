// Package types contains the shared value objects of the NAVA Ops core.
package types

import "github.com/shopspring/decimal"

// Currency represents an ISO 4217 currency code
type Currency string

const (
	CurrencySAR Currency = "SAR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// MoneyScale is the fraction-digit scale applied at presentation boundaries.
// Intermediate computation stays unrounded.
const MoneyScale = 2

// RoundMoney rounds a monetary amount to the presentation scale
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}
