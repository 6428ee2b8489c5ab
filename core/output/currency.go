// Package output - Locale-aware currency rendering
package output

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"nava-ops/core/types"
)

var printer = message.NewPrinter(language.English)

// FormatAmount renders a monetary amount with its currency symbol and
// digit grouping. Unknown currency codes fall back to "CODE 123.45".
// Precision is already fixed upstream; the float conversion here is
// display-only.
func FormatAmount(code types.Currency, amount decimal.Decimal) string {
	unit, err := currency.ParseISO(string(code))
	if err != nil {
		return string(code) + " " + amount.StringFixed(types.MoneyScale)
	}
	value, _ := amount.Float64()
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(value)))
}

// FormatPercent renders a percent value with a trailing sign
func FormatPercent(p decimal.Decimal) string {
	return p.StringFixed(2) + "%"
}
