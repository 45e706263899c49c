// Package money formats currency amounts and dates the way Brazilian
// business documents expect them.
package money

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount as "R$ 1.234,56" with two decimal places.
func FormatBRL(amount decimal.Decimal) string {
	v, _ := amount.Float64()
	return printer.Sprintf("R$ %v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatDate renders a date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
