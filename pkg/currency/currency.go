// Package currency renders monetary amounts for display. It lives at the
// presentation boundary only; computation stays in decimal values and is
// never formatted mid-calculation.
package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tindahan/poscore/pkg/apperror"
)

// Narrow symbols for the currencies the product is deployed with. Anything
// else falls back to the ISO code.
var symbols = map[string]string{
	"PHP": "₱",
	"USD": "$",
	"EUR": "€",
}

// Formatter renders amounts with a currency symbol and locale-aware digit
// grouping, always with exactly two fraction digits.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter builds a formatter for an ISO 4217 code and a BCP 47 locale,
// e.g. ("PHP", "en-PH"). Unknown codes and unparsable locales are validation
// errors.
func NewFormatter(code, locale string) (*Formatter, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, apperror.NewFieldError("currency_code", "unknown ISO 4217 code "+code)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, apperror.NewFieldError("currency_locale", "unparsable locale "+locale)
	}
	symbol, ok := symbols[unit.String()]
	if !ok {
		symbol = unit.String() + " "
	}
	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}, nil
}

// Format renders an amount rounded half-up to two decimals, e.g. "₱1,234.50".
// Negative amounts carry a leading minus: "-₱50.00".
func (f *Formatter) Format(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	return f.printer.Sprintf("%s%s%v", sign, f.symbol,
		number.Decimal(rounded.InexactFloat64(),
			number.MinFractionDigits(2),
			number.MaxFractionDigits(2)))
}

// Symbol returns the currency symbol used by this formatter.
func (f *Formatter) Symbol() string {
	return f.symbol
}
