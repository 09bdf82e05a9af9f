package cookiecost

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used to display costs when none is configured.
const DefaultCurrency = "USD"

// Money represents a monetary value for display.
//
// Calculations store plain quantities: the currency is a display setting,
// never persisted and never converted.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the value formatted for its currency, rounded to the currency's minor unit.
//
// Unknown currencies, and amounts too large for the currency formatter, are
// written as a plain number followed by the currency code.
func (m Money) String() string {
	cur := m.currency()
	if cur.Template == "" || m.value.NumDigits()+int(m.value.Exponent())+cur.Fraction > maxMinorDigits {
		return strings.TrimSpace(m.value.StringFixed(2) + " " + m.cur)
	}
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// maxMinorDigits is the most digits an amount in minor units can have and still fit an int64.
const maxMinorDigits = 18
