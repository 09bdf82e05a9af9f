package cookiecost

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is an exact decimal number: an ingredient quantity, a price per unit or a cost.
// Its zero value is 0.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Equal(p Quantity) bool   { return q.value.Equal(p.value) }
func (q Quantity) Add(p Quantity) Quantity { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Mul(p Quantity) Quantity { return Quantity{value: q.value.Mul(p.value)} }
func (q Quantity) Div(p Quantity) Quantity { return Quantity{value: q.value.Div(p.value)} }
func (q Quantity) IsPositive() bool        { return q.value.IsPositive() }
func (q Quantity) IsZero() bool            { return q.value.IsZero() }
func (q Quantity) String() string          { return q.value.String() }

// Float64 returns the nearest float64, for display only.
func (q Quantity) Float64() float64 { return q.value.InexactFloat64() }

// Money returns q as an amount of 'currency'.
func (q Quantity) Money(currency string) Money { return Money{value: q.value, cur: currency} }

const (
	// maxIntegerDigits bounds the integer part of a quantity read from text.
	maxIntegerDigits = 15
	// maxFractionDigits bounds its fractional part, anything smaller reads as 0.
	maxFractionDigits = 12
)

// bounded returns q rounded to maxFractionDigits, and false if its integer
// part has more than maxIntegerDigits.
//
// Text can hold numbers like 1e30000000 whose decimal expansion takes
// seconds to compute. Only the coefficient and exponent are looked at here.
func (q Quantity) bounded() (Quantity, bool) {
	if q.value.IsZero() {
		return Quantity{}, true
	}
	digits := q.value.NumDigits() + int(q.value.Exponent())
	switch {
	case digits > maxIntegerDigits:
		return Quantity{}, false
	case digits <= -maxFractionDigits:
		return Quantity{}, true
	case q.value.Exponent() < -maxFractionDigits:
		return Quantity{value: q.value.Round(maxFractionDigits)}, true
	}
	return q, true
}

// nonNegative clamps negative values to zero.
func (q Quantity) nonNegative() Quantity {
	if q.value.IsNegative() {
		return Quantity{}
	}
	return q
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.value.MarshalJSON()
}

func (q *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return q.value.UnmarshalJSON(decimalBytes)
}

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

// ParseQuantity reads a number typed by a user.
//
// It never fails: the longest numeric prefix is used ("250g" is 250),
// and empty, non-numeric, negative or out of range input reads as 0.
func ParseQuantity(text string) Quantity {
	s := leadingFloat.FindString(strings.TrimSpace(text))
	if s == "" {
		return Quantity{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}
	}
	q, ok := Quantity{value: d}.bounded()
	if !ok {
		return Quantity{}
	}
	return q.nonNegative()
}

// ParseCount reads a whole number typed by a user, with the same leniency as
// ParseQuantity: "24 cookies" is 24, "abc" or "-3" is 0.
func ParseCount(text string) int {
	s := leadingInt.FindString(strings.TrimSpace(text))
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
