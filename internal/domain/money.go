package domain

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a monetary value parsed leniently at the data boundary: missing,
// null, or non-numeric input yields zero instead of an error. Valid records
// whether the source actually carried a value, so callers can fall back to a
// secondary field when the primary one was absent.
type Money struct {
	Amount decimal.Decimal
	Valid  bool
}

func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{Amount: d, Valid: true}
}

func MoneyFromFloat(f float64) Money {
	return Money{Amount: decimal.NewFromFloat(f), Valid: true}
}

// ParseMoney coerces a string to Money. Empty or unparseable input is a
// valid zero report-wise but marked invalid so fallbacks can trigger.
func ParseMoney(s string) Money {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return Money{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}
	}
	return Money{Amount: d, Valid: true}
}

// Or returns m when it carried a value, otherwise the fallback.
func (m Money) Or(fallback Money) Money {
	if m.Valid {
		return m
	}
	return fallback
}

func (m Money) Float64() float64 {
	f, _ := m.Amount.Float64()
	return f
}

func (m Money) StringFixed(places int32) string {
	return m.Amount.StringFixed(places)
}

// UnmarshalJSON accepts a number, a numeric string, or null. Anything else
// coerces to zero rather than failing the surrounding decode.
func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*m = Money{}
		return nil
	}
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	*m = ParseMoney(s)
	return nil
}

func (m Money) MarshalJSON() ([]byte, error) {
	f, _ := m.Amount.Float64()
	return []byte(strconv.FormatFloat(f, 'f', -1, 64)), nil
}
