/*
Package billing provides the shared value types for invoice generation.

PURPOSE:
  This package contains the primitives every other package builds on:
  monetary amounts, skill identifiers and their hourly rates, month
  periods, postal addresses, and the clock capability used to stamp
  rendered documents.

KEY CONCEPTS IN THIS FILE (money.go):
  - Money: A monetary amount backed by decimal.Decimal
  - Grouped formatting: fixed two-decimal output with thousands
    separators, as printed in invoice charge columns

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point errors
  2. Immutability: Money values are never mutated, operations return
     new values
  3. Display is separate from arithmetic: Grouped() exists only for
     report columns

SEE ALSO:
  - rates.go: Skill and RateBook (skill -> hourly Money)
  - period.go: MonthPeriod used for invoice boundaries
*/
package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Monetary amount
// =============================================================================

type Money struct {
	Value decimal.Decimal
}

func NewMoney(value float64) Money {
	return Money{Value: decimal.NewFromFloat(value)}
}

func MoneyFromInt(value int) Money {
	return Money{Value: decimal.NewFromInt(int64(value))}
}

func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money{Value: d}
}

// MustParseMoney parses a decimal string, returning zero on failure.
func MustParseMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{Value: decimal.Zero}
	}
	return Money{Value: d}
}

func (m Money) Add(b Money) Money        { return Money{Value: m.Value.Add(b.Value)} }
func (m Money) Sub(b Money) Money        { return Money{Value: m.Value.Sub(b.Value)} }
func (m Money) MulInt(n int) Money       { return Money{Value: m.Value.Mul(decimal.NewFromInt(int64(n)))} }
func (m Money) Neg() Money               { return Money{Value: m.Value.Neg()} }
func (m Money) IsZero() bool             { return m.Value.IsZero() }
func (m Money) IsNegative() bool         { return m.Value.IsNegative() }
func (m Money) Equal(b Money) bool       { return m.Value.Equal(b.Value) }
func (m Money) GreaterThan(b Money) bool { return m.Value.GreaterThan(b.Value) }

// String renders the amount with two decimal places and no grouping.
func (m Money) String() string { return m.Value.StringFixed(2) }

// Grouped renders the amount with two decimal places and thousands
// separators, e.g. 5600 -> "5,600.00". This is the form used in invoice
// charge columns and total lines.
func (m Money) Grouped() string {
	s := m.Value.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
