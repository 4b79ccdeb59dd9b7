package cgt

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value as an exact count of minor units (cents).
//
// Every operation is closed over integral minor units: Add and Sub are exact,
// and the scalar operations round their result to the nearest minor unit with
// banker's rounding, so repeated pool deposits and withdrawals cannot
// accumulate fractional-penny drift.
type Money struct {
	cents decimal.Decimal // integral count of minor units
	cur   string
}

// Cents returns the Money worth the given number of minor units of a currency.
func Cents(cents int64, currency string) Money {
	return Money{cents: decimal.NewFromInt(cents), cur: currency}
}

// USD is a shorthand for Cents(cents, "USD"), the stock-plan currency.
func USD(cents int64) Money { return Cents(cents, "USD") }

// currency returns the money's full currency definition.
func (m Money) currency() *money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return money.New(0, m.cur).Currency()
}

// String renders the amount as a localized two-decimal string, e.g. "$1,234.56".
func (m Money) String() string {
	return m.currency().Formatter().Format(m.cents.IntPart())
}

// SignedString is String with an explicit sign; zero renders as "-".
func (m Money) SignedString() string {
	if m.cents.IsZero() {
		return "-"
	}
	if m.cents.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// Cents returns the amount as a count of minor units.
func (m Money) Cents() int64 { return m.cents.IntPart() }

func (m Money) Currency() string       { return m.cur }
func (m Money) Equal(n Money) bool     { return m.cents.Equal(n.cents) && m.cur == n.cur }
func (m Money) IsZero() bool           { return m.cents.IsZero() }
func (m Money) IsPositive() bool       { return m.cents.IsPositive() }
func (m Money) IsNegative() bool       { return m.cents.IsNegative() }
func (m Money) LessThan(n Money) bool  { return m.cents.LessThan(n.cents) }
func (m Money) Neg() Money             { return Money{cents: m.cents.Neg(), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{cents: m.cents.Add(n.cents), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{cents: m.cents.Sub(n.cents), cur: cur(m, n)} }

// Mul returns m scaled by a share quantity, rounded to the nearest minor unit.
func (m Money) Mul(q Quantity) Money {
	return Money{cents: m.cents.Mul(q.value).RoundBank(0), cur: m.cur}
}

// Div returns m divided by a share quantity, rounded to the nearest minor unit.
func (m Money) Div(q Quantity) Money {
	return Money{cents: m.cents.Div(q.value).RoundBank(0), cur: m.cur}
}

// Allocate returns the given ratio of m, rounded to the nearest minor unit.
// It is used to carve a cost basis into successor pools.
func (m Money) Allocate(ratio decimal.Decimal) Money {
	return Money{cents: m.cents.Mul(ratio).RoundBank(0), cur: m.cur}
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}
