package cgt

import (
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

// For all sequences of deposits and withdrawals the holding never goes
// negative, and holds exactly zero cost whenever it holds zero shares.
func TestProperty_HoldingNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := NewHolding("GSU")

		steps := rapid.IntRange(1, 50).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "deposit") {
				qty := Q(rapid.Int64Range(1, 1000).Draw(t, "qty"))
				price := USD(rapid.Int64Range(1, 100000).Draw(t, "price"))
				h.Deposit(qty, price)
			} else {
				qty := Q(rapid.Int64Range(1, 1000).Draw(t, "qty"))
				before := h.Quantity()
				_, _, err := h.Withdraw(qty)
				if qty.GreaterThan(before) && err == nil {
					t.Fatalf("overdraw of %s from %s succeeded", qty, before)
				}
			}

			if h.Quantity().IsNegative() {
				t.Fatalf("quantity went negative: %s", h.Quantity())
			}
			if h.Cost().IsNegative() {
				t.Fatalf("cost went negative: %s", h.Cost())
			}
			if h.Quantity().IsZero() && !h.Cost().IsZero() {
				t.Fatalf("empty holding retains cost %s", h.Cost())
			}
		}
	})
}

// The cost withdrawn is subtracted exactly from the holding, so over any
// sequence of operations no penny is created or destroyed: deposits in minus
// withdrawals out always equals the cost still held.
func TestProperty_HoldingConservesCost(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := NewHolding("GSU")
		var in, out Money

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "deposit") {
				// Fractional share counts exercise the rounding rule.
				qty := Q(rapid.Float64Range(0.01, 500).Draw(t, "qty"))
				price := USD(rapid.Int64Range(1, 50000).Draw(t, "price"))
				in = in.Add(price.Mul(qty))
				h.Deposit(qty, price)
			} else if h.Quantity().IsPositive() {
				qty := h.Quantity().Min(Q(rapid.Float64Range(0.01, 500).Draw(t, "qty")))
				cost, _, err := h.Withdraw(qty)
				if err != nil {
					t.Fatalf("Withdraw(%s of %s) error = %v", qty, h.Quantity(), err)
				}
				out = out.Add(cost)
			}

			if held := in.Sub(out); !h.Cost().Equal(held) {
				t.Fatalf("cost drift: holding %s, deposits-withdrawals %s", h.Cost(), held)
			}
		}

		// Draining the holding returns exactly what is left, down to the cent.
		if h.Quantity().IsPositive() {
			cost, _, err := h.Withdraw(h.Quantity())
			if err != nil {
				t.Fatalf("drain error = %v", err)
			}
			if !cost.Equal(in.Sub(out)) {
				t.Fatalf("drain returned %s, want %s", cost, in.Sub(out))
			}
		}
	})
}

// Splitting preserves the cost basis: successor costs sum to the original
// within one minor unit of rounding, and each successor carries the full
// share count of the original (one old share becomes one share of each class).
func TestProperty_SplitPreservesCostBasis(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := NewHolding("GSU")
		h.Deposit(Q(rapid.Int64Range(1, 10000).Draw(t, "qty")), USD(rapid.Int64Range(1, 100000).Draw(t, "price")))

		num := rapid.Int64Range(1, 999).Draw(t, "ratio")
		ratioA := decimal.NewFromInt(num).Div(decimal.NewFromInt(1000))
		ratioB := decimal.NewFromInt(1).Sub(ratioA)

		a, _ := h.Split("A", ratioA)
		b, _ := h.Split("B", ratioB)

		diff := a.Cost().Add(b.Cost()).Sub(h.Cost())
		if diff.IsNegative() {
			diff = diff.Neg()
		}
		if USD(1).LessThan(diff) {
			t.Fatalf("cost basis drift after split: %s + %s != %s", a.Cost(), b.Cost(), h.Cost())
		}
		if !a.Quantity().Equal(h.Quantity()) || !b.Quantity().Equal(h.Quantity()) {
			t.Fatalf("successor quantity changed: %s / %s, want %s", a.Quantity(), b.Quantity(), h.Quantity())
		}
	})
}
