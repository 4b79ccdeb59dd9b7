package cgt

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Holding is the Section 104 pool of one award plan: the running total cost
// and quantity whose quotient is the average cost per share.
//
// See https://assets.publishing.service.gov.uk/government/uploads/system/uploads/attachment_data/file/596595/HS284_Example_3__2017.pdf
type Holding struct {
	name     string
	cost     Money
	quantity Quantity
}

// NewHolding returns an empty Section 104 holding for the named plan.
func NewHolding(name string) *Holding { return &Holding{name: name} }

func (h *Holding) Name() string       { return h.name }
func (h *Holding) Cost() Money        { return h.cost }
func (h *Holding) Quantity() Quantity { return h.quantity }

// Average returns the running average cost per share, or zero for an empty holding.
func (h *Holding) Average() Money {
	if h.quantity.IsZero() {
		return Money{cur: h.cost.cur}
	}
	return h.cost.Div(h.quantity)
}

// Deposit adds shares at the given per-share price and returns the audit event.
func (h *Holding) Deposit(quantity Quantity, price Money) DepositEvent {
	h.cost = h.cost.Add(price.Mul(quantity))
	h.quantity = h.quantity.Add(quantity)
	return DepositEvent{Pool: h.name, Quantity: quantity, Price: price, Total: h.quantity, Average: h.Average()}
}

// Withdraw removes shares at the pro-rata share of the current average cost
// and returns that cost. It fails with an *ExhaustedError when the holding
// cannot cover the quantity, which signals an inconsistent transaction
// history: disposals cannot legally exceed holdings.
func (h *Holding) Withdraw(quantity Quantity) (Money, WithdrawEvent, error) {
	if quantity.GreaterThan(h.quantity) {
		return Money{}, WithdrawEvent{}, &ExhaustedError{Pool: h.name, Requested: quantity, Held: h.quantity}
	}
	cost := h.cost.Allocate(quantity.Ratio(h.quantity))
	h.quantity = h.quantity.Sub(quantity)
	h.cost = h.cost.Sub(cost)
	if h.quantity.IsZero() {
		// a drained holding must hold exactly zero cost
		h.cost = Money{cur: h.cost.cur}
	}
	return cost, WithdrawEvent{Pool: h.name, Quantity: quantity, Cost: cost, Remaining: h.quantity, Average: h.Average()}, nil
}

// Split returns a successor holding inheriting the same quantity and the
// given ratio of the cost basis. The receiver is not mutated: the caller
// retires it after creating all successors from the pre-split state.
func (h *Holding) Split(name string, ratio decimal.Decimal) (*Holding, SplitEvent) {
	successor := &Holding{name: name, cost: h.cost.Allocate(ratio), quantity: h.quantity}
	return successor, SplitEvent{From: h.name, To: name, Quantity: successor.quantity, Cost: successor.cost, Average: successor.Average()}
}

// ExhaustedError reports a disposal drawing more shares than its plan's
// Section 104 holding contains.
type ExhaustedError struct {
	Pool      string
	Requested Quantity
	Held      Quantity
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("section 104 holding %q exhausted: need %s shares, holding %s (short %s)",
		e.Pool, e.Requested, e.Held, e.Requested.Sub(e.Held))
}
