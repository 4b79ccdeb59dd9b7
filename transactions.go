package cgt

import (
	"fmt"
	"sort"
)

// Kind identifies the direction of a transaction.
type Kind int

const (
	// Acquisition is an event increasing share holdings (a vesting release).
	Acquisition Kind = iota
	// Disposal is an event decreasing share holdings (a sale).
	Disposal
)

func (k Kind) String() string {
	switch k {
	case Acquisition:
		return "acquisition"
	case Disposal:
		return "disposal"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "acquisition":
		return Acquisition, nil
	case "disposal":
		return Disposal, nil
	default:
		return 0, fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Transaction is one acquisition or disposal event of an award plan.
//
// Date, Kind, Plan, Price and Quantity are set at ingestion and never change.
// The unmatched remainder and the audit log are mutated by Calculate and are
// owned by a single computation run.
type Transaction struct {
	Date     Date
	Kind     Kind
	Plan     string
	Price    Money // per share
	Quantity Quantity

	remaining Quantity // shares not yet assigned to a disposal by direct matching
	log       []Event
}

// NewTransaction returns a transaction with its full quantity still unmatched.
func NewTransaction(on Date, kind Kind, plan string, price Money, quantity Quantity) *Transaction {
	return &Transaction{Date: on, Kind: kind, Plan: plan, Price: price, Quantity: quantity, remaining: quantity}
}

// Remaining returns the quantity not yet assigned to a disposal by direct matching.
func (t *Transaction) Remaining() Quantity { return t.remaining }

// Log returns the ordered audit events explaining how this transaction was resolved.
func (t *Transaction) Log() []Event { return t.log }

func (t *Transaction) String() string {
	return fmt.Sprintf("%s: %s %s %s at %s", t.Date, t.Kind, t.Plan, t.Quantity, t.Price)
}

// record appends an audit event to the transaction's log.
func (t *Transaction) record(e Event) { t.log = append(t.log, e) }

// consume marks shares as assigned to a disposal by direct matching.
func (t *Transaction) consume(q Quantity) { t.remaining = t.remaining.Sub(q) }

// sortTransactions orders transactions chronologically, keeping the input
// order for ties except that acquisitions sort before disposals on the same
// day, so that same-day matching is possible.
func sortTransactions(txs []*Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if c := txs[i].Date.Compare(txs[j].Date); c != 0 {
			return c < 0
		}
		return txs[i].Kind < txs[j].Kind
	})
}
