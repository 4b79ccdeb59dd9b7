package cgt

import "fmt"

// Event is one step in a transaction's audit trail. Events carry their typed
// operands so tests and tooling can inspect them; Narrative renders the
// human-readable form shown in reports.
type Event interface {
	Narrative() string
}

// DepositEvent records shares entering a Section 104 holding.
type DepositEvent struct {
	Pool     string
	Quantity Quantity
	Price    Money
	Total    Quantity // holding quantity after the deposit
	Average  Money    // running average cost per share after the deposit
}

func (e DepositEvent) Narrative() string {
	return fmt.Sprintf("Section 104 %s: add %s at %s, total %s average %s",
		e.Pool, e.Quantity, e.Price, e.Total, e.Average)
}

// WithdrawEvent records shares leaving a Section 104 holding at average cost.
type WithdrawEvent struct {
	Pool      string
	Quantity  Quantity
	Cost      Money    // total cost withdrawn
	Remaining Quantity // holding quantity after the withdrawal
	Average   Money    // running average cost per share after the withdrawal
}

func (e WithdrawEvent) Narrative() string {
	return fmt.Sprintf("Section 104 %s: withdraw %s costing %s, leaving %s average %s",
		e.Pool, e.Quantity, e.Cost, e.Remaining, e.Average)
}

// SplitEvent records a corporate action carving a holding into a successor.
type SplitEvent struct {
	From     string
	To       string
	Quantity Quantity
	Cost     Money // cost basis inherited by the successor
	Average  Money // average cost per share of the successor
}

func (e SplitEvent) Narrative() string {
	return fmt.Sprintf("Split %s -> %s: %s at %s (average %s)",
		e.From, e.To, e.Quantity, e.Cost, e.Average)
}

// MatchEvent records, on a disposal, shares assigned from a same-day or
// next-30-days acquisition.
type MatchEvent struct {
	Plan     string
	Quantity Quantity
	On       Date // date of the matched acquisition
	Price    Money
}

func (e MatchEvent) Narrative() string {
	return fmt.Sprintf("Assign same/30 %s: %s on %s at %s", e.Plan, e.Quantity, e.On, e.Price)
}

// AssignedEvent records, on an acquisition, shares consumed by a disposal's
// direct matching.
type AssignedEvent struct {
	Quantity Quantity
	On       Date // date of the matched disposal
}

func (e AssignedEvent) Narrative() string {
	return fmt.Sprintf("Assigned %s to sale on %s", e.Quantity, e.On)
}

// SummaryEvent records the realized outcome of a disposal.
type SummaryEvent struct {
	Proceeds Money
	Cost     Money
	Gain     Money
}

func (e SummaryEvent) Narrative() string {
	return fmt.Sprintf("Proceeds %s, cost %s, gain %s", e.Proceeds, e.Cost, e.Gain.SignedString())
}
