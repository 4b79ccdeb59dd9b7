package cgt

// MatchingWindowDays is the length of the "bed and breakfast" anti-avoidance
// window: a disposal is matched against acquisitions made on the same day or
// up to this many days after, before drawing on the Section 104 holding.
const MatchingWindowDays = 30

// Gain is one realized disposal outcome.
type Gain struct {
	Date     Date
	Proceeds Money
	Cost     Money
}

// Gain returns proceeds minus cost.
func (g Gain) Gain() Money { return g.Proceeds.Sub(g.Cost) }

// Result holds everything one computation run produces: the realized gains in
// chronological order, the transactions with their populated audit logs, the
// final state of every Section 104 holding, and the per-tax-year summaries.
type Result struct {
	Gains        []Gain
	Transactions []*Transaction
	Holdings     map[string]*Holding
	TaxYears     []TaxYearSummary
}

// Calculate computes realized gains for a complete transaction history.
//
// Transactions are processed in chronological order, acquisitions before
// disposals on the same day. Each disposal is first matched against
// acquisitions of the same plan dated within the matching window, then draws
// any remainder from the plan's Section 104 holding at average cost.
// An acquisition contributes only its unmatched remainder to the holding:
// deposits are deferred until the pass moves past the acquisition's date, so
// shares assigned by same-day matching never enter the pool.
//
// Calculate mutates the given transactions (their remainders and audit logs)
// and owns them for the duration of the run; it is safe to run concurrent
// calculations over distinct transaction slices.
func Calculate(transactions []*Transaction, actions CorporateActions) (*Result, error) {
	if err := actions.Validate(); err != nil {
		return nil, err
	}
	actions = actions.sorted()

	sortTransactions(transactions)

	holdings := make(map[string]*Holding)
	holding := func(plan string) *Holding {
		h, ok := holdings[plan]
		if !ok {
			h = NewHolding(plan)
			holdings[plan] = h
		}
		return h
	}

	// Acquisitions waiting for their pool deposit, in pass order.
	var pending []*Transaction
	flush := func(before Date) {
		for len(pending) > 0 && pending[0].Date.Before(before) {
			a := pending[0]
			pending = pending[1:]
			if a.Remaining().IsZero() {
				continue // fully assigned to disposals, nothing reaches the pool
			}
			a.record(holding(a.Plan).Deposit(a.Remaining(), a.Price))
		}
	}

	applied := 0
	applyActions := func(t *Transaction) {
		for applied < len(actions) && t.Date.After(actions[applied].Effective) {
			act := actions[applied]
			applied++
			source := holding(act.Source)
			for _, s := range act.Successors {
				successor, ev := source.Split(s.Name, s.Ratio)
				holdings[s.Name] = successor
				t.record(ev)
			}
			delete(holdings, act.Source)
		}
	}

	var gains []Gain
	for _, t := range transactions {
		flush(t.Date)
		applyActions(t)

		switch t.Kind {
		case Acquisition:
			pending = append(pending, t)

		case Disposal:
			remaining := t.Quantity
			var cost Money

			// Same-day / 30-day matching. The list is date-sorted, so the
			// first acquisition past the window ends the scan.
			for _, a := range transactions {
				if a.Kind != Acquisition || a.Plan != t.Plan {
					continue
				}
				delta := a.Date.Sub(t.Date)
				if delta < 0 {
					continue // earlier acquisitions belong to the pool
				}
				if delta > MatchingWindowDays {
					break
				}
				assigned := a.Remaining().Min(remaining)
				if assigned.IsPositive() {
					t.record(MatchEvent{Plan: a.Plan, Quantity: assigned, On: a.Date, Price: a.Price})
					a.record(AssignedEvent{Quantity: assigned, On: t.Date})
					cost = cost.Add(a.Price.Mul(assigned))
					a.consume(assigned)
					remaining = remaining.Sub(assigned)
				}
				if remaining.IsZero() {
					break
				}
			}

			if remaining.IsPositive() {
				withdrawn, ev, err := holding(t.Plan).Withdraw(remaining)
				if err != nil {
					return nil, err
				}
				t.record(ev)
				cost = cost.Add(withdrawn)
			}

			proceeds := t.Price.Mul(t.Quantity)
			t.record(SummaryEvent{Proceeds: proceeds, Cost: cost, Gain: proceeds.Sub(cost)})
			gains = append(gains, Gain{Date: t.Date, Proceeds: proceeds, Cost: cost})
		}
	}

	// Deposit the acquisitions still pending after the last transaction.
	if len(transactions) > 0 {
		flush(transactions[len(transactions)-1].Date.Add(1))
	}

	return &Result{
		Gains:        gains,
		Transactions: transactions,
		Holdings:     holdings,
		TaxYears:     GroupGains(gains),
	}, nil
}
