package cgt

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ratioTolerance bounds how far successor ratios may deviate from summing to
// one. Ratios derived from market prices are not exact decimals, so a strict
// equality would reject every real-world split.
var ratioTolerance = decimal.New(1, -9)

// Successor names one pool created by a corporate action and the share of the
// retired pool's cost basis it inherits.
type Successor struct {
	Name  string          `json:"name"`
	Ratio decimal.Decimal `json:"ratio"`
}

// CorporateAction replaces one Section 104 holding with successor holdings
// on a fixed historical date. The successors divide the source's cost basis
// by ratio and each inherit its full quantity.
type CorporateAction struct {
	Effective  Date        `json:"effective"`
	Source     string      `json:"source"`
	Successors []Successor `json:"successors"`
}

// Validate rejects an action whose successors would leak or invent cost basis.
func (a CorporateAction) Validate() error {
	if a.Source == "" {
		return fmt.Errorf("corporate action on %s: source pool name is missing", a.Effective)
	}
	if len(a.Successors) == 0 {
		return fmt.Errorf("corporate action on %s: no successor pools", a.Effective)
	}
	sum := decimal.Zero
	for _, s := range a.Successors {
		if s.Name == "" {
			return fmt.Errorf("corporate action on %s: successor pool name is missing", a.Effective)
		}
		if s.Ratio.IsNegative() {
			return fmt.Errorf("corporate action on %s: successor %q has negative ratio %s", a.Effective, s.Name, s.Ratio)
		}
		sum = sum.Add(s.Ratio)
	}
	if sum.Sub(decimal.New(1, 0)).Abs().GreaterThan(ratioTolerance) {
		return fmt.Errorf("corporate action on %s: successor ratios sum to %s, want 1", a.Effective, sum)
	}
	return nil
}

// CorporateActions is the ordered list of splits applied during one run.
type CorporateActions []CorporateAction

// Validate checks every action eagerly, before any gain is computed.
func (as CorporateActions) Validate() error {
	for _, a := range as {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// sorted returns a copy ordered by effective date.
func (as CorporateActions) sorted() CorporateActions {
	out := make(CorporateActions, len(as))
	copy(out, as)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Effective.Before(out[j].Effective) })
	return out
}
