package cgt

import (
	"fmt"
	"slices"
	"time"
)

// TaxYear returns the UK tax-year label for a date. The tax year runs from
// 6 April to the following 5 April: 5 April 2020 falls in "2019-2020",
// 6 April 2020 in "2020-2021".
func TaxYear(d Date) string {
	if d.After(NewDate(d.Year(), time.April, 5)) {
		return fmt.Sprintf("%d-%d", d.Year(), d.Year()+1)
	}
	return fmt.Sprintf("%d-%d", d.Year()-1, d.Year())
}

// TaxYearSummary aggregates the gains realized within one UK tax year.
type TaxYearSummary struct {
	Label    string
	Proceeds Money
	Gain     Money
}

// GroupGains buckets date-ordered gains per UK tax year, in order of first
// appearance. An empty input yields no summaries.
func GroupGains(gains []Gain) []TaxYearSummary {
	if len(gains) == 0 {
		return nil
	}

	// A zero-valued sentinel dated one year past the last gain forces the
	// final bucket out without special-casing the end of the walk.
	sentinel := Gain{Date: gains[len(gains)-1].Date.AddYear(1)}
	walk := append(slices.Clone(gains), sentinel)

	var summaries []TaxYearSummary
	label := TaxYear(walk[0].Date)
	var proceeds, gain Money
	for _, g := range walk {
		if ty := TaxYear(g.Date); ty != label {
			summaries = append(summaries, TaxYearSummary{Label: label, Proceeds: proceeds, Gain: gain})
			label, proceeds, gain = ty, Money{}, Money{}
		}
		proceeds = proceeds.Add(g.Proceeds)
		gain = gain.Add(g.Gain())
	}
	return summaries
}
