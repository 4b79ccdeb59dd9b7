// Package stockplan ingests Morgan Stanley Stock Plan Connect activity
// reports and converts their rows into cgt transactions.
//
// The expected inputs are the "Releases Report.csv" and "Withdrawals
// Report.csv" files produced by the Stock Plan Connect activity export.
// Rows that are not data rows (headers, footers, blank lines) are skipped;
// data rows that cannot be converted are reported as Diagnostics so the
// caller can refuse to compute gains from a partial history.
package stockplan

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/mstokes/cgt"
	"github.com/shopspring/decimal"
)

// Report column layout of the Stock Plan Connect activity export.
const (
	columnDate      = 0
	columnPlan      = 2
	columnType      = 3
	columnPrice     = 5
	columnQuantity  = 6
	columnNetShares = 8
)

// Currency is the currency of every amount in a Stock Plan Connect report.
const Currency = "USD"

// datePattern recognizes the report's date cells, e.g. "27-Mar-2014".
// Rows whose first cell does not match are not data rows.
var datePattern = regexp.MustCompile(`^\d{1,2}-[A-Za-z]{3}-\d{4}$`)

const dateFormat = "2-Jan-2006"

// Diagnostic reports one data row that could not be converted.
type Diagnostic struct {
	File string // report name, e.g. "releases"
	Line int    // 1-based row number within the file
	Err  error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s line %d: %v", d.File, d.Line, d.Err)
}

// Parse reads the Releases and Withdrawals reports and returns the
// transactions they contain, in file order, along with any line-level
// diagnostics. Either reader may be nil.
//
// Callers must not compute gains when diagnostics are present: a partial
// transaction history produces silently wrong tax figures.
func Parse(releases, withdrawals io.Reader) ([]*cgt.Transaction, []Diagnostic) {
	var txs []*cgt.Transaction
	var diags []Diagnostic

	for _, f := range []struct {
		name string
		r    io.Reader
	}{{"releases", releases}, {"withdrawals", withdrawals}} {
		if f.r == nil {
			continue
		}
		t, d := parseReport(f.name, f.r)
		txs = append(txs, t...)
		diags = append(diags, d...)
	}
	return txs, diags
}

func parseReport(name string, r io.Reader) ([]*cgt.Transaction, []Diagnostic) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // the export mixes header, data and footer widths
	reader.LazyQuotes = true

	var txs []*cgt.Transaction
	var diags []Diagnostic
	for line := 1; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			diags = append(diags, Diagnostic{File: name, Line: line, Err: err})
			continue
		}
		if len(row) == 0 || !datePattern.MatchString(strings.TrimSpace(row[columnDate])) {
			continue // header, footer or blank row
		}

		tx, err := parseRow(row)
		if err != nil {
			diags = append(diags, Diagnostic{File: name, Line: line, Err: err})
			continue
		}
		if tx != nil {
			txs = append(txs, tx)
		}
	}
	return txs, diags
}

// parseRow converts one data row. It returns (nil, nil) for activity kinds
// that are not acquisitions or disposals (e.g. dividend credits).
func parseRow(row []string) (*cgt.Transaction, error) {
	if len(row) <= columnNetShares {
		return nil, fmt.Errorf("short row: %d columns", len(row))
	}

	on, err := time.Parse(dateFormat, strings.TrimSpace(row[columnDate]))
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", row[columnDate], err)
	}
	date := cgt.NewDate(on.Date())

	price, err := parseDollars(row[columnPrice])
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", row[columnPrice], err)
	}

	plan := strings.TrimSpace(row[columnPlan])

	switch kind := strings.TrimSpace(row[columnType]); kind {
	case "Sale":
		qty, err := parseShares(row[columnQuantity])
		if err != nil {
			return nil, fmt.Errorf("invalid quantity %q: %w", row[columnQuantity], err)
		}
		return cgt.NewTransaction(date, cgt.Disposal, plan, price, qty), nil
	case "Release":
		// Releases report the gross award in the quantity column; the shares
		// actually delivered (after sell-to-cover) are the net shares.
		qty, err := parseShares(row[columnNetShares])
		if err != nil {
			return nil, fmt.Errorf("invalid net shares %q: %w", row[columnNetShares], err)
		}
		return cgt.NewTransaction(date, cgt.Acquisition, plan, price, qty), nil
	default:
		return nil, nil
	}
}

// parseDollars converts a report amount like "$1,234.56" into Money.
func parseDollars(s string) (cgt.Money, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return cgt.Money{}, err
	}
	return cgt.Cents(d.Shift(2).RoundBank(0).IntPart(), Currency), nil
}

// parseShares converts a report share count like "1,234.567" into a
// non-negative Quantity.
func parseShares(s string) (cgt.Quantity, error) {
	cleaned := strings.NewReplacer(",", "", " ", "").Replace(s)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return cgt.Quantity{}, err
	}
	return cgt.Q(d.Abs()), nil
}
