package stockplan

import (
	"time"

	"github.com/mstokes/cgt"
	"github.com/shopspring/decimal"
)

// The 2014-03-27 Google stock split replaced each GSU share by one Class A
// and one Class C share. The cost basis of the original pool is divided in
// proportion of the first-day closing prices of the two classes.
var (
	splitDate   = cgt.NewDate(2014, time.March, 27)
	classAPrice = decimal.RequireFromString("573.39")
	classCPrice = decimal.RequireFromString("569.85")
)

// CorporateActions returns the corporate actions of the Google stock plan.
// These are calendar facts, not user data; a run over a Stock Plan Connect
// export should always include them.
func CorporateActions() cgt.CorporateActions {
	total := classAPrice.Add(classCPrice)
	return cgt.CorporateActions{{
		Effective: splitDate,
		Source:    "GSU",
		Successors: []cgt.Successor{
			{Name: "GSU Class A", Ratio: classAPrice.Div(total)},
			{Name: "GSU Class C", Ratio: classCPrice.Div(total)},
		},
	}}
}
