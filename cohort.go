package finplan

import (
	"github.com/shopspring/decimal"

	"github.com/operandum/finplan/period"
)

// This file implements the subscription cohort engine: the running
// active-customer count per stakeholder under compounding churn.

// RunningTotals derives the active-customer series from monthly new-customer
// and churn-rate assumptions:
//
//	total[t] = total[t-1] * (1 - churn[t]/100) + new[t], total[-1] = 0
//
// The scan covers the whole planning horizon, one entry per period, in
// order. Each step is rounded to 2 decimals in exact decimal arithmetic so
// that 72 iterations cannot accumulate float drift. Given non-negative
// inputs and churn in [0,100] the result is non-negative everywhere; churn
// outside that range is accepted and produces a growth factor outside [0,1].
func RunningTotals(newCustomers, churnPct *period.Series) *period.Series {
	totals := &period.Series{}
	hundred := decimal.NewFromInt(100)
	acc := decimal.Zero
	for _, on := range period.Horizon() {
		churn := decimal.NewFromFloat(churnPct.Get(on))
		retained := decimal.NewFromInt(1).Sub(churn.Div(hundred))
		acc = acc.Mul(retained).Add(decimal.NewFromFloat(newCustomers.Get(on))).Round(2)
		totals.Set(on, acc.InexactFloat64())
	}
	return totals
}

// SubscriberTotals returns the running active-customer series of one
// stakeholder. Unknown stakeholders yield an all-zero series.
func (d *Document) SubscriberTotals(stakeholder string) *period.Series {
	a := d.subscriptionOf(stakeholder)
	return RunningTotals(&a.NewCustomers, &a.ChurnPct)
}

// TotalActiveSubscribers sums the running totals of every stakeholder at a
// period. It drives the variable part of the hosting cost.
func (d *Document) TotalActiveSubscribers(on period.Period) float64 {
	var total float64
	for _, name := range d.Stakeholders() {
		total += d.SubscriberTotals(name).Get(on)
	}
	return total
}

// ActiveSubscriberSeries returns the stacked running total across all
// stakeholders over the whole horizon. A stock quantity: yearly views take
// its year-end value, never a sum.
func (d *Document) ActiveSubscriberSeries() *period.Series {
	totals := &period.Series{}
	for _, on := range period.Horizon() {
		totals.Set(on, 0)
	}
	for _, name := range d.Stakeholders() {
		for on, v := range d.SubscriberTotals(name).Values() {
			totals.Add(on, v)
		}
	}
	return totals
}
