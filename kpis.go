package finplan

import "github.com/operandum/finplan/period"

// SaaS indicator functions. Every ratio guards its denominator and returns
// 0 rather than NaN.

// ARPC is the average subscription revenue per active customer at a period.
func (d *Document) ARPC(on period.Period) float64 {
	subscribers := d.TotalActiveSubscribers(on)
	if subscribers <= 0 {
		return 0
	}
	return d.SubscriptionRevenue(on) / subscribers
}

// MRR is the monthly recurring revenue at a period: the subscription stream
// alone, recurring by construction.
func (d *Document) MRR(on period.Period) float64 {
	return d.SubscriptionRevenue(on)
}

// BlendedChurnPct is the simple mean of the churn assumptions of the
// stakeholders active at the period (those with a non-zero running total).
// Churn is a per-cohort rate, not a ratio of summable flows, so it averages
// arithmetically where margins roll up revenue-weighted.
func (d *Document) BlendedChurnPct(on period.Period) Percent {
	var sum float64
	var active int
	for _, name := range d.Stakeholders() {
		if d.SubscriberTotals(name).Get(on) <= 0 {
			continue
		}
		sum += d.subscriptionOf(name).ChurnPct.Get(on)
		active++
	}
	if active == 0 {
		return 0
	}
	return Percent(sum / float64(active))
}

// YearlyChurnPct is the simple mean of the blended monthly churn over the
// months of a year that have at least one active stakeholder.
func (d *Document) YearlyChurnPct(year int) Percent {
	var sum float64
	var months int
	for _, on := range period.YearPeriods(year) {
		if d.TotalActiveSubscribers(on) <= 0 {
			continue
		}
		sum += float64(d.BlendedChurnPct(on))
		months++
	}
	if months == 0 {
		return 0
	}
	return Percent(sum / float64(months))
}

// LTV estimates the lifetime value of a customer at a period: ARPC times
// the subscription gross margin, over the monthly churn rate. 0 when churn
// is 0 (an infinite-lifetime reading is useless on a dashboard).
func (d *Document) LTV(on period.Period) float64 {
	churn := float64(d.BlendedChurnPct(on))
	if churn <= 0 {
		return 0
	}
	margin := float64(d.GrossMarginPct(StreamSubscription, on))
	return d.ARPC(on) * margin / 100 / (churn / 100)
}

// Runway counts the months from a period until the cumulative balance
// first goes negative. -1 means the balance stays non-negative through the
// end of the horizon.
func (d *Document) Runway(from period.Period, s Sensitivity) int {
	balances := d.CumulativeBalance(s)
	start := period.Index(from)
	if start < 0 {
		start = 0
	}
	horizon := period.Horizon()
	for i := start; i < len(horizon); i++ {
		if balances.Get(horizon[i]) < 0 {
			return i - start
		}
	}
	return -1
}
