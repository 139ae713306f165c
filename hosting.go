package finplan

import (
	"log"

	"github.com/operandum/finplan/period"
)

// The hosting-cost engine computes the subscription stream's direct
// infrastructure cost and, with the per-stream gross-profit assumptions,
// the COGS of every stream.

// goLiveIndex resolves the configured go-live month to a horizon index.
// A month outside the horizon defaults to 0: everything is treated as
// post-go-live, with a warning rather than a failure.
func (d *Document) goLiveIndex() int {
	if d.Hosting.GoLiveMonth.IsZero() {
		return 0
	}
	i := period.Index(d.Hosting.GoLiveMonth)
	if i < 0 {
		log.Printf("unknown go-live month=%q, assuming live from %s", d.Hosting.GoLiveMonth, period.Start())
		return 0
	}
	return i
}

// HostingCost returns the hosting cost of a period split into its expensed
// and capitalized parts. The raw cost is fixed plus variable-per-subscriber;
// before the go-live month, when capitalization is on, the whole amount is
// capitalized instead of expensed. The two parts are mutually exclusive per
// period: at most one is non-zero.
func (d *Document) HostingCost(on period.Period) (expensed, capitalized float64) {
	raw := d.Hosting.FixedCost.Get(on) +
		d.Hosting.VariablePerCustomer.Get(on)*d.TotalActiveSubscribers(on)
	if d.Hosting.CapitalizeBeforeGoLive && period.Index(on) < d.goLiveIndex() {
		return 0, raw
	}
	return raw, 0
}

// CapitalizedCosts returns the capitalized hosting amounts over the horizon.
func (d *Document) CapitalizedCosts() *period.Series {
	s := &period.Series{}
	for _, on := range period.Horizon() {
		_, capitalized := d.HostingCost(on)
		s.Set(on, capitalized)
	}
	return s
}

// StreamCOGS computes a stream's cost of goods sold at a period. The
// subscription stream carries the expensed hosting cost plus direct costs;
// the other streams derive from revenue and their gross-profit percentage
// assumption (default 70%).
func (d *Document) StreamCOGS(stream string, on period.Period) float64 {
	if stream == StreamSubscription {
		expensed, _ := d.HostingCost(on)
		return expensed + d.DirectCosts.Get(on)
	}
	return d.revenueOf(stream, on) * (1 - d.grossProfitPctOf(stream, on)/100)
}

// TotalCOGS is the sum of every stream's COGS at a period.
func (d *Document) TotalCOGS(on period.Period) float64 {
	var total float64
	for _, stream := range Streams {
		total += d.StreamCOGS(stream, on)
	}
	return total
}

// RecomputeCOGS re-derives the document's COGS block, one series per stream
// over the whole horizon. Run after RecomputeRevenue: non-subscription
// streams read the derived revenue block.
func (d *Document) RecomputeCOGS() {
	cogs := make(map[string]*period.Series, len(Streams))
	for _, stream := range Streams {
		s := &period.Series{}
		for _, on := range period.Horizon() {
			s.Set(on, d.StreamCOGS(stream, on))
		}
		cogs[stream] = s
	}
	d.COGS = cogs
}

// cogsOf reads the derived COGS block, defaulting to 0.
func (d *Document) cogsOf(stream string, on period.Period) float64 {
	if s, ok := d.COGS[stream]; ok {
		return s.Get(on)
	}
	return 0
}
