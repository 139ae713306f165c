package finplan

import "github.com/operandum/finplan/period"

// The revenue aggregator combines the cohort engine's output with pricing
// and volume assumptions into the four named revenue streams. Stream
// functions are total (absent assumptions read as 0) and carry no hidden
// cross-period state: they only read the current period's inputs plus the
// cohort output for that same period.

// SubscriptionRevenue is the sum over stakeholders of running total times price.
func (d *Document) SubscriptionRevenue(on period.Period) float64 {
	var total float64
	for _, name := range d.Stakeholders() {
		a := d.subscriptionOf(name)
		total += d.SubscriberTotals(name).Get(on) * a.Price.Get(on)
	}
	return total
}

// ImplementationRevenue is the sum over stakeholders of one-time
// implementation volumes times fees. One-time means not cumulative: no
// running total is involved.
func (d *Document) ImplementationRevenue(on period.Period) float64 {
	var total float64
	for _, a := range d.Implementation {
		total += a.Volume.Get(on) * a.Fee.Get(on)
	}
	return total
}

// MaintenanceRevenue is symmetric to ImplementationRevenue.
func (d *Document) MaintenanceRevenue(on period.Period) float64 {
	var total float64
	for _, a := range d.Maintenance {
		total += a.Volume.Get(on) * a.Fee.Get(on)
	}
	return total
}

// TransactionalRevenue is the sum over categories of volume times price
// times the referral fee percentage.
func (d *Document) TransactionalRevenue(on period.Period) float64 {
	var total float64
	for _, a := range d.Transactional {
		total += a.Volume.Get(on) * a.Price.Get(on) * a.ReferralPct.Get(on) / 100
	}
	return total
}

// StreamRevenue dispatches to the stream's revenue function.
func (d *Document) StreamRevenue(stream string, on period.Period) float64 {
	switch stream {
	case StreamSubscription:
		return d.SubscriptionRevenue(on)
	case StreamTransactional:
		return d.TransactionalRevenue(on)
	case StreamImplementation:
		return d.ImplementationRevenue(on)
	case StreamMaintenance:
		return d.MaintenanceRevenue(on)
	default:
		return 0
	}
}

// TotalRevenue is the sum of the four streams at a period.
func (d *Document) TotalRevenue(on period.Period) float64 {
	var total float64
	for _, stream := range Streams {
		total += d.StreamRevenue(stream, on)
	}
	return total
}

// RecomputeRevenue re-derives the document's revenue block, one series per
// stream over the whole horizon.
func (d *Document) RecomputeRevenue() {
	revenue := make(map[string]*period.Series, len(Streams))
	for _, stream := range Streams {
		s := &period.Series{}
		for _, on := range period.Horizon() {
			s.Set(on, d.StreamRevenue(stream, on))
		}
		revenue[stream] = s
	}
	d.Revenue = revenue
}

// revenueOf reads the derived revenue block, defaulting to 0.
func (d *Document) revenueOf(stream string, on period.Period) float64 {
	if s, ok := d.Revenue[stream]; ok {
		return s.Get(on)
	}
	return 0
}
