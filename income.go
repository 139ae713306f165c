package finplan

import "github.com/operandum/finplan/period"

// The income-statement aggregator combines revenue, COGS, and SG&A into
// gross profit, gross margin and net income. Every percentage is 0-guarded:
// a margin over zero revenue is 0, never NaN.

// GrossProfit is revenue minus COGS for one stream at a period.
func (d *Document) GrossProfit(stream string, on period.Period) float64 {
	return d.revenueOf(stream, on) - d.cogsOf(stream, on)
}

// GrossMarginPct is the stream's gross profit over its revenue, as a
// percentage, 0 when revenue is 0.
func (d *Document) GrossMarginPct(stream string, on period.Period) Percent {
	revenue := d.revenueOf(stream, on)
	if revenue <= 0 {
		return 0
	}
	return Percent(d.GrossProfit(stream, on) / revenue * 100)
}

// TotalGrossProfit sums gross profit across streams at a period.
func (d *Document) TotalGrossProfit(on period.Period) float64 {
	var total float64
	for _, stream := range Streams {
		total += d.GrossProfit(stream, on)
	}
	return total
}

// TotalGrossMarginPct is the blended margin across streams, 0-guarded.
func (d *Document) TotalGrossMarginPct(on period.Period) Percent {
	var revenue float64
	for _, stream := range Streams {
		revenue += d.revenueOf(stream, on)
	}
	if revenue <= 0 {
		return 0
	}
	return Percent(d.TotalGrossProfit(on) / revenue * 100)
}

// SyncSGAFromLiquidity re-derives the sga_expenses block from the liquidity
// engine's expense categories, so the income statement always reflects the
// latest liquidity edits without an explicit save in between. The category
// set and order is the liquidity CategoryOrder.
func (d *Document) SyncSGAFromLiquidity() {
	sga := make(map[string]*period.Series, len(d.Liquidity.CategoryOrder))
	for _, category := range d.Liquidity.CategoryOrder {
		sga[category] = d.expenseOf(category).Clone()
	}
	d.SGA = sga
}

// TotalSGA sums the SG&A expense categories at a period, iterating the
// canonical category order.
func (d *Document) TotalSGA(on period.Period) float64 {
	var total float64
	for _, category := range d.Liquidity.CategoryOrder {
		if s, ok := d.SGA[category]; ok {
			total += s.Get(on)
		}
	}
	return total
}

// NetIncome is total gross profit minus total SG&A at a period.
func (d *Document) NetIncome(on period.Period) float64 {
	return d.TotalGrossProfit(on) - d.TotalSGA(on)
}
