package finplan

import (
	"fmt"

	"github.com/operandum/finplan/period"
)

// IncomeLine is one row of the income statement, monthly or yearly.
type IncomeLine struct {
	Label       string
	Revenue     Money
	COGS        Money
	GrossProfit Money
	GrossMargin Percent
	SGA         Money
	NetIncome   Money
}

// IncomeStatement is the income statement of one calendar year: a row per
// month plus the yearly rollup. Flows are summed over the year; the yearly
// margin is revenue-weighted, never a mean of monthly percentages.
type IncomeStatement struct {
	Year     int
	Currency string
	Months   []IncomeLine
	Total    IncomeLine
}

// NewIncomeStatement builds the income statement of a year from the derived
// blocks. Callers run Recompute first.
func (d *Document) NewIncomeStatement(year int) (*IncomeStatement, error) {
	if !validYear(year) {
		return nil, fmt.Errorf("year %d outside the planning horizon (%d-%d)", year, period.Start().Year(), period.End().Year())
	}
	report := &IncomeStatement{Year: year, Currency: d.Currency}

	revenue, cogs, sga := &period.Series{}, &period.Series{}, &period.Series{}
	for _, on := range period.YearPeriods(year) {
		r := d.TotalRevenue(on)
		c := d.TotalCOGS(on)
		s := d.TotalSGA(on)
		revenue.Set(on, r)
		cogs.Set(on, c)
		sga.Set(on, s)
		report.Months = append(report.Months, IncomeLine{
			Label:       on.String(),
			Revenue:     d.Money(r),
			COGS:        d.Money(c),
			GrossProfit: d.Money(r - c),
			GrossMargin: d.TotalGrossMarginPct(on),
			SGA:         d.Money(s),
			NetIncome:   d.Money(r - c - s),
		})
	}

	r := SumOverYear(revenue, year)
	c := SumOverYear(cogs, year)
	s := SumOverYear(sga, year)
	profit := &period.Series{}
	for _, on := range period.YearPeriods(year) {
		profit.Set(on, revenue.Get(on)-cogs.Get(on))
	}
	report.Total = IncomeLine{
		Label:       fmt.Sprintf("%d", year),
		Revenue:     d.Money(r),
		COGS:        d.Money(c),
		GrossProfit: d.Money(r - c),
		GrossMargin: WeightedPctOverYear(profit, revenue, year),
		SGA:         d.Money(s),
		NetIncome:   d.Money(r - c - s),
	}
	return report, nil
}

// validYear reports whether a year lies in the planning horizon.
func validYear(year int) bool {
	return year >= period.Start().Year() && year <= period.End().Year()
}
