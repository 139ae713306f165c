package finplan

import "github.com/operandum/finplan/period"

// AnnualColumn is one year of the annual summary. Flows are yearly sums;
// Subscribers and Balance are year-end values.
type AnnualColumn struct {
	Year        int
	Revenue     Money
	COGS        Money
	GrossProfit Money
	GrossMargin Percent
	SGA         Money
	NetIncome   Money
	Capitalized Money
	Churn       Percent
	Subscribers float64
	Balance     Money
}

// AnnualSummary condenses the whole horizon into one column per year.
type AnnualSummary struct {
	Currency string
	Years    []AnnualColumn
}

// NewAnnualSummary builds the whole-horizon summary under the nominal
// sensitivity.
func (d *Document) NewAnnualSummary() *AnnualSummary {
	report := &AnnualSummary{Currency: d.Currency}

	revenue, cogs, profit, sga := &period.Series{}, &period.Series{}, &period.Series{}, &period.Series{}
	for _, on := range period.Horizon() {
		r := d.TotalRevenue(on)
		c := d.TotalCOGS(on)
		revenue.Set(on, r)
		cogs.Set(on, c)
		profit.Set(on, r-c)
		sga.Set(on, d.TotalSGA(on))
	}
	balances := d.CumulativeBalance(Nominal)
	capitalized := d.CapitalizedCosts()
	subscribers := d.ActiveSubscriberSeries()

	for _, year := range period.Years() {
		r := SumOverYear(revenue, year)
		c := SumOverYear(cogs, year)
		s := SumOverYear(sga, year)
		report.Years = append(report.Years, AnnualColumn{
			Year:        year,
			Revenue:     d.Money(r),
			COGS:        d.Money(c),
			GrossProfit: d.Money(r - c),
			GrossMargin: WeightedPctOverYear(profit, revenue, year),
			SGA:         d.Money(s),
			NetIncome:   d.Money(r - c - s),
			Capitalized: d.Money(SumOverYear(capitalized, year)),
			Churn:       d.YearlyChurnPct(year),
			Subscribers: EndOfYearValue(subscribers, year),
			Balance:     d.Money(EndOfYearValue(balances, year)),
		})
	}
	return report
}
