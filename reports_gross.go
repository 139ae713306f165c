package finplan

import (
	"fmt"

	"github.com/operandum/finplan/period"
)

// StreamProfit is the yearly profitability of one revenue stream.
type StreamProfit struct {
	Stream      string
	Revenue     Money
	COGS        Money
	GrossProfit Money
	GrossMargin Percent // revenue-weighted over the year
}

// GrossProfitLine is one monthly row: gross profit per stream plus the
// blended margin.
type GrossProfitLine struct {
	Label       string
	ByStream    []Money // aligned with GrossProfitDetail.Streams
	Total       Money
	GrossMargin Percent
}

// GrossProfitDetail breaks one year's gross profit down by stream, with the
// per-stream yearly profitability alongside the monthly rows.
type GrossProfitDetail struct {
	Year     int
	Currency string
	Streams  []string
	Months   []GrossProfitLine
	Yearly   []StreamProfit
	Total    StreamProfit // blended across streams
}

// NewGrossProfitDetail builds the gross-profit detail of a year.
func (d *Document) NewGrossProfitDetail(year int) (*GrossProfitDetail, error) {
	if !validYear(year) {
		return nil, fmt.Errorf("year %d outside the planning horizon (%d-%d)", year, period.Start().Year(), period.End().Year())
	}
	report := &GrossProfitDetail{Year: year, Currency: d.Currency, Streams: Streams}

	for _, on := range period.YearPeriods(year) {
		line := GrossProfitLine{Label: on.String(), GrossMargin: d.TotalGrossMarginPct(on)}
		for _, stream := range Streams {
			line.ByStream = append(line.ByStream, d.Money(d.GrossProfit(stream, on)))
		}
		line.Total = d.Money(d.TotalGrossProfit(on))
		report.Months = append(report.Months, line)
	}

	var revenue, cogs float64
	totalRevenue, totalProfit := &period.Series{}, &period.Series{}
	for _, stream := range Streams {
		r := SumOverYear(d.revenueSeries(stream), year)
		c := SumOverYear(d.cogsSeries(stream), year)
		revenue += r
		cogs += c
		report.Yearly = append(report.Yearly, StreamProfit{
			Stream:      stream,
			Revenue:     d.Money(r),
			COGS:        d.Money(c),
			GrossProfit: d.Money(r - c),
			GrossMargin: WeightedPctOverYear(diffSeries(d.revenueSeries(stream), d.cogsSeries(stream)), d.revenueSeries(stream), year),
		})
		for on, v := range d.revenueSeries(stream).Values() {
			totalRevenue.Add(on, v)
			totalProfit.Add(on, v-d.cogsSeries(stream).Get(on))
		}
	}
	report.Total = StreamProfit{
		Stream:      "Total",
		Revenue:     d.Money(revenue),
		COGS:        d.Money(cogs),
		GrossProfit: d.Money(revenue - cogs),
		GrossMargin: WeightedPctOverYear(totalProfit, totalRevenue, year),
	}
	return report, nil
}

// revenueSeries reads the derived revenue series of a stream, empty when absent.
func (d *Document) revenueSeries(stream string) *period.Series {
	if s, ok := d.Revenue[stream]; ok && s != nil {
		return s
	}
	return &period.Series{}
}

// cogsSeries reads the derived COGS series of a stream, empty when absent.
func (d *Document) cogsSeries(stream string) *period.Series {
	if s, ok := d.COGS[stream]; ok && s != nil {
		return s
	}
	return &period.Series{}
}

// diffSeries is the periodwise difference a-b over the horizon.
func diffSeries(a, b *period.Series) *period.Series {
	s := &period.Series{}
	for _, on := range period.Horizon() {
		s.Set(on, a.Get(on)-b.Get(on))
	}
	return s
}
