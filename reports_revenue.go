package finplan

import (
	"fmt"

	"github.com/operandum/finplan/period"
)

// RevenueLine is one row of the revenue detail: one amount per stream plus
// the row total.
type RevenueLine struct {
	Label    string
	ByStream []Money // aligned with RevenueDetail.Streams
	Total    Money
}

// RevenueDetail breaks one year's revenue down by stream and month.
type RevenueDetail struct {
	Year     int
	Currency string
	Streams  []string
	Months   []RevenueLine
	Total    RevenueLine
}

// NewRevenueDetail builds the revenue detail of a year from the derived
// revenue block.
func (d *Document) NewRevenueDetail(year int) (*RevenueDetail, error) {
	if !validYear(year) {
		return nil, fmt.Errorf("year %d outside the planning horizon (%d-%d)", year, period.Start().Year(), period.End().Year())
	}
	report := &RevenueDetail{Year: year, Currency: d.Currency, Streams: Streams}

	yearly := make([]float64, len(Streams))
	var yearlyTotal float64
	for _, on := range period.YearPeriods(year) {
		line := RevenueLine{Label: on.String()}
		var total float64
		for i, stream := range Streams {
			v := d.revenueOf(stream, on)
			line.ByStream = append(line.ByStream, d.Money(v))
			yearly[i] += v
			total += v
		}
		line.Total = d.Money(total)
		yearlyTotal += total
		report.Months = append(report.Months, line)
	}

	report.Total = RevenueLine{Label: fmt.Sprintf("%d", year), Total: d.Money(yearlyTotal)}
	for _, v := range yearly {
		report.Total.ByStream = append(report.Total.ByStream, d.Money(v))
	}
	return report, nil
}
