package finplan

import (
	"fmt"

	"github.com/operandum/finplan/period"
)

// LiquidityLine is one row of the liquidity report.
type LiquidityLine struct {
	Label   string
	Inflow  Money
	Outflow Money
	Net     Money
	Balance Money // cumulative, end of the row's period
}

// LiquidityReport is the cash-flow view of one year under a sensitivity:
// monthly receipts, disbursements, net movement and the running balance.
// The yearly row sums the flows and reads the balance at year end, a stock.
type LiquidityReport struct {
	Year        int
	Currency    string
	Sensitivity Sensitivity
	Months      []LiquidityLine
	Total       LiquidityLine
}

// NewLiquidityReport builds the liquidity report of a year. The balance
// column always folds from the start of the horizon, whatever year is
// displayed.
func (d *Document) NewLiquidityReport(year int, s Sensitivity) (*LiquidityReport, error) {
	if !validYear(year) {
		return nil, fmt.Errorf("year %d outside the planning horizon (%d-%d)", year, period.Start().Year(), period.End().Year())
	}
	report := &LiquidityReport{Year: year, Currency: d.Currency, Sensitivity: s}

	balances := d.CumulativeBalance(s)
	inflows, outflows := &period.Series{}, &period.Series{}
	for _, on := range period.YearPeriods(year) {
		in := d.TotalInflow(on, s)
		out := d.TotalOutflow(on, s)
		inflows.Set(on, in)
		outflows.Set(on, out)
		report.Months = append(report.Months, LiquidityLine{
			Label:   on.String(),
			Inflow:  d.Money(in),
			Outflow: d.Money(out),
			Net:     d.Money(in - out),
			Balance: d.Money(balances.Get(on)),
		})
	}

	in := SumOverYear(inflows, year)
	out := SumOverYear(outflows, year)
	report.Total = LiquidityLine{
		Label:   fmt.Sprintf("%d", year),
		Inflow:  d.Money(in),
		Outflow: d.Money(out),
		Net:     d.Money(in - out),
		Balance: d.Money(EndOfYearValue(balances, year)),
	}
	return report, nil
}
