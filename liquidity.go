package finplan

import "github.com/operandum/finplan/period"

// The liquidity engine projects the cash position: receipts, disbursements
// and the cumulative balance, optionally under a what-if sensitivity.

// Sensitivity scales revenue and expenses for what-if liquidity views. The
// factors apply from EffectiveMonth forward; earlier periods stay at the
// plan's nominal values. A zero EffectiveMonth means from the start of the
// horizon.
type Sensitivity struct {
	RevenueFactor  float64
	ExpenseFactor  float64
	EffectiveMonth period.Period
}

// Nominal is the identity sensitivity: factors of 1 everywhere.
var Nominal = Sensitivity{RevenueFactor: 1, ExpenseFactor: 1}

// active reports whether the factors apply at the period.
func (s Sensitivity) active(on period.Period) bool {
	return s.EffectiveMonth.IsZero() || !on.Before(s.EffectiveMonth)
}

func (s Sensitivity) revenueAt(on period.Period) float64 {
	if s.active(on) {
		return s.RevenueFactor
	}
	return 1
}

func (s Sensitivity) expenseAt(on period.Period) float64 {
	if s.active(on) {
		return s.ExpenseFactor
	}
	return 1
}

// scaleFrom is the first period the factors apply to.
func (s Sensitivity) scaleFrom() period.Period {
	if s.EffectiveMonth.IsZero() {
		return period.Start()
	}
	return s.EffectiveMonth
}

// TotalInflow is the cash received in a period: revenue plus other receipts
// plus investment, scaled as a whole by the sensitivity's revenue factor.
func (d *Document) TotalInflow(on period.Period, s Sensitivity) float64 {
	total := d.TotalRevenue(on) +
		d.Liquidity.OtherReceipts.Get(on) +
		d.Liquidity.Investment.Get(on)
	return total * s.revenueAt(on)
}

// TotalOutflow is the cash disbursed in a period: the expense categories in
// canonical order, scaled by the sensitivity.
func (d *Document) TotalOutflow(on period.Period, s Sensitivity) float64 {
	var total float64
	for _, category := range d.Liquidity.CategoryOrder {
		total += d.expenseOf(category).Get(on)
	}
	return total * s.expenseAt(on)
}

// NetCashFlow is inflow minus outflow of one period.
func (d *Document) NetCashFlow(on period.Period, s Sensitivity) float64 {
	return d.TotalInflow(on, s) - d.TotalOutflow(on, s)
}

// InflowSeries is the monthly cash inflow over the horizon: the nominal
// inflows scaled by the revenue factor from the effective month forward.
func (d *Document) InflowSeries(s Sensitivity) *period.Series {
	flows := &period.Series{}
	for _, on := range period.Horizon() {
		flows.Set(on, d.TotalInflow(on, Nominal))
	}
	return flows.Scale(s.scaleFrom(), s.RevenueFactor)
}

// OutflowSeries is the monthly cash outflow over the horizon, scaled by the
// expense factor from the effective month forward.
func (d *Document) OutflowSeries(s Sensitivity) *period.Series {
	flows := &period.Series{}
	for _, on := range period.Horizon() {
		flows.Set(on, d.TotalOutflow(on, Nominal))
	}
	return flows.Scale(s.scaleFrom(), s.ExpenseFactor)
}

// CumulativeBalance folds net cash flow over the whole horizon, seeded at
// the starting balance. The fold always starts at period 0, whatever window
// the caller displays: a mid-horizon balance depends on every month before
// it.
func (d *Document) CumulativeBalance(s Sensitivity) *period.Series {
	inflows, outflows := d.InflowSeries(s), d.OutflowSeries(s)
	balances := &period.Series{}
	balance := d.Liquidity.StartingBalance
	for _, on := range period.Horizon() {
		balance += inflows.Get(on) - outflows.Get(on)
		balances.Set(on, balance)
	}
	return balances
}

// BalanceAt is the cumulative cash balance at the end of a period.
func (d *Document) BalanceAt(on period.Period, s Sensitivity) float64 {
	return d.CumulativeBalance(s).Get(on)
}

// DisbursementsByClassification groups one period's expenses by the
// classification of their category. Amounts are nominal, unscaled.
func (d *Document) DisbursementsByClassification(on period.Period) map[Classification]float64 {
	grouped := make(map[Classification]float64)
	for _, name := range d.Liquidity.CategoryOrder {
		c, ok := d.Liquidity.Categories[name]
		if !ok {
			c = &Category{}
		}
		grouped[c.Classification] += d.expenseOf(name).Get(on)
	}
	return grouped
}
