package finplan

import "github.com/operandum/finplan/period"

// Yearly rollups. Flow quantities (revenue, expenses, cash movements) are
// summed over the year; stock quantities (cumulative balance, active
// subscribers) take their year-end value. The choice is per metric, never
// global.

// SumOverYear sums a flow series over a calendar year.
func SumOverYear(s *period.Series, year int) float64 {
	var total float64
	for _, on := range period.YearPeriods(year) {
		total += s.Get(on)
	}
	return total
}

// WeightedPctOverYear is the yearly ratio of two flow series as a
// percentage: sum of the numerator over sum of the denominator. It is the
// correct yearly view of monthly ratios like gross margin, where a plain
// mean of monthly percentages would overweight small months. 0 when the
// denominator sums to 0.
func WeightedPctOverYear(numerator, denominator *period.Series, year int) Percent {
	den := SumOverYear(denominator, year)
	if den == 0 {
		return 0
	}
	return Percent(SumOverYear(numerator, year) / den * 100)
}

// EndOfYearValue reads a stock series at the last period of a year.
func EndOfYearValue(s *period.Series, year int) float64 {
	return s.Get(period.New(year, 12))
}
