package period

import "time"

// The planning horizon is fixed: 72 months from Jan 2025 to Dec 2030.
// Every derived series in the model is keyed on these periods and nothing
// else; a period outside the horizon has index -1.

// Months is the number of periods in the planning horizon.
const Months = 72

var horizonStart = New(2025, time.January)

// Start returns the first period of the planning horizon.
func Start() Period { return horizonStart }

// End returns the last period of the planning horizon.
func End() Period { return horizonStart.Add(Months - 1) }

// Horizon returns the canonical ordered sequence of the 72 horizon periods.
func Horizon() []Period {
	periods := make([]Period, Months)
	for i := range periods {
		periods[i] = horizonStart.Add(i)
	}
	return periods
}

// Index returns the position of p within the horizon, or -1 if p falls
// outside of it.
func Index(p Period) int {
	i := (p.Year()-horizonStart.Year())*12 + int(p.Month()-horizonStart.Month())
	if i < 0 || i >= Months {
		return -1
	}
	return i
}

// Years returns the horizon years in ascending order.
func Years() []int {
	var years []int
	for y := horizonStart.Year(); y <= End().Year(); y++ {
		years = append(years, y)
	}
	return years
}

// YearPeriods returns the horizon periods of a given year in calendar order.
// A year outside the horizon yields an empty slice.
func YearPeriods(year int) []Period {
	var periods []Period
	for m := time.January; m <= time.December; m++ {
		p := New(year, m)
		if Index(p) >= 0 {
			periods = append(periods, p)
		}
	}
	return periods
}

// GroupByYear groups the given periods by year, preserving calendar order
// within each year. Use with Years() to iterate years in ascending order.
func GroupByYear(periods []Period) map[int][]Period {
	grouped := make(map[int][]Period)
	for _, p := range periods {
		grouped[p.Year()] = append(grouped[p.Year()], p)
	}
	return grouped
}
