package period

import "iter"

// Range represents an inclusive range of periods.
type Range struct{ From, To Period }

// NewRange creates a new period range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Period) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// YearRange returns the range covering the horizon periods of a year.
func YearRange(year int) Range {
	periods := YearPeriods(year)
	if len(periods) == 0 {
		return Range{}
	}
	return Range{From: periods[0], To: periods[len(periods)-1]}
}

// Contains returns true if the period is included in the range (boundaries included).
func (r Range) Contains(p Period) bool { return !p.Before(r.From) && !p.After(r.To) }

// Periods returns an iterator that yields each period within the range,
// inclusive. The zero range yields nothing.
func (r Range) Periods() iter.Seq[Period] {
	return func(yield func(Period) bool) {
		if r.From.IsZero() && r.To.IsZero() {
			return
		}
		for p := r.From; !p.After(r.To); p = p.Add(1) {
			if !yield(p) {
				return
			}
		}
	}
}

// Months returns the number of periods in the range.
func (r Range) Months() int {
	if r.From.IsZero() && r.To.IsZero() {
		return 0
	}
	return (r.To.Year()-r.From.Year())*12 + int(r.To.Month()-r.From.Month()) + 1
}
