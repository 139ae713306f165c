package period

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"sort"
)

// Series stores a chronological series of monthly values. Periods are unique
// and the series is always sorted; a period with no entry reads as 0, never
// as an error. The zero value is an empty series ready to use.
type Series struct {
	periods []Period
	values  []float64
}

// NewSeries builds a series from (period, value) pairs given as a map.
func NewSeries(points map[Period]float64) *Series {
	s := &Series{}
	for p, v := range points {
		s.Set(p, v)
	}
	return s
}

// Len returns the number of entries in the series.
func (s *Series) Len() int { return len(s.periods) }

// chronological is a private implementation to keep the series sorted.
type chronological struct{ *Series }

func (c chronological) Len() int           { return len(c.periods) }
func (c chronological) Less(i, j int) bool { return c.periods[i].Before(c.periods[j]) }
func (c chronological) Swap(i, j int) {
	c.periods[i], c.periods[j] = c.periods[j], c.periods[i]
	c.values[i], c.values[j] = c.values[j], c.values[i]
}

func (s *Series) sort() { sort.Sort(chronological{s}) }

// Set records a value for a period, overwriting any existing entry.
func (s *Series) Set(on Period, v float64) *Series {
	if i := slices.Index(s.periods, on); i >= 0 {
		s.values[i] = v
		return s
	}
	s.periods, s.values = append(s.periods, on), append(s.values, v)
	s.sort()
	return s
}

// Add accumulates a value into a period's entry, creating it if absent.
func (s *Series) Add(on Period, v float64) *Series {
	if i := slices.Index(s.periods, on); i >= 0 {
		s.values[i] += v
		return s
	}
	s.periods, s.values = append(s.periods, on), append(s.values, v)
	s.sort()
	return s
}

// Get returns the value at 'on', defaulting to 0 for absent periods.
func (s *Series) Get(on Period) float64 {
	v, _ := s.Lookup(on)
	return v
}

// GetDefault returns the value at 'on', or 'def' when the period is absent.
// Absence means no entry at all; an explicit 0 is returned as 0.
func (s *Series) GetDefault(on Period, def float64) float64 {
	if v, ok := s.Lookup(on); ok {
		return v
	}
	return def
}

// Lookup returns the value at 'on' and whether an entry exists.
func (s *Series) Lookup(on Period) (float64, bool) {
	if i := slices.Index(s.periods, on); i >= 0 {
		return s.values[i], true
	}
	return 0, false
}

// Values returns an iterator over all period/value pairs in chronological order.
func (s *Series) Values() iter.Seq2[Period, float64] {
	return func(yield func(Period, float64) bool) {
		for i, on := range s.periods {
			if !yield(on, s.values[i]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the series.
func (s *Series) Clone() *Series {
	return &Series{
		periods: slices.Clone(s.periods),
		values:  slices.Clone(s.values),
	}
}

// Scale multiplies every entry at or after 'from' by factor, in place, and
// returns the series. Entries before 'from' are untouched.
func (s *Series) Scale(from Period, factor float64) *Series {
	for i, on := range s.periods {
		if !on.Before(from) {
			s.values[i] *= factor
		}
	}
	return s
}

// MarshalJSON encodes the series as a label-keyed object in chronological
// order, e.g. {"Jan 2025": 10, "Feb 2025": 12}. The json encoder cannot be
// used on a map since map key order is not guaranteed.
func (s *Series) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, on := range s.periods {
		if i > 0 {
			buf.WriteByte(',')
		}
		val, err := json.Marshal(s.values[i])
		if err != nil {
			return nil, fmt.Errorf("cannot marshal series value on %s: %w", on, err)
		}
		fmt.Fprintf(&buf, "%q:%s", on.String(), val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a label-keyed object into the series.
func (s *Series) UnmarshalJSON(data []byte) error {
	raw := make(map[string]float64)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.periods, s.values = nil, nil
	for label, v := range raw {
		on, err := Parse(label)
		if err != nil {
			return fmt.Errorf("invalid series key: %w", err)
		}
		s.Set(on, v)
	}
	return nil
}

var _ json.Marshaler = (*Series)(nil)
var _ json.Unmarshaler = (*Series)(nil)
