// Package period provides the month-granularity time axis of the planning
// model: the Period value type, the fixed planning horizon, and the Series
// container for monthly values.
package period

import (
	"encoding/json"
	"fmt"
	"time"
)

// Label is the format used to represent periods as strings, e.g. "Jan 2025".
const Label = "Jan 2006"

// Period represents one calendar month. It carries an explicit (year, month)
// pair so that ordering is always chronological; the "Jan 2025" string form
// is a derived projection, never the comparison key.
type Period struct {
	y int        // year
	m time.Month // month
}

// New returns a normalized Period for the given year and month.
func New(year int, month time.Month) Period {
	p := Period{year, month}
	// normalize month overflow through time.Date
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	p.y, p.m = t.Year(), t.Month()
	return p
}

// Year returns the period's year.
func (p Period) Year() int { return p.y }

// Month returns the period's month.
func (p Period) Month() time.Month { return p.m }

// String formats the period in its standard label form.
func (p Period) String() string { return p.time().Format(Label) }

// time returns a time.Time that is a canonical representation of the period
// (first day of the month at midnight UTC).
func (p Period) time() time.Time { return time.Date(p.y, p.m, 1, 0, 0, 0, 0, time.UTC) }

// FirstDay returns the first calendar day of the period. Date-range
// predicates (headcount activity) are evaluated against this day.
func (p Period) FirstDay() time.Time { return p.time() }

// IsZero returns true if the period is the zero value.
func (p Period) IsZero() bool { return p.y == 0 && p.m == 0 }

// Before reports whether p is strictly before x.
func (p Period) Before(x Period) bool { return p.time().Before(x.time()) }

// After reports whether p is strictly after x.
func (p Period) After(x Period) bool { return p.time().After(x.time()) }

// Add returns a new Period with the given number of months added.
func (p Period) Add(months int) Period { return New(p.y, p.m+time.Month(months)) }

// Parse parses a Period from its label form, e.g. "Jan 2025".
func Parse(str string) (Period, error) {
	t, err := time.Parse(Label, str)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q want format %q: %w", str, Label, err)
	}
	return New(t.Year(), t.Month()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Period {
	p, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// UnmarshalJSON decodes a period from its json string label.
func (j *Period) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	p, err := Parse(str)
	if err != nil {
		return err
	}
	*j = p
	return nil
}

func (j Period) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// check that a Period pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Period)(nil)
var _ json.Unmarshaler = (*Period)(nil)
