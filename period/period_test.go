package period

import (
	"testing"
	"time"
)

func TestParseRoundTrip(t *testing.T) {
	p := New(2026, time.March)
	parsed, err := Parse(p.String())
	if err != nil {
		t.Fatal(err)
	}
	if parsed != p {
		t.Errorf("Parse(%q) = %v, want %v", p.String(), parsed, p)
	}
	if _, err := Parse("2026-03"); err == nil {
		t.Error("Parse accepted a non-label format")
	}
}

func TestAddNormalizesYearOverflow(t *testing.T) {
	p := New(2025, time.November).Add(3)
	if p != New(2026, time.February) {
		t.Errorf("Nov 2025 + 3 = %v, want Feb 2026", p)
	}
	if back := p.Add(-3); back != New(2025, time.November) {
		t.Errorf("Feb 2026 - 3 = %v, want Nov 2025", back)
	}
}

func TestHorizonIsSeventyTwoOrderedMonths(t *testing.T) {
	horizon := Horizon()
	if len(horizon) != Months {
		t.Fatalf("len(Horizon) = %d, want %d", len(horizon), Months)
	}
	if horizon[0] != Start() || horizon[Months-1] != End() {
		t.Errorf("horizon bounds = %v..%v, want %v..%v", horizon[0], horizon[Months-1], Start(), End())
	}
	for i, p := range horizon {
		if Index(p) != i {
			t.Fatalf("Index(%v) = %d, want %d", p, Index(p), i)
		}
	}
}

func TestIndexOutsideHorizon(t *testing.T) {
	for _, p := range []Period{New(2024, time.December), New(2031, time.January)} {
		if Index(p) != -1 {
			t.Errorf("Index(%v) = %d, want -1", p, Index(p))
		}
	}
}

func TestYearPeriods(t *testing.T) {
	if got := YearPeriods(2027); len(got) != 12 {
		t.Errorf("len(YearPeriods(2027)) = %d, want 12", len(got))
	}
	if got := YearPeriods(2031); len(got) != 0 {
		t.Errorf("YearPeriods(2031) = %v, want empty", got)
	}
}

func TestRangeContainsAndMonths(t *testing.T) {
	r := NewRange(New(2026, time.March), New(2025, time.June)) // swapped on purpose
	if r.From != New(2025, time.June) {
		t.Fatalf("NewRange did not swap: %v", r)
	}
	if !r.Contains(New(2025, time.June)) || !r.Contains(New(2026, time.March)) {
		t.Error("range excludes its boundaries")
	}
	if r.Contains(New(2026, time.April)) {
		t.Error("range includes a period past To")
	}
	if got := r.Months(); got != 10 {
		t.Errorf("Months = %d, want 10", got)
	}
}
