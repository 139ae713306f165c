package period

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSeriesStaysSorted(t *testing.T) {
	s := &Series{}
	s.Set(New(2026, time.March), 3)
	s.Set(New(2025, time.January), 1)
	s.Set(New(2025, time.June), 2)

	var previous Period
	first := true
	for on := range s.Values() {
		if !first && !previous.Before(on) {
			t.Fatalf("series out of order: %v before %v", previous, on)
		}
		previous, first = on, false
	}
}

func TestSeriesGetDefaultsToZero(t *testing.T) {
	s := (&Series{}).Set(New(2025, time.January), 0)
	if got := s.Get(New(2029, time.May)); got != 0 {
		t.Errorf("Get(absent) = %v, want 0", got)
	}
	// An explicit 0 beats the default.
	if got := s.GetDefault(New(2025, time.January), 70); got != 0 {
		t.Errorf("GetDefault(explicit 0) = %v, want 0", got)
	}
	if got := s.GetDefault(New(2025, time.February), 70); got != 70 {
		t.Errorf("GetDefault(absent) = %v, want 70", got)
	}
}

func TestSeriesAddAccumulates(t *testing.T) {
	jan := New(2025, time.January)
	s := (&Series{}).Add(jan, 100).Add(jan, 50)
	if got := s.Get(jan); got != 150 {
		t.Errorf("Get = %v, want 150", got)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestSeriesScaleFrom(t *testing.T) {
	s := &Series{}
	for i := 0; i < 4; i++ {
		s.Set(Start().Add(i), 100)
	}
	s.Scale(Start().Add(2), 0.5)

	want := []float64{100, 100, 50, 50}
	for i, w := range want {
		if got := s.Get(Start().Add(i)); got != w {
			t.Errorf("values[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestSeriesJSONKeepsChronologicalKeys(t *testing.T) {
	s := &Series{}
	s.Set(New(2025, time.February), 20)
	s.Set(New(2025, time.January), 10)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != `{"Jan 2025":10,"Feb 2025":20}` {
		t.Errorf("marshal = %s", got)
	}

	back := &Series{}
	if err := json.Unmarshal(data, back); err != nil {
		t.Fatal(err)
	}
	if got := back.Get(New(2025, time.February)); got != 20 {
		t.Errorf("round trip = %v, want 20", got)
	}
}
