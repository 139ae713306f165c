package finplan

import (
	"math/rand"
	"testing"

	"github.com/operandum/finplan/period"
)

func TestRunningTotalsCompoundsChurn(t *testing.T) {
	totals := RunningTotals(seq(10, 0, 0), seq(0, 10, 10))

	want := []float64{10, 9, 8.1}
	for i, w := range want {
		if got := totals.Get(jan.Add(i)); got != w {
			t.Errorf("totals[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestRunningTotalsFirstPeriodIsFirstIntake(t *testing.T) {
	totals := RunningTotals(seq(42), seq(50))
	// churn applies to the previous total, which is 0 at the first period.
	if got := totals.Get(jan); got != 42 {
		t.Errorf("totals[0] = %v, want 42", got)
	}
}

func TestRunningTotalsNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 100; trial++ {
		news, churns := &period.Series{}, &period.Series{}
		for _, on := range period.Horizon() {
			news.Set(on, float64(rng.Intn(50)))
			churns.Set(on, rng.Float64()*100)
		}
		totals := RunningTotals(news, churns)
		for _, on := range period.Horizon() {
			if v := totals.Get(on); v < 0 {
				t.Fatalf("trial %d: totals[%s] = %v, want >= 0", trial, on, v)
			}
		}
	}
}

func TestRunningTotalsDeterministic(t *testing.T) {
	news := seq(10, 3, 7, 0, 12)
	churns := seq(0, 5, 2.5, 10, 1)

	a := RunningTotals(news, churns)
	b := RunningTotals(news, churns)
	for _, on := range period.Horizon() {
		if a.Get(on) != b.Get(on) {
			t.Fatalf("totals[%s] differ between invocations: %v != %v", on, a.Get(on), b.Get(on))
		}
	}
}

func TestRunningTotalsRoundsEachStep(t *testing.T) {
	// 3 customers churning 3.33% monthly: every intermediate total must be
	// a clean 2-decimal number, not a float drift artifact.
	totals := RunningTotals(flat(3, 72), flat(3.33, 72))
	for _, on := range period.Horizon() {
		v := totals.Get(on)
		cents := v * 100
		if diff := cents - float64(int64(cents+0.5)); diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("totals[%s] = %v is not rounded to 2 decimals", on, v)
		}
	}
}

func TestSubscriptionRevenuePerStakeholder(t *testing.T) {
	d := NewDocument()
	subscriber(d, "A", seq(10, 0, 0), seq(0, 10, 10), flat(100, 3))
	subscriber(d, "B", seq(2, 2, 2), seq(0, 0, 0), flat(50, 3))
	d.Recompute()

	// A contributes 1000, 900, 810; B contributes 100, 200, 300.
	want := []float64{1100, 1100, 1110}
	for i, w := range want {
		if got := d.SubscriptionRevenue(jan.Add(i)); got != w {
			t.Errorf("SubscriptionRevenue[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestTotalActiveSubscribersStacksStakeholders(t *testing.T) {
	d := NewDocument()
	subscriber(d, "A", seq(10), seq(0), flat(100, 1))
	subscriber(d, "B", seq(5), seq(0), flat(100, 1))

	if got := d.TotalActiveSubscribers(jan); got != 15 {
		t.Errorf("TotalActiveSubscribers = %v, want 15", got)
	}
	if got := d.SubscriberTotals("unknown").Get(jan); got != 0 {
		t.Errorf("unknown stakeholder totals = %v, want 0", got)
	}
}
