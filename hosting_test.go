package finplan

import (
	"math"
	"testing"
	"time"

	"github.com/operandum/finplan/period"
)

func TestHostingCapitalizationExclusivity(t *testing.T) {
	d := NewDocument()
	subscriber(d, "A", seq(5, 5), seq(0, 0), flat(100, 2))
	d.Hosting.FixedCost = *flat(1000, 72)
	d.Hosting.VariablePerCustomer = *flat(2, 72)
	d.Hosting.GoLiveMonth = period.New(2025, time.February)
	d.Hosting.CapitalizeBeforeGoLive = true

	// Jan is before go-live: everything capitalizes.
	expensed, capitalized := d.HostingCost(jan)
	if expensed != 0 || capitalized != 1000+2*5 {
		t.Errorf("Jan = (%v, %v), want (0, 1010)", expensed, capitalized)
	}

	// Feb is the go-live month itself: index equal is post-go-live.
	expensed, capitalized = d.HostingCost(period.New(2025, time.February))
	if expensed != 1000+2*10 || capitalized != 0 {
		t.Errorf("Feb = (%v, %v), want (1020, 0)", expensed, capitalized)
	}

	// Never both non-zero.
	for _, on := range period.Horizon() {
		e, c := d.HostingCost(on)
		if e != 0 && c != 0 {
			t.Fatalf("period %s has both expensed=%v and capitalized=%v", on, e, c)
		}
	}
}

func TestHostingWithoutCapitalizationExpensesEverything(t *testing.T) {
	d := NewDocument()
	d.Hosting.FixedCost = *flat(500, 72)
	d.Hosting.GoLiveMonth = period.New(2027, time.June)
	d.Hosting.CapitalizeBeforeGoLive = false

	expensed, capitalized := d.HostingCost(jan)
	if expensed != 500 || capitalized != 0 {
		t.Errorf("HostingCost = (%v, %v), want (500, 0)", expensed, capitalized)
	}
}

func TestUnknownGoLiveMonthDefaultsToHorizonStart(t *testing.T) {
	d := NewDocument()
	d.Hosting.FixedCost = *flat(500, 72)
	d.Hosting.GoLiveMonth = period.New(2031, time.June) // outside the horizon
	d.Hosting.CapitalizeBeforeGoLive = true

	// Everything is treated as post-go-live: expensed, never capitalized.
	expensed, capitalized := d.HostingCost(jan)
	if expensed != 500 || capitalized != 0 {
		t.Errorf("HostingCost = (%v, %v), want (500, 0)", expensed, capitalized)
	}
}

func TestStreamCOGSFromGrossProfitAssumption(t *testing.T) {
	d := NewDocument()
	d.Implementation["A"] = &FeeAssumption{Volume: *seq(2), Fee: *flat(500, 1)}
	d.Recompute()

	// Default gross profit is 70%: COGS is 30% of the 1000 revenue.
	if got := d.StreamCOGS(StreamImplementation, jan); got != 300 {
		t.Errorf("StreamCOGS = %v, want 300", got)
	}

	d.GrossProfitPct[StreamImplementation] = flat(90, 1)
	d.Recompute()
	if got := d.StreamCOGS(StreamImplementation, jan); math.Abs(got-100) > 1e-9 {
		t.Errorf("StreamCOGS with 90%% gp = %v, want 100", got)
	}
}

func TestSubscriptionCOGSAddsDirectCosts(t *testing.T) {
	d := NewDocument()
	d.Hosting.FixedCost = *flat(1000, 1)
	d.DirectCosts = *flat(250, 1)
	d.Recompute()

	if got := d.StreamCOGS(StreamSubscription, jan); got != 1250 {
		t.Errorf("StreamCOGS = %v, want 1250", got)
	}
}

func TestCapitalizedCostsSeries(t *testing.T) {
	d := NewDocument()
	d.Hosting.FixedCost = *flat(100, 72)
	d.Hosting.GoLiveMonth = period.New(2025, time.April)
	d.Hosting.CapitalizeBeforeGoLive = true

	s := d.CapitalizedCosts()
	if got := SumOverYear(s, 2025); got != 300 {
		t.Errorf("capitalized 2025 = %v, want 300 (Jan-Mar)", got)
	}
}
