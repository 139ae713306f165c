package finplan

import "testing"

func TestARPCGuardsZeroSubscribers(t *testing.T) {
	d := NewDocument()
	d.Recompute()
	if got := d.ARPC(jan); got != 0 {
		t.Errorf("ARPC with no subscribers = %v, want 0", got)
	}
}

func TestARPCAveragesAcrossStakeholders(t *testing.T) {
	d := NewDocument()
	subscriber(d, "A", seq(10), seq(0), flat(100, 1))
	subscriber(d, "B", seq(10), seq(0), flat(200, 1))
	d.Recompute()

	// 3000 subscription revenue over 20 customers.
	if got := d.ARPC(jan); got != 150 {
		t.Errorf("ARPC = %v, want 150", got)
	}
	if got := d.MRR(jan); got != 3000 {
		t.Errorf("MRR = %v, want 3000", got)
	}
}

func TestBlendedChurnSkipsInactiveStakeholders(t *testing.T) {
	d := NewDocument()
	subscriber(d, "A", seq(10), flat(4, 72), flat(100, 72))
	subscriber(d, "B", seq(10), flat(6, 72), flat(100, 72))
	subscriber(d, "C", seq(0), flat(50, 72), flat(100, 72)) // never any customers
	d.Recompute()

	if got := d.BlendedChurnPct(jan); !got.Equal(5) {
		t.Errorf("BlendedChurnPct = %v, want 5", got)
	}
}

func TestBlendedChurnNoActiveStakeholders(t *testing.T) {
	d := NewDocument()
	d.Recompute()
	if got := d.BlendedChurnPct(jan); got != 0 {
		t.Errorf("BlendedChurnPct = %v, want 0", got)
	}
}

func TestLTV(t *testing.T) {
	d := NewDocument()
	subscriber(d, "A", seq(10), flat(5, 72), flat(100, 72))
	d.Recompute()

	// 100% subscription margin (no hosting, no direct costs): 100 / 5% = 2000.
	if got := d.LTV(jan); got != 2000 {
		t.Errorf("LTV = %v, want 2000", got)
	}
}

func TestLTVZeroChurn(t *testing.T) {
	d := NewDocument()
	subscriber(d, "A", seq(10), seq(0), flat(100, 72))
	d.Recompute()
	if got := d.LTV(jan); got != 0 {
		t.Errorf("LTV with zero churn = %v, want 0", got)
	}
}

func TestRunwayCountsMonthsUntilNegative(t *testing.T) {
	d := NewDocument()
	d.Liquidity.StartingBalance = 1000
	expense(d, "Rent", flat(300, 72))
	d.Recompute()

	// 700, 400, 100, -200: the balance goes negative 3 months in.
	if got := d.Runway(jan, Nominal); got != 3 {
		t.Errorf("Runway = %v, want 3", got)
	}
	if got := d.Runway(jan.Add(3), Nominal); got != 0 {
		t.Errorf("Runway from the first negative month = %v, want 0", got)
	}
}

func TestRunwayNeverNegative(t *testing.T) {
	d := NewDocument()
	d.Liquidity.StartingBalance = 1000
	d.Recompute()
	if got := d.Runway(jan, Nominal); got != -1 {
		t.Errorf("Runway = %v, want -1", got)
	}
}

func TestYearlyChurnIsMeanOverActiveMonths(t *testing.T) {
	d := NewDocument()
	// Active from July 2025 only, constant 6% churn.
	news := seq(0, 0, 0, 0, 0, 0, 10)
	subscriber(d, "A", news, flat(6, 72), flat(100, 72))
	d.Recompute()

	if got := d.YearlyChurnPct(2025); !got.Equal(6) {
		t.Errorf("YearlyChurnPct = %v, want 6", got)
	}
	if got := d.YearlyChurnPct(2030); !got.Equal(6) {
		t.Errorf("YearlyChurnPct(2030) = %v, want 6", got)
	}
}
