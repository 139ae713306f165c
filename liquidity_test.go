package finplan

import (
	"math"
	"testing"

	"github.com/operandum/finplan/period"
)

func TestCumulativeBalanceMatchesClosedForm(t *testing.T) {
	d := NewDocument()
	subscriber(d, "A", seq(10, 5, 3, 8), seq(0, 2, 4, 1), flat(120, 72))
	d.Liquidity.StartingBalance = 2500
	d.Liquidity.Investment.Set(jan.Add(2), 50000)
	expense(d, "Rent", flat(1800, 72))
	expense(d, "Marketing", seq(0, 500, 1500, 700))
	d.Recompute()

	balances := d.CumulativeBalance(Nominal)
	var running float64
	for k, on := range period.Horizon() {
		running += d.TotalInflow(on, Nominal) - d.TotalOutflow(on, Nominal)
		want := 2500 + running
		if got := balances.Get(on); math.Abs(got-want) > 1e-9 {
			t.Fatalf("balance[%d] = %v, want %v", k, got, want)
		}
	}
}

func TestSensitivityScalesOnlyFromEffectiveMonth(t *testing.T) {
	d := NewDocument()
	subscriber(d, "A", flat(5, 72), flat(1, 72), flat(100, 72))
	d.Liquidity.OtherReceipts.Set(jan.Add(9), 500)
	expense(d, "Rent", flat(1000, 72))
	d.Recompute()

	effective := jan.Add(6)
	s := Sensitivity{RevenueFactor: 0.8, ExpenseFactor: 1, EffectiveMonth: effective}

	for _, on := range period.Horizon() {
		nominal := d.NetCashFlow(on, Nominal)
		scaled := d.NetCashFlow(on, s)
		if on.Before(effective) {
			if scaled != nominal {
				t.Errorf("net[%s] = %v changed before the effective month, want %v", on, scaled, nominal)
			}
			continue
		}
		// Only the inflow scales: outflow stays, cash received drops to 80%.
		want := nominal - 0.2*d.TotalInflow(on, Nominal)
		if math.Abs(scaled-want) > 1e-9 {
			t.Errorf("net[%s] = %v, want %v", on, scaled, want)
		}
		if out := d.TotalOutflow(on, s); out != d.TotalOutflow(on, Nominal) {
			t.Errorf("outflow[%s] scaled by a revenue-only sensitivity", on)
		}
	}
}

func TestCumulativeBalanceUnderSensitivity(t *testing.T) {
	d := NewDocument()
	subscriber(d, "A", flat(5, 72), flat(1, 72), flat(100, 72))
	d.Liquidity.StartingBalance = 10000
	d.Liquidity.OtherReceipts.Set(jan.Add(3), 800)
	expense(d, "Rent", flat(1200, 72))
	d.Recompute()

	s := Sensitivity{RevenueFactor: 1.2, ExpenseFactor: 0.9, EffectiveMonth: jan.Add(12)}
	balances := d.CumulativeBalance(s)
	var running float64
	for _, on := range period.Horizon() {
		running += d.TotalInflow(on, s) - d.TotalOutflow(on, s)
		want := 10000 + running
		if got := balances.Get(on); math.Abs(got-want) > 1e-9 {
			t.Fatalf("balance[%s] = %v, want %v", on, got, want)
		}
	}
}

func TestSensitivityZeroEffectiveMonthAppliesEverywhere(t *testing.T) {
	d := NewDocument()
	expense(d, "Rent", flat(1000, 72))
	d.Recompute()

	s := Sensitivity{RevenueFactor: 1, ExpenseFactor: 2}
	if got := d.TotalOutflow(jan, s); got != 2000 {
		t.Errorf("TotalOutflow = %v, want 2000", got)
	}
}

func TestTotalInflowAddsReceiptsAndInvestment(t *testing.T) {
	d := NewDocument()
	subscriber(d, "A", seq(10), seq(0), flat(100, 1))
	d.Liquidity.OtherReceipts.Set(jan, 300)
	d.Liquidity.Investment.Set(jan, 7000)
	d.Recompute()

	if got := d.TotalInflow(jan, Nominal); got != 1000+300+7000 {
		t.Errorf("TotalInflow = %v, want 8300", got)
	}
	// The revenue factor scales the whole inflow, receipts and investment
	// included, not just the revenue component.
	s := Sensitivity{RevenueFactor: 0.5, ExpenseFactor: 1}
	if got := d.TotalInflow(jan, s); got != 4150 {
		t.Errorf("scaled TotalInflow = %v, want 4150", got)
	}
}

func TestDisbursementsByClassification(t *testing.T) {
	d := NewDocument()
	expense(d, "Rent", flat(1000, 1))
	expense(d, "Ads", flat(400, 1))
	d.Liquidity.Categories["Ads"].Classification = SalesAndMarketing
	d.Recompute()

	grouped := d.DisbursementsByClassification(jan)
	if got := grouped[Opex]; got != 1000 {
		t.Errorf("Opex = %v, want 1000", got)
	}
	if got := grouped[SalesAndMarketing]; got != 400 {
		t.Errorf("SalesAndMarketing = %v, want 400", got)
	}
}
