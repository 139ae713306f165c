package finplan

import (
	"slices"
	"testing"
	"time"

	"github.com/operandum/finplan/period"
)

func TestMonthBudgetIsZeroFilledOverKeySet(t *testing.T) {
	d := NewDocument()
	expense(d, "Rent", flat(1000, 1))

	snapshot := d.MonthBudget(jan)
	want := len(Streams) + 3 // Payroll, Contractors, Rent
	if len(snapshot) != want {
		t.Errorf("len(snapshot) = %d, want %d", len(snapshot), want)
	}
	for _, item := range d.BudgetKeys() {
		if v, ok := snapshot[item]; !ok || v != 0 {
			t.Errorf("snapshot[%q] = %v, %v; want 0, true", item, v, ok)
		}
	}
}

func TestPatchBudgetKeysAddsNeverDeletes(t *testing.T) {
	d := NewDocument()
	d.SetBudget(jan, StreamSubscription, 5000)

	if err := d.AddCategory("Rent", Opex); err != nil {
		t.Fatal(err)
	}
	snapshot := d.MonthBudget(jan)
	if v, ok := snapshot["Rent"]; !ok || v != 0 {
		t.Errorf("snapshot[Rent] = %v, %v; want 0, true", v, ok)
	}
	if snapshot[StreamSubscription] != 5000 {
		t.Errorf("snapshot[Subscription] = %v, want 5000", snapshot[StreamSubscription])
	}
}

func TestRemoveCategoryKeepsOrphanedBudgetEntries(t *testing.T) {
	d := NewDocument()
	if err := d.AddCategory("Rent", Opex); err != nil {
		t.Fatal(err)
	}
	d.SetBudget(jan, "Rent", 1200)

	if err := d.RemoveCategory("Rent"); err != nil {
		t.Fatal(err)
	}
	if slices.Contains(d.BudgetKeys(), "Rent") {
		t.Error("removed category still in the budget key set")
	}
	if v := d.Budget[MonthBudgetKey(jan)]["Rent"]; v != 1200 {
		t.Errorf("orphaned budget entry = %v, want 1200", v)
	}
}

func TestAddThenRemoveRestoresCategorySet(t *testing.T) {
	d := NewDocument()
	expense(d, "Rent", flat(1000, 1))
	before := slices.Clone(d.Liquidity.CategoryOrder)

	if err := d.AddCategory("Travel", Opex); err != nil {
		t.Fatal(err)
	}
	if err := d.RemoveCategory("Travel"); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(d.Liquidity.CategoryOrder, before) {
		t.Errorf("order = %v, want %v", d.Liquidity.CategoryOrder, before)
	}
	if _, ok := d.Liquidity.Categories["Travel"]; ok {
		t.Error("removed category still defined")
	}
	if _, ok := d.Liquidity.Expenses["Travel"]; ok {
		t.Error("removed category still holds amounts")
	}
}

func TestRemoveUnknownCategoryLeavesDocumentUntouched(t *testing.T) {
	d := NewDocument()
	before := slices.Clone(d.Liquidity.CategoryOrder)
	if err := d.RemoveCategory("Nope"); err == nil {
		t.Fatal("RemoveCategory accepted an unknown category")
	}
	if !slices.Equal(d.Liquidity.CategoryOrder, before) {
		t.Errorf("order changed on a failed removal: %v", d.Liquidity.CategoryOrder)
	}
}

func TestYTDIsElementwiseSumOfMonths(t *testing.T) {
	d := NewDocument()
	expense(d, "Rent", flat(0, 1))
	for i := 0; i < 4; i++ {
		d.SetBudget(jan.Add(i), "Rent", float64(100*(i+1)))
		d.SetBudget(jan.Add(i), StreamSubscription, 1000)
	}

	ytd := d.RecomputeYTD(jan.Add(3))
	if ytd["Rent"] != 100+200+300+400 {
		t.Errorf("ytd[Rent] = %v, want 1000", ytd["Rent"])
	}
	if ytd[StreamSubscription] != 4000 {
		t.Errorf("ytd[Subscription] = %v, want 4000", ytd[StreamSubscription])
	}

	// Recomputing through an earlier month overwrites the cache.
	ytd = d.RecomputeYTD(jan.Add(1))
	if ytd["Rent"] != 300 {
		t.Errorf("ytd[Rent] through Feb = %v, want 300", ytd["Rent"])
	}
}

func TestSyncFromActualsSkipsZeroActuals(t *testing.T) {
	d := NewDocument()
	subscriber(d, "A", seq(10), seq(0), flat(100, 1)) // revenue in Jan only
	d.Recompute()
	d.SetBudget(jan.Add(1), StreamSubscription, 7777) // manual Feb entry

	d.SyncBudgetFromActuals(jan, 3)
	if got := d.MonthBudget(jan)[StreamSubscription]; got != 1000 {
		t.Errorf("Jan budget = %v, want 1000", got)
	}
	// Feb actual is 0: the manual entry survives.
	if got := d.MonthBudget(jan.Add(1))[StreamSubscription]; got != 7777 {
		t.Errorf("Feb budget = %v, want 7777", got)
	}
}

func TestSyncFromActualsHonorsCap(t *testing.T) {
	d := NewDocument()
	subscriber(d, "A", flat(10, 72), flat(0, 72), flat(100, 72))
	d.Recompute()

	d.SyncBudgetFromActuals(jan, 2)
	if got := d.MonthBudget(jan.Add(1))[StreamSubscription]; got == 0 {
		t.Error("month inside the cap not synced")
	}
	if got := d.MonthBudget(jan.Add(2))[StreamSubscription]; got != 0 {
		t.Errorf("month beyond the cap synced: %v", got)
	}
}

func TestSyncFromActualsResetsYTDFromEffectiveMonth(t *testing.T) {
	d := NewDocument()
	subscriber(d, "A", flat(10, 72), flat(0, 72), flat(100, 72))
	d.Recompute()
	d.SetBudget(jan, StreamSubscription, 9999) // pre-effective manual entry

	effective := period.New(2025, time.March)
	d.SyncBudgetFromActuals(effective, 3)

	// January drops out of the YTD cache: only Mar-May contribute.
	ytd := d.Budget[YTDBudgetKey(2025)]
	var want float64
	for i := 0; i < 3; i++ {
		want += d.MonthBudget(effective.Add(i))[StreamSubscription]
	}
	if ytd[StreamSubscription] != want {
		t.Errorf("ytd[Subscription] = %v, want %v", ytd[StreamSubscription], want)
	}
}

func TestSyncFromActualsStopsAtHorizonEdge(t *testing.T) {
	d := NewDocument()
	subscriber(d, "A", flat(10, 72), flat(0, 72), flat(100, 72))
	d.Recompute()

	// A walk starting Nov 2030 cannot run past Dec 2030.
	d.SyncBudgetFromActuals(period.New(2030, time.November), 6)
	if _, ok := d.Budget[MonthBudgetKey(period.New(2030, time.December))]; !ok {
		t.Error("December 2030 not synced")
	}
	if len(d.Budget) != 3 { // Nov, Dec, 2030 YTD
		t.Errorf("len(Budget) = %d, want 3", len(d.Budget))
	}
}

func TestVariancePctZeroBudget(t *testing.T) {
	if got := VariancePct(500, 0); got != 0 {
		t.Errorf("VariancePct over zero budget = %v, want 0", got)
	}
	if got := VariancePct(1100, 1000); got != 10 {
		t.Errorf("VariancePct = %v, want 10", got)
	}
}

func TestBudgetVarianceReport(t *testing.T) {
	d := NewDocument()
	subscriber(d, "A", seq(10, 10), seq(0, 0), flat(100, 2))
	d.Recompute()
	d.SetBudget(jan, StreamSubscription, 800)
	d.SetBudget(jan.Add(1), StreamSubscription, 1500)

	feb := jan.Add(1)
	report, err := d.NewBudgetVariance(feb)
	if err != nil {
		t.Fatal(err)
	}

	line := report.MTD[0]
	if line.Item != StreamSubscription {
		t.Fatalf("first MTD item = %q, want %q", line.Item, StreamSubscription)
	}
	// Feb actual is 2000 against a 1500 budget.
	if !line.Variance.Equal(USD(500)) {
		t.Errorf("MTD variance = %v, want 500", line.Variance)
	}

	ytd := report.YTD[0]
	// YTD actual 1000+2000 against 800+1500.
	if !ytd.Variance.Equal(USD(700)) {
		t.Errorf("YTD variance = %v, want 700", ytd.Variance)
	}
}
