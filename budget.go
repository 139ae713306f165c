package finplan

import (
	"fmt"
	"slices"
	"strings"

	"github.com/operandum/finplan/period"
)

// The budget engine keeps per-month and per-year budget snapshots next to
// the plan, and compares them to the actuals derived by the other engines.
//
// Snapshots are flat line-item maps keyed by the budget key set (revenue
// streams then expense categories). They are created lazily, zero-filled,
// and patched forward when the category set grows. The YTD entry is a
// cache: recomputing it overwrites whatever was stored.

// BudgetData maps snapshot keys ("Jan 2025_budget", "2025_ytd_budget") to
// line-item amounts.
type BudgetData map[string]map[string]float64

// DefaultBudgetSyncCap bounds a single sync-from-actuals walk.
const DefaultBudgetSyncCap = 12

// MonthBudgetKey is the snapshot key of one month.
func MonthBudgetKey(on period.Period) string { return on.String() + "_budget" }

// YTDBudgetKey is the snapshot key of one year's YTD cache.
func YTDBudgetKey(year int) string { return fmt.Sprintf("%d_ytd_budget", year) }

// IsYTDKey reports whether a snapshot key is a YTD cache entry.
func IsYTDKey(key string) bool { return strings.HasSuffix(key, "_ytd_budget") }

// ensureBudget returns the snapshot for a key, creating it zero-filled over
// the current budget key set on first access, and patching missing line
// items on later ones. Orphaned line items are kept: they hold historical
// edits for categories that no longer exist.
func (d *Document) ensureBudget(key string) map[string]float64 {
	snapshot, ok := d.Budget[key]
	if !ok {
		snapshot = make(map[string]float64)
		d.Budget[key] = snapshot
	}
	for _, item := range d.BudgetKeys() {
		if _, ok := snapshot[item]; !ok {
			snapshot[item] = 0
		}
	}
	return snapshot
}

// MonthBudget returns the budget snapshot of a month, creating it when absent.
func (d *Document) MonthBudget(on period.Period) map[string]float64 {
	return d.ensureBudget(MonthBudgetKey(on))
}

// PatchBudgetKeys adds zero entries for newly created categories to every
// existing snapshot. It never deletes a key.
func (d *Document) PatchBudgetKeys() {
	for key := range d.Budget {
		d.ensureBudget(key)
	}
}

// SetBudget writes one line item of one month's budget.
func (d *Document) SetBudget(on period.Period, item string, value float64) {
	d.MonthBudget(on)[item] = value
}

// ActualOf resolves the actual value of a budget line item at a period:
// derived revenue for the streams, disbursed expenses for the categories.
func (d *Document) ActualOf(item string, on period.Period) float64 {
	if slices.Contains(Streams, item) {
		return d.revenueOf(item, on)
	}
	return d.expenseOf(item).Get(on)
}

// Variance is actual minus budget.
func Variance(actual, budget float64) float64 { return actual - budget }

// VariancePct is the variance over the budget as a percentage, 0 when the
// budget is 0.
func VariancePct(actual, budget float64) Percent {
	if budget == 0 {
		return 0
	}
	return Percent((actual - budget) / budget * 100)
}

// recomputeYTDRange sums the per-month snapshots of a year within [from,
// through] into the year's YTD entry, overwriting the cached value. Absent
// line items read as 0; the union of keys seen in any month survives.
func (d *Document) recomputeYTDRange(year int, from, through period.Period) map[string]float64 {
	ytd := make(map[string]float64)
	for _, item := range d.BudgetKeys() {
		ytd[item] = 0
	}
	window := period.NewRange(from, through)
	for on := range period.YearRange(year).Periods() {
		if !window.Contains(on) {
			continue
		}
		for item, v := range d.MonthBudget(on) {
			ytd[item] += v
		}
	}
	d.Budget[YTDBudgetKey(year)] = ytd
	return ytd
}

// RecomputeYTD rebuilds the YTD cache of through's year from January up to
// and including through.
func (d *Document) RecomputeYTD(through period.Period) map[string]float64 {
	return d.recomputeYTDRange(through.Year(), period.New(through.Year(), 1), through)
}

// SyncBudgetFromActuals overwrites budget snapshots with the derived
// actuals, month by month from effective forward, walking at most cap
// months (DefaultBudgetSyncCap when cap is not positive). Only non-zero
// actuals are written so a sync never clobbers manual budget entries with
// zeros. The YTD caches of the touched years are then rebuilt from
// effective forward only: months before the effective month drop out of
// the cache, a deliberate budget reset.
func (d *Document) SyncBudgetFromActuals(effective period.Period, cap int) {
	if cap <= 0 {
		cap = DefaultBudgetSyncCap
	}
	last := effective
	for i := 0; i < cap; i++ {
		on := effective.Add(i)
		if period.Index(on) < 0 {
			break
		}
		snapshot := d.MonthBudget(on)
		for _, item := range d.BudgetKeys() {
			if actual := d.ActualOf(item, on); actual != 0 {
				snapshot[item] = actual
			}
		}
		last = on
	}
	for year := effective.Year(); year <= last.Year(); year++ {
		through := period.New(year, 12)
		if last.Before(through) {
			through = last
		}
		d.recomputeYTDRange(year, effective, through)
	}
}
