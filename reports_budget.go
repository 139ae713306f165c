package finplan

import (
	"fmt"

	"github.com/operandum/finplan/period"
)

// BudgetLine compares one line item's actual to its budget.
type BudgetLine struct {
	Item        string
	Actual      Money
	Budget      Money
	Variance    Money
	VariancePct Percent
}

// BudgetVariance compares actuals to budget for one month (MTD) and for the
// year through that month (YTD). Line items follow the budget key order:
// revenue streams first, then expense categories.
type BudgetVariance struct {
	Month    period.Period
	Currency string
	MTD      []BudgetLine
	YTD      []BudgetLine
}

// NewBudgetVariance builds the variance report of a month. It recomputes
// the YTD cache for the month's year as a side effect, per the cache-not-
// source-of-truth rule.
func (d *Document) NewBudgetVariance(on period.Period) (*BudgetVariance, error) {
	if period.Index(on) < 0 {
		return nil, fmt.Errorf("month %s outside the planning horizon (%s-%s)", on, period.Start(), period.End())
	}
	report := &BudgetVariance{Month: on, Currency: d.Currency}

	budget := d.MonthBudget(on)
	ytdBudget := d.RecomputeYTD(on)
	elapsed := period.NewRange(period.New(on.Year(), 1), on)
	for _, item := range d.BudgetKeys() {
		actual := d.ActualOf(item, on)
		report.MTD = append(report.MTD, d.budgetLine(item, actual, budget[item]))

		var ytdActual float64
		for m := range elapsed.Periods() {
			ytdActual += d.ActualOf(item, m)
		}
		report.YTD = append(report.YTD, d.budgetLine(item, ytdActual, ytdBudget[item]))
	}
	return report, nil
}

func (d *Document) budgetLine(item string, actual, budget float64) BudgetLine {
	return BudgetLine{
		Item:        item,
		Actual:      d.Money(actual),
		Budget:      d.Money(budget),
		Variance:    d.Money(Variance(actual, budget)),
		VariancePct: VariancePct(actual, budget),
	}
}
