package finplan

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/operandum/finplan/period"
)

// This file contains the tabular flattening of the plan: one table per
// logical grouping, periods as rows and entities as columns, plus the
// derived annual summary. The tables feed CSV export and should remain
// easy to open in a spreadsheet.

// Table is one flattened grouping ready for CSV or spreadsheet export.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// cell formats a numeric cell. Plain numbers, no currency symbols: the
// export is for machines and spreadsheets, the renderer is for people.
func cell(v float64) string { return fmt.Sprintf("%.2f", v) }

// seriesTable flattens named series into a period-keyed table, one column
// per name in order.
func seriesTable(name string, names []string, of func(string) *period.Series) Table {
	t := Table{Name: name, Header: append([]string{"Period"}, names...)}
	for _, on := range period.Horizon() {
		row := []string{on.String()}
		for _, n := range names {
			row = append(row, cell(of(n).Get(on)))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// Tables flattens the whole plan. Callers run Recompute first.
func (d *Document) Tables() []Table {
	tables := []Table{
		seriesTable("revenue_by_stream", Streams, d.revenueSeries),
		seriesTable("cogs_by_stream", Streams, d.cogsSeries),
		seriesTable("gross_profit_by_stream", Streams, func(stream string) *period.Series {
			return diffSeries(d.revenueSeries(stream), d.cogsSeries(stream))
		}),
		seriesTable("expenses_by_category", d.ExpenseCategories(), d.expenseOf),
		d.cashFlowTable(),
		d.budgetTable(),
		d.annualSummaryTable(),
	}
	return tables
}

func (d *Document) cashFlowTable() Table {
	t := Table{Name: "cash_flow_summary", Header: []string{"Period", "Inflow", "Outflow", "Net", "Balance"}}
	balances := d.CumulativeBalance(Nominal)
	for _, on := range period.Horizon() {
		in := d.TotalInflow(on, Nominal)
		out := d.TotalOutflow(on, Nominal)
		t.Rows = append(t.Rows, []string{on.String(), cell(in), cell(out), cell(in - out), cell(balances.Get(on))})
	}
	return t
}

func (d *Document) budgetTable() Table {
	keys := d.BudgetKeys()
	t := Table{Name: "budget_vs_actual", Header: []string{"Period", "Item", "Actual", "Budget", "Variance"}}
	for _, on := range period.Horizon() {
		snapshot, ok := d.Budget[MonthBudgetKey(on)]
		if !ok {
			continue // only months with an explicit budget export
		}
		for _, item := range keys {
			actual := d.ActualOf(item, on)
			budget := snapshot[item]
			t.Rows = append(t.Rows, []string{on.String(), item, cell(actual), cell(budget), cell(Variance(actual, budget))})
		}
	}
	return t
}

func (d *Document) annualSummaryTable() Table {
	t := Table{Name: "annual_summary", Header: []string{
		"Year", "Revenue", "COGS", "Gross Profit", "Gross Margin %", "SG&A",
		"Net Income", "Capitalized", "Churn %", "Subscribers (EOY)", "Balance (EOY)",
	}}
	for _, col := range d.NewAnnualSummary().Years {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", col.Year),
			cell(col.Revenue.AsFloat()),
			cell(col.COGS.AsFloat()),
			cell(col.GrossProfit.AsFloat()),
			cell(float64(col.GrossMargin)),
			cell(col.SGA.AsFloat()),
			cell(col.NetIncome.AsFloat()),
			cell(col.Capitalized.AsFloat()),
			cell(float64(col.Churn)),
			cell(col.Subscribers),
			cell(col.Balance.AsFloat()),
		})
	}
	return t
}

// WriteCSV writes one table in CSV format.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("cannot write header of table %q: %w", t.Name, err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write row of table %q: %w", t.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
