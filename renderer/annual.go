package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/operandum/finplan"
)

// AnnualMarkdown renders the whole-horizon annual summary to a markdown
// string, one column per year.
func AnnualMarkdown(r *finplan.AnnualSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Annual Summary")
	doc.PlainText(fmt.Sprintf("Reporting currency: %s", r.Currency))

	header := []string{"Metric"}
	for _, col := range r.Years {
		header = append(header, fmt.Sprintf("%d", col.Year))
	}
	table := md.TableSet{Header: header}

	metric := func(name string, of func(finplan.AnnualColumn) string) {
		cells := []string{name}
		for _, col := range r.Years {
			cells = append(cells, of(col))
		}
		table.Rows = append(table.Rows, cells)
	}
	metric("Revenue", func(c finplan.AnnualColumn) string { return c.Revenue.String() })
	metric("COGS", func(c finplan.AnnualColumn) string { return c.COGS.String() })
	metric("Gross Profit", func(c finplan.AnnualColumn) string { return c.GrossProfit.String() })
	metric("Gross Margin", func(c finplan.AnnualColumn) string { return c.GrossMargin.String() })
	metric("SG&A", func(c finplan.AnnualColumn) string { return c.SGA.String() })
	metric("Net Income", func(c finplan.AnnualColumn) string { return c.NetIncome.String() })
	metric("Capitalized", func(c finplan.AnnualColumn) string { return c.Capitalized.String() })
	metric("Churn", func(c finplan.AnnualColumn) string { return c.Churn.String() })
	metric("Subscribers (EOY)", func(c finplan.AnnualColumn) string { return fmt.Sprintf("%.2f", c.Subscribers) })
	metric("Balance (EOY)", func(c finplan.AnnualColumn) string { return c.Balance.String() })
	doc.Table(table)

	return doc.String()
}
