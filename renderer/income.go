package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/operandum/finplan"
)

// IncomeMarkdown renders an income statement to a markdown string.
func IncomeMarkdown(r *finplan.IncomeStatement) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Income Statement %d", r.Year))
	doc.PlainText(fmt.Sprintf("Reporting currency: %s", r.Currency))

	table := md.TableSet{
		Header: []string{"Period", "Revenue", "COGS", "Gross Profit", "Margin", "SG&A", "Net Income"},
	}
	for _, line := range r.Months {
		table.Rows = append(table.Rows, row(line.Label, line.Revenue, line.COGS, line.GrossProfit, line.GrossMargin, line.SGA, line.NetIncome))
	}
	table.Rows = append(table.Rows, row(r.Total.Label, r.Total.Revenue, r.Total.COGS, r.Total.GrossProfit, r.Total.GrossMargin, r.Total.SGA, r.Total.NetIncome))
	doc.Table(table)

	return doc.String()
}
