package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/operandum/finplan"
)

// GrossProfitMarkdown renders a gross-profit detail to a markdown string.
func GrossProfitMarkdown(r *finplan.GrossProfitDetail) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Gross Profit %d", r.Year))
	doc.PlainText(fmt.Sprintf("Reporting currency: %s", r.Currency))

	monthly := md.TableSet{Header: append(append([]string{"Period"}, r.Streams...), "Total", "Margin")}
	for _, line := range r.Months {
		cells := []string{line.Label}
		for _, m := range line.ByStream {
			cells = append(cells, m.String())
		}
		cells = append(cells, line.Total.String(), line.GrossMargin.String())
		monthly.Rows = append(monthly.Rows, cells)
	}
	doc.Table(monthly)

	doc.H2("By stream")
	yearly := md.TableSet{Header: []string{"Stream", "Revenue", "COGS", "Gross Profit", "Margin"}}
	for _, p := range r.Yearly {
		yearly.Rows = append(yearly.Rows, row(p.Stream, p.Revenue, p.COGS, p.GrossProfit, p.GrossMargin))
	}
	yearly.Rows = append(yearly.Rows, row(r.Total.Stream, r.Total.Revenue, r.Total.COGS, r.Total.GrossProfit, r.Total.GrossMargin))
	doc.Table(yearly)

	return doc.String()
}
