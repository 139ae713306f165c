package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/operandum/finplan"
)

// RevenueMarkdown renders a revenue detail to a markdown string.
func RevenueMarkdown(r *finplan.RevenueDetail) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Revenue %d", r.Year))
	doc.PlainText(fmt.Sprintf("Reporting currency: %s", r.Currency))

	table := md.TableSet{Header: append(append([]string{"Period"}, r.Streams...), "Total")}
	for _, line := range r.Months {
		table.Rows = append(table.Rows, revenueRow(line))
	}
	table.Rows = append(table.Rows, revenueRow(r.Total))
	doc.Table(table)

	return doc.String()
}

func revenueRow(line finplan.RevenueLine) []string {
	cells := []string{line.Label}
	for _, m := range line.ByStream {
		cells = append(cells, m.String())
	}
	return append(cells, line.Total.String())
}
