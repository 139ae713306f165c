package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/operandum/finplan"
)

// LiquidityMarkdown renders a liquidity report to a markdown string.
func LiquidityMarkdown(r *finplan.LiquidityReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Liquidity %d", r.Year))
	doc.PlainText(fmt.Sprintf("Reporting currency: %s", r.Currency))
	if r.Sensitivity != finplan.Nominal {
		doc.PlainText(fmt.Sprintf("Sensitivity: revenue x%.2f, expenses x%.2f from %s",
			r.Sensitivity.RevenueFactor, r.Sensitivity.ExpenseFactor, effectiveLabel(r.Sensitivity)))
	}

	table := md.TableSet{
		Header: []string{"Period", "Inflow", "Outflow", "Net", "Balance"},
	}
	for _, line := range r.Months {
		table.Rows = append(table.Rows, row(line.Label, line.Inflow, line.Outflow, line.Net, line.Balance))
	}
	table.Rows = append(table.Rows, row(r.Total.Label, r.Total.Inflow, r.Total.Outflow, r.Total.Net, r.Total.Balance))
	doc.Table(table)

	return doc.String()
}

func effectiveLabel(s finplan.Sensitivity) string {
	if s.EffectiveMonth.IsZero() {
		return "start of horizon"
	}
	return s.EffectiveMonth.String()
}
