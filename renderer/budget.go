package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/operandum/finplan"
)

// BudgetMarkdown renders a budget variance report to a markdown string,
// month-to-date then year-to-date.
func BudgetMarkdown(r *finplan.BudgetVariance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Budget vs Actual %s", r.Month))
	doc.PlainText(fmt.Sprintf("Reporting currency: %s", r.Currency))

	doc.H2(fmt.Sprintf("Month to date (%s)", r.Month))
	doc.Table(budgetTable(r.MTD))

	doc.H2(fmt.Sprintf("Year to date (through %s)", r.Month))
	doc.Table(budgetTable(r.YTD))

	return doc.String()
}

func budgetTable(lines []finplan.BudgetLine) md.TableSet {
	table := md.TableSet{Header: []string{"Item", "Actual", "Budget", "Variance", "Variance %"}}
	for _, line := range lines {
		table.Rows = append(table.Rows, row(line.Item, line.Actual, line.Budget, line.Variance.SignedString(), line.VariancePct.SignedString()))
	}
	return table
}
