package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/operandum/finplan"
)

// KPIMarkdown renders an indicator snapshot to a markdown string.
func KPIMarkdown(r *finplan.KPISet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("KPIs %s", r.Month))

	runway := "beyond horizon"
	if r.Runway >= 0 {
		runway = fmt.Sprintf("%d months", r.Runway)
	}
	table := md.TableSet{
		Header: []string{"Indicator", "Value"},
		Rows: [][]string{
			{"Active subscribers", fmt.Sprintf("%.2f", r.Subscribers)},
			{"MRR", r.MRR.String()},
			{"ARPC", r.ARPC.String()},
			{"Churn", r.Churn.String()},
			{"LTV", r.LTV.String()},
			{"Cash balance", r.Balance.String()},
			{"Runway", runway},
		},
	}
	doc.Table(table)

	return doc.String()
}
