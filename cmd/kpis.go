package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/operandum/finplan/period"
	"github.com/operandum/finplan/renderer"
)

type kpisCmd struct {
	month string
}

func (*kpisCmd) Name() string     { return "kpis" }
func (*kpisCmd) Synopsis() string { return "display the indicators of a month" }
func (*kpisCmd) Usage() string {
	return `fin kpis [-m <month>]

  Displays the indicators of a month: active subscribers, MRR, ARPC, churn,
  LTV, cash balance and runway.
`
}

func (c *kpisCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", `Month to report on, like "Jan 2025" (defaults to the start of the horizon)`)
}

func (c *kpisCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on := period.Start()
	if c.month != "" {
		var err error
		on, err = period.Parse(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -m: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	d, err := LoadDocument()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := d.NewKPISet(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.KPIMarkdown(report))
	return subcommands.ExitSuccess
}
