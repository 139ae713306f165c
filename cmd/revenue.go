package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/operandum/finplan/renderer"
)

type revenueCmd struct {
	year int
}

func (*revenueCmd) Name() string     { return "revenue" }
func (*revenueCmd) Synopsis() string { return "display the revenue detail of a year by stream" }
func (*revenueCmd) Usage() string {
	return `fin revenue [-y <year>]

  Displays the monthly revenue of a year broken down by stream:
  Subscription, Transactional, Implementation and Maintenance.
`
}

func (c *revenueCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", 0, "Year to report on (defaults to the current year)")
}

func (c *revenueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := LoadDocument()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := d.NewRevenueDetail(reportYear(c.year))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RevenueMarkdown(report))
	return subcommands.ExitSuccess
}
