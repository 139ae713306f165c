package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/operandum/finplan/renderer"
)

type grossCmd struct {
	year int
}

func (*grossCmd) Name() string     { return "gross" }
func (*grossCmd) Synopsis() string { return "display the gross profit detail of a year by stream" }
func (*grossCmd) Usage() string {
	return `fin gross [-y <year>]

  Displays the monthly gross profit of a year by stream, with each stream's
  yearly revenue, COGS and weighted margin.
`
}

func (c *grossCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", 0, "Year to report on (defaults to the current year)")
}

func (c *grossCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := LoadDocument()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := d.NewGrossProfitDetail(reportYear(c.year))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.GrossProfitMarkdown(report))
	return subcommands.ExitSuccess
}
