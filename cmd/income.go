package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/operandum/finplan/renderer"
)

type incomeCmd struct {
	year int
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "display the income statement of a year" }
func (*incomeCmd) Usage() string {
	return `fin income [-y <year>]

  Displays the monthly income statement of a year with its yearly rollup:
  revenue, COGS, gross profit and margin, SG&A and net income.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", 0, "Year to report on (defaults to the current year)")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := LoadDocument()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := d.NewIncomeStatement(reportYear(c.year))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.IncomeMarkdown(report))
	return subcommands.ExitSuccess
}
