package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/operandum/finplan"
	"github.com/operandum/finplan/period"
	"github.com/operandum/finplan/renderer"
)

type liquidityCmd struct {
	year     int
	revenue  float64
	expenses float64
	from     string
}

func (*liquidityCmd) Name() string     { return "liquidity" }
func (*liquidityCmd) Synopsis() string { return "display the cash projection of a year" }
func (*liquidityCmd) Usage() string {
	return `fin liquidity [-y <year>] [-revenue <factor>] [-expenses <factor>] [-from <month>]

  Displays the monthly cash projection of a year: receipts, disbursements,
  net movement and the cumulative balance. The optional factors scale
  revenue and expenses from the given month forward for what-if views.
`
}

func (c *liquidityCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", 0, "Year to report on (defaults to the current year)")
	f.Float64Var(&c.revenue, "revenue", 1, "Revenue scaling factor for what-if views")
	f.Float64Var(&c.expenses, "expenses", 1, "Expense scaling factor for what-if views")
	f.StringVar(&c.from, "from", "", `Month the factors apply from, like "Jun 2026" (defaults to the start of the horizon)`)
}

func (c *liquidityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := finplan.Sensitivity{RevenueFactor: c.revenue, ExpenseFactor: c.expenses}
	if c.from != "" {
		on, err := period.Parse(c.from)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
			return subcommands.ExitUsageError
		}
		s.EffectiveMonth = on
	}

	d, err := LoadDocument()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := d.NewLiquidityReport(reportYear(c.year), s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.LiquidityMarkdown(report))
	return subcommands.ExitSuccess
}
