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

type budgetCmd struct {
	month string
	sync  bool
	set   string
	value float64
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "display or edit the budget of a month" }
func (*budgetCmd) Usage() string {
	return `fin budget [-m <month>] [-sync] [-set <item> -value <amount>]

  Without flags, displays the budget vs actual comparison of the month,
  month-to-date and year-to-date.

  -sync overwrites the budget with the derived actuals from the month
  forward, at most the configured number of months per run; only non-zero
  actuals are written. The year-to-date entries are rebuilt from the month
  forward.

  -set writes one budget line item of the month.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", `Month to operate on, like "Jan 2025" (defaults to the start of the horizon)`)
	f.BoolVar(&c.sync, "sync", false, "Overwrite budget entries with actuals from the month forward")
	f.StringVar(&c.set, "set", "", "Budget line item to set (a stream or an expense category)")
	f.Float64Var(&c.value, "value", 0, "Amount for -set")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	switch {
	case c.sync:
		d.SyncBudgetFromActuals(on, loadConfig().Budget.SyncCap)
		if err := SaveDocument(d); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Synced budget from actuals starting %s\n", on)

	case c.set != "":
		d.SetBudget(on, c.set, c.value)
		d.RecomputeYTD(on)
		if err := SaveDocument(d); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Set budget %s %q to %.2f\n", on, c.set, c.value)

	default:
		report, err := d.NewBudgetVariance(on)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.BudgetMarkdown(report))
	}
	return subcommands.ExitSuccess
}
