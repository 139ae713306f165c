package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/operandum/finplan"
)

type initCmd struct {
	currency string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new plan file" }
func (*initCmd) Usage() string {
	return `fin init [-currency <code>]

  Creates a default-initialized plan file. Fails if the plan file already
  exists.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "USD", "Reporting currency (ISO 4217 code)")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	path := *planFile
	if path == "" {
		path = loadConfig().General.PlanFile
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Error: plan file %q already exists\n", path)
		return subcommands.ExitFailure
	}

	d := finplan.NewDocument()
	d.Currency = c.currency
	if err := finplan.Save(path, d); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created %s\n", path)
	return subcommands.ExitSuccess
}
