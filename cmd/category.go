package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/operandum/finplan"
)

type categoryCmd struct {
	add    string
	class  string
	remove string
	move   string
	to     int
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "manage the expense categories" }
func (*categoryCmd) Usage() string {
	return `fin category [-add <name> [-class <classification>]] [-remove <name>] [-move <name> -to <position>]

  Without flags, lists the expense categories in their canonical order.
  Classifications: opex, personnel, product-development, sales-and-marketing.
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Name of a new expense category")
	f.StringVar(&c.class, "class", "opex", "Classification for -add")
	f.StringVar(&c.remove, "remove", "", "Name of the expense category to remove")
	f.StringVar(&c.move, "move", "", "Name of the expense category to move")
	f.IntVar(&c.to, "to", 0, "Target position for -move, 0-based")
}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := LoadDocument()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	switch {
	case c.add != "":
		class, err := finplan.ParseClassification(c.class)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := d.AddCategory(c.add, class); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	case c.remove != "":
		if err := d.RemoveCategory(c.remove); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	case c.move != "":
		if err := d.MoveCategory(c.move, c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	default:
		var b strings.Builder
		b.WriteString("# Expense Categories\n\n")
		for i, name := range d.ExpenseCategories() {
			class := d.Liquidity.Categories[name].Classification
			fmt.Fprintf(&b, "%d. %s (%s)\n", i, name, class)
		}
		printMarkdown(b.String())
		return subcommands.ExitSuccess
	}

	if err := SaveDocument(d); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
