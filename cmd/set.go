package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/operandum/finplan"
	"github.com/operandum/finplan/period"
)

type setCmd struct {
	table string
	name  string
	field string
	month string
	value float64
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "edit one assumption cell of the plan" }
func (*setCmd) Usage() string {
	return `fin set -table <table> [-name <entity>] [-field <field>] -m <month> -value <amount>

  Writes one monthly assumption value. Tables and their fields:

    subscription   new, price, churn        (per stakeholder, -name)
    implementation volume, fee              (per stakeholder, -name)
    maintenance    volume, fee              (per stakeholder, -name)
    transactional  volume, price, referral  (per category, -name)
    hosting        fixed, variable, golive
    direct         (no field: subscription direct costs)
    gp             (no field: gross profit %, -name names the stream)
    expense        (no field: -name names the expense category)
    liquidity      starting_balance, receipts, investment

  Entities are created on first use. "golive" and "starting_balance" ignore
  unused flags (-value and -m respectively).
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.table, "table", "", "Assumption table to edit")
	f.StringVar(&c.name, "name", "", "Stakeholder, transactional category, stream or expense category")
	f.StringVar(&c.field, "field", "", "Field of the table to edit")
	f.StringVar(&c.month, "m", "", `Month to edit, like "Jan 2025"`)
	f.Float64Var(&c.value, "value", 0, "Value to write")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := LoadDocument()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var on period.Period
	needsMonth := !(c.table == "liquidity" && c.field == "starting_balance")
	if needsMonth {
		on, err = period.Parse(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -m: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	if err := c.apply(d, on); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	d.Recompute()
	if err := SaveDocument(d); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Set %s/%s %s to %v\n", c.table, c.field, c.month, c.value)
	return subcommands.ExitSuccess
}

func (c *setCmd) apply(d *finplan.Document, on period.Period) error {
	switch c.table {
	case "subscription":
		if c.name == "" {
			return fmt.Errorf("-name is required for table %q", c.table)
		}
		d.EnsureStakeholder(c.name)
		a := d.Subscription[c.name]
		switch c.field {
		case "new":
			a.NewCustomers.Set(on, c.value)
		case "price":
			a.Price.Set(on, c.value)
		case "churn":
			a.ChurnPct.Set(on, c.value)
		default:
			return fmt.Errorf("unknown field %q for table %q", c.field, c.table)
		}

	case "implementation", "maintenance":
		if c.name == "" {
			return fmt.Errorf("-name is required for table %q", c.table)
		}
		d.EnsureStakeholder(c.name)
		a := d.Implementation[c.name]
		if c.table == "maintenance" {
			a = d.Maintenance[c.name]
		}
		switch c.field {
		case "volume":
			a.Volume.Set(on, c.value)
		case "fee":
			a.Fee.Set(on, c.value)
		default:
			return fmt.Errorf("unknown field %q for table %q", c.field, c.table)
		}

	case "transactional":
		if c.name == "" {
			return fmt.Errorf("-name is required for table %q", c.table)
		}
		d.EnsureTransactionalCategory(c.name)
		a := d.Transactional[c.name]
		switch c.field {
		case "volume":
			a.Volume.Set(on, c.value)
		case "price":
			a.Price.Set(on, c.value)
		case "referral":
			a.ReferralPct.Set(on, c.value)
		default:
			return fmt.Errorf("unknown field %q for table %q", c.field, c.table)
		}

	case "hosting":
		switch c.field {
		case "fixed":
			d.Hosting.FixedCost.Set(on, c.value)
		case "variable":
			d.Hosting.VariablePerCustomer.Set(on, c.value)
		case "golive":
			d.Hosting.GoLiveMonth = on
		default:
			return fmt.Errorf("unknown field %q for table %q", c.field, c.table)
		}

	case "direct":
		d.DirectCosts.Set(on, c.value)

	case "gp":
		if c.name == "" {
			return fmt.Errorf("-name is required for table %q", c.table)
		}
		s, ok := d.GrossProfitPct[c.name]
		if !ok {
			s = &period.Series{}
			d.GrossProfitPct[c.name] = s
		}
		s.Set(on, c.value)

	case "expense":
		if c.name == "" {
			return fmt.Errorf("-name is required for table %q", c.table)
		}
		s, ok := d.Liquidity.Expenses[c.name]
		if !ok || s == nil {
			return fmt.Errorf("unknown expense category %q, create it with 'fin category -add'", c.name)
		}
		s.Set(on, c.value)

	case "liquidity":
		switch c.field {
		case "starting_balance":
			d.Liquidity.StartingBalance = c.value
		case "receipts":
			d.Liquidity.OtherReceipts.Set(on, c.value)
		case "investment":
			d.Liquidity.Investment.Set(on, c.value)
		default:
			return fmt.Errorf("unknown field %q for table %q", c.field, c.table)
		}

	default:
		return fmt.Errorf("unknown table %q", c.table)
	}
	return nil
}
