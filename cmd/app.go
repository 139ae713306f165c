// Package cmd implements the CLI application to manage a financial plan.
package cmd

import (
	"flag"
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/operandum/finplan"
	"github.com/operandum/finplan/period"
)

// Commands lists every subcommand of the application.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&incomeCmd{},
	&liquidityCmd{},
	&revenueCmd{},
	&grossCmd{},
	&kpisCmd{},
	&budgetCmd{},
	&categoryCmd{},
	&setCmd{},
	&exportCmd{},
	&getCmd{},
	&initCmd{},
	&fmtCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var planFile = flag.String("file", "", "Path to the plan file (JSON). Defaults to the configured plan file.")
var remoteURL = flag.String("remote", "", "URL of a remote plan store. Overrides -file.")

// store resolves the plan store from flags and configuration.
func store() finplan.Store {
	cfg := loadConfig()
	if *remoteURL != "" {
		return finplan.RemoteStore{URL: *remoteURL}
	}
	if cfg.General.Remote != "" && *planFile == "" {
		return finplan.RemoteStore{URL: cfg.General.Remote}
	}
	path := *planFile
	if path == "" {
		path = cfg.General.PlanFile
	}
	return finplan.FileStore{Path: path}
}

// LoadDocument loads the plan and recomputes every derived block, so that
// each command renders the latest state of the assumptions.
func LoadDocument() (*finplan.Document, error) {
	d, err := store().Load()
	if err != nil {
		return nil, err
	}
	if cfg := loadConfig(); cfg.Payroll.TaxPct != nil {
		d.Payroll.TaxPct = *cfg.Payroll.TaxPct
	}
	d.Recompute()
	return d, nil
}

// SaveDocument persists the whole plan.
func SaveDocument(d *finplan.Document) error {
	return store().Save(d)
}

// printMarkdown renders markdown for the terminal. If the fancy renderer
// fails the raw markdown is still readable, so print it as-is.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}

// reportYear resolves a command's -y flag: 0 means the current year,
// clamped into the planning horizon.
func reportYear(year int) int {
	if year == 0 {
		year = time.Now().Year()
	}
	if year < period.Start().Year() {
		return period.Start().Year()
	}
	if year > period.End().Year() {
		return period.End().Year()
	}
	return year
}
