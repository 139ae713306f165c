package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
)

type exportCmd struct {
	dir string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the plan as CSV tables" }
func (*exportCmd) Usage() string {
	return `fin export [-dir <directory>]

  Writes one CSV file per table: revenue by stream, COGS by stream, gross
  profit by stream, expenses by category, cash-flow summary, budget vs
  actual and the annual summary.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", "export", "Directory to write the CSV files into")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := LoadDocument()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating export directory %q: %v\n", c.dir, err)
		return subcommands.ExitFailure
	}

	for _, table := range d.Tables() {
		path := filepath.Join(c.dir, table.Name+".csv")
		file, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		err = table.WriteCSV(file)
		file.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote %s\n", path)
	}
	return subcommands.ExitSuccess
}
