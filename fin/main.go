package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/operandum/finplan/cmd"
)

func main() {
	// Shell completion: `COMP_INSTALL=1 fin` installs it. Returns
	// immediately unless invoked by the shell's completion machinery.
	completer().Complete("fin")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completer() *complete.Command {
	year := map[string]complete.Predictor{"y": predict.Something}
	sub := map[string]*complete.Command{
		"income":  {Flags: year},
		"revenue": {Flags: year},
		"gross":   {Flags: year},
		"liquidity": {Flags: map[string]complete.Predictor{
			"y": predict.Something, "revenue": predict.Something,
			"expenses": predict.Something, "from": predict.Something,
		}},
		"kpis": {Flags: map[string]complete.Predictor{"m": predict.Something}},
		"budget": {Flags: map[string]complete.Predictor{
			"m": predict.Something, "sync": predict.Nothing,
			"set": predict.Something, "value": predict.Something,
		}},
		"category": {Flags: map[string]complete.Predictor{
			"add": predict.Something, "class": predict.Set{"opex", "personnel", "product-development", "sales-and-marketing"},
			"remove": predict.Something, "move": predict.Something, "to": predict.Something,
		}},
		"set": {Flags: map[string]complete.Predictor{
			"table": predict.Set{"subscription", "implementation", "maintenance", "transactional", "hosting", "direct", "gp", "expense", "liquidity"},
			"name":  predict.Something, "field": predict.Something,
			"m": predict.Something, "value": predict.Something,
		}},
		"export": {Flags: map[string]complete.Predictor{"dir": predict.Dirs("*")}},
		"get":    {Args: predict.Something},
		"init":   {Flags: map[string]complete.Predictor{"currency": predict.Something}},
		"fmt":    {},
		"topic":  {Args: predict.Set{"readme", "periods", "streams", "liquidity", "budget"}},
		"assist": {Args: predict.Something},
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"file":   predict.Files("*.json"),
			"remote": predict.Something,
		},
	}
}
