package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/sirupsen/logrus"

	"spend/cmd"
	"spend/docs"
)

func main() {
	// Shell completion short-circuits the process when the shell asks for it.
	completion().Complete("xp")

	// A .env file is optional; the environment always wins over defaults.
	if err := godotenv.Load(); err == nil {
		logrus.Debug("loaded environment from .env")
	}
	if err := cmd.LoadConfig(); err != nil {
		logrus.Fatal(err)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	file := predict.Files("*.csv")
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"f": file,
				"d": predict.Nothing,
				"c": predict.Something,
				"a": predict.Nothing,
				"m": predict.Nothing,
			}},
			"list": {Flags: map[string]complete.Predictor{"f": file}},
			"budget": {Flags: map[string]complete.Predictor{
				"f": file,
				"b": predict.Nothing,
			}},
			"session": {Flags: map[string]complete.Predictor{"f": file}},
			"topic":   {Args: predict.Set(docs.Topics())},
		},
	}
}
