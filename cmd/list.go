package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"spend"
	"spend/renderer"
)

type listCmd struct {
	file string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all recorded expenses" }
func (*listCmd) Usage() string {
	return `xp list [-f <file>]

  Displays every expense in the book, in file order.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", cfg.File, "Expense file to list.")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := spend.LoadBook(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Expenses(book, cfg.Currency))
	return subcommands.ExitSuccess
}
