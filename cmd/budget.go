package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"spend"
	"spend/renderer"
)

type budgetCmd struct {
	file   string
	budget string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "compare total expenses against a budget" }
func (*budgetCmd) Usage() string {
	return `xp budget [-f <file>] [-b <amount>]

  Sums every expense in the book and reports the remaining balance against
  the budget, or the overrun. The budget is asked interactively when -b is
  omitted.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", cfg.File, "Expense file to report on.")
	f.StringVar(&c.budget, "b", "", "Monthly budget. Asked interactively when omitted.")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := spend.LoadBook(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var budget decimal.Decimal
	if c.budget != "" {
		budget, err = decimal.NewFromString(c.budget)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid budget %q: %v\n", c.budget, err)
			return subcommands.ExitUsageError
		}
		if budget.IsNegative() {
			fmt.Fprintln(os.Stderr, "budget must be a positive number")
			return subcommands.ExitUsageError
		}
	} else {
		p := spend.NewPrompter(os.Stdin, os.Stdout)
		budget, err = p.Budget()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	summary := spend.NewSummary(spend.M(budget, cfg.Currency), book)
	printMarkdown(renderer.Summary(summary))
	return subcommands.ExitSuccess
}
