package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"spend"
	"spend/date"
)

type addCmd struct {
	file        string
	date        string
	category    string
	amount      string
	description string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new expense" }
func (*addCmd) Usage() string {
	return `xp add [-f <file>] [-d <date>] [-c <category>] [-a <amount>] [-m <description>]

  Records one expense and saves the book. Fields not provided as flags are
  asked for interactively, and asked again until the answer is valid.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", cfg.File, "Expense file to record into.")
	f.StringVar(&c.date, "d", "", "Date of the expense (YYYY-MM-DD).")
	f.StringVar(&c.category, "c", "", "Category of the expense (e.g. Food, Travel).")
	f.StringVar(&c.amount, "a", "", "Amount spent.")
	f.StringVar(&c.description, "m", "", "Brief description of the expense.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := spend.LoadBook(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	record, status := c.record()
	if status != subcommands.ExitSuccess {
		return status
	}

	book.Append(record)
	if err := spend.SaveBook(c.file, book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Expense recorded in %s\n", c.file)
	return subcommands.ExitSuccess
}

// record builds the new record from the flags, prompting interactively for
// whatever is missing. A malformed flag value is a usage error, not a retry
// loop: the retry loop only makes sense for interactive answers.
func (c *addCmd) record() (spend.Record, subcommands.ExitStatus) {
	p := spend.NewPrompter(os.Stdin, os.Stdout)
	var r spend.Record

	if c.date != "" {
		d, err := date.Parse(c.date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return r, subcommands.ExitUsageError
		}
		r.Date = d.String()
	} else {
		d, err := p.Date()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return r, subcommands.ExitFailure
		}
		r.Date = d
	}

	if c.amount != "" {
		amount, err := decimal.NewFromString(c.amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid amount %q: %v\n", c.amount, err)
			return r, subcommands.ExitUsageError
		}
		r.Amount = amount
	} else {
		amount, err := p.Amount()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return r, subcommands.ExitFailure
		}
		r.Amount = amount
	}

	r.Category = c.category
	if c.category == "" {
		category, err := p.Line("Enter the category (e.g., Food, Travel): ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return r, subcommands.ExitFailure
		}
		r.Category = category
	}

	r.Description = c.description
	if c.description == "" {
		description, err := p.Line("Enter a brief description: ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return r, subcommands.ExitFailure
		}
		r.Description = description
	}

	return r, subcommands.ExitSuccess
}
