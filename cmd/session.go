package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"spend"
	"spend/renderer"
)

const menu = `
--- Personal Expense Tracker ---
1. Add an expense
2. View expenses
3. Track budget
4. Save expenses
5. Exit
`

type sessionCmd struct {
	file string

	// injectable streams, defaulted to the terminal in Execute.
	in  io.Reader
	out io.Writer
}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "run the interactive menu loop" }
func (*sessionCmd) Usage() string {
	return `xp session [-f <file>]

  Loads the expense book once, then repeatedly offers a numbered menu to add
  expenses, view them, track the budget, and save. The book is saved on the
  explicit save choice and again on exit.
`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", cfg.File, "Expense file for the session.")
}

func (c *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in == nil {
		c.in, c.out = os.Stdin, os.Stdout
	}

	book, err := spend.LoadBook(c.file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return c.run(book)
}

func (c *sessionCmd) run(book *spend.Book) subcommands.ExitStatus {
	p := spend.NewPrompter(c.in, c.out)

	for {
		fmt.Fprint(c.out, menu)
		choice, err := p.Line("Enter your choice (1-5): ")
		if err != nil {
			return c.close(book, err)
		}

		switch choice {
		case "1":
			record, err := p.Record()
			if err != nil {
				return c.close(book, err)
			}
			book.Append(record)
		case "2":
			fmt.Fprint(c.out, renderer.Expenses(book, cfg.Currency))
		case "3":
			budget, err := p.Budget()
			if err != nil {
				return c.close(book, err)
			}
			summary := spend.NewSummary(spend.M(budget, cfg.Currency), book)
			fmt.Fprint(c.out, renderer.Summary(summary))
		case "4":
			if status := c.save(book); status != subcommands.ExitSuccess {
				return status
			}
		case "5":
			if status := c.save(book); status != subcommands.ExitSuccess {
				return status
			}
			fmt.Fprintln(c.out, "Exiting the program. Goodbye!")
			return subcommands.ExitSuccess
		default:
			fmt.Fprintln(c.out, "Invalid choice. Please enter a number between 1 and 5.")
		}
	}
}

// close ends the session on a read error. An exhausted input stream (ctrl-D)
// behaves like the exit choice: the book is saved and the session ends
// cleanly. Anything else is a real I/O failure.
func (c *sessionCmd) close(book *spend.Book, err error) subcommands.ExitStatus {
	if errors.Is(err, spend.ErrInputClosed) {
		return c.save(book)
	}
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}

func (c *sessionCmd) save(book *spend.Book) subcommands.ExitStatus {
	if err := spend.SaveBook(c.file, book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(c.out, "Expenses saved successfully!")
	return subcommands.ExitSuccess
}
