// Package cmd implements the CLI application to manage the expense book.
package cmd

import (
	"fmt"

	"github.com/caarlos0/env/v8"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to wire the commands, then Execute() runs
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "expenses")
	c.Register(&listCmd{}, "expenses")
	c.Register(&budgetCmd{}, "expenses")
	c.Register(&sessionCmd{}, "expenses")

	c.Register(&topicCmd{}, "documentation")
}

// Config carries environment-provided defaults. Flags override it, and the
// effective file path is always passed explicitly into LoadBook/SaveBook.
type Config struct {
	File     string `env:"XP_FILE" envDefault:"expenses.csv"`
	Currency string `env:"XP_CURRENCY" envDefault:"USD"`
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// keep the config in a package variable.
var cfg = Config{File: "expenses.csv", Currency: "USD"}

// LoadConfig parses the environment into the app config. Main calls it once,
// before any command executes.
func LoadConfig() error {
	return env.Parse(&cfg)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
