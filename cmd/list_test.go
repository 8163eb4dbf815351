package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"spend"
)

func runList(t *testing.T, c *listCmd) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet("list", flag.ContinueOnError)
	return c.Execute(context.Background(), f)
}

func TestListMissingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "expenses.csv")

	// A missing file is an empty book, not an error.
	if status := runList(t, &listCmd{file: file}); status != subcommands.ExitSuccess {
		t.Errorf("list of a missing file exited with %v, want success", status)
	}
}

func TestListRecordedExpenses(t *testing.T) {
	file := filepath.Join(t.TempDir(), "expenses.csv")

	book := spend.NewBook()
	book.Append(spend.Record{Date: "2024-01-15", Category: "Food", Amount: decimal.RequireFromString("12.50"), Description: "Lunch"})
	if err := spend.SaveBook(file, book); err != nil {
		t.Fatal(err)
	}

	if status := runList(t, &listCmd{file: file}); status != subcommands.ExitSuccess {
		t.Errorf("list exited with %v, want success", status)
	}
}

func TestListCorruptFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "expenses.csv")
	corrupt := "date,category,amount,description\n2024-01-15,Food,abc,Lunch\n"
	if err := os.WriteFile(file, []byte(corrupt), 0644); err != nil {
		t.Fatal(err)
	}

	if status := runList(t, &listCmd{file: file}); status != subcommands.ExitFailure {
		t.Errorf("list of a corrupt file exited with %v, want failure", status)
	}
}
