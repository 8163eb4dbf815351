package spend

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"spend/date"
)

// ErrInputClosed reports that the input stream ended while a prompt was
// waiting for an answer. Interactively this only happens on ctrl-D.
var ErrInputClosed = errors.New("input stream closed")

// Prompter runs the interactive loops that build new records.
//
// Input and output are plain streams so the loops can be driven by canned
// input in tests. Invalid input never reaches the caller: each field
// re-prompts until it gets a valid answer, and the only ways out are a valid
// answer or the end of the input stream.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter returns a prompter reading answers line by line from r and
// writing prompts and diagnostics to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return p.in.Text(), nil
}

// Date keeps asking until the answer parses against the fixed YYYY-MM-DD
// format. The accepted value is returned in normalized form.
func (p *Prompter) Date() (string, error) {
	for {
		line, err := p.readLine("Enter the date of the expense (YYYY-MM-DD): ")
		if err != nil {
			return "", err
		}
		d, err := date.Parse(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid date format. Please use YYYY-MM-DD.")
			continue
		}
		return d.String(), nil
	}
}

// Amount keeps asking until the answer parses as a decimal number. There is
// no range check: zero and negative amounts are accepted.
func (p *Prompter) Amount() (decimal.Decimal, error) {
	for {
		line, err := p.readLine("Enter the amount spent: ")
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := decimal.NewFromString(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid amount. Please enter a number.")
			continue
		}
		return amount, nil
	}
}

// Line reads a single free-text answer, accepted verbatim, empty included.
func (p *Prompter) Line(prompt string) (string, error) {
	return p.readLine(prompt)
}

// Record collects a full expense record field by field and confirms success.
func (p *Prompter) Record() (Record, error) {
	d, err := p.Date()
	if err != nil {
		return Record{}, err
	}
	amount, err := p.Amount()
	if err != nil {
		return Record{}, err
	}
	category, err := p.Line("Enter the category (e.g., Food, Travel): ")
	if err != nil {
		return Record{}, err
	}
	description, err := p.Line("Enter a brief description: ")
	if err != nil {
		return Record{}, err
	}

	fmt.Fprintln(p.out, "\nExpense added successfully!")
	return Record{
		Date:        d,
		Category:    category,
		Amount:      amount,
		Description: description,
	}, nil
}

// Budget keeps asking until the answer is a non-negative number.
func (p *Prompter) Budget() (decimal.Decimal, error) {
	for {
		line, err := p.readLine("Enter your monthly budget: ")
		if err != nil {
			return decimal.Zero, err
		}
		budget, err := decimal.NewFromString(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid amount. Please enter a number.")
			continue
		}
		if budget.IsNegative() {
			fmt.Fprintln(p.out, "Budget must be a positive number.")
			continue
		}
		return budget, nil
	}
}
