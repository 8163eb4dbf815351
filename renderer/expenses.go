package renderer

import (
	"spend"
)

type expenseRow struct {
	Date        string
	Category    string
	Amount      string
	Description string
}

// Expenses renders the full expense table in book order, or an explicit "no
// expenses" indication when the book is empty.
func Expenses(b *spend.Book, currency string) string {
	if b.Len() == 0 {
		return renderTemplate("no_expenses.md", nil)
	}

	var rows []expenseRow
	for r := range b.Records() {
		rows = append(rows, expenseRow{
			Date:        r.Date,
			Category:    r.Category,
			Amount:      spend.M(r.Amount, currency).String(),
			Description: r.Description,
		})
	}
	return renderTemplate("expenses.md", struct{ Rows []expenseRow }{rows})
}
