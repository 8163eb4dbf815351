package spend

import (
	"iter"

	"github.com/shopspring/decimal"
)

// Record is a single expense entry.
//
// Date is kept in its textual form. It is validated against the fixed
// YYYY-MM-DD format when a record is created interactively, but records read
// back from storage are passed through verbatim, even when the stored text no
// longer parses as a date.
type Record struct {
	Date        string
	Category    string
	Amount      decimal.Decimal
	Description string
}

// Equal reports whether both records carry the same field values.
func (r Record) Equal(o Record) bool {
	return r.Date == o.Date &&
		r.Category == o.Category &&
		r.Description == o.Description &&
		r.Amount.Equal(o.Amount)
}

// Book is the ordered collection of expense records.
//
// Records are kept in insertion order, which is also display order and file
// order. There is no in-place edit or delete: a record leaves the book only
// by not being part of the next save.
type Book struct {
	records []Record
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{records: make([]Record, 0)}
}

// Append adds a record at the end of the book.
func (b *Book) Append(r Record) {
	b.records = append(b.records, r)
}

// Len returns the number of records in the book.
func (b *Book) Len() int { return len(b.records) }

// Records returns an iterator over all records in book order.
func (b *Book) Records() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, r := range b.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Total returns the sum of all record amounts.
func (b *Book) Total() decimal.Decimal {
	total := decimal.Zero
	for _, r := range b.records {
		total = total.Add(r.Amount)
	}
	return total
}
