package spend

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// header is the fixed first line of the storage file. The field order is part
// of the format and never changes.
var header = []string{"date", "category", "amount", "description"}

// DecodeBook reads an expense book from a CSV stream: one header line,
// discarded without inspection, then one record per line with exactly four
// fields in the fixed order date, category, amount, description.
//
// Fields containing the delimiter, quotes or newlines follow RFC 4180
// quoting, so free text written by EncodeBook always reads back intact.
//
// Record order is preserved. Stored dates are not re-validated; a malformed
// amount or a row with the wrong field count fails the whole decode.
func DecodeBook(r io.Reader) (*Book, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			// No header means an empty (e.g. just created) file.
			return NewBook(), nil
		}
		return nil, fmt.Errorf("could not read header line: %w", err)
	}

	// Errors are reported by record number, not file line: a quoted field may
	// span several lines.
	book := NewBook()
	for n := 1; ; n++ {
		row, err := cr.Read()
		if err == io.EOF {
			return book, nil
		}
		if err != nil {
			return nil, fmt.Errorf("could not read record %d: %w", n, err)
		}

		amount, err := decimal.NewFromString(row[2])
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q in record %d: %w", row[2], n, err)
		}

		book.Append(Record{
			Date:        row[0],
			Category:    row[1],
			Amount:      amount,
			Description: row[3],
		})
	}
}

// EncodeBook writes the whole book to w: the fixed header line, then one line
// per record in book order. Amounts are serialized in their natural decimal
// text form.
func EncodeBook(w io.Writer, b *Book) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("could not write header line: %w", err)
	}
	for r := range b.Records() {
		row := []string{r.Date, r.Category, r.Amount.String(), r.Description}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("could not write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
