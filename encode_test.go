package spend

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecodeBook(t *testing.T) {
	csvStream := `date,category,amount,description
2024-01-15,Food,12.50,Lunch
2024-01-16,Travel,-5,Refund
2024-01-17,,0,
`
	book, err := DecodeBook(strings.NewReader(csvStream))
	if err != nil {
		t.Fatalf("DecodeBook() returned an unexpected error: %v", err)
	}
	if book.Len() != 3 {
		t.Fatalf("DecodeBook() decoded wrong number of records. Got: %d, want: 3", book.Len())
	}

	records := slices.Collect(book.Records())
	want := []Record{
		{Date: "2024-01-15", Category: "Food", Amount: decimal.RequireFromString("12.50"), Description: "Lunch"},
		{Date: "2024-01-16", Category: "Travel", Amount: decimal.RequireFromString("-5"), Description: "Refund"},
		{Date: "2024-01-17", Category: "", Amount: decimal.Zero, Description: ""},
	}
	for i, r := range records {
		if !r.Equal(want[i]) {
			t.Errorf("record %d = %+v, want %+v", i, r, want[i])
		}
	}
}

// Stored dates are not re-validated: a malformed date loads verbatim.
func TestDecodeBookKeepsMalformedDate(t *testing.T) {
	csvStream := "date,category,amount,description\nnot-a-date,Food,1,Lunch\n"

	book, err := DecodeBook(strings.NewReader(csvStream))
	if err != nil {
		t.Fatalf("DecodeBook() returned an unexpected error: %v", err)
	}
	for r := range book.Records() {
		if r.Date != "not-a-date" {
			t.Errorf("stored date was not passed through verbatim: %q", r.Date)
		}
	}
}

func TestDecodeBookBadAmount(t *testing.T) {
	csvStream := "date,category,amount,description\n2024-01-15,Food,abc,Lunch\n"

	_, err := DecodeBook(strings.NewReader(csvStream))
	if err == nil {
		t.Fatal("DecodeBook() accepted a malformed amount")
	}
	if !strings.Contains(err.Error(), "record 1") {
		t.Errorf("error does not name the offending record: %v", err)
	}
}

// Record numbering in errors must not drift when a quoted field spans
// several file lines.
func TestDecodeBookBadAmountAfterMultilineField(t *testing.T) {
	csvStream := "date,category,amount,description\n" +
		"2024-01-15,Food,12.50,\"Lunch\nwith dessert\"\n" +
		"2024-01-16,Food,abc,Dinner\n"

	_, err := DecodeBook(strings.NewReader(csvStream))
	if err == nil {
		t.Fatal("DecodeBook() accepted a malformed amount")
	}
	if !strings.Contains(err.Error(), "record 2") {
		t.Errorf("error does not name the offending record: %v", err)
	}
}

func TestDecodeBookShortRow(t *testing.T) {
	csvStream := "date,category,amount,description\n2024-01-15,Food,12.50\n"

	if _, err := DecodeBook(strings.NewReader(csvStream)); err == nil {
		t.Fatal("DecodeBook() accepted a row with fewer than 4 fields")
	}
}

func TestDecodeBookEmptyStream(t *testing.T) {
	book, err := DecodeBook(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeBook() of an empty stream failed: %v", err)
	}
	if book.Len() != 0 {
		t.Errorf("DecodeBook() of an empty stream yielded %d records", book.Len())
	}
}

func TestEncodeBook(t *testing.T) {
	book := NewBook()
	book.Append(Record{Date: "2024-01-15", Category: "Food", Amount: decimal.RequireFromString("12.50"), Description: "Lunch"})
	book.Append(Record{Date: "2024-01-16", Category: "Travel", Amount: decimal.RequireFromString("-5"), Description: "Refund"})

	var buf bytes.Buffer
	if err := EncodeBook(&buf, book); err != nil {
		t.Fatalf("EncodeBook() returned an unexpected error: %v", err)
	}

	// decimal's natural text form trims trailing zeros: 12.50 is written 12.5.
	want := "date,category,amount,description\n2024-01-15,Food,12.5,Lunch\n2024-01-16,Travel,-5,Refund\n"
	if buf.String() != want {
		t.Errorf("EncodeBook() wrote:\n%s\nwant:\n%s", buf.String(), want)
	}
}

// Free text containing the delimiter, quotes or newlines must survive the
// round trip thanks to RFC 4180 quoting.
func TestRoundTripQuoting(t *testing.T) {
	book := NewBook()
	book.Append(Record{
		Date:        "2024-01-15",
		Category:    "Food, drinks",
		Amount:      decimal.RequireFromString("12.50"),
		Description: `He said "hello"` + "\nand left",
	})

	var buf bytes.Buffer
	if err := EncodeBook(&buf, book); err != nil {
		t.Fatalf("EncodeBook() returned an unexpected error: %v", err)
	}

	decoded, err := DecodeBook(&buf)
	if err != nil {
		t.Fatalf("DecodeBook() returned an unexpected error: %v", err)
	}

	got := slices.Collect(decoded.Records())
	want := slices.Collect(book.Records())
	if len(got) != len(want) {
		t.Fatalf("round trip changed the record count: %d != %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("round trip changed record %d: %+v != %+v", i, got[i], want[i])
		}
	}
}

// Encoding the same book twice must produce byte-identical output.
func TestEncodeBookIdempotent(t *testing.T) {
	book := NewBook()
	book.Append(Record{Date: "2024-01-15", Category: "Food", Amount: decimal.RequireFromString("12.50"), Description: "Lunch"})

	var first, second bytes.Buffer
	if err := EncodeBook(&first, book); err != nil {
		t.Fatal(err)
	}
	if err := EncodeBook(&second, book); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two encodings of the same book differ")
	}
}
