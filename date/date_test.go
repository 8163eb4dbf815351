package date

import (
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2024, time.January, 15)
	d2 := New(2024, time.January, 15)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// test also checks that the property remains true.
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2024-01-15")
	if err != nil {
		t.Fatalf("Parse(2024-01-15) returned an unexpected error: %v", err)
	}
	if d != New(2024, time.January, 15) {
		t.Errorf("Parse(2024-01-15) = %v", d)
	}

	for _, str := range []string{
		"2024-13-01", // month out of range
		"15-01-2024", // fields in the wrong order
		"not-a-date",
		"",
	} {
		if _, err := Parse(str); err == nil {
			t.Errorf("Parse(%q) accepted an invalid date", str)
		}
	}
}

func TestString(t *testing.T) {
	if got := New(2024, time.March, 5).String(); got != "2024-03-05" {
		t.Errorf("String() = %q, want %q", got, "2024-03-05")
	}
}

func TestAdd(t *testing.T) {
	d := New(2024, time.January, 31).Add(1)
	if d != New(2024, time.February, 1) {
		t.Errorf("Add(1) = %v, want 2024-02-01", d)
	}
}

func TestBeforeAfter(t *testing.T) {
	a, b := New(2024, time.January, 15), New(2024, time.January, 16)
	if !a.Before(b) || a.After(b) {
		t.Errorf("ordering of %v and %v is wrong", a, b)
	}
}
