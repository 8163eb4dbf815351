package spend

import "github.com/shopspring/decimal"

// Summary compares the book's running total against a budget.
type Summary struct {
	Budget    Money
	Spent     Money
	Remaining Money
}

// NewSummary computes the budget summary for a book. The budget's currency is
// used for the spent total and the remainder.
func NewSummary(budget Money, b *Book) Summary {
	spent := M(b.Total(), budget.Currency())
	return Summary{
		Budget:    budget,
		Spent:     spent,
		Remaining: budget.Sub(spent),
	}
}

// Over reports whether the book total exceeds the budget.
func (s Summary) Over() bool { return s.Remaining.IsNegative() }

// Overrun returns the amount by which the budget is exceeded, as a positive
// value. It is zero when the budget is not exceeded.
func (s Summary) Overrun() Money {
	if !s.Over() {
		return M(decimal.Zero, s.Remaining.Currency())
	}
	return s.Remaining.Abs()
}
