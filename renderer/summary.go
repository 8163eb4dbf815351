package renderer

import (
	"spend"
)

// Summary renders the budget summary report: total budget, total expenses,
// and either the remaining balance or the overrun.
func Summary(s spend.Summary) string {
	data := struct {
		Budget    string
		Spent     string
		Remaining string
		Overrun   string
		Over      bool
	}{
		Budget:    s.Budget.String(),
		Spent:     s.Spent.String(),
		Remaining: s.Remaining.String(),
		Overrun:   s.Overrun().String(),
		Over:      s.Over(),
	}
	return renderTemplate("summary.md", data)
}
