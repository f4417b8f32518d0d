// Package calculator holds the pure computations over project data: budget
// totals, checklist scheduling, timing order, archive partitioning and the
// overview figures.
package calculator

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/mmynk/wedcontrol/internal/models"
)

// Totals is the aggregate of a budget ledger.
type Totals struct {
	Plan      int64
	Fact      int64
	Paid      int64
	Remaining int64 // Fact - Paid, negative on over-payment
}

// Aggregate sums plan, fact and paid over the ledger.
// Inputs are not validated; negative lines are summed as given.
func Aggregate(expenses []models.Expense) Totals {
	var t Totals
	for _, e := range expenses {
		t.Plan += e.Plan
		t.Fact += e.Fact
		t.Paid += e.Paid
	}
	t.Remaining = t.Fact - t.Paid
	return t
}

// LineRemaining is what is still owed on a single ledger line.
func LineRemaining(e models.Expense) int64 {
	return e.Fact - e.Paid
}

// PercentPaid returns paid/fact as a fraction. A ledger with no actual costs
// reports 0.
func PercentPaid(expenses []models.Expense) float64 {
	t := Aggregate(expenses)
	if t.Fact == 0 {
		return 0
	}
	return float64(t.Paid) / float64(t.Fact)
}

// ParseAmount converts user input to a whole amount. Whitespace (including
// thousands separators typed as spaces) is ignored; empty or non-numeric
// input yields 0. Numeric input keeps only its leading integer digits, so
// "12.7" is 12 and "1e3" is 1. Magnitudes beyond int64 saturate.
func ParseAmount(s string) int64 {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if _, err := strconv.ParseFloat(s, 64); err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}

	sign := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}
	end := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		end = len(s)
	}
	if end == 0 {
		return 0
	}
	// On overflow ParseInt returns the bound with the input's sign.
	n, _ := strconv.ParseInt(sign+s[:end], 10, 64)
	return n
}
