// Package export turns project views into delimited tables and writes them
// as CSV or XLSX.
package export

import (
	"fmt"

	"github.com/mmynk/wedcontrol/internal/calculator"
	"github.com/mmynk/wedcontrol/internal/models"
)

// View names an exportable project view.
type View string

const (
	ViewTasks  View = "tasks"
	ViewBudget View = "budget"
	ViewGuests View = "guests"
	ViewTiming View = "timing"
)

// Views lists every exportable view.
var Views = []View{ViewTasks, ViewBudget, ViewGuests, ViewTiming}

// Table is a header row followed by data rows. Cells are strings or int64
// amounts.
type Table struct {
	Header []string
	Rows   [][]any
}

// ForView builds the table of one view of p.
func ForView(p models.Project, view View) (Table, error) {
	switch view {
	case ViewTasks:
		return Tasks(p.Tasks), nil
	case ViewBudget:
		return Budget(p.Expenses), nil
	case ViewGuests:
		return Guests(p.Guests), nil
	case ViewTiming:
		return Timing(p.Timing), nil
	default:
		return Table{}, fmt.Errorf("unknown view %q", view)
	}
}

// Tasks exports the checklist with a +/- status column.
func Tasks(tasks []models.Task) Table {
	t := Table{Header: []string{"Task", "Status"}}
	for _, task := range tasks {
		status := "-"
		if task.Done {
			status = "+"
		}
		t.Rows = append(t.Rows, []any{task.Text, status})
	}
	return t
}

// Budget exports the ledger with a derived remaining column and a trailing
// totals row.
func Budget(expenses []models.Expense) Table {
	t := Table{Header: []string{"Name", "Plan", "Fact", "Paid", "Remaining", "Note"}}
	for _, e := range expenses {
		t.Rows = append(t.Rows, []any{e.Name, e.Plan, e.Fact, e.Paid, calculator.LineRemaining(e), e.Note})
	}
	total := calculator.Aggregate(expenses)
	t.Rows = append(t.Rows, []any{"TOTAL", total.Plan, total.Fact, total.Paid, total.Remaining, ""})
	return t
}

// Guests exports the guest roster.
func Guests(guests []models.Guest) Table {
	t := Table{Header: []string{"Name", "Seating", "Table", "Food", "Drinks", "Transfer", "Comment"}}
	for _, g := range guests {
		transfer := "No"
		if g.Transfer {
			transfer = "Yes"
		}
		t.Rows = append(t.Rows, []any{g.Name, g.SeatingName, g.Table, g.Food, g.Drinks, transfer, g.Comment})
	}
	return t
}

// Timing exports the day schedule.
func Timing(entries []models.TimingEntry) Table {
	t := Table{Header: []string{"Time", "Event"}}
	for _, e := range entries {
		t.Rows = append(t.Rows, []any{e.Time, e.Event})
	}
	return t
}
