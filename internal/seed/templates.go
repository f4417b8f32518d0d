// Package seed builds new projects from the creation form and the built-in
// checklist, budget and timing templates.
package seed

import (
	"github.com/mmynk/wedcontrol/internal/calculator"
	"github.com/mmynk/wedcontrol/internal/models"
)

// TaskTemplate is the default checklist.
var TaskTemplate = []calculator.TaskTemplate{
	{Text: "Set the budget", Position: 0.0},
	{Text: "Draw up the guest list", Position: 0.1},
	{Text: "Choose the venue", Position: 0.2},
	{Text: "Find a photographer", Position: 0.3},
	{Text: "Choose the dress", Position: 0.5},
	{Text: "Order the cake", Position: 0.7},
	{Text: "Seating plan", Position: 0.9},
}

// Expenses returns a fresh copy of the default budget ledger.
func Expenses() []models.Expense {
	return []models.Expense{
		{Category: "Decor", Name: "Decor and floristry", Plan: 150000, Fact: 150000, Paid: 50000},
		{Category: "Venue", Name: "Furniture rental", Plan: 30000},
		{Category: "Print", Name: "Invitations", Plan: 15000, Fact: 15000, Paid: 15000},
		{Category: "Photo and video", Name: "Photographer", Plan: 80000, Fact: 80000, Paid: 20000},
		{Category: "Photo and video", Name: "Videographer", Plan: 70000},
		{Category: "Program", Name: "Host and DJ", Plan: 100000, Fact: 100000, Paid: 30000},
		{Category: "Look", Name: "Stylist", Plan: 25000, Fact: 25000, Paid: 5000},
		{Category: "Banquet", Name: "Cake", Plan: 20000},
		{Category: "Banquet", Name: "Wedding dinner", Plan: 350000},
		{Category: "Team", Name: "Coordination", Plan: 60000, Fact: 60000, Paid: 30000},
	}
}

type timingTemplate struct {
	time  string
	event string
}

var dayTemplate = []timingTemplate{
	{"09:00", "Wake up"},
	{"10:00", "Bride getting ready"},
	{"13:00", "Photo session"},
	{"16:00", "Ceremony"},
	{"17:00", "Banquet"},
	{"23:00", "Finale"},
}

// Timing returns the default day schedule with fresh entry ids.
func Timing(newID func() string) []models.TimingEntry {
	entries := make([]models.TimingEntry, len(dayTemplate))
	for i, t := range dayTemplate {
		entries[i] = models.TimingEntry{ID: newID(), Time: t.time, Event: t.event}
	}
	return entries
}
