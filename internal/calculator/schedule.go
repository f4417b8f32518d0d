package calculator

import (
	"slices"
	"time"

	"github.com/mmynk/wedcontrol/internal/models"
)

// TaskTemplate is a checklist item with its relative position between the
// creation date (0) and the event date (1).
type TaskTemplate struct {
	Text     string
	Position float64
}

// ScheduleOptions requests the fixed extra tasks that depend on the creation
// form.
type ScheduleOptions struct {
	Hotel   bool      // preparation at a hotel: book a room
	Offsite bool      // off-site registration: choose an officiant
	Now     time.Time // deadline of the extra tasks
}

// OptionsFor derives schedule options from a project's form fields.
func OptionsFor(p models.Project, now time.Time) ScheduleOptions {
	return ScheduleOptions{
		Hotel:   p.PrepLocation == models.PrepHotel,
		Offsite: p.RegistrationType == models.RegistrationOffsite,
		Now:     now,
	}
}

const (
	hotelTaskID   = "hotel_1"
	offsiteTaskID = "reg_1"
)

// GenerateTasks builds the initial checklist. Each template deadline is
// linearly interpolated over [created, event]; an event date before the
// creation date simply yields deadlines in the past. Extra tasks are due at
// opts.Now. The result is stably sorted by deadline.
func GenerateTasks(created, event time.Time, template []TaskTemplate, opts ScheduleOptions, newID func() string) []models.Task {
	span := event.Sub(created)
	tasks := make([]models.Task, 0, len(template)+2)
	for _, t := range template {
		offset := time.Duration(float64(span) * t.Position)
		tasks = append(tasks, models.Task{
			ID:       newID(),
			Text:     t.Text,
			Deadline: created.Add(offset),
		})
	}

	if opts.Hotel {
		tasks = append(tasks, models.Task{ID: hotelTaskID, Text: "Book a hotel room", Deadline: opts.Now})
	}
	if opts.Offsite {
		tasks = append(tasks, models.Task{ID: offsiteTaskID, Text: "Choose an officiant", Deadline: opts.Now})
	}

	slices.SortStableFunc(tasks, func(a, b models.Task) int {
		return a.Deadline.Compare(b.Deadline)
	})
	return tasks
}

// ExtraExpenses returns the ledger lines that accompany the extra tasks.
func ExtraExpenses(opts ScheduleOptions) []models.Expense {
	var lines []models.Expense
	if opts.Hotel {
		lines = append(lines, models.Expense{Category: "Logistics", Name: "Hotel room"})
	}
	if opts.Offsite {
		lines = append(lines, models.Expense{Category: "Program", Name: "Officiant"})
	}
	return lines
}
