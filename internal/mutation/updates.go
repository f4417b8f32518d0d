package mutation

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/wedcontrol/internal/calculator"
	"github.com/mmynk/wedcontrol/internal/models"
)

// Update is one typed edit of a project. The set of updates is closed: each
// variant replaces exactly the fields it names and builds fresh collections,
// never editing the input's slices in place.
type Update interface {
	// Kind names the update for logs and metrics.
	Kind() string

	apply(p models.Project) models.Project
}

// SetNotes replaces the free-text notes.
type SetNotes struct {
	Notes string
}

func (SetNotes) Kind() string { return "set_notes" }

func (u SetNotes) apply(p models.Project) models.Project {
	p.Notes = u.Notes
	return p
}

// Details are the header fields edited from the settings form.
type Details struct {
	GroomName        string
	BrideName        string
	Date             time.Time
	VenueName        string
	GuestsCount      int64
	PrepLocation     models.PrepLocation
	RegistrationType models.RegistrationType
	ClientPassword   string
}

// SetDetails replaces the header fields. Collections, organizer and archive
// state are untouched.
type SetDetails struct {
	Details Details
}

func (SetDetails) Kind() string { return "set_details" }

func (u SetDetails) apply(p models.Project) models.Project {
	d := u.Details
	p.GroomName = d.GroomName
	p.BrideName = d.BrideName
	p.Date = d.Date
	p.VenueName = d.VenueName
	p.GuestsCount = d.GuestsCount
	p.PrepLocation = d.PrepLocation
	p.RegistrationType = d.RegistrationType
	p.ClientPassword = d.ClientPassword
	return p
}

// Tasks

// SetTasks replaces the whole checklist.
type SetTasks struct {
	Tasks []models.Task
}

func (SetTasks) Kind() string { return "set_tasks" }

func (u SetTasks) apply(p models.Project) models.Project {
	p.Tasks = slices.Clone(u.Tasks)
	return p
}

// AddTask appends a task. A task without an id gets a UUID.
type AddTask struct {
	Task models.Task
}

func (AddTask) Kind() string { return "add_task" }

func (u AddTask) apply(p models.Project) models.Project {
	t := u.Task
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	p.Tasks = appendClone(p.Tasks, t)
	return p
}

// RenameTask changes the text of one task.
type RenameTask struct {
	ID   string
	Text string
}

func (RenameTask) Kind() string { return "rename_task" }

func (u RenameTask) apply(p models.Project) models.Project {
	p.Tasks = mapMatching(p.Tasks, func(t models.Task) bool { return t.ID == u.ID }, func(t models.Task) models.Task {
		t.Text = u.Text
		return t
	})
	return p
}

// SetTaskDone checks or unchecks one task.
type SetTaskDone struct {
	ID   string
	Done bool
}

func (SetTaskDone) Kind() string { return "set_task_done" }

func (u SetTaskDone) apply(p models.Project) models.Project {
	p.Tasks = mapMatching(p.Tasks, func(t models.Task) bool { return t.ID == u.ID }, func(t models.Task) models.Task {
		t.Done = u.Done
		return t
	})
	return p
}

// SetTaskDeadline moves the deadline of one task.
type SetTaskDeadline struct {
	ID       string
	Deadline time.Time
}

func (SetTaskDeadline) Kind() string { return "set_task_deadline" }

func (u SetTaskDeadline) apply(p models.Project) models.Project {
	p.Tasks = mapMatching(p.Tasks, func(t models.Task) bool { return t.ID == u.ID }, func(t models.Task) models.Task {
		t.Deadline = u.Deadline
		return t
	})
	return p
}

// RemoveTask drops one task.
type RemoveTask struct {
	ID string
}

func (RemoveTask) Kind() string { return "remove_task" }

func (u RemoveTask) apply(p models.Project) models.Project {
	p.Tasks = removeMatching(p.Tasks, func(t models.Task) bool { return t.ID == u.ID })
	return p
}

// Expenses. Ledger lines carry no id and are addressed by position.

// SetExpenses replaces the whole ledger.
type SetExpenses struct {
	Expenses []models.Expense
}

func (SetExpenses) Kind() string { return "set_expenses" }

func (u SetExpenses) apply(p models.Project) models.Project {
	p.Expenses = slices.Clone(u.Expenses)
	return p
}

// AddExpense appends a ledger line.
type AddExpense struct {
	Expense models.Expense
}

func (AddExpense) Kind() string { return "add_expense" }

func (u AddExpense) apply(p models.Project) models.Project {
	p.Expenses = appendClone(p.Expenses, u.Expense)
	return p
}

// ReplaceExpenseLine overwrites the line at Index. An index out of range
// leaves the ledger unchanged.
type ReplaceExpenseLine struct {
	Index   int
	Expense models.Expense
}

func (ReplaceExpenseLine) Kind() string { return "replace_expense_line" }

func (u ReplaceExpenseLine) apply(p models.Project) models.Project {
	next := slices.Clone(p.Expenses)
	if u.Index >= 0 && u.Index < len(next) {
		next[u.Index] = u.Expense
	}
	p.Expenses = next
	return p
}

// RemoveExpenseLine drops the line at Index.
type RemoveExpenseLine struct {
	Index int
}

func (RemoveExpenseLine) Kind() string { return "remove_expense_line" }

func (u RemoveExpenseLine) apply(p models.Project) models.Project {
	next := slices.Clone(p.Expenses)
	if u.Index >= 0 && u.Index < len(next) {
		next = slices.Delete(next, u.Index, u.Index+1)
	}
	p.Expenses = next
	return p
}

// Guests

// SetGuests replaces the whole roster.
type SetGuests struct {
	Guests []models.Guest
}

func (SetGuests) Kind() string { return "set_guests" }

func (u SetGuests) apply(p models.Project) models.Project {
	p.Guests = slices.Clone(u.Guests)
	return p
}

// AddGuest appends a guest. A guest without an id gets a UUID.
type AddGuest struct {
	Guest models.Guest
}

func (AddGuest) Kind() string { return "add_guest" }

func (u AddGuest) apply(p models.Project) models.Project {
	g := u.Guest
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	p.Guests = appendClone(p.Guests, g)
	return p
}

// ReplaceGuest overwrites the guest with the same id.
type ReplaceGuest struct {
	Guest models.Guest
}

func (ReplaceGuest) Kind() string { return "replace_guest" }

func (u ReplaceGuest) apply(p models.Project) models.Project {
	p.Guests = mapMatching(p.Guests, func(g models.Guest) bool { return g.ID == u.Guest.ID }, func(models.Guest) models.Guest {
		return u.Guest
	})
	return p
}

// RemoveGuest drops one guest.
type RemoveGuest struct {
	ID string
}

func (RemoveGuest) Kind() string { return "remove_guest" }

func (u RemoveGuest) apply(p models.Project) models.Project {
	p.Guests = removeMatching(p.Guests, func(g models.Guest) bool { return g.ID == u.ID })
	return p
}

// Timing. Every timing update leaves the schedule sorted by time.

// SetTiming replaces the whole schedule.
type SetTiming struct {
	Entries []models.TimingEntry
}

func (SetTiming) Kind() string { return "set_timing" }

func (u SetTiming) apply(p models.Project) models.Project {
	p.Timing = calculator.SortTiming(u.Entries)
	return p
}

// AddTimingEntry inserts an entry. An entry without an id gets a UUID.
type AddTimingEntry struct {
	Entry models.TimingEntry
}

func (AddTimingEntry) Kind() string { return "add_timing_entry" }

func (u AddTimingEntry) apply(p models.Project) models.Project {
	e := u.Entry
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	p.Timing = calculator.SortTiming(appendClone(p.Timing, e))
	return p
}

// EditTimingEntry overwrites the entry with the same id.
type EditTimingEntry struct {
	Entry models.TimingEntry
}

func (EditTimingEntry) Kind() string { return "edit_timing_entry" }

func (u EditTimingEntry) apply(p models.Project) models.Project {
	next := mapMatching(p.Timing, func(e models.TimingEntry) bool { return e.ID == u.Entry.ID }, func(models.TimingEntry) models.TimingEntry {
		return u.Entry
	})
	p.Timing = calculator.SortTiming(next)
	return p
}

// RemoveTimingEntry drops one entry.
type RemoveTimingEntry struct {
	ID string
}

func (RemoveTimingEntry) Kind() string { return "remove_timing_entry" }

func (u RemoveTimingEntry) apply(p models.Project) models.Project {
	p.Timing = removeMatching(p.Timing, func(e models.TimingEntry) bool { return e.ID == u.ID })
	return p
}

func appendClone[E any](s []E, e E) []E {
	out := make([]E, 0, len(s)+1)
	out = append(out, s...)
	return append(out, e)
}

func mapMatching[E any](s []E, match func(E) bool, fn func(E) E) []E {
	out := make([]E, len(s))
	for i, e := range s {
		if match(e) {
			e = fn(e)
		}
		out[i] = e
	}
	return out
}

func removeMatching[E any](s []E, match func(E) bool) []E {
	out := make([]E, 0, len(s))
	for _, e := range s {
		if !match(e) {
			out = append(out, e)
		}
	}
	return out
}
