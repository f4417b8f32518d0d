package service

import (
	"errors"
	"fmt"

	"github.com/mmynk/wedcontrol/internal/calculator"
	"github.com/mmynk/wedcontrol/internal/models"
	"github.com/mmynk/wedcontrol/internal/mutation"
	"github.com/mmynk/wedcontrol/pkg/api"
)

var errEmptyUpdate = errors.New("update must set exactly one field")

func toAPIProject(p models.Project) *api.Project {
	return &api.Project{
		Id:               p.ID,
		GroomName:        p.GroomName,
		BrideName:        p.BrideName,
		Date:             p.Date,
		VenueName:        p.VenueName,
		GuestsCount:      p.GuestsCount,
		PrepLocation:     string(p.PrepLocation),
		RegistrationType: string(p.RegistrationType),
		OrganizerId:      p.OrganizerID,
		OrganizerName:    p.OrganizerName,
		ClientPassword:   p.ClientPassword,
		IsArchived:       p.IsArchived,
		Tasks:            convertAll(p.Tasks, toAPITask),
		Expenses:         convertAll(p.Expenses, toAPIExpense),
		Guests:           convertAll(p.Guests, toAPIGuest),
		Timing:           convertAll(p.Timing, toAPITiming),
		Notes:            p.Notes,
	}
}

func toAPISummary(p models.Project) api.ProjectSummary {
	return api.ProjectSummary{
		Id:            p.ID,
		GroomName:     p.GroomName,
		BrideName:     p.BrideName,
		Date:          p.Date,
		VenueName:     p.VenueName,
		OrganizerName: p.OrganizerName,
		IsArchived:    p.IsArchived,
	}
}

func toAPIOverview(o calculator.Overview) *api.Overview {
	return &api.Overview{
		DaysUntil:   o.DaysUntil,
		OpenTasks:   o.OpenTasks,
		Upcoming:    convertAll(o.Upcoming, toAPITask),
		PercentPaid: o.PercentPaid,
		GuestCount:  o.GuestCount,
		DayStart:    o.DayStart,
		Budget: api.BudgetTotals{
			Plan:      o.Budget.Plan,
			Fact:      o.Budget.Fact,
			Paid:      o.Budget.Paid,
			Remaining: o.Budget.Remaining,
		},
	}
}

func toAPITask(t models.Task) api.Task {
	return api.Task{Id: t.ID, Text: t.Text, Deadline: t.Deadline, Done: t.Done}
}

func fromAPITask(t api.Task) models.Task {
	return models.Task{ID: t.Id, Text: t.Text, Deadline: t.Deadline, Done: t.Done}
}

func toAPIExpense(e models.Expense) api.Expense {
	return api.Expense{Category: e.Category, Name: e.Name, Plan: e.Plan, Fact: e.Fact, Paid: e.Paid, Note: e.Note}
}

// fromExpenseInput coerces free-text amounts the way the ledger form does.
func fromExpenseInput(e api.ExpenseInput) models.Expense {
	return models.Expense{
		Category: e.Category,
		Name:     e.Name,
		Plan:     calculator.ParseAmount(e.Plan),
		Fact:     calculator.ParseAmount(e.Fact),
		Paid:     calculator.ParseAmount(e.Paid),
		Note:     e.Note,
	}
}

func toAPIGuest(g models.Guest) api.Guest {
	return api.Guest{
		Id:          g.ID,
		Name:        g.Name,
		SeatingName: g.SeatingName,
		Table:       g.Table,
		Food:        g.Food,
		Drinks:      g.Drinks,
		Transfer:    g.Transfer,
		Comment:     g.Comment,
	}
}

func fromAPIGuest(g api.Guest) models.Guest {
	return models.Guest{
		ID:          g.Id,
		Name:        g.Name,
		SeatingName: g.SeatingName,
		Table:       g.Table,
		Food:        g.Food,
		Drinks:      g.Drinks,
		Transfer:    g.Transfer,
		Comment:     g.Comment,
	}
}

func toAPITiming(e models.TimingEntry) api.TimingEntry {
	return api.TimingEntry{Id: e.ID, Time: e.Time, Event: e.Event}
}

func fromAPITiming(e api.TimingEntry) models.TimingEntry {
	return models.TimingEntry{ID: e.Id, Time: e.Time, Event: e.Event}
}

func toAPIMember(m models.TeamMember) api.TeamMember {
	return api.TeamMember{Id: m.ID, Name: m.Name}
}

func toAPIProfile(p models.Profile) *api.Profile {
	return &api.Profile{Name: p.Name, Email: p.Email, Role: string(p.Role)}
}

func convertAll[From, To any](in []From, fn func(From) To) []To {
	out := make([]To, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// parsePrepLocation accepts an empty value as the default.
func parsePrepLocation(s string) (models.PrepLocation, error) {
	switch models.PrepLocation(s) {
	case "", models.PrepHome:
		return models.PrepHome, nil
	case models.PrepHotel:
		return models.PrepHotel, nil
	default:
		return "", fmt.Errorf("unknown prep location %q", s)
	}
}

func parseRegistrationType(s string) (models.RegistrationType, error) {
	switch models.RegistrationType(s) {
	case "", models.RegistrationOfficial:
		return models.RegistrationOfficial, nil
	case models.RegistrationOffsite:
		return models.RegistrationOffsite, nil
	default:
		return "", fmt.Errorf("unknown registration type %q", s)
	}
}

// toUpdate maps the wire envelope to its typed update. Exactly one field of
// u must be set.
func toUpdate(u *api.ProjectUpdate) (mutation.Update, error) {
	if u == nil {
		return nil, errEmptyUpdate
	}

	var found []mutation.Update
	if v := u.SetNotes; v != nil {
		found = append(found, mutation.SetNotes{Notes: v.Notes})
	}
	if v := u.SetDetails; v != nil {
		details, err := toSetDetails(v)
		if err != nil {
			return nil, err
		}
		found = append(found, details)
	}

	if v := u.SetTasks; v != nil {
		found = append(found, mutation.SetTasks{Tasks: convertAll(v.Tasks, fromAPITask)})
	}
	if v := u.AddTask; v != nil {
		found = append(found, mutation.AddTask{Task: fromAPITask(v.Task)})
	}
	if v := u.RenameTask; v != nil {
		found = append(found, mutation.RenameTask{ID: v.TaskId, Text: v.Text})
	}
	if v := u.SetTaskDone; v != nil {
		found = append(found, mutation.SetTaskDone{ID: v.TaskId, Done: v.Done})
	}
	if v := u.SetTaskDeadline; v != nil {
		found = append(found, mutation.SetTaskDeadline{ID: v.TaskId, Deadline: v.Deadline})
	}
	if v := u.RemoveTask; v != nil {
		found = append(found, mutation.RemoveTask{ID: v.TaskId})
	}

	if v := u.SetExpenses; v != nil {
		found = append(found, mutation.SetExpenses{Expenses: convertAll(v.Expenses, fromExpenseInput)})
	}
	if v := u.AddExpense; v != nil {
		found = append(found, mutation.AddExpense{Expense: fromExpenseInput(v.Expense)})
	}
	if v := u.ReplaceExpenseLine; v != nil {
		found = append(found, mutation.ReplaceExpenseLine{Index: v.Index, Expense: fromExpenseInput(v.Expense)})
	}
	if v := u.RemoveExpenseLine; v != nil {
		found = append(found, mutation.RemoveExpenseLine{Index: v.Index})
	}

	if v := u.SetGuests; v != nil {
		found = append(found, mutation.SetGuests{Guests: convertAll(v.Guests, fromAPIGuest)})
	}
	if v := u.AddGuest; v != nil {
		found = append(found, mutation.AddGuest{Guest: fromAPIGuest(v.Guest)})
	}
	if v := u.ReplaceGuest; v != nil {
		found = append(found, mutation.ReplaceGuest{Guest: fromAPIGuest(v.Guest)})
	}
	if v := u.RemoveGuest; v != nil {
		found = append(found, mutation.RemoveGuest{ID: v.GuestId})
	}

	if v := u.SetTiming; v != nil {
		found = append(found, mutation.SetTiming{Entries: convertAll(v.Entries, fromAPITiming)})
	}
	if v := u.AddTimingEntry; v != nil {
		found = append(found, mutation.AddTimingEntry{Entry: fromAPITiming(v.Entry)})
	}
	if v := u.EditTimingEntry; v != nil {
		found = append(found, mutation.EditTimingEntry{Entry: fromAPITiming(v.Entry)})
	}
	if v := u.RemoveTimingEntry; v != nil {
		found = append(found, mutation.RemoveTimingEntry{ID: v.EntryId})
	}

	if len(found) != 1 {
		return nil, errEmptyUpdate
	}
	return found[0], nil
}

func toSetDetails(d *api.SetDetails) (mutation.Update, error) {
	prep, err := parsePrepLocation(d.PrepLocation)
	if err != nil {
		return nil, err
	}
	reg, err := parseRegistrationType(d.RegistrationType)
	if err != nil {
		return nil, err
	}
	return mutation.SetDetails{Details: mutation.Details{
		GroomName:        d.GroomName,
		BrideName:        d.BrideName,
		Date:             d.Date,
		VenueName:        d.VenueName,
		GuestsCount:      calculator.ParseAmount(d.GuestsCount),
		PrepLocation:     prep,
		RegistrationType: reg,
		ClientPassword:   d.ClientPassword,
	}}, nil
}
