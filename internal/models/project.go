package models

import (
	"slices"
	"time"
)

// PrepLocation is where the couple gets ready on the day.
type PrepLocation string

const (
	PrepHome  PrepLocation = "home"
	PrepHotel PrepLocation = "hotel"
)

// RegistrationType tells whether the ceremony is held at the registry office
// or performed off-site by a hired officiant.
type RegistrationType string

const (
	RegistrationOfficial RegistrationType = "official"
	RegistrationOffsite  RegistrationType = "offsite"
)

// Project is one event workspace.
type Project struct {
	// ID is stable for the project's lifetime and unique within the store.
	// Projects created from the form get a UUID; projects materialized from a
	// share link keep the requested identifier.
	ID string `json:"id"`

	GroomName string    `json:"groomName"`
	BrideName string    `json:"brideName"`
	Date      time.Time `json:"date"`
	VenueName string    `json:"venueName"`

	// GuestsCount is the planned head count entered on the creation form.
	// It is independent of len(Guests).
	GuestsCount int64 `json:"guestsCount"`

	PrepLocation     PrepLocation     `json:"prepLocation"`
	RegistrationType RegistrationType `json:"registrationType"`

	OrganizerID string `json:"organizerId"`

	// OrganizerName is resolved once at creation and not kept in sync with
	// the team roster.
	OrganizerName string `json:"organizerName"`

	// ClientPassword is shown to the organizer and handed to the couple.
	// It gates nothing.
	ClientPassword string `json:"clientPassword"`

	IsArchived bool `json:"isArchived"`

	Tasks    []Task        `json:"tasks"`
	Expenses []Expense     `json:"expenses"`
	Guests   []Guest       `json:"guests"`
	Timing   []TimingEntry `json:"timing"`
	Notes    string        `json:"notes"`
}

// Clone returns a copy of p that shares no backing arrays with it.
func (p Project) Clone() Project {
	p.Tasks = slices.Clone(p.Tasks)
	p.Expenses = slices.Clone(p.Expenses)
	p.Guests = slices.Clone(p.Guests)
	p.Timing = slices.Clone(p.Timing)
	return p
}

// Task is one checklist item.
type Task struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Deadline time.Time `json:"deadline"`
	Done     bool      `json:"done"`
}

// Expense is one budget ledger line. Amounts are whole currency units.
type Expense struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Plan     int64  `json:"plan"`
	Fact     int64  `json:"fact"`
	Paid     int64  `json:"paid"`
	Note     string `json:"note"`
}

// Guest is one entry of the guest roster.
type Guest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SeatingName string `json:"seatingName"`
	Table       string `json:"table"`
	Food        string `json:"food"`
	Drinks      string `json:"drinks"`
	Transfer    bool   `json:"transfer"`
	Comment     string `json:"comment"`
}

// TimingEntry is one step of the day schedule. Time is "HH:MM" and is
// compared as a string.
type TimingEntry struct {
	ID    string `json:"id"`
	Time  string `json:"time"`
	Event string `json:"event"`
}
