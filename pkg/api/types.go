package api

import "time"

type Project struct {
	Id               string        `json:"id"`
	GroomName        string        `json:"groomName"`
	BrideName        string        `json:"brideName"`
	Date             time.Time     `json:"date"`
	VenueName        string        `json:"venueName"`
	GuestsCount      int64         `json:"guestsCount"`
	PrepLocation     string        `json:"prepLocation"`
	RegistrationType string        `json:"registrationType"`
	OrganizerId      string        `json:"organizerId"`
	OrganizerName    string        `json:"organizerName"`
	ClientPassword   string        `json:"clientPassword"`
	IsArchived       bool          `json:"isArchived"`
	Tasks            []Task        `json:"tasks"`
	Expenses         []Expense     `json:"expenses"`
	Guests           []Guest       `json:"guests"`
	Timing           []TimingEntry `json:"timing"`
	Notes            string        `json:"notes"`
}

type Task struct {
	Id       string    `json:"id"`
	Text     string    `json:"text"`
	Deadline time.Time `json:"deadline"`
	Done     bool      `json:"done"`
}

type Expense struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Plan     int64  `json:"plan"`
	Fact     int64  `json:"fact"`
	Paid     int64  `json:"paid"`
	Note     string `json:"note"`
}

type Guest struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	SeatingName string `json:"seatingName"`
	Table       string `json:"table"`
	Food        string `json:"food"`
	Drinks      string `json:"drinks"`
	Transfer    bool   `json:"transfer"`
	Comment     string `json:"comment"`
}

type TimingEntry struct {
	Id    string `json:"id"`
	Time  string `json:"time"`
	Event string `json:"event"`
}

// ProjectSummary is a list entry.
type ProjectSummary struct {
	Id            string    `json:"id"`
	GroomName     string    `json:"groomName"`
	BrideName     string    `json:"brideName"`
	Date          time.Time `json:"date"`
	VenueName     string    `json:"venueName"`
	OrganizerName string    `json:"organizerName"`
	IsArchived    bool      `json:"isArchived"`
}

type BudgetTotals struct {
	Plan      int64 `json:"plan"`
	Fact      int64 `json:"fact"`
	Paid      int64 `json:"paid"`
	Remaining int64 `json:"remaining"`
}

type Overview struct {
	DaysUntil   int          `json:"daysUntil"`
	OpenTasks   int          `json:"openTasks"`
	Upcoming    []Task       `json:"upcoming"`
	PercentPaid float64      `json:"percentPaid"`
	GuestCount  int          `json:"guestCount"`
	DayStart    string       `json:"dayStart"`
	Budget      BudgetTotals `json:"budget"`
}

type TeamMember struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}
