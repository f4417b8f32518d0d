package seed

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/wedcontrol/internal/calculator"
	"github.com/mmynk/wedcontrol/internal/models"
	"github.com/mmynk/wedcontrol/internal/team"
)

// NewID returns a fresh opaque identifier.
func NewID() string {
	return uuid.New().String()
}

// Form is the project creation form as submitted.
type Form struct {
	GroomName        string
	BrideName        string
	Date             time.Time
	VenueName        string
	GuestsCount      string // free text, coerced to a number
	OrganizerID      string
	PrepLocation     models.PrepLocation
	RegistrationType models.RegistrationType
}

// NewProject builds a project from the creation form. The organizer name is
// resolved against the roster once, falling back to the owner's name.
func NewProject(form Form, roster []models.TeamMember, owner models.Profile, now time.Time) models.Project {
	p := models.Project{
		ID:               NewID(),
		GroomName:        form.GroomName,
		BrideName:        form.BrideName,
		Date:             form.Date,
		VenueName:        form.VenueName,
		GuestsCount:      calculator.ParseAmount(form.GuestsCount),
		PrepLocation:     form.PrepLocation,
		RegistrationType: form.RegistrationType,
		OrganizerID:      form.OrganizerID,
		OrganizerName:    team.ResolveName(form.OrganizerID, roster, owner.Name),
		ClientPassword:   ClientPassword(),
		Guests:           []models.Guest{},
		Timing:           Timing(NewID),
	}
	if p.PrepLocation == "" {
		p.PrepLocation = models.PrepHome
	}
	if p.RegistrationType == "" {
		p.RegistrationType = models.RegistrationOfficial
	}

	opts := calculator.OptionsFor(p, now)
	p.Tasks = calculator.GenerateTasks(now, p.Date, TaskTemplate, opts, NewID)
	p.Expenses = append(Expenses(), calculator.ExtraExpenses(opts)...)
	return p
}

// ClientPassword returns a random four-digit code.
func ClientPassword() string {
	return fmt.Sprintf("%d", 1000+rand.IntN(9000))
}

// Demo builds the ephemeral project served for an unknown share id.
func Demo(id string, now time.Time) models.Project {
	return models.Project{
		ID:               id,
		GroomName:        "Ivan",
		BrideName:        "Anna",
		Date:             now,
		PrepLocation:     models.PrepHome,
		RegistrationType: models.RegistrationOfficial,
		OrganizerName:    "Demo organizer",
		ClientPassword:   "123",
		Tasks:            calculator.GenerateTasks(now, now, TaskTemplate, calculator.ScheduleOptions{Now: now}, NewID),
		Expenses:         Expenses(),
		Guests:           []models.Guest{},
		Timing:           Timing(NewID),
	}
}
