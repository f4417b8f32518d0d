// Package team resolves organizers against the team roster.
package team

import (
	"slices"

	"github.com/google/uuid"

	"github.com/mmynk/wedcontrol/internal/models"
)

// ResolveName returns the display name of the organizer. An empty id, the
// owner sentinel or an id missing from the roster all resolve to fallback.
func ResolveName(organizerID string, roster []models.TeamMember, fallback string) string {
	if organizerID == "" || organizerID == models.OwnerSentinel {
		return fallback
	}
	for _, m := range roster {
		if m.ID == organizerID {
			return m.Name
		}
	}
	return fallback
}

// Add returns a new roster with member appended. A member without an id
// gets a UUID.
func Add(roster []models.TeamMember, member models.TeamMember) []models.TeamMember {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	out := make([]models.TeamMember, 0, len(roster)+1)
	out = append(out, roster...)
	return append(out, member)
}

// Remove returns a new roster without the member with the given id.
func Remove(roster []models.TeamMember, id string) []models.TeamMember {
	return slices.DeleteFunc(slices.Clone(roster), func(m models.TeamMember) bool {
		return m.ID == id
	})
}
