package models

// Role distinguishes the workspace owner from a guest viewer who arrived
// through a share link.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleClient Role = "client"
)

// OwnerSentinel is the organizer id that means "the profile owner" rather
// than a roster entry.
const OwnerSentinel = "owner"

// Profile is the single user record of the workspace.
type Profile struct {
	// Name is the display name, also used as the organizer name of projects
	// created without a roster organizer.
	Name string `json:"name"`

	// Email is optional.
	Email string `json:"email,omitempty"`

	Role Role `json:"role"`
}

// DefaultProfile is used when no profile has been stored yet.
func DefaultProfile() Profile {
	return Profile{
		Name:  "Owner",
		Email: "owner@wed.control",
		Role:  RoleOwner,
	}
}

// GuestProfile is the session identity of a share-link viewer.
func GuestProfile() Profile {
	return Profile{Name: "Guest", Role: RoleClient}
}

// TeamMember is a named organizer who can be assigned to projects.
type TeamMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
