package api

import "time"

// ProjectService

type CreateProjectRequest struct {
	GroomName        string    `json:"groomName"`
	BrideName        string    `json:"brideName"`
	Date             time.Time `json:"date"`
	VenueName        string    `json:"venueName"`
	GuestsCount      string    `json:"guestsCount"`
	OrganizerId      string    `json:"organizerId"`
	PrepLocation     string    `json:"prepLocation"`
	RegistrationType string    `json:"registrationType"`
}

type CreateProjectResponse struct {
	Project *Project `json:"project"`
}

type ListProjectsRequest struct{}

type ListProjectsResponse struct {
	Active   []ProjectSummary `json:"active"`
	Archived []ProjectSummary `json:"archived"`
}

type GetProjectRequest struct {
	ProjectId string `json:"projectId"`
}

type GetProjectResponse struct {
	Project  *Project  `json:"project"`
	Overview *Overview `json:"overview"`
}

type UpdateProjectRequest struct {
	ProjectId string         `json:"projectId"`
	Update    *ProjectUpdate `json:"update"`
}

type UpdateProjectResponse struct {
	Project *Project `json:"project"`
}

type ToggleArchiveRequest struct {
	ProjectId string `json:"projectId"`
	Confirm   bool   `json:"confirm"`
}

type ToggleArchiveResponse struct {
	Project *Project `json:"project"`
	Changed bool     `json:"changed"`
}

type DeleteProjectRequest struct {
	ProjectId string `json:"projectId"`
	Confirm   bool   `json:"confirm"`
}

type DeleteProjectResponse struct {
	Deleted bool `json:"deleted"`
}

type ExportProjectRequest struct {
	ProjectId string `json:"projectId"`
	View      string `json:"view"`
	// Format is "csv" (default) or "xlsx".
	Format string `json:"format"`
}

type ExportProjectResponse struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// TeamService

type ListMembersRequest struct{}

type ListMembersResponse struct {
	Members []TeamMember `json:"members"`
}

type AddMemberRequest struct {
	Name string `json:"name"`
}

type AddMemberResponse struct {
	Member  *TeamMember  `json:"member"`
	Members []TeamMember `json:"members"`
}

type RemoveMemberRequest struct {
	MemberId string `json:"memberId"`
}

type RemoveMemberResponse struct {
	Members []TeamMember `json:"members"`
}

// ShareService

type ResolveShareRequest struct {
	ProjectId string `json:"projectId"`
}

type ResolveShareResponse struct {
	Project *Project `json:"project"`
	Viewer  *Profile `json:"viewer"`
	// SessionToken identifies the guest on later calls as a bearer token.
	SessionToken string `json:"sessionToken"`
	// Stored is false when the project is an unsaved demo served while new
	// share links are being throttled.
	Stored bool `json:"stored"`
}

// ProfileService

type GetProfileRequest struct{}

type GetProfileResponse struct {
	Profile *Profile `json:"profile"`
	// Viewer is the identity of the calling session.
	Viewer *Profile `json:"viewer"`
	// ProjectId is the project a guest session was issued for. It is empty
	// for the owner.
	ProjectId string `json:"projectId,omitempty"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateProfileResponse struct {
	Profile *Profile `json:"profile"`
}
