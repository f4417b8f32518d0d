// Package apiconnect binds the api messages to Connect handlers and clients.
package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/wedcontrol/pkg/api"
)

const (
	// ProjectServiceName is the fully-qualified name of the ProjectService.
	ProjectServiceName = "wedcontrol.v1.ProjectService"
	// TeamServiceName is the fully-qualified name of the TeamService.
	TeamServiceName = "wedcontrol.v1.TeamService"
	// ShareServiceName is the fully-qualified name of the ShareService.
	ShareServiceName = "wedcontrol.v1.ShareService"
	// ProfileServiceName is the fully-qualified name of the ProfileService.
	ProfileServiceName = "wedcontrol.v1.ProfileService"
)

const (
	ProjectServiceCreateProjectProcedure = "/wedcontrol.v1.ProjectService/CreateProject"
	ProjectServiceListProjectsProcedure  = "/wedcontrol.v1.ProjectService/ListProjects"
	ProjectServiceGetProjectProcedure    = "/wedcontrol.v1.ProjectService/GetProject"
	ProjectServiceUpdateProjectProcedure = "/wedcontrol.v1.ProjectService/UpdateProject"
	ProjectServiceToggleArchiveProcedure = "/wedcontrol.v1.ProjectService/ToggleArchive"
	ProjectServiceDeleteProjectProcedure = "/wedcontrol.v1.ProjectService/DeleteProject"
	ProjectServiceExportProjectProcedure = "/wedcontrol.v1.ProjectService/ExportProject"
)

// ProjectServiceHandler is implemented by the server.
type ProjectServiceHandler interface {
	CreateProject(context.Context, *connect.Request[api.CreateProjectRequest]) (*connect.Response[api.CreateProjectResponse], error)
	ListProjects(context.Context, *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error)
	GetProject(context.Context, *connect.Request[api.GetProjectRequest]) (*connect.Response[api.GetProjectResponse], error)
	UpdateProject(context.Context, *connect.Request[api.UpdateProjectRequest]) (*connect.Response[api.UpdateProjectResponse], error)
	ToggleArchive(context.Context, *connect.Request[api.ToggleArchiveRequest]) (*connect.Response[api.ToggleArchiveResponse], error)
	DeleteProject(context.Context, *connect.Request[api.DeleteProjectRequest]) (*connect.Response[api.DeleteProjectResponse], error)
	ExportProject(context.Context, *connect.Request[api.ExportProjectRequest]) (*connect.Response[api.ExportProjectResponse], error)
}

// NewProjectServiceHandler builds an HTTP handler for svc and returns the
// path to mount it on.
func NewProjectServiceHandler(svc ProjectServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return serviceHandler(ProjectServiceName, map[string]http.Handler{
		ProjectServiceCreateProjectProcedure: connect.NewUnaryHandler(ProjectServiceCreateProjectProcedure, svc.CreateProject, opts...),
		ProjectServiceListProjectsProcedure:  connect.NewUnaryHandler(ProjectServiceListProjectsProcedure, svc.ListProjects, opts...),
		ProjectServiceGetProjectProcedure:    connect.NewUnaryHandler(ProjectServiceGetProjectProcedure, svc.GetProject, opts...),
		ProjectServiceUpdateProjectProcedure: connect.NewUnaryHandler(ProjectServiceUpdateProjectProcedure, svc.UpdateProject, opts...),
		ProjectServiceToggleArchiveProcedure: connect.NewUnaryHandler(ProjectServiceToggleArchiveProcedure, svc.ToggleArchive, opts...),
		ProjectServiceDeleteProjectProcedure: connect.NewUnaryHandler(ProjectServiceDeleteProjectProcedure, svc.DeleteProject, opts...),
		ProjectServiceExportProjectProcedure: connect.NewUnaryHandler(ProjectServiceExportProjectProcedure, svc.ExportProject, opts...),
	})
}

// ProjectServiceClient calls a remote ProjectService.
type ProjectServiceClient struct {
	createProject *connect.Client[api.CreateProjectRequest, api.CreateProjectResponse]
	listProjects  *connect.Client[api.ListProjectsRequest, api.ListProjectsResponse]
	getProject    *connect.Client[api.GetProjectRequest, api.GetProjectResponse]
	updateProject *connect.Client[api.UpdateProjectRequest, api.UpdateProjectResponse]
	toggleArchive *connect.Client[api.ToggleArchiveRequest, api.ToggleArchiveResponse]
	deleteProject *connect.Client[api.DeleteProjectRequest, api.DeleteProjectResponse]
	exportProject *connect.Client[api.ExportProjectRequest, api.ExportProjectResponse]
}

// NewProjectServiceClient creates a client for the service at baseURL.
func NewProjectServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ProjectServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &ProjectServiceClient{
		createProject: connect.NewClient[api.CreateProjectRequest, api.CreateProjectResponse](httpClient, baseURL+ProjectServiceCreateProjectProcedure, opts...),
		listProjects:  connect.NewClient[api.ListProjectsRequest, api.ListProjectsResponse](httpClient, baseURL+ProjectServiceListProjectsProcedure, opts...),
		getProject:    connect.NewClient[api.GetProjectRequest, api.GetProjectResponse](httpClient, baseURL+ProjectServiceGetProjectProcedure, opts...),
		updateProject: connect.NewClient[api.UpdateProjectRequest, api.UpdateProjectResponse](httpClient, baseURL+ProjectServiceUpdateProjectProcedure, opts...),
		toggleArchive: connect.NewClient[api.ToggleArchiveRequest, api.ToggleArchiveResponse](httpClient, baseURL+ProjectServiceToggleArchiveProcedure, opts...),
		deleteProject: connect.NewClient[api.DeleteProjectRequest, api.DeleteProjectResponse](httpClient, baseURL+ProjectServiceDeleteProjectProcedure, opts...),
		exportProject: connect.NewClient[api.ExportProjectRequest, api.ExportProjectResponse](httpClient, baseURL+ProjectServiceExportProjectProcedure, opts...),
	}
}

func (c *ProjectServiceClient) CreateProject(ctx context.Context, req *connect.Request[api.CreateProjectRequest]) (*connect.Response[api.CreateProjectResponse], error) {
	return c.createProject.CallUnary(ctx, req)
}

func (c *ProjectServiceClient) ListProjects(ctx context.Context, req *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error) {
	return c.listProjects.CallUnary(ctx, req)
}

func (c *ProjectServiceClient) GetProject(ctx context.Context, req *connect.Request[api.GetProjectRequest]) (*connect.Response[api.GetProjectResponse], error) {
	return c.getProject.CallUnary(ctx, req)
}

func (c *ProjectServiceClient) UpdateProject(ctx context.Context, req *connect.Request[api.UpdateProjectRequest]) (*connect.Response[api.UpdateProjectResponse], error) {
	return c.updateProject.CallUnary(ctx, req)
}

func (c *ProjectServiceClient) ToggleArchive(ctx context.Context, req *connect.Request[api.ToggleArchiveRequest]) (*connect.Response[api.ToggleArchiveResponse], error) {
	return c.toggleArchive.CallUnary(ctx, req)
}

func (c *ProjectServiceClient) DeleteProject(ctx context.Context, req *connect.Request[api.DeleteProjectRequest]) (*connect.Response[api.DeleteProjectResponse], error) {
	return c.deleteProject.CallUnary(ctx, req)
}

func (c *ProjectServiceClient) ExportProject(ctx context.Context, req *connect.Request[api.ExportProjectRequest]) (*connect.Response[api.ExportProjectResponse], error) {
	return c.exportProject.CallUnary(ctx, req)
}
