package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/wedcontrol/internal/calculator"
	"github.com/mmynk/wedcontrol/internal/export"
	"github.com/mmynk/wedcontrol/internal/models"
	"github.com/mmynk/wedcontrol/internal/mutation"
	"github.com/mmynk/wedcontrol/internal/seed"
	"github.com/mmynk/wedcontrol/internal/storage"
	"github.com/mmynk/wedcontrol/pkg/api"
)

// ProjectService implements the Connect ProjectService.
type ProjectService struct {
	store   *storage.ProjectStore
	mutator *mutation.Mutator
	now     func() time.Time
}

// NewProjectService creates a ProjectService over a loaded store.
func NewProjectService(store *storage.ProjectStore) *ProjectService {
	return &ProjectService{
		store:   store,
		mutator: mutation.New(store),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// CreateProject builds a project from the creation form and stores it.
func (s *ProjectService) CreateProject(ctx context.Context, req *connect.Request[api.CreateProjectRequest]) (*connect.Response[api.CreateProjectResponse], error) {
	slog.Info("CreateProject request received",
		"groom", req.Msg.GroomName,
		"bride", req.Msg.BrideName,
		"organizer_id", req.Msg.OrganizerId,
	)

	prep, err := parsePrepLocation(req.Msg.PrepLocation)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	reg, err := parseRegistrationType(req.Msg.RegistrationType)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	form := seed.Form{
		GroomName:        req.Msg.GroomName,
		BrideName:        req.Msg.BrideName,
		Date:             req.Msg.Date,
		VenueName:        req.Msg.VenueName,
		GuestsCount:      req.Msg.GuestsCount,
		OrganizerID:      req.Msg.OrganizerId,
		PrepLocation:     prep,
		RegistrationType: reg,
	}
	p := seed.NewProject(form, s.store.Team(), s.store.Profile(), s.now())
	s.store.Upsert(ctx, p)

	slog.Info("Project created", "project_id", p.ID, "tasks", len(p.Tasks), "expenses", len(p.Expenses))

	return connect.NewResponse(&api.CreateProjectResponse{
		Project: toAPIProject(p),
	}), nil
}

// ListProjects returns the active and archived partitions.
func (s *ProjectService) ListProjects(ctx context.Context, req *connect.Request[api.ListProjectsRequest]) (*connect.Response[api.ListProjectsResponse], error) {
	slog.Info("ListProjects request received")

	active, archived := calculator.Partition(s.store.List())

	slog.Info("ListProjects successful", "active", len(active), "archived", len(archived))

	return connect.NewResponse(&api.ListProjectsResponse{
		Active:   convertAll(active, toAPISummary),
		Archived: convertAll(archived, toAPISummary),
	}), nil
}

// GetProject returns one project with its overview figures. Tasks come back
// in display order.
func (s *ProjectService) GetProject(ctx context.Context, req *connect.Request[api.GetProjectRequest]) (*connect.Response[api.GetProjectResponse], error) {
	slog.Info("GetProject request received", "project_id", req.Msg.ProjectId)

	p, err := s.lookup(req.Msg.ProjectId)
	if err != nil {
		slog.Error("GetProject failed", "project_id", req.Msg.ProjectId, "error", err)
		return nil, err
	}

	overview := calculator.Summarize(p, s.now())
	p.Tasks = calculator.DisplayOrder(p.Tasks)

	return connect.NewResponse(&api.GetProjectResponse{
		Project:  toAPIProject(p),
		Overview: toAPIOverview(overview),
	}), nil
}

// UpdateProject applies one edit to a stored project.
func (s *ProjectService) UpdateProject(ctx context.Context, req *connect.Request[api.UpdateProjectRequest]) (*connect.Response[api.UpdateProjectResponse], error) {
	slog.Info("UpdateProject request received", "project_id", req.Msg.ProjectId)

	if _, err := s.lookup(req.Msg.ProjectId); err != nil {
		slog.Error("UpdateProject failed", "project_id", req.Msg.ProjectId, "error", err)
		return nil, err
	}

	update, err := toUpdate(req.Msg.Update)
	if err != nil {
		slog.Warn("UpdateProject rejected", "project_id", req.Msg.ProjectId, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	// The project may have been deleted since the lookup.
	next, ok := s.mutator.Apply(ctx, req.Msg.ProjectId, update)
	if !ok {
		return nil, notFound(req.Msg.ProjectId)
	}

	slog.Info("Project updated", "project_id", next.ID, "update", update.Kind())

	return connect.NewResponse(&api.UpdateProjectResponse{
		Project: toAPIProject(next),
	}), nil
}

// ToggleArchive moves a project between the active and archived lists. An
// unconfirmed request changes nothing.
func (s *ProjectService) ToggleArchive(ctx context.Context, req *connect.Request[api.ToggleArchiveRequest]) (*connect.Response[api.ToggleArchiveResponse], error) {
	slog.Info("ToggleArchive request received", "project_id", req.Msg.ProjectId, "confirm", req.Msg.Confirm)

	p, err := s.lookup(req.Msg.ProjectId)
	if err != nil {
		slog.Error("ToggleArchive failed", "project_id", req.Msg.ProjectId, "error", err)
		return nil, err
	}
	if !req.Msg.Confirm {
		return connect.NewResponse(&api.ToggleArchiveResponse{Project: toAPIProject(p)}), nil
	}

	p, ok := s.store.Modify(ctx, p.ID, calculator.ToggleArchive)
	if !ok {
		return nil, notFound(req.Msg.ProjectId)
	}

	slog.Info("Project archive state changed", "project_id", p.ID, "archived", p.IsArchived)

	return connect.NewResponse(&api.ToggleArchiveResponse{
		Project: toAPIProject(p),
		Changed: true,
	}), nil
}

// DeleteProject removes a project. An unconfirmed request changes nothing.
func (s *ProjectService) DeleteProject(ctx context.Context, req *connect.Request[api.DeleteProjectRequest]) (*connect.Response[api.DeleteProjectResponse], error) {
	slog.Info("DeleteProject request received", "project_id", req.Msg.ProjectId, "confirm", req.Msg.Confirm)

	if _, err := s.lookup(req.Msg.ProjectId); err != nil {
		slog.Error("DeleteProject failed", "project_id", req.Msg.ProjectId, "error", err)
		return nil, err
	}
	if !req.Msg.Confirm {
		return connect.NewResponse(&api.DeleteProjectResponse{}), nil
	}

	deleted := s.store.Remove(ctx, req.Msg.ProjectId)

	slog.Info("Project deleted", "project_id", req.Msg.ProjectId)

	return connect.NewResponse(&api.DeleteProjectResponse{Deleted: deleted}), nil
}

// ExportProject renders one view of a project as a CSV or XLSX file.
func (s *ProjectService) ExportProject(ctx context.Context, req *connect.Request[api.ExportProjectRequest]) (*connect.Response[api.ExportProjectResponse], error) {
	slog.Info("ExportProject request received",
		"project_id", req.Msg.ProjectId,
		"view", req.Msg.View,
		"format", req.Msg.Format,
	)

	p, err := s.lookup(req.Msg.ProjectId)
	if err != nil {
		slog.Error("ExportProject failed", "project_id", req.Msg.ProjectId, "error", err)
		return nil, err
	}

	view := export.View(req.Msg.View)
	format := export.Format(req.Msg.Format)
	if format == "" {
		format = export.FormatCSV
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, p, view, format); err != nil {
		slog.Warn("ExportProject rejected", "project_id", p.ID, "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	return connect.NewResponse(&api.ExportProjectResponse{
		Filename:    export.Filename(view, format),
		ContentType: format.ContentType(),
		Data:        buf.Bytes(),
	}), nil
}

func (s *ProjectService) lookup(id string) (models.Project, error) {
	if id == "" {
		return models.Project{}, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("project_id required"))
	}
	p, ok := s.store.Get(id)
	if !ok {
		return models.Project{}, notFound(id)
	}
	return p, nil
}

func notFound(id string) error {
	return connect.NewError(connect.CodeNotFound, fmt.Errorf("project %q: %w", id, storage.ErrNotFound))
}
