package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"golang.org/x/time/rate"

	"github.com/mmynk/wedcontrol/internal/auth"
	"github.com/mmynk/wedcontrol/internal/middleware"
	"github.com/mmynk/wedcontrol/internal/models"
	"github.com/mmynk/wedcontrol/internal/share"
	"github.com/mmynk/wedcontrol/internal/storage"
	"github.com/mmynk/wedcontrol/pkg/api"
)

// TeamService implements the Connect TeamService.
type TeamService struct {
	store *storage.ProjectStore
}

func NewTeamService(store *storage.ProjectStore) *TeamService {
	return &TeamService{store: store}
}

func (s *TeamService) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	members := s.store.Team()
	slog.Info("ListMembers successful", "count", len(members))

	return connect.NewResponse(&api.ListMembersResponse{
		Members: convertAll(members, toAPIMember),
	}), nil
}

// AddMember appends an organizer to the roster. Projects created earlier keep
// the organizer name they were created with.
func (s *TeamService) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	slog.Info("AddMember request received", "name", name)

	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}

	member := s.store.AddMember(ctx, models.TeamMember{Name: name})

	slog.Info("Team member added", "member_id", member.ID)

	apiMember := toAPIMember(member)
	return connect.NewResponse(&api.AddMemberResponse{
		Member:  &apiMember,
		Members: convertAll(s.store.Team(), toAPIMember),
	}), nil
}

func (s *TeamService) RemoveMember(ctx context.Context, req *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.RemoveMemberResponse], error) {
	slog.Info("RemoveMember request received", "member_id", req.Msg.MemberId)

	roster := s.store.RemoveMember(ctx, req.Msg.MemberId)

	return connect.NewResponse(&api.RemoveMemberResponse{
		Members: convertAll(roster, toAPIMember),
	}), nil
}

// ShareService implements the Connect ShareService.
type ShareService struct {
	store    *storage.ProjectStore
	resolver *share.Resolver
	sessions *auth.SessionManager
	// limiter bounds how often unknown ids persist a new demo project. Over
	// the limit the demo is served without being stored.
	limiter *rate.Limiter
}

func NewShareService(store *storage.ProjectStore, sessions *auth.SessionManager, limiter *rate.Limiter) *ShareService {
	return &ShareService{
		store:    store,
		resolver: share.NewResolver(store),
		sessions: sessions,
		limiter:  limiter,
	}
}

// Resolve returns the shared project and a guest session token. Unknown ids
// get a freshly materialized demo project. It only fails on a missing id.
func (s *ShareService) Resolve(ctx context.Context, req *connect.Request[api.ResolveShareRequest]) (*connect.Response[api.ResolveShareResponse], error) {
	slog.Info("ResolveShare request received", "project_id", req.Msg.ProjectId)

	if req.Msg.ProjectId == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("project_id required"))
	}

	var (
		p      models.Project
		viewer models.Profile
		stored = true
	)
	if _, known := s.store.Get(req.Msg.ProjectId); !known && !s.limiter.Allow() {
		slog.Warn("ResolveShare throttled, not storing demo project", "project_id", req.Msg.ProjectId)
		p, viewer = s.resolver.Preview(req.Msg.ProjectId)
		stored = false
	} else {
		p, viewer = s.resolver.Resolve(ctx, req.Msg.ProjectId)
	}

	token, err := s.sessions.Generate(viewer, p.ID)
	if err != nil {
		slog.Error("Failed to issue guest session", "project_id", p.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.ResolveShareResponse{
		Project:      toAPIProject(p),
		Viewer:       toAPIProfile(viewer),
		SessionToken: token,
		Stored:       stored,
	}), nil
}

// ProfileService implements the Connect ProfileService.
type ProfileService struct {
	store *storage.ProjectStore
}

func NewProfileService(store *storage.ProjectStore) *ProfileService {
	return &ProfileService{store: store}
}

// GetProfile returns the stored profile and the identity of the caller.
func (s *ProfileService) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	profile := s.store.Profile()
	viewer := middleware.Session(ctx)
	if viewer.Role == models.RoleOwner {
		viewer = profile
	}

	return connect.NewResponse(&api.GetProfileResponse{
		Profile:   toAPIProfile(profile),
		Viewer:    toAPIProfile(viewer),
		ProjectId: middleware.SharedProject(ctx),
	}), nil
}

// UpdateProfile changes the owner's name and email. The role stays owner.
func (s *ProfileService) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	slog.Info("UpdateProfile request received", "name", req.Msg.Name)

	if strings.TrimSpace(req.Msg.Name) == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name required"))
	}

	profile := models.Profile{
		Name:  req.Msg.Name,
		Email: req.Msg.Email,
		Role:  models.RoleOwner,
	}
	s.store.SetProfile(ctx, profile)

	return connect.NewResponse(&api.UpdateProfileResponse{
		Profile: toAPIProfile(profile),
	}), nil
}
