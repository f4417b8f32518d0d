package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/wedcontrol/pkg/api"
)

const (
	TeamServiceListMembersProcedure  = "/wedcontrol.v1.TeamService/ListMembers"
	TeamServiceAddMemberProcedure    = "/wedcontrol.v1.TeamService/AddMember"
	TeamServiceRemoveMemberProcedure = "/wedcontrol.v1.TeamService/RemoveMember"

	ShareServiceResolveProcedure = "/wedcontrol.v1.ShareService/Resolve"

	ProfileServiceGetProfileProcedure    = "/wedcontrol.v1.ProfileService/GetProfile"
	ProfileServiceUpdateProfileProcedure = "/wedcontrol.v1.ProfileService/UpdateProfile"
)

// TeamServiceHandler is implemented by the server.
type TeamServiceHandler interface {
	ListMembers(context.Context, *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error)
	AddMember(context.Context, *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error)
	RemoveMember(context.Context, *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.RemoveMemberResponse], error)
}

func NewTeamServiceHandler(svc TeamServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return serviceHandler(TeamServiceName, map[string]http.Handler{
		TeamServiceListMembersProcedure:  connect.NewUnaryHandler(TeamServiceListMembersProcedure, svc.ListMembers, opts...),
		TeamServiceAddMemberProcedure:    connect.NewUnaryHandler(TeamServiceAddMemberProcedure, svc.AddMember, opts...),
		TeamServiceRemoveMemberProcedure: connect.NewUnaryHandler(TeamServiceRemoveMemberProcedure, svc.RemoveMember, opts...),
	})
}

type TeamServiceClient struct {
	listMembers  *connect.Client[api.ListMembersRequest, api.ListMembersResponse]
	addMember    *connect.Client[api.AddMemberRequest, api.AddMemberResponse]
	removeMember *connect.Client[api.RemoveMemberRequest, api.RemoveMemberResponse]
}

func NewTeamServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *TeamServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &TeamServiceClient{
		listMembers:  connect.NewClient[api.ListMembersRequest, api.ListMembersResponse](httpClient, baseURL+TeamServiceListMembersProcedure, opts...),
		addMember:    connect.NewClient[api.AddMemberRequest, api.AddMemberResponse](httpClient, baseURL+TeamServiceAddMemberProcedure, opts...),
		removeMember: connect.NewClient[api.RemoveMemberRequest, api.RemoveMemberResponse](httpClient, baseURL+TeamServiceRemoveMemberProcedure, opts...),
	}
}

func (c *TeamServiceClient) ListMembers(ctx context.Context, req *connect.Request[api.ListMembersRequest]) (*connect.Response[api.ListMembersResponse], error) {
	return c.listMembers.CallUnary(ctx, req)
}

func (c *TeamServiceClient) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

func (c *TeamServiceClient) RemoveMember(ctx context.Context, req *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.RemoveMemberResponse], error) {
	return c.removeMember.CallUnary(ctx, req)
}

// ShareServiceHandler is implemented by the server.
type ShareServiceHandler interface {
	Resolve(context.Context, *connect.Request[api.ResolveShareRequest]) (*connect.Response[api.ResolveShareResponse], error)
}

func NewShareServiceHandler(svc ShareServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return serviceHandler(ShareServiceName, map[string]http.Handler{
		ShareServiceResolveProcedure: connect.NewUnaryHandler(ShareServiceResolveProcedure, svc.Resolve, opts...),
	})
}

type ShareServiceClient struct {
	resolve *connect.Client[api.ResolveShareRequest, api.ResolveShareResponse]
}

func NewShareServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ShareServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &ShareServiceClient{
		resolve: connect.NewClient[api.ResolveShareRequest, api.ResolveShareResponse](httpClient, baseURL+ShareServiceResolveProcedure, clientOptions(opts)...),
	}
}

func (c *ShareServiceClient) Resolve(ctx context.Context, req *connect.Request[api.ResolveShareRequest]) (*connect.Response[api.ResolveShareResponse], error) {
	return c.resolve.CallUnary(ctx, req)
}

// ProfileServiceHandler is implemented by the server.
type ProfileServiceHandler interface {
	GetProfile(context.Context, *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error)
	UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error)
}

func NewProfileServiceHandler(svc ProfileServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return serviceHandler(ProfileServiceName, map[string]http.Handler{
		ProfileServiceGetProfileProcedure:    connect.NewUnaryHandler(ProfileServiceGetProfileProcedure, svc.GetProfile, opts...),
		ProfileServiceUpdateProfileProcedure: connect.NewUnaryHandler(ProfileServiceUpdateProfileProcedure, svc.UpdateProfile, opts...),
	})
}

type ProfileServiceClient struct {
	getProfile    *connect.Client[api.GetProfileRequest, api.GetProfileResponse]
	updateProfile *connect.Client[api.UpdateProfileRequest, api.UpdateProfileResponse]
}

func NewProfileServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ProfileServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &ProfileServiceClient{
		getProfile:    connect.NewClient[api.GetProfileRequest, api.GetProfileResponse](httpClient, baseURL+ProfileServiceGetProfileProcedure, opts...),
		updateProfile: connect.NewClient[api.UpdateProfileRequest, api.UpdateProfileResponse](httpClient, baseURL+ProfileServiceUpdateProfileProcedure, opts...),
	}
}

func (c *ProfileServiceClient) GetProfile(ctx context.Context, req *connect.Request[api.GetProfileRequest]) (*connect.Response[api.GetProfileResponse], error) {
	return c.getProfile.CallUnary(ctx, req)
}

func (c *ProfileServiceClient) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	return c.updateProfile.CallUnary(ctx, req)
}
