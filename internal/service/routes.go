package service

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"
	"golang.org/x/time/rate"

	"github.com/mmynk/wedcontrol/internal/auth"
	"github.com/mmynk/wedcontrol/internal/middleware"
	"github.com/mmynk/wedcontrol/internal/storage"
	"github.com/mmynk/wedcontrol/pkg/api"
	"github.com/mmynk/wedcontrol/pkg/api/apiconnect"
)

// Register mounts every RPC service and the share link endpoint on mux.
// shareLimit bounds how often share links store new demo projects.
func Register(mux *http.ServeMux, store *storage.ProjectStore, sessions *auth.SessionManager, shareLimit *rate.Limiter) {
	interceptors := connect.WithInterceptors(
		middleware.SessionInterceptor(sessions),
		middleware.LoggingInterceptor(),
	)

	shareSvc := NewShareService(store, sessions, shareLimit)

	mux.Handle(apiconnect.NewProjectServiceHandler(NewProjectService(store), interceptors))
	mux.Handle(apiconnect.NewTeamServiceHandler(NewTeamService(store), interceptors))
	mux.Handle(apiconnect.NewShareServiceHandler(shareSvc, interceptors))
	mux.Handle(apiconnect.NewProfileServiceHandler(NewProfileService(store), interceptors))
	mux.Handle("GET /share", ShareLinkHandler(shareSvc))
}

// ShareLinkHandler serves GET /share?id=<project id>, the target of a shared
// link. It answers with the same JSON body as ShareService.Resolve.
func ShareLinkHandler(svc *ShareService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := connect.NewRequest(&api.ResolveShareRequest{ProjectId: r.URL.Query().Get("id")})
		resp, err := svc.Resolve(r.Context(), req)
		if err != nil {
			status := http.StatusInternalServerError
			if connect.CodeOf(err) == connect.CodeInvalidArgument {
				status = http.StatusBadRequest
			}
			http.Error(w, err.Error(), status)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp.Msg); err != nil {
			slog.Error("Failed to write share response", "error", err)
		}
	})
}
