package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/wedcontrol/internal/auth"
	"github.com/mmynk/wedcontrol/internal/models"
)

type contextKey string

const (
	sessionKey       contextKey = "session"
	sharedProjectKey contextKey = "shared_project"
)

// Session returns the viewer identity attached by SessionInterceptor. Calls
// without a valid token are the owner's.
func Session(ctx context.Context) models.Profile {
	if p, ok := ctx.Value(sessionKey).(models.Profile); ok {
		return p
	}
	return models.Profile{Role: models.RoleOwner}
}

// WithSession attaches a viewer identity to ctx.
func WithSession(ctx context.Context, p models.Profile) context.Context {
	return context.WithValue(ctx, sessionKey, p)
}

// SharedProject returns the project a guest session was issued for, or ""
// for the owner.
func SharedProject(ctx context.Context) string {
	id, _ := ctx.Value(sharedProjectKey).(string)
	return id
}

// WithSharedProject attaches the shared project id of a guest session to ctx.
func WithSharedProject(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sharedProjectKey, id)
}

// SessionInterceptor reads an optional "Authorization: Bearer" session token
// and attaches its identity to the request context. Missing or invalid tokens
// are ignored; the password on a project is cosmetic and nothing is gated on
// the role.
func SessionInterceptor(sessions *auth.SessionManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token, ok := bearerToken(req.Header().Get("Authorization")); ok {
				if claims, err := sessions.Validate(token); err == nil {
					ctx = WithSession(ctx, claims.Profile())
					ctx = WithSharedProject(ctx, claims.ProjectID)
				}
			}
			return next(ctx, req)
		}
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || scheme != "Bearer" || token == "" {
		return "", false
	}
	return token, true
}
