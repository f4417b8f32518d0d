package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/mmynk/wedcontrol/internal/auth"
	"github.com/mmynk/wedcontrol/internal/storage"
	"github.com/mmynk/wedcontrol/internal/storage/sqlite"
	"github.com/mmynk/wedcontrol/pkg/api/apiconnect"
)

type testClients struct {
	projects *apiconnect.ProjectServiceClient
	team     *apiconnect.TeamServiceClient
	share    *apiconnect.ShareServiceClient
	profile  *apiconnect.ProfileServiceClient
	store    *storage.ProjectStore
	sessions *auth.SessionManager
	url      string
}

// setupTestServer serves every service over a temp database.
func setupTestServer(t *testing.T) *testClients {
	t.Helper()

	kv, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	store := storage.NewProjectStore(kv)
	store.Load(context.Background())

	sessions := auth.NewSessionManager("test-secret", time.Hour)

	mux := http.NewServeMux()
	Register(mux, store, sessions, rate.NewLimiter(rate.Inf, 0))
	server := httptest.NewServer(mux)

	t.Cleanup(func() {
		server.Close()
		kv.Close()
	})

	return &testClients{
		projects: apiconnect.NewProjectServiceClient(http.DefaultClient, server.URL),
		team:     apiconnect.NewTeamServiceClient(http.DefaultClient, server.URL),
		share:    apiconnect.NewShareServiceClient(http.DefaultClient, server.URL),
		profile:  apiconnect.NewProfileServiceClient(http.DefaultClient, server.URL),
		store:    store,
		sessions: sessions,
		url:      server.URL,
	}
}
