package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mmynk/wedcontrol/internal/calculator"
	"github.com/mmynk/wedcontrol/internal/metrics"
	"github.com/mmynk/wedcontrol/internal/models"
	"github.com/mmynk/wedcontrol/internal/team"
)

// ProjectStore owns the workspace state: the project collection, the team
// roster and the user profile. The in-memory copy is authoritative; every
// change rewrites the whole affected record in the KV backend. Write
// failures are logged and counted but never returned.
type ProjectStore struct {
	mu       sync.Mutex
	kv       KV
	projects []models.Project
	team     []models.TeamMember
	profile  models.Profile
}

// NewProjectStore creates an empty store backed by kv. Call Load to read the
// persisted state.
func NewProjectStore(kv KV) *ProjectStore {
	return &ProjectStore{
		kv:      kv,
		profile: models.DefaultProfile(),
	}
}

// Load reads all three records from the backend and returns the project
// collection. Missing or malformed records load as empty (or, for the
// profile, as the default owner profile).
func (s *ProjectStore) Load(ctx context.Context) []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	var projects []models.Project
	if !loadRecord(ctx, s.kv, KeyProjects, &projects) {
		projects = nil
	}
	var roster []models.TeamMember
	if !loadRecord(ctx, s.kv, KeyTeam, &roster) {
		roster = nil
	}
	profile := models.DefaultProfile()
	if !loadRecord(ctx, s.kv, KeyUser, &profile) {
		profile = models.DefaultProfile()
	}

	s.projects = projects
	s.team = roster
	s.profile = profile
	s.observe()

	slog.Info("Workspace loaded",
		"projects", len(projects),
		"team", len(roster),
		"profile", profile.Name,
	)
	return cloneProjects(s.projects)
}

// List returns a copy of the project collection in insertion order.
func (s *ProjectStore) List() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProjects(s.projects)
}

// Get returns the project with the given id.
func (s *ProjectStore) Get(id string) (models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.projects[i].Clone(), true
	}
	return models.Project{}, false
}

// Upsert replaces the project with the same id, or appends it, and then
// persists the whole collection.
func (s *ProjectStore) Upsert(ctx context.Context, p models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p = p.Clone()
	if i := s.indexOf(p.ID); i >= 0 {
		next := cloneProjects(s.projects)
		next[i] = p
		s.projects = next
	} else {
		s.projects = append(cloneProjects(s.projects), p)
	}
	s.observe()
	s.persist(ctx, KeyProjects, s.projects)
}

// Modify replaces the project stored under id with fn applied to a copy of
// it and persists the collection. The lookup, fn and the write happen under
// one lock. It reports false, without calling fn, when id is unknown.
func (s *ProjectStore) Modify(ctx context.Context, id string, fn func(models.Project) models.Project) (models.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Project{}, false
	}
	next := cloneProjects(s.projects)
	next[i] = fn(next[i]).Clone()
	next[i].ID = id
	s.projects = next
	s.observe()
	s.persist(ctx, KeyProjects, s.projects)
	return s.projects[i].Clone(), true
}

// GetOrInsert returns the project stored under id. When there is none it
// stores create() under id and returns that instead; created reports which
// case happened. Concurrent callers for the same id all observe one project.
func (s *ProjectStore) GetOrInsert(ctx context.Context, id string, create func() models.Project) (p models.Project, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.projects[i].Clone(), false
	}
	p = create().Clone()
	p.ID = id
	s.projects = append(cloneProjects(s.projects), p)
	s.observe()
	s.persist(ctx, KeyProjects, s.projects)
	return p.Clone(), true
}

// Remove deletes the project with the given id and persists the collection.
// It reports whether a project was removed.
func (s *ProjectStore) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	next := make([]models.Project, 0, len(s.projects)-1)
	next = append(next, s.projects[:i]...)
	next = append(next, s.projects[i+1:]...)
	s.projects = next
	s.observe()
	s.persist(ctx, KeyProjects, s.projects)
	return true
}

// Team returns a copy of the team roster.
func (s *ProjectStore) Team() []models.TeamMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.TeamMember(nil), s.team...)
}

// UpdateTeam replaces the roster with fn applied to the current one and
// persists it.
func (s *ProjectStore) UpdateTeam(ctx context.Context, fn func([]models.TeamMember) []models.TeamMember) []models.TeamMember {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.team = fn(append([]models.TeamMember(nil), s.team...))
	s.persist(ctx, KeyTeam, s.team)
	return append([]models.TeamMember(nil), s.team...)
}

// AddMember appends m to the roster, assigning a UUID when m has no id, and
// returns the stored member.
func (s *ProjectStore) AddMember(ctx context.Context, m models.TeamMember) models.TeamMember {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	s.UpdateTeam(ctx, func(roster []models.TeamMember) []models.TeamMember {
		return team.Add(roster, m)
	})
	return m
}

// RemoveMember drops the member with the given id and returns the roster.
func (s *ProjectStore) RemoveMember(ctx context.Context, id string) []models.TeamMember {
	return s.UpdateTeam(ctx, func(roster []models.TeamMember) []models.TeamMember {
		return team.Remove(roster, id)
	})
}

// Profile returns the stored user profile.
func (s *ProjectStore) Profile() models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SetProfile replaces and persists the user profile.
func (s *ProjectStore) SetProfile(ctx context.Context, p models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = p
	s.persist(ctx, KeyUser, s.profile)
}

func (s *ProjectStore) indexOf(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}

// observe refreshes the partition gauges. Callers hold s.mu.
func (s *ProjectStore) observe() {
	active, archived := calculator.Partition(s.projects)
	metrics.ProjectsStored.WithLabelValues("active").Set(float64(len(active)))
	metrics.ProjectsStored.WithLabelValues("archived").Set(float64(len(archived)))
}

// persist rewrites one record. Errors are reported through logs and metrics
// only.
func (s *ProjectStore) persist(ctx context.Context, key string, v any) {
	metrics.StorageWritesTotal.WithLabelValues(key).Inc()

	data, err := json.Marshal(v)
	if err != nil {
		metrics.StorageWriteErrorsTotal.WithLabelValues(key).Inc()
		slog.Error("Failed to encode record", "record", key, "error", err)
		return
	}
	if err := s.kv.Put(ctx, key, data); err != nil {
		metrics.StorageWriteErrorsTotal.WithLabelValues(key).Inc()
		slog.Error("Failed to persist record", "record", key, "error", err)
	}
}

// loadRecord decodes the record under key into dst. It reports false when
// the record is absent, unreadable or malformed.
func loadRecord[T any](ctx context.Context, kv KV, key string, dst *T) bool {
	data, err := kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		slog.Debug("Record absent, using default", "record", key)
		return false
	}
	if err != nil {
		slog.Warn("Failed to read record, using default", "record", key, "error", err)
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		slog.Warn("Malformed record, using default", "record", key, "error", err)
		return false
	}
	return true
}

func cloneProjects(projects []models.Project) []models.Project {
	if projects == nil {
		return nil
	}
	out := make([]models.Project, len(projects))
	for i, p := range projects {
		out[i] = p.Clone()
	}
	return out
}
