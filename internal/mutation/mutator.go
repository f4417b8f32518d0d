// Package mutation is the single write path for project edits.
package mutation

import (
	"context"
	"log/slog"

	"github.com/mmynk/wedcontrol/internal/metrics"
	"github.com/mmynk/wedcontrol/internal/models"
)

// Store is the persistence boundary the mutator writes through. Modify must
// run fn and the write atomically with respect to other edits of id.
type Store interface {
	Modify(ctx context.Context, id string, fn func(models.Project) models.Project) (models.Project, bool)
}

// Mutator applies typed updates and forwards the result to the store.
type Mutator struct {
	store Store
}

// New creates a Mutator writing through store.
func New(store Store) *Mutator {
	return &Mutator{store: store}
}

// Apply applies u to the project stored under id and returns the new state.
// It reports false when no such project exists. Storage is best-effort: the
// returned project is the new state even if the write fails.
func (m *Mutator) Apply(ctx context.Context, id string, u Update) (models.Project, bool) {
	next, ok := m.store.Modify(ctx, id, u.apply)
	if !ok {
		return models.Project{}, false
	}

	metrics.MutationsTotal.WithLabelValues(u.Kind()).Inc()
	slog.Debug("Project updated", "project_id", next.ID, "update", u.Kind())
	return next, true
}
