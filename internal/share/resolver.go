// Package share resolves share-link identifiers to projects, materializing a
// demo project for identifiers the store has never seen.
package share

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/wedcontrol/internal/metrics"
	"github.com/mmynk/wedcontrol/internal/models"
	"github.com/mmynk/wedcontrol/internal/seed"
)

// Store is the subset of the project store the resolver needs.
type Store interface {
	GetOrInsert(ctx context.Context, id string, create func() models.Project) (models.Project, bool)
}

// Resolver looks up or materializes shared projects.
type Resolver struct {
	store Store
	now   func() time.Time
}

// NewResolver creates a Resolver over store.
func NewResolver(store Store) *Resolver {
	return &Resolver{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Resolve returns the project stored under id together with the guest
// session identity of the caller. Unknown ids are materialized from the demo
// template and stored under id, so later calls return the stored project.
// Resolve never fails.
func (r *Resolver) Resolve(ctx context.Context, id string) (models.Project, models.Profile) {
	p, created := r.store.GetOrInsert(ctx, id, func() models.Project {
		return seed.Demo(id, r.now())
	})

	if created {
		metrics.ShareResolutionsTotal.WithLabelValues("materialized").Inc()
		slog.Info("Share link materialized demo project", "project_id", id)
	} else {
		metrics.ShareResolutionsTotal.WithLabelValues("found").Inc()
		slog.Info("Share link resolved", "project_id", id)
	}
	return p, models.GuestProfile()
}

// Preview builds the demo project Resolve would store for id without
// storing it.
func (r *Resolver) Preview(id string) (models.Project, models.Profile) {
	metrics.ShareResolutionsTotal.WithLabelValues("preview").Inc()
	slog.Info("Share link served unsaved demo project", "project_id", id)
	return seed.Demo(id, r.now()), models.GuestProfile()
}
