package storage_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/mmynk/wedcontrol/internal/models"
	"github.com/mmynk/wedcontrol/internal/storage"
	"github.com/mmynk/wedcontrol/internal/storage/sqlite"
)

// failingKV rejects every write and reads back from its map.
type failingKV struct {
	values map[string][]byte
}

func (f *failingKV) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := f.values[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return v, nil
}

func (f *failingKV) Put(context.Context, string, []byte) error {
	return errors.New("disk full")
}

func (f *failingKV) Close() error { return nil }

func openSQLite(t *testing.T, path string) *sqlite.SQLiteStore {
	t.Helper()
	kv, err := sqlite.New(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv
}

func sampleProject(id string) models.Project {
	return models.Project{
		ID:        id,
		GroomName: "Ivan",
		BrideName: "Anna",
		Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		Tasks: []models.Task{
			{ID: "t1", Text: "Choose the venue", Deadline: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)},
		},
		Expenses: []models.Expense{{Name: "Cake", Plan: 20000}},
		Guests:   []models.Guest{},
		Timing:   []models.TimingEntry{{ID: "m1", Time: "09:00", Event: "Wake up"}},
	}
}

func TestProjectStore_LoadEmpty(t *testing.T) {
	kv := openSQLite(t, filepath.Join(t.TempDir(), "test.db"))
	store := storage.NewProjectStore(kv)

	projects := store.Load(context.Background())
	if len(projects) != 0 {
		t.Errorf("expected empty collection, got %d", len(projects))
	}
	if store.Profile() != models.DefaultProfile() {
		t.Errorf("expected default profile, got %+v", store.Profile())
	}
	if len(store.Team()) != 0 {
		t.Errorf("expected empty team, got %d", len(store.Team()))
	}
}

func TestProjectStore_LoadMalformed(t *testing.T) {
	kv := &failingKV{values: map[string][]byte{
		storage.KeyProjects: []byte(`{not json`),
		storage.KeyTeam:     []byte(`"a string"`),
		storage.KeyUser:     []byte(`[1,2,3]`),
	}}
	store := storage.NewProjectStore(kv)

	projects := store.Load(context.Background())
	if len(projects) != 0 {
		t.Errorf("expected empty collection, got %d", len(projects))
	}
	if len(store.Team()) != 0 {
		t.Errorf("expected empty team, got %d", len(store.Team()))
	}
	if store.Profile() != models.DefaultProfile() {
		t.Errorf("expected default profile, got %+v", store.Profile())
	}
}

func TestProjectStore_UpsertAndRemove(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store := storage.NewProjectStore(openSQLite(t, dbPath))
	store.Load(ctx)

	p1 := sampleProject("p1")
	p2 := sampleProject("p2")
	store.Upsert(ctx, p1)
	store.Upsert(ctx, p2)

	if got := store.List(); len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p2" {
		t.Fatalf("expected [p1 p2], got %+v", got)
	}

	p1.Notes = "changed"
	store.Upsert(ctx, p1)
	list := store.List()
	if len(list) != 2 {
		t.Fatalf("upsert of existing id should replace, got %d entries", len(list))
	}
	if list[0].Notes != "changed" {
		t.Errorf("expected replaced project in place, got notes %q", list[0].Notes)
	}

	if !store.Remove(ctx, "p2") {
		t.Error("expected Remove to report removal")
	}
	if store.Remove(ctx, "p2") {
		t.Error("expected second Remove to report nothing removed")
	}
	if _, ok := store.Get("p2"); ok {
		t.Error("p2 should be gone")
	}

	// A fresh store over the same database sees the persisted state
	reloaded := storage.NewProjectStore(openSQLite(t, dbPath))
	projects := reloaded.Load(ctx)
	if len(projects) != 1 {
		t.Fatalf("expected 1 persisted project, got %d", len(projects))
	}
	if projects[0].ID != "p1" || projects[0].Notes != "changed" {
		t.Errorf("unexpected persisted project: %+v", projects[0])
	}
	if len(projects[0].Tasks) != 1 || !projects[0].Tasks[0].Deadline.Equal(p1.Tasks[0].Deadline) {
		t.Errorf("tasks not persisted: %+v", projects[0].Tasks)
	}
}

func TestProjectStore_Modify(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store := storage.NewProjectStore(openSQLite(t, dbPath))
	store.Load(ctx)
	store.Upsert(ctx, sampleProject("p1"))

	if _, ok := store.Modify(ctx, "missing", func(p models.Project) models.Project {
		t.Error("fn must not run for an unknown id")
		return p
	}); ok {
		t.Error("expected Modify to report an unknown id")
	}

	// Concurrent edits each see the previous one
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Modify(ctx, "p1", func(p models.Project) models.Project {
				p.GuestsCount++
				return p
			})
		}()
	}
	wg.Wait()

	got, ok := store.Modify(ctx, "p1", func(p models.Project) models.Project {
		p.ID = "renamed"
		return p
	})
	if !ok {
		t.Fatal("expected p1 to be found")
	}
	if got.ID != "p1" {
		t.Errorf("Modify must keep the id, got %q", got.ID)
	}
	if got.GuestsCount != 20 {
		t.Errorf("expected 20 serialized increments, got %d", got.GuestsCount)
	}

	reloaded := storage.NewProjectStore(openSQLite(t, dbPath))
	projects := reloaded.Load(ctx)
	if len(projects) != 1 || projects[0].GuestsCount != 20 {
		t.Errorf("modification not persisted: %+v", projects)
	}
}

func TestProjectStore_GetOrInsert(t *testing.T) {
	store := storage.NewProjectStore(openSQLite(t, filepath.Join(t.TempDir(), "test.db")))
	ctx := context.Background()
	store.Load(ctx)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		results []models.Project
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, isNew := store.GetOrInsert(ctx, "shared", func() models.Project {
				p := sampleProject("ignored")
				p.Notes = time.Now().String()
				return p
			})
			mu.Lock()
			defer mu.Unlock()
			if isNew {
				created++
			}
			results = append(results, p)
		}()
	}
	wg.Wait()

	if created != 1 {
		t.Errorf("expected exactly one insert, got %d", created)
	}
	for _, p := range results {
		if p.ID != "shared" {
			t.Errorf("expected id to be forced to 'shared', got %q", p.ID)
		}
		if !reflect.DeepEqual(p, results[0]) {
			t.Errorf("callers observed different projects:\n%+v\n%+v", p, results[0])
		}
	}
	if list := store.List(); len(list) != 1 || !reflect.DeepEqual(list[0], results[0]) {
		t.Errorf("store does not hold the returned project: %+v", list)
	}
}

func TestProjectStore_ReturnsCopies(t *testing.T) {
	kv := openSQLite(t, filepath.Join(t.TempDir(), "test.db"))
	store := storage.NewProjectStore(kv)
	ctx := context.Background()

	p := sampleProject("p1")
	store.Upsert(ctx, p)
	p.Tasks[0].Text = "mutated by caller"

	got, _ := store.Get("p1")
	if got.Tasks[0].Text != "Choose the venue" {
		t.Errorf("store shares memory with caller: %q", got.Tasks[0].Text)
	}

	got.Expenses[0].Plan = 1
	again, _ := store.Get("p1")
	if again.Expenses[0].Plan != 20000 {
		t.Errorf("Get returned aliased slice: plan %d", again.Expenses[0].Plan)
	}
}

func TestProjectStore_WriteFailureIsNotSurfaced(t *testing.T) {
	store := storage.NewProjectStore(&failingKV{values: map[string][]byte{}})
	ctx := context.Background()
	store.Load(ctx)

	p := sampleProject("p1")
	store.Upsert(ctx, p)

	got, ok := store.Get("p1")
	if !ok {
		t.Fatal("in-memory state should stay authoritative after a failed write")
	}
	if !reflect.DeepEqual(got, p) {
		t.Errorf("project mismatch:\n got %+v\nwant %+v", got, p)
	}
}

func TestProjectStore_TeamAndProfile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store := storage.NewProjectStore(openSQLite(t, dbPath))
	store.Load(ctx)

	store.UpdateTeam(ctx, func(roster []models.TeamMember) []models.TeamMember {
		return append(roster, models.TeamMember{ID: "m1", Name: "Olga"})
	})
	store.SetProfile(ctx, models.Profile{Name: "Maria", Role: models.RoleOwner})

	reloaded := storage.NewProjectStore(openSQLite(t, dbPath))
	reloaded.Load(ctx)

	team := reloaded.Team()
	if len(team) != 1 || team[0].Name != "Olga" {
		t.Errorf("team not persisted: %+v", team)
	}
	if reloaded.Profile().Name != "Maria" {
		t.Errorf("profile not persisted: %+v", reloaded.Profile())
	}
}

func TestProjectStore_AddRemoveMember(t *testing.T) {
	store := storage.NewProjectStore(openSQLite(t, filepath.Join(t.TempDir(), "test.db")))
	ctx := context.Background()
	store.Load(ctx)

	olga := store.AddMember(ctx, models.TeamMember{Name: "Olga"})
	if olga.ID == "" {
		t.Fatal("expected generated member id")
	}
	store.AddMember(ctx, models.TeamMember{ID: "m2", Name: "Petr"})

	roster := store.RemoveMember(ctx, olga.ID)
	if len(roster) != 1 || roster[0].ID != "m2" {
		t.Errorf("unexpected roster: %+v", roster)
	}
	if got := store.Team(); !reflect.DeepEqual(got, roster) {
		t.Errorf("Team() = %+v, want %+v", got, roster)
	}
}
