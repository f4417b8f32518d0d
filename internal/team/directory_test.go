package team

import (
	"testing"

	"github.com/mmynk/wedcontrol/internal/models"
)

func TestResolveName(t *testing.T) {
	roster := []models.TeamMember{
		{ID: "m1", Name: "Olga"},
		{ID: "m2", Name: "Petr"},
	}

	tests := []struct {
		name        string
		organizerID string
		want        string
	}{
		{"member", "m2", "Petr"},
		{"empty id", "", "Owner"},
		{"owner sentinel", models.OwnerSentinel, "Owner"},
		{"unknown id", "m9", "Owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveName(tt.organizerID, roster, "Owner"); got != tt.want {
				t.Errorf("ResolveName(%q) = %q, want %q", tt.organizerID, got, tt.want)
			}
		})
	}
}

func TestAddRemove(t *testing.T) {
	roster := []models.TeamMember{{ID: "m1", Name: "Olga"}}

	added := Add(roster, models.TeamMember{Name: "Petr"})
	if len(added) != 2 {
		t.Fatalf("expected 2 members, got %d", len(added))
	}
	if added[1].ID == "" {
		t.Error("expected generated id")
	}
	if len(roster) != 1 {
		t.Error("Add must not modify the input roster")
	}

	removed := Remove(added, "m1")
	if len(removed) != 1 || removed[0].Name != "Petr" {
		t.Errorf("unexpected roster after remove: %+v", removed)
	}
	if len(added) != 2 || added[0].ID != "m1" {
		t.Errorf("Remove must not modify the input roster: %+v", added)
	}

	if got := Remove(removed, "missing"); len(got) != 1 {
		t.Errorf("removing unknown id changed roster: %+v", got)
	}
}
