package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/mmynk/wedcontrol/internal/models"
)

func TestSortTiming(t *testing.T) {
	entries := []models.TimingEntry{
		{ID: "a", Time: "09:00", Event: "A"},
		{ID: "b", Time: "17:00", Event: "B"},
		{ID: "c", Time: "13:00", Event: "C"},
	}

	sorted := SortTiming(entries)

	want := []string{"A", "C", "B"}
	for i, e := range sorted {
		if e.Event != want[i] {
			t.Errorf("position %d = %s, want %s", i, e.Event, want[i])
		}
	}
	if entries[2].Event != "C" {
		t.Error("SortTiming must not reorder its input")
	}
}

func TestDayStart(t *testing.T) {
	if got := DayStart(nil); got != "09:00" {
		t.Errorf("DayStart(nil) = %q, want 09:00", got)
	}
	if got := DayStart([]models.TimingEntry{{Time: "07:30"}}); got != "07:30" {
		t.Errorf("DayStart = %q, want 07:30", got)
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		event time.Time
		want  int
	}{
		{"ten days", now.Add(10 * 24 * time.Hour), 10},
		{"partial day rounds up", now.Add(36 * time.Hour), 2},
		{"same moment", now, 0},
		{"past", now.Add(-48 * time.Hour), -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.event, now); got != tt.want {
				t.Errorf("DaysUntil() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day := func(d int) time.Time { return now.AddDate(0, 0, d) }

	p := models.Project{
		Date: day(30),
		Tasks: []models.Task{
			{ID: "1", Deadline: day(20)},
			{ID: "2", Deadline: day(1), Done: true},
			{ID: "3", Deadline: day(5)},
			{ID: "4", Deadline: day(10)},
			{ID: "5", Deadline: day(2)},
		},
		Expenses: []models.Expense{{Plan: 100, Fact: 80, Paid: 20}},
		Guests:   []models.Guest{{ID: "g"}},
	}

	o := Summarize(p, now)

	if o.DaysUntil != 30 {
		t.Errorf("DaysUntil = %d, want 30", o.DaysUntil)
	}
	if o.OpenTasks != 4 {
		t.Errorf("OpenTasks = %d, want 4", o.OpenTasks)
	}
	wantUpcoming := []string{"5", "3", "4"}
	if len(o.Upcoming) != len(wantUpcoming) {
		t.Fatalf("Upcoming = %+v, want ids %v", o.Upcoming, wantUpcoming)
	}
	for i, task := range o.Upcoming {
		if task.ID != wantUpcoming[i] {
			t.Errorf("Upcoming[%d] = %s, want %s", i, task.ID, wantUpcoming[i])
		}
	}
	if math.Abs(o.PercentPaid-0.25) > 1e-9 {
		t.Errorf("PercentPaid = %v, want 0.25", o.PercentPaid)
	}
	if o.GuestCount != 1 || o.DayStart != "09:00" {
		t.Errorf("unexpected overview: %+v", o)
	}
	if o.Budget.Remaining != 60 {
		t.Errorf("Budget.Remaining = %d, want 60", o.Budget.Remaining)
	}
}

func TestDisplayOrder(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Done: true},
		{ID: "2"},
		{ID: "3", Done: true},
		{ID: "4"},
	}
	got := DisplayOrder(tasks)
	want := []string{"2", "4", "1", "3"}
	for i, task := range got {
		if task.ID != want[i] {
			t.Errorf("position %d = %s, want %s", i, task.ID, want[i])
		}
	}
}
