package calculator

import (
	"math"
	"slices"
	"time"

	"github.com/mmynk/wedcontrol/internal/models"
)

// upcomingLimit is how many deadlines the overview lists.
const upcomingLimit = 3

// Overview is the summary shown on a project's landing page.
type Overview struct {
	DaysUntil   int
	OpenTasks   int
	Upcoming    []models.Task
	PercentPaid float64
	GuestCount  int
	DayStart    string
	Budget      Totals
}

// Summarize computes the overview figures of p as seen at now.
func Summarize(p models.Project, now time.Time) Overview {
	open := OpenTasks(p.Tasks)
	upcoming := open
	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}
	return Overview{
		DaysUntil:   DaysUntil(p.Date, now),
		OpenTasks:   len(open),
		Upcoming:    upcoming,
		PercentPaid: PercentPaid(p.Expenses),
		GuestCount:  len(p.Guests),
		DayStart:    DayStart(p.Timing),
		Budget:      Aggregate(p.Expenses),
	}
}

// OpenTasks returns the tasks not yet done, earliest deadline first.
func OpenTasks(tasks []models.Task) []models.Task {
	var open []models.Task
	for _, t := range tasks {
		if !t.Done {
			open = append(open, t)
		}
	}
	slices.SortStableFunc(open, func(a, b models.Task) int {
		return a.Deadline.Compare(b.Deadline)
	})
	return open
}

// DisplayOrder returns tasks with the open ones first. Relative order within
// each group is kept.
func DisplayOrder(tasks []models.Task) []models.Task {
	ordered := slices.Clone(tasks)
	slices.SortStableFunc(ordered, func(a, b models.Task) int {
		switch {
		case a.Done == b.Done:
			return 0
		case a.Done:
			return 1
		default:
			return -1
		}
	})
	return ordered
}

// DaysUntil counts whole days to the event, rounding partial days up.
// Past events give zero or negative values.
func DaysUntil(event, now time.Time) int {
	return int(math.Ceil(event.Sub(now).Hours() / 24))
}
