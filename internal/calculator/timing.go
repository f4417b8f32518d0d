package calculator

import (
	"slices"
	"strings"

	"github.com/mmynk/wedcontrol/internal/models"
)

// SortTiming returns a copy of entries ordered by time. Entries with equal
// times keep their insertion order.
func SortTiming(entries []models.TimingEntry) []models.TimingEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b models.TimingEntry) int {
		return strings.Compare(a.Time, b.Time)
	})
	return sorted
}

// DayStart is the time of the first schedule entry, or "09:00" for an empty
// schedule.
func DayStart(entries []models.TimingEntry) string {
	if len(entries) == 0 {
		return "09:00"
	}
	return entries[0].Time
}
