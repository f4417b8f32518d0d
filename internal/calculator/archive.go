package calculator

import "github.com/mmynk/wedcontrol/internal/models"

// Partition splits projects into active and archived, preserving order.
// Every project lands in exactly one of the two slices.
func Partition(projects []models.Project) (active, archived []models.Project) {
	for _, p := range projects {
		if p.IsArchived {
			archived = append(archived, p)
		} else {
			active = append(active, p)
		}
	}
	return active, archived
}

// ToggleArchive flips the archived flag. The caller persists the result.
func ToggleArchive(p models.Project) models.Project {
	p.IsArchived = !p.IsArchived
	return p
}
