// Package view derives the three-column board projection from the task
// list. It is a pure function of its inputs and never mutates store state.
package view

import (
	"sort"
	"strings"

	"tablero/internal/models"
)

// SortKey selects the ordering applied before grouping.
type SortKey string

const (
	// SortByCreated orders newest first. This is the default.
	SortByCreated SortKey = "createdAt"
	// SortByDueDate orders by due date ascending; tasks without a due date
	// sort after all tasks that have one.
	SortByDueDate SortKey = "dueDate"
)

// PriorityAll passes every priority through the filter.
const PriorityAll = "all"

// Params are the filter and sort inputs to the pipeline.
type Params struct {
	// Search is matched case-insensitively against the title only.
	Search string
	// Priority is one of the priority values or PriorityAll.
	Priority string
	// SortBy defaults to SortByCreated when empty.
	SortBy SortKey
}

// Grouped is the per-column projection, ordered within each column.
type Grouped map[models.Status][]models.Task

// Apply runs the pipeline: text filter, then priority filter, then sort,
// then group by column. The step order is fixed; reordering would change
// how ties land in the final per-column sequences.
func Apply(tasks []models.Task, p Params) Grouped {
	filtered := make([]models.Task, 0, len(tasks))

	query := strings.ToLower(strings.TrimSpace(p.Search))
	for _, t := range tasks {
		if query != "" && !strings.Contains(strings.ToLower(t.Title), query) {
			continue
		}
		if p.Priority != "" && p.Priority != PriorityAll && string(t.Priority) != p.Priority {
			continue
		}
		filtered = append(filtered, t)
	}

	sortTasks(filtered, p.SortBy)

	grouped := Grouped{}
	for _, status := range models.Statuses {
		grouped[status] = []models.Task{}
	}
	for _, t := range filtered {
		grouped[t.Status] = append(grouped[t.Status], t)
	}
	return grouped
}

func sortTasks(tasks []models.Task, key SortKey) {
	switch key {
	case SortByDueDate:
		sort.SliceStable(tasks, func(i, j int) bool {
			di, iOK := tasks[i].DueTime()
			dj, jOK := tasks[j].DueTime()
			if !iOK && !jOK {
				return false
			}
			if !iOK {
				return false
			}
			if !jOK {
				return true
			}
			return di.Before(dj)
		})
	default:
		// Newest first.
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
	}
}
