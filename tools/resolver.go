package tools

import (
	"errors"

	"tasksaathi/backend/types"
)

// ErrNoTasks is returned when a task reference is resolved against an
// empty snapshot.
var ErrNoTasks = errors.New("tools: no tasks to resolve")

// ResolveTaskRef maps an ambiguous reference onto a concrete task id from
// a freshly fetched, ordered snapshot. "first" takes the head, "last" the
// tail. Any other reference value falls back to "first" on purpose - the
// chat interface prefers a guess over an error.
func ResolveTaskRef(ref string, tasks []types.Task) (string, error) {
	if len(tasks) == 0 {
		return "", ErrNoTasks
	}
	if ref == "last" {
		return tasks[len(tasks)-1].ID, nil
	}
	return tasks[0].ID, nil
}
