package tui

import (
	"tablero/internal/board"
	"tablero/internal/models"
)

// DragState is the pick-up-and-drop state machine for moving cards between
// columns. It is either idle or holding exactly one task; dropping or
// cancelling always returns it to idle.
type DragState struct {
	taskID string
	origin models.Status
	target models.Status
	active bool
}

// Active reports whether a task is currently grabbed.
func (d *DragState) Active() bool {
	return d.active
}

// TaskID returns the grabbed task's id, or "" when idle.
func (d *DragState) TaskID() string {
	if !d.active {
		return ""
	}
	return d.taskID
}

// Target returns the column the task would land in if dropped now.
func (d *DragState) Target() models.Status {
	return d.target
}

// Grab picks up a task. The drop target starts at the task's own column.
func (d *DragState) Grab(taskID string, origin models.Status) {
	d.taskID = taskID
	d.origin = origin
	d.target = origin
	d.active = true
}

// MoveTarget shifts the drop target left or right, clamped to the board.
func (d *DragState) MoveTarget(delta int) {
	if !d.active {
		return
	}
	idx := statusIndex(d.target) + delta
	if idx < 0 || idx >= len(models.Statuses) {
		return
	}
	d.target = models.Statuses[idx]
}

// Drop ends the drag. An invalid column id discards the drop with no
// mutation. A valid one always goes through UpdateTask, even when it equals
// the task's current column; the store then classifies the activity as
// edited rather than moved, which is the intended behavior. Either way the
// machine returns to idle.
func (d *DragState) Drop(store *board.Store, columnID string) error {
	if !d.active {
		return nil
	}
	taskID := d.taskID
	d.Cancel()

	status, ok := models.ParseStatus(columnID)
	if !ok {
		return nil
	}
	return store.UpdateTask(taskID, board.TaskPatch{Status: &status})
}

// Cancel returns to idle without mutating anything.
func (d *DragState) Cancel() {
	*d = DragState{}
}

func statusIndex(status models.Status) int {
	for i, s := range models.Statuses {
		if s == status {
			return i
		}
	}
	return 0
}
