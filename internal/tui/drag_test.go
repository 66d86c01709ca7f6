package tui

import (
	"testing"

	"tablero/internal/board"
	"tablero/internal/models"
	"tablero/internal/storage"
)

func newTestBoard(t *testing.T) *board.Store {
	t.Helper()
	store := board.NewStore(storage.NewMemStore())
	store.Init()
	return store
}

func TestDragStartsIdle(t *testing.T) {
	var drag DragState
	if drag.Active() {
		t.Error("Expected a new DragState to be idle")
	}
	if drag.TaskID() != "" {
		t.Errorf("Expected no task id while idle, got %q", drag.TaskID())
	}
}

func TestGrabActivates(t *testing.T) {
	var drag DragState
	drag.Grab("task-1", models.StatusTodo)

	if !drag.Active() {
		t.Fatal("Expected dragging after grab")
	}
	if drag.TaskID() != "task-1" {
		t.Errorf("Expected grabbed task id, got %q", drag.TaskID())
	}
	if drag.Target() != models.StatusTodo {
		t.Errorf("Expected target to start at the origin column, got %q", drag.Target())
	}
}

func TestMoveTargetClampsAtBoardEdges(t *testing.T) {
	var drag DragState
	drag.Grab("task-1", models.StatusTodo)

	drag.MoveTarget(-1)
	if drag.Target() != models.StatusTodo {
		t.Errorf("Expected target clamped at the first column, got %q", drag.Target())
	}

	drag.MoveTarget(1)
	drag.MoveTarget(1)
	if drag.Target() != models.StatusDone {
		t.Errorf("Expected target at the last column, got %q", drag.Target())
	}

	drag.MoveTarget(1)
	if drag.Target() != models.StatusDone {
		t.Errorf("Expected target clamped at the last column, got %q", drag.Target())
	}
}

func TestDropOnDifferentColumnMovesTask(t *testing.T) {
	store := newTestBoard(t)
	task, _ := store.CreateTask(board.CreateTaskRequest{Title: "move me"})

	var drag DragState
	drag.Grab(task.ID, task.Status)
	if err := drag.Drop(store, "doing"); err != nil {
		t.Fatalf("Drop returned error: %v", err)
	}

	if drag.Active() {
		t.Error("Expected idle after drop")
	}

	moved, _ := store.Task(task.ID)
	if moved.Status != models.StatusDoing {
		t.Errorf("Expected task in doing, got %q", moved.Status)
	}
	if store.Activities()[0].Type != models.ActivityMoved {
		t.Errorf("Expected a moved activity, got %q", store.Activities()[0].Type)
	}
}

func TestDropOnInvalidColumnDiscards(t *testing.T) {
	store := newTestBoard(t)
	task, _ := store.CreateTask(board.CreateTaskRequest{Title: "stay"})
	activitiesBefore := len(store.Activities())

	var drag DragState
	drag.Grab(task.ID, task.Status)
	if err := drag.Drop(store, "trash"); err != nil {
		t.Fatalf("Drop returned error: %v", err)
	}

	if drag.Active() {
		t.Error("Expected idle after a discarded drop")
	}

	unchanged, _ := store.Task(task.ID)
	if unchanged.Status != models.StatusTodo {
		t.Errorf("Expected task untouched, got status %q", unchanged.Status)
	}
	if len(store.Activities()) != activitiesBefore {
		t.Error("Expected no activity for a discarded drop")
	}
}

func TestDropOnOwnColumnLogsEdited(t *testing.T) {
	store := newTestBoard(t)
	task, _ := store.CreateTask(board.CreateTaskRequest{Title: "same place"})

	var drag DragState
	drag.Grab(task.ID, task.Status)
	if err := drag.Drop(store, string(task.Status)); err != nil {
		t.Fatalf("Drop returned error: %v", err)
	}

	// Dropping on the current column still goes through the store, which
	// classifies an unchanged status as an edit.
	if store.Activities()[0].Type != models.ActivityEdited {
		t.Errorf("Expected an edited activity, got %q", store.Activities()[0].Type)
	}
}

func TestCancelDiscardsWithoutMutation(t *testing.T) {
	store := newTestBoard(t)
	task, _ := store.CreateTask(board.CreateTaskRequest{Title: "keep"})
	activitiesBefore := len(store.Activities())

	var drag DragState
	drag.Grab(task.ID, task.Status)
	drag.MoveTarget(1)
	drag.Cancel()

	if drag.Active() {
		t.Error("Expected idle after cancel")
	}
	if len(store.Activities()) != activitiesBefore {
		t.Error("Expected no mutation on cancel")
	}
}

func TestDropWhileIdleIsNoOp(t *testing.T) {
	store := newTestBoard(t)
	store.CreateTask(board.CreateTaskRequest{Title: "bystander"})
	activitiesBefore := len(store.Activities())

	var drag DragState
	if err := drag.Drop(store, "done"); err != nil {
		t.Fatalf("Drop returned error: %v", err)
	}
	if len(store.Activities()) != activitiesBefore {
		t.Error("Expected no mutation from an idle drop")
	}
}
