package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tablero/internal/auth"
	"tablero/internal/board"
	"tablero/internal/config"
	"tablero/internal/models"
	"tablero/internal/storage"
	"tablero/internal/view"
)

// newLoggedInModel builds a model with an authenticated session and an
// initialized board store.
func newLoggedInModel(t *testing.T) (Model, *board.Store) {
	t.Helper()

	mem := storage.NewMemStore()
	authStore := auth.NewStore(mem)
	if err := authStore.Login(auth.DemoEmail, "intern123", false); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	boardStore := board.NewStore(mem)
	boardStore.Init()

	return NewModel(config.Default(), authStore, boardStore), boardStore
}

// press feeds a single key through Update and returns the updated model.
func press(t *testing.T, m Model, key string) Model {
	t.Helper()

	var msg tea.KeyMsg
	switch key {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}

	updated, _ := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned unexpected model type %T", updated)
	}
	return model
}

func TestNewModelStartsAtLoginWithoutSession(t *testing.T) {
	mem := storage.NewMemStore()
	authStore := auth.NewStore(mem)
	boardStore := board.NewStore(mem)
	boardStore.Init()

	m := NewModel(config.Default(), authStore, boardStore)
	if m.mode != ModeLogin {
		t.Errorf("Expected login mode without a session, got %v", m.mode)
	}
}

func TestNewModelSkipsLoginWithSession(t *testing.T) {
	m, _ := newLoggedInModel(t)
	if m.mode != ModeNormal {
		t.Errorf("Expected normal mode with a session, got %v", m.mode)
	}
}

func TestColumnNavigationStaysOnBoard(t *testing.T) {
	m, _ := newLoggedInModel(t)

	m = press(t, m, "h")
	if m.selectedColumn != 0 {
		t.Errorf("Expected column clamped at 0, got %d", m.selectedColumn)
	}

	m = press(t, m, "l")
	m = press(t, m, "l")
	m = press(t, m, "l")
	if m.selectedColumn != 2 {
		t.Errorf("Expected column clamped at 2, got %d", m.selectedColumn)
	}
}

func TestTaskNavigationStaysInColumn(t *testing.T) {
	m, store := newLoggedInModel(t)
	store.CreateTask(board.CreateTaskRequest{Title: "one"})
	store.CreateTask(board.CreateTaskRequest{Title: "two"})

	m = press(t, m, "j")
	if m.selectedTask != 1 {
		t.Errorf("Expected task cursor 1, got %d", m.selectedTask)
	}
	m = press(t, m, "j")
	if m.selectedTask != 1 {
		t.Errorf("Expected task cursor clamped at 1, got %d", m.selectedTask)
	}
	m = press(t, m, "k")
	m = press(t, m, "k")
	if m.selectedTask != 0 {
		t.Errorf("Expected task cursor clamped at 0, got %d", m.selectedTask)
	}
}

func TestPriorityFilterCycles(t *testing.T) {
	m, _ := newLoggedInModel(t)

	want := []string{"low", "medium", "high", view.PriorityAll}
	for _, expected := range want {
		m = press(t, m, "p")
		if m.priorityFilter != expected {
			t.Fatalf("Expected priority filter %q, got %q", expected, m.priorityFilter)
		}
	}
}

func TestSortToggles(t *testing.T) {
	m, _ := newLoggedInModel(t)

	m = press(t, m, "s")
	if m.sortBy != view.SortByDueDate {
		t.Errorf("Expected dueDate sort, got %q", m.sortBy)
	}
	m = press(t, m, "s")
	if m.sortBy != view.SortByCreated {
		t.Errorf("Expected createdAt sort, got %q", m.sortBy)
	}
}

func TestGrabDropMovesTaskAndFollowsIt(t *testing.T) {
	m, store := newLoggedInModel(t)
	task, _ := store.CreateTask(board.CreateTaskRequest{Title: "carry me"})

	m = press(t, m, " ")
	if m.mode != ModeDragging {
		t.Fatalf("Expected dragging mode after grab, got %v", m.mode)
	}

	m = press(t, m, "l")
	m = press(t, m, "enter")
	if m.mode != ModeNormal {
		t.Fatalf("Expected normal mode after drop, got %v", m.mode)
	}

	moved, _ := store.Task(task.ID)
	if moved.Status != models.StatusDoing {
		t.Errorf("Expected task in doing after drop, got %q", moved.Status)
	}
	if m.selectedColumn != 1 {
		t.Errorf("Expected selection to follow the task to column 1, got %d", m.selectedColumn)
	}
}

func TestGrabEscCancelsWithoutMutation(t *testing.T) {
	m, store := newLoggedInModel(t)
	task, _ := store.CreateTask(board.CreateTaskRequest{Title: "stay"})
	activitiesBefore := len(store.Activities())

	m = press(t, m, " ")
	m = press(t, m, "l")
	m = press(t, m, "esc")

	if m.mode != ModeNormal {
		t.Errorf("Expected normal mode after cancel, got %v", m.mode)
	}
	unchanged, _ := store.Task(task.ID)
	if unchanged.Status != models.StatusTodo {
		t.Errorf("Expected task untouched after cancel, got %q", unchanged.Status)
	}
	if len(store.Activities()) != activitiesBefore {
		t.Error("Expected no activity from a cancelled drag")
	}
}

func TestGrabWithEmptyColumnDoesNothing(t *testing.T) {
	m, _ := newLoggedInModel(t)

	m = press(t, m, " ")
	if m.mode != ModeNormal {
		t.Errorf("Expected grab on an empty column to be ignored, got mode %v", m.mode)
	}
}

func TestDeleteKeyRemovesSelectedTask(t *testing.T) {
	m, store := newLoggedInModel(t)
	task, _ := store.CreateTask(board.CreateTaskRequest{Title: "doomed"})

	m = press(t, m, "d")
	if _, found := store.Task(task.ID); found {
		t.Error("Expected selected task to be deleted")
	}
	if m.selectedTask != 0 {
		t.Errorf("Expected cursor reset, got %d", m.selectedTask)
	}
}

func TestActivityOverlayOpensAndCloses(t *testing.T) {
	m, _ := newLoggedInModel(t)

	m = press(t, m, "o")
	if m.mode != ModeActivity {
		t.Fatalf("Expected activity mode, got %v", m.mode)
	}
	m = press(t, m, "esc")
	if m.mode != ModeNormal {
		t.Errorf("Expected normal mode after closing overlay, got %v", m.mode)
	}
}

func TestLogoutReturnsToLogin(t *testing.T) {
	m, _ := newLoggedInModel(t)

	m = press(t, m, "Q")
	if m.mode != ModeLogin {
		t.Errorf("Expected login mode after logout, got %v", m.mode)
	}
	if m.auth.LoggedIn() {
		t.Error("Expected the session to be cleared")
	}
}

func TestSearchFiltersBoard(t *testing.T) {
	m, store := newLoggedInModel(t)
	store.CreateTask(board.CreateTaskRequest{Title: "alpha"})
	store.CreateTask(board.CreateTaskRequest{Title: "beta"})

	m = press(t, m, "/")
	if m.mode != ModeSearch {
		t.Fatalf("Expected search mode, got %v", m.mode)
	}

	m = press(t, m, "b")
	m = press(t, m, "enter")
	if m.mode != ModeNormal {
		t.Fatalf("Expected normal mode after accepting search, got %v", m.mode)
	}

	tasks := m.columnTasks(0)
	if len(tasks) != 1 || tasks[0].Title != "beta" {
		t.Errorf("Expected only beta to match, got %+v", tasks)
	}

	// Esc clears the query.
	m = press(t, m, "/")
	m = press(t, m, "esc")
	if m.search != "" {
		t.Errorf("Expected search cleared, got %q", m.search)
	}
	if len(m.columnTasks(0)) != 2 {
		t.Error("Expected all tasks back after clearing search")
	}
}
