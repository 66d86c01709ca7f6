// Package tui implements the terminal board: login screen, three-column
// kanban view, task forms, search and filters, activity log, and the
// pick-up-and-drop interaction for moving cards.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tablero/internal/auth"
	"tablero/internal/board"
	"tablero/internal/config"
	"tablero/internal/models"
	"tablero/internal/view"
)

// Mode identifies which input layer currently owns the keyboard.
type Mode int

const (
	ModeLogin Mode = iota
	ModeNormal
	ModeDragging
	ModeSearch
	ModeForm
	ModeConfirmReset
	ModeActivity
	ModeHelp
)

// Model is the bubbletea model for the whole application.
type Model struct {
	cfg    *config.Config
	auth   *auth.Store
	board  *board.Store
	styles Styles

	mode   Mode
	width  int
	height int

	// Board cursor: column index into models.Statuses and task index into
	// that column's filtered sequence.
	selectedColumn int
	selectedTask   int

	// View pipeline parameters.
	searchInput    textinput.Model
	search         string
	priorityFilter string
	sortBy         view.SortKey

	drag DragState

	// Login form state.
	loginForm *huh.Form
	loginErr  string

	// Task form state. editingID is empty when creating.
	taskForm  *huh.Form
	editingID string

	// Reset confirmation.
	resetForm *huh.Form

	statusMsg string
}

// NewModel builds the initial model. Both stores must already be
// initialized; the starting mode depends on whether a session survived.
func NewModel(cfg *config.Config, authStore *auth.Store, boardStore *board.Store) Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "search tasks..."
	searchInput.CharLimit = models.MaxTitleLength
	searchInput.Width = 30

	m := Model{
		cfg:            cfg,
		auth:           authStore,
		board:          boardStore,
		styles:         NewStyles(cfg.Theme),
		searchInput:    searchInput,
		priorityFilter: view.PriorityAll,
		sortBy:         view.SortByCreated,
	}

	if authStore.LoggedIn() {
		m.mode = ModeNormal
	} else {
		m.mode = ModeLogin
		m.loginForm = m.newLoginForm()
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.mode == ModeLogin && m.loginForm != nil {
		return m.loginForm.Init()
	}
	return nil
}

// viewParams assembles the current filter/sort inputs.
func (m Model) viewParams() view.Params {
	return view.Params{
		Search:   m.search,
		Priority: m.priorityFilter,
		SortBy:   m.sortBy,
	}
}

// grouped runs the view pipeline over the full task list.
func (m Model) grouped() view.Grouped {
	return view.Apply(m.board.Tasks(), m.viewParams())
}

// columnTasks returns the filtered, sorted tasks for a column index.
func (m Model) columnTasks(col int) []models.Task {
	if col < 0 || col >= len(models.Statuses) {
		return nil
	}
	return m.grouped()[models.Statuses[col]]
}

// currentTask returns the task under the cursor.
func (m Model) currentTask() (models.Task, bool) {
	tasks := m.columnTasks(m.selectedColumn)
	if m.selectedTask < 0 || m.selectedTask >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[m.selectedTask], true
}

// clampCursor keeps the task cursor inside the current column after the
// underlying data or filters change.
func (m *Model) clampCursor() {
	tasks := m.columnTasks(m.selectedColumn)
	if m.selectedTask >= len(tasks) {
		m.selectedTask = len(tasks) - 1
	}
	if m.selectedTask < 0 {
		m.selectedTask = 0
	}
}
