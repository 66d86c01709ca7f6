package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tablero/internal/auth"
	"tablero/internal/board"
	"tablero/internal/models"
	"tablero/internal/view"
)

// Update implements tea.Model. It dispatches to the handler for whichever
// mode currently owns the keyboard.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.mode {
	case ModeLogin:
		return m.updateLogin(msg)
	case ModeForm:
		return m.updateTaskForm(msg)
	case ModeConfirmReset:
		return m.updateResetConfirm(msg)
	case ModeSearch:
		return m.updateSearch(msg)
	case ModeDragging:
		return m.updateDragging(msg)
	case ModeActivity, ModeHelp:
		return m.updateOverlay(msg)
	default:
		return m.updateNormal(msg)
	}
}

// ----------------------------------------------------------------------------
// Login
// ----------------------------------------------------------------------------

func (m Model) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.loginForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.loginForm = f
	}

	switch m.loginForm.State {
	case huh.StateAborted:
		return m, tea.Quit
	case huh.StateCompleted:
		email := m.loginForm.GetString("email")
		password := m.loginForm.GetString("password")
		remember := m.loginForm.GetBool("remember")
		err := m.auth.Login(email, password, remember)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				m.loginErr = "Invalid email or password. Please try again."
			} else {
				m.loginErr = err.Error()
			}
			m.loginForm = m.newLoginForm()
			return m, m.loginForm.Init()
		}
		m.loginErr = ""
		m.mode = ModeNormal
		return m, nil
	}

	return m, cmd
}

// ----------------------------------------------------------------------------
// Normal mode
// ----------------------------------------------------------------------------

func (m Model) updateNormal(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.statusMsg = ""
	key := keyMsg.String()
	km := m.cfg.KeyMappings

	switch key {
	case km.Quit:
		return m, tea.Quit

	case km.PrevColumn, "left":
		if m.selectedColumn > 0 {
			m.selectedColumn--
			m.selectedTask = 0
		}
	case km.NextColumn, "right":
		if m.selectedColumn < len(models.Statuses)-1 {
			m.selectedColumn++
			m.selectedTask = 0
		}
	case km.PrevTask, "up":
		if m.selectedTask > 0 {
			m.selectedTask--
		}
	case km.NextTask, "down":
		if m.selectedTask < len(m.columnTasks(m.selectedColumn))-1 {
			m.selectedTask++
		}

	case km.AddTask:
		m.taskForm = m.newTaskForm(nil)
		m.mode = ModeForm
		return m, m.taskForm.Init()

	case km.EditTask, "enter":
		task, found := m.currentTask()
		if !found {
			return m, nil
		}
		m.taskForm = m.newTaskForm(&task)
		m.mode = ModeForm
		return m, m.taskForm.Init()

	case km.DeleteTask:
		task, found := m.currentTask()
		if !found {
			return m, nil
		}
		m.board.DeleteTask(task.ID)
		m.statusMsg = "Deleted \"" + task.Title + "\""
		m.clampCursor()

	case km.GrabTask:
		task, found := m.currentTask()
		if !found {
			return m, nil
		}
		m.drag.Grab(task.ID, task.Status)
		m.mode = ModeDragging

	case km.Search:
		m.searchInput.SetValue(m.search)
		m.mode = ModeSearch
		return m, m.searchInput.Focus()

	case km.CyclePriority:
		m.priorityFilter = nextPriorityFilter(m.priorityFilter)
		m.clampCursor()

	case km.ToggleSort:
		if m.sortBy == view.SortByCreated {
			m.sortBy = view.SortByDueDate
		} else {
			m.sortBy = view.SortByCreated
		}

	case km.ToggleActivity:
		m.mode = ModeActivity

	case km.ResetBoard:
		m.resetForm = m.newResetForm()
		m.mode = ModeConfirmReset
		return m, m.resetForm.Init()

	case km.ShowHelp:
		m.mode = ModeHelp

	case km.Logout:
		m.auth.Logout()
		m.loginForm = m.newLoginForm()
		m.mode = ModeLogin
		return m, m.loginForm.Init()
	}

	return m, nil
}

// ----------------------------------------------------------------------------
// Dragging
// ----------------------------------------------------------------------------

func (m Model) updateDragging(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	km := m.cfg.KeyMappings
	switch key := keyMsg.String(); key {
	case "esc":
		m.drag.Cancel()
		m.mode = ModeNormal

	case km.PrevColumn, "left":
		m.drag.MoveTarget(-1)
	case km.NextColumn, "right":
		m.drag.MoveTarget(1)

	case km.GrabTask, "enter":
		taskID := m.drag.TaskID()
		target := m.drag.Target()
		if err := m.drag.Drop(m.board, string(target)); err != nil {
			m.statusMsg = err.Error()
		}
		m.mode = ModeNormal

		// Follow the dropped card.
		m.selectedColumn = statusIndex(target)
		m.selectedTask = 0
		for i, t := range m.columnTasks(m.selectedColumn) {
			if t.ID == taskID {
				m.selectedTask = i
				break
			}
		}
	}

	return m, nil
}

// ----------------------------------------------------------------------------
// Search
// ----------------------------------------------------------------------------

func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.search = m.searchInput.Value()
			m.searchInput.Blur()
			m.mode = ModeNormal
			m.clampCursor()
			return m, nil
		case "esc":
			m.search = ""
			m.searchInput.SetValue("")
			m.searchInput.Blur()
			m.mode = ModeNormal
			m.clampCursor()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Filter as the query is typed.
	m.search = m.searchInput.Value()
	m.clampCursor()
	return m, cmd
}

// ----------------------------------------------------------------------------
// Task form
// ----------------------------------------------------------------------------

func (m Model) updateTaskForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.taskForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.taskForm = f
	}

	switch m.taskForm.State {
	case huh.StateAborted:
		m.mode = ModeNormal
		return m, nil
	case huh.StateCompleted:
		m.mode = ModeNormal
		if m.editingID == "" {
			return m.submitCreate()
		}
		return m.submitEdit()
	}

	return m, cmd
}

func (m Model) submitCreate() (tea.Model, tea.Cmd) {
	task, err := m.board.CreateTask(board.CreateTaskRequest{
		Title:       m.taskForm.GetString("title"),
		Description: m.taskForm.GetString("description"),
		Priority:    formPriority(m.taskForm),
		DueDate:     m.taskForm.GetString("dueDate"),
		Tags:        parseTagList(m.taskForm.GetString("tags")),
	})
	if err != nil {
		m.statusMsg = err.Error()
		return m, nil
	}
	m.statusMsg = "Created \"" + task.Title + "\""
	return m, nil
}

func (m Model) submitEdit() (tea.Model, tea.Cmd) {
	title := m.taskForm.GetString("title")
	description := m.taskForm.GetString("description")
	priority := formPriority(m.taskForm)
	dueDate := m.taskForm.GetString("dueDate")
	tags := parseTagList(m.taskForm.GetString("tags"))
	if tags == nil {
		tags = []string{}
	}

	err := m.board.UpdateTask(m.editingID, board.TaskPatch{
		Title:       &title,
		Description: &description,
		Priority:    &priority,
		DueDate:     &dueDate,
		Tags:        &tags,
	})
	if err != nil {
		m.statusMsg = err.Error()
		return m, nil
	}
	m.statusMsg = "Updated \"" + title + "\""
	m.clampCursor()
	return m, nil
}

// ----------------------------------------------------------------------------
// Reset confirmation
// ----------------------------------------------------------------------------

func (m Model) updateResetConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.resetForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.resetForm = f
	}

	switch m.resetForm.State {
	case huh.StateAborted:
		m.mode = ModeNormal
		return m, nil
	case huh.StateCompleted:
		m.mode = ModeNormal
		if m.resetForm.GetBool("confirm") {
			m.board.Reset()
			m.selectedColumn = 0
			m.selectedTask = 0
			m.statusMsg = "Board reset"
		}
		return m, nil
	}

	return m, cmd
}

// ----------------------------------------------------------------------------
// Overlays (activity log, help)
// ----------------------------------------------------------------------------

func (m Model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q", m.cfg.KeyMappings.ToggleActivity, m.cfg.KeyMappings.ShowHelp:
		m.mode = ModeNormal
	}
	return m, nil
}

func formPriority(form *huh.Form) models.Priority {
	if p, ok := form.Get("priority").(models.Priority); ok {
		return p
	}
	return models.DefaultPriority
}

func nextPriorityFilter(current string) string {
	switch current {
	case view.PriorityAll:
		return string(models.PriorityLow)
	case string(models.PriorityLow):
		return string(models.PriorityMedium)
	case string(models.PriorityMedium):
		return string(models.PriorityHigh)
	default:
		return view.PriorityAll
	}
}
