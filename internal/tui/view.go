package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tablero/internal/models"
	"tablero/internal/view"
)

// View implements tea.Model.
func (m Model) View() string {
	switch m.mode {
	case ModeLogin:
		return m.viewLogin()
	case ModeForm:
		return m.viewTaskForm()
	case ModeConfirmReset:
		return m.viewResetConfirm()
	case ModeActivity:
		return m.viewActivity()
	case ModeHelp:
		return m.viewHelp()
	default:
		return m.viewBoard()
	}
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.styles.AppTitle.Render("tablero"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("Sign in to your board"))
	b.WriteString("\n\n")
	if m.loginErr != "" {
		b.WriteString(m.styles.Error.Render(m.loginErr))
		b.WriteString("\n\n")
	}
	b.WriteString(m.loginForm.View())
	return m.center(b.String())
}

func (m Model) viewTaskForm() string {
	title := "New Task"
	if m.editingID != "" {
		title = "Edit Task"
	}
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.AppTitle.Render(title),
		"",
		m.taskForm.View(),
	)
	return m.center(content)
}

func (m Model) viewResetConfirm() string {
	return m.center(m.resetForm.View())
}

func (m Model) viewBoard() string {
	grouped := m.grouped()

	columns := make([]string, 0, len(models.Statuses))
	for i, status := range models.Statuses {
		columns = append(columns, m.renderColumn(i, status, grouped[status]))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		board,
		m.renderStatusBar(),
	)
}

func (m Model) renderHeader() string {
	email := ""
	if session, ok := m.auth.Current(); ok {
		email = session.Email
	}

	sortLabel := "newest"
	if m.sortBy == view.SortByDueDate {
		sortLabel = "due date"
	}

	parts := []string{
		m.styles.AppTitle.Render("tablero"),
		m.styles.Subtle.Render(email),
		m.styles.Subtle.Render("sort: " + sortLabel),
		m.styles.Subtle.Render("priority: " + m.priorityFilter),
	}
	if m.mode == ModeSearch {
		parts = append(parts, m.searchInput.View())
	} else if m.search != "" {
		parts = append(parts, m.styles.Subtle.Render("search: "+m.search))
	}

	return strings.Join(parts, "  ") + "\n"
}

func (m Model) renderColumn(index int, status models.Status, tasks []models.Task) string {
	header := m.styles.StatusHeader(string(status), fmt.Sprintf("%s (%d)", status.Title(), len(tasks)))

	rows := []string{header, ""}
	if len(tasks) == 0 {
		rows = append(rows, m.styles.Subtle.Render("no tasks"))
	}
	for i, task := range tasks {
		rows = append(rows, m.renderCard(task, index == m.selectedColumn && i == m.selectedTask))
	}

	style := m.styles.Column
	if index == m.selectedColumn {
		style = m.styles.ColumnActive
	}
	if m.drag.Active() && m.drag.Target() == status {
		style = m.styles.ColumnActive.BorderForeground(lipgloss.Color(m.styles.theme.GrabbedBorder))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderCard(task models.Task, selected bool) string {
	style := m.styles.Card
	if selected {
		style = m.styles.CardSelected
	}
	if m.drag.Active() && m.drag.TaskID() == task.ID {
		style = m.styles.CardGrabbed
	}

	rows := []string{
		m.styles.CardTitle.Render(truncate(task.Title, cardWidth-2)),
		m.styles.PriorityBadge(string(task.Priority)),
	}
	if task.DueDate != "" {
		rows = append(rows, m.styles.Subtle.Render("due "+task.DueDate))
	}
	if len(task.Tags) > 0 {
		rows = append(rows, m.styles.Subtle.Render(truncate("#"+strings.Join(task.Tags, " #"), cardWidth-2)))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderStatusBar() string {
	if m.statusMsg != "" {
		return m.styles.StatusBar.Render(m.statusMsg)
	}

	km := m.cfg.KeyMappings
	if m.drag.Active() {
		return m.styles.StatusBar.Render(
			fmt.Sprintf("moving task  •  %s/%s choose column  •  enter drop  •  esc cancel", km.PrevColumn, km.NextColumn))
	}
	return m.styles.StatusBar.Render(fmt.Sprintf(
		"%s add  •  %s edit  •  %s delete  •  space move  •  %s search  •  %s activity  •  %s help  •  %s quit",
		km.AddTask, km.EditTask, km.DeleteTask, km.Search, km.ToggleActivity, km.ShowHelp, km.Quit))
}

func (m Model) viewActivity() string {
	activities := m.board.Activities()

	rows := []string{m.styles.AppTitle.Render("Activity"), ""}
	if len(activities) == 0 {
		rows = append(rows, m.styles.Subtle.Render("no activity yet"))
	}
	for _, a := range activities {
		line := fmt.Sprintf("%s  %s \"%s\"",
			m.styles.Subtle.Render(a.Timestamp.Format("Jan 02 15:04")),
			a.Type.Verb(),
			truncate(a.TaskTitle, 40))
		rows = append(rows, line)
	}
	rows = append(rows, "", m.styles.Subtle.Render("esc close"))

	return m.center(m.styles.Overlay.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
}

// center places content in the middle of the terminal when dimensions are
// known, otherwise returns it unpositioned.
func (m Model) center(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func truncate(s string, max int) string {
	if max <= 0 || len([]rune(s)) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
