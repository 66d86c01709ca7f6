package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

const helpTemplate = `# tablero

A kanban board for one. Tasks move across three columns: To Do, Doing, Done.

## Navigation

| Key | Action |
|-----|--------|
| %s / %s | previous / next column |
| %s / %s | previous / next task |

## Tasks

| Key | Action |
|-----|--------|
| %s | add a task |
| %s | edit the selected task |
| %s | delete the selected task |
| space | pick up the selected task, then drop it on a column |

## Board

| Key | Action |
|-----|--------|
| %s | search titles |
| %s | cycle the priority filter |
| %s | toggle sort (newest / due date) |
| %s | activity log |
| %s | reset the board |
| %s | log out |
| %s | quit |
`

// viewHelp renders the help overlay through glamour.
func (m Model) viewHelp() string {
	km := m.cfg.KeyMappings
	markdown := fmt.Sprintf(helpTemplate,
		km.PrevColumn, km.NextColumn,
		km.PrevTask, km.NextTask,
		km.AddTask, km.EditTask, km.DeleteTask,
		km.Search, km.CyclePriority, km.ToggleSort,
		km.ToggleActivity, km.ResetBoard, km.Logout, km.Quit)

	rendered, err := glamour.Render(markdown, "dark")
	if err != nil {
		return markdown
	}
	return rendered
}
