package models

import "time"

// Status identifies the board column a task lives in.
type Status string

// The three fixed board columns.
const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// Statuses lists the columns in board order.
var Statuses = []Status{StatusTodo, StatusDoing, StatusDone}

// ParseStatus maps a column id to a Status. The second return is false for
// anything that is not one of the three fixed columns.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusTodo, StatusDoing, StatusDone:
		return Status(s), true
	}
	return "", false
}

// Title returns the display name of the column.
func (s Status) Title() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusDoing:
		return "Doing"
	case StatusDone:
		return "Done"
	}
	return string(s)
}

// Priority represents a task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists priorities from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority maps a string to a Priority, rejecting unknown values.
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), true
	}
	return "", false
}

// DueDateLayout is the wire format for due dates.
const DueDateLayout = "2006-01-02"

// Task is a single card on the board.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	DueDate     string    `json:"dueDate,omitempty"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DueTime parses the task's due date. The second return is false when the
// task has no due date or the stored value does not parse.
func (t Task) DueTime() (time.Time, bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	due, err := time.Parse(DueDateLayout, t.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}
