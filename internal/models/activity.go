package models

import "time"

// ActivityType classifies what happened to a task.
type ActivityType string

const (
	ActivityCreated ActivityType = "created"
	ActivityEdited  ActivityType = "edited"
	ActivityMoved   ActivityType = "moved"
	ActivityDeleted ActivityType = "deleted"
)

// Activity is an immutable record of one board mutation. TaskTitle is a
// snapshot of the title at the time of the event, not a live reference.
type Activity struct {
	ID        string       `json:"id"`
	Type      ActivityType `json:"type"`
	TaskTitle string       `json:"taskTitle"`
	Timestamp time.Time    `json:"timestamp"`
}

// Verb returns the past-tense description used in log output.
func (t ActivityType) Verb() string {
	switch t {
	case ActivityCreated:
		return "created"
	case ActivityEdited:
		return "edited"
	case ActivityMoved:
		return "moved"
	case ActivityDeleted:
		return "deleted"
	}
	return string(t)
}
