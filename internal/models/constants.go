package models

// Validation limits for task fields.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// MaxActivities is the number of recent activity entries retained.
// Older entries are evicted when a new one is appended.
const MaxActivities = 50

// DefaultPriority is applied when a task is created without one.
const DefaultPriority = PriorityMedium
