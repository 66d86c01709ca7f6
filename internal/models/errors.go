package models

import "errors"

// Validation errors surfaced as field-level messages.
var (
	ErrEmptyTitle         = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title must be less than 100 characters")
	ErrDescriptionTooLong = errors.New("description must be less than 500 characters")
	ErrInvalidPriority    = errors.New("priority must be low, medium, or high")
	ErrInvalidStatus      = errors.New("status must be todo, doing, or done")
	ErrInvalidDueDate     = errors.New("due date must be in YYYY-MM-DD format")
)
