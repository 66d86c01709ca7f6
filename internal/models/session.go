package models

// Session is the record of the currently authenticated user.
type Session struct {
	Email string
}
