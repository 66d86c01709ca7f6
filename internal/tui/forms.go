package tui

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/huh"

	"tablero/internal/models"
)

// Form fields are read back by key after completion; the Model is copied by
// value on every update, so results never flow through bound pointers.

// newLoginForm builds the email/password/remember-me form.
func (m *Model) newLoginForm() *huh.Form {
	email := ""
	password := ""
	remember := false

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("email").
				Title("Email").
				Placeholder("intern@demo.com").
				Value(&email),
			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password),
			huh.NewConfirm().
				Key("remember").
				Title("Remember me for 7 days?").
				Value(&remember),
		),
	).WithShowHelp(false)
}

// newTaskForm builds the create/edit form. For edits the fields are
// pre-filled from the task; tags are entered comma-separated.
func (m *Model) newTaskForm(task *models.Task) *huh.Form {
	title := ""
	description := ""
	priority := models.DefaultPriority
	dueDate := ""
	tags := ""

	if task != nil {
		m.editingID = task.ID
		title = task.Title
		description = task.Description
		priority = task.Priority
		dueDate = task.DueDate
		tags = strings.Join(task.Tags, ", ")
	} else {
		m.editingID = ""
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&title).
				Validate(validateFormTitle),
			huh.NewText().
				Key("description").
				Title("Description").
				Lines(3).
				Value(&description).
				Validate(validateFormDescription),
			huh.NewSelect[models.Priority]().
				Key("priority").
				Title("Priority").
				Options(
					huh.NewOption("Low", models.PriorityLow),
					huh.NewOption("Medium", models.PriorityMedium),
					huh.NewOption("High", models.PriorityHigh),
				).
				Value(&priority),
			huh.NewInput().
				Key("dueDate").
				Title("Due date (YYYY-MM-DD, optional)").
				Value(&dueDate).
				Validate(validateFormDueDate),
			huh.NewInput().
				Key("tags").
				Title("Tags (comma separated, optional)").
				Value(&tags),
		),
	).WithShowHelp(false)
}

// newResetForm builds the reset-board confirmation.
func (m *Model) newResetForm() *huh.Form {
	confirm := false

	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Key("confirm").
				Title("Reset the board?").
				Description("All tasks and the activity log will be removed.").
				Affirmative("Reset").
				Negative("Keep").
				Value(&confirm),
		),
	).WithShowHelp(false)
}

// parseTagList splits a comma-separated tags field.
func parseTagList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

func validateFormTitle(s string) error {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return models.ErrEmptyTitle
	}
	if utf8.RuneCountInString(trimmed) > models.MaxTitleLength {
		return models.ErrTitleTooLong
	}
	return nil
}

func validateFormDescription(s string) error {
	if utf8.RuneCountInString(strings.TrimSpace(s)) > models.MaxDescriptionLength {
		return models.ErrDescriptionTooLong
	}
	return nil
}

func validateFormDueDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(models.DueDateLayout, s); err != nil {
		return models.ErrInvalidDueDate
	}
	return nil
}
