// Package board owns the task list and the activity log. It is the single
// source of truth for board state: every mutation goes through it, derives
// an activity entry, and rewrites the persisted blob wholesale.
package board

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"tablero/internal/models"
	"tablero/internal/storage"
)

// StorageKey is the blob key the board state lives under.
const StorageKey = "taskboard_data"

// boardData is the persisted blob layout.
type boardData struct {
	Tasks      []models.Task     `json:"tasks"`
	Activities []models.Activity `json:"activities"`
}

// Store holds tasks and activities and keeps the persisted blob in sync.
// All operations are synchronous and run to completion; there is exactly one
// writer, so no locking is needed.
type Store struct {
	storage    storage.Store
	tasks      []models.Task
	activities []models.Activity
	loaded     bool
}

// NewStore creates a board store backed by the given blob store.
// Call Init to load persisted state before mutating; mutations that happen
// earlier are applied in memory but not persisted, so a not-yet-read blob is
// never clobbered with empty defaults.
func NewStore(s storage.Store) *Store {
	return &Store{storage: s}
}

// Init loads the persisted blob. A missing, unreadable, or corrupted blob is
// treated as "no prior state": the board starts empty and no error surfaces.
func (s *Store) Init() {
	defer func() { s.loaded = true }()

	blob, ok, err := s.storage.Get(StorageKey)
	if err != nil {
		slog.Warn("failed to read board state, starting empty", "error", err)
		return
	}
	if !ok {
		return
	}

	var data boardData
	if err := json.Unmarshal(blob, &data); err != nil {
		slog.Warn("discarding corrupted board state", "error", err)
		return
	}

	s.tasks = data.Tasks
	s.activities = data.Activities
	if len(s.activities) > models.MaxActivities {
		s.activities = s.activities[:models.MaxActivities]
	}
}

// Loaded reports whether the initial load has completed.
func (s *Store) Loaded() bool {
	return s.loaded
}

// Tasks returns a copy of the task list.
func (s *Store) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Activities returns a copy of the activity log, newest first.
func (s *Store) Activities() []models.Activity {
	out := make([]models.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

// Task returns the task with the given id.
func (s *Store) Task(id string) (models.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// CreateTaskRequest carries the user-supplied fields for a new task.
// Status and creation time are assigned by the store.
type CreateTaskRequest struct {
	Title       string
	Description string
	Priority    models.Priority
	DueDate     string
	Tags        []string
}

// CreateTask validates the request, appends the new task in the To Do
// column, and logs a created activity.
func (s *Store) CreateTask(req CreateTaskRequest) (models.Task, error) {
	if err := validateTitle(req.Title); err != nil {
		return models.Task{}, err
	}
	if err := validateDescription(req.Description); err != nil {
		return models.Task{}, err
	}

	priority := req.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}
	if _, ok := models.ParsePriority(string(priority)); !ok {
		return models.Task{}, models.ErrInvalidPriority
	}
	if err := validateDueDate(req.DueDate); err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Priority:    priority,
		Status:      models.StatusTodo,
		DueDate:     req.DueDate,
		Tags:        normalizeTags(req.Tags),
		CreatedAt:   time.Now(),
	}

	s.tasks = append(s.tasks, task)
	s.recordActivity(models.ActivityCreated, task.Title)
	s.persist()
	return task, nil
}

// TaskPatch describes a partial update. Nil fields are left untouched;
// non-nil fields overwrite.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *models.Priority
	Status      *models.Status
	DueDate     *string
	Tags        *[]string
}

// UpdateTask merges the patch into the task with the given id. A missing id
// is a silent no-op. Exactly one activity is logged per successful call: a
// moved entry when the patch changes the status, an edited entry otherwise.
// The activity snapshots the title from before the merge.
func (s *Store) UpdateTask(id string, patch TaskPatch) error {
	idx := -1
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}

	if patch.Title != nil {
		if err := validateTitle(*patch.Title); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		if err := validateDescription(*patch.Description); err != nil {
			return err
		}
	}
	if patch.Priority != nil {
		if _, ok := models.ParsePriority(string(*patch.Priority)); !ok {
			return models.ErrInvalidPriority
		}
	}
	if patch.Status != nil {
		if _, ok := models.ParseStatus(string(*patch.Status)); !ok {
			return models.ErrInvalidStatus
		}
	}
	if patch.DueDate != nil {
		if err := validateDueDate(*patch.DueDate); err != nil {
			return err
		}
	}

	prior := s.tasks[idx]

	if patch.Title != nil {
		s.tasks[idx].Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		s.tasks[idx].Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Priority != nil {
		s.tasks[idx].Priority = *patch.Priority
	}
	if patch.Status != nil {
		s.tasks[idx].Status = *patch.Status
	}
	if patch.DueDate != nil {
		s.tasks[idx].DueDate = *patch.DueDate
	}
	if patch.Tags != nil {
		s.tasks[idx].Tags = normalizeTags(*patch.Tags)
	}

	if patch.Status != nil && *patch.Status != prior.Status {
		s.recordActivity(models.ActivityMoved, prior.Title)
	} else {
		s.recordActivity(models.ActivityEdited, prior.Title)
	}
	s.persist()
	return nil
}

// DeleteTask removes the task with the given id and logs a deleted activity
// with the title captured before removal. A missing id is a silent no-op.
func (s *Store) DeleteTask(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			title := s.tasks[i].Title
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.recordActivity(models.ActivityDeleted, title)
			s.persist()
			return
		}
	}
}

// Reset clears both lists and removes the persisted blob entirely. Key
// absence, not an empty blob, is what puts a reload on the no-prior-state
// path.
func (s *Store) Reset() {
	s.tasks = nil
	s.activities = nil
	if err := s.storage.Delete(StorageKey); err != nil {
		slog.Warn("failed to remove board state", "error", err)
	}
}

func (s *Store) recordActivity(kind models.ActivityType, title string) {
	entry := models.Activity{
		ID:        uuid.NewString(),
		Type:      kind,
		TaskTitle: title,
		Timestamp: time.Now(),
	}
	s.activities = append([]models.Activity{entry}, s.activities...)
	if len(s.activities) > models.MaxActivities {
		s.activities = s.activities[:models.MaxActivities]
	}
}

// persist rewrites the full blob. Writes before the initial load completes
// are suppressed; storage failures are logged and do not fail the mutation.
func (s *Store) persist() {
	if !s.loaded {
		return
	}

	data := boardData{Tasks: s.tasks, Activities: s.activities}
	if data.Tasks == nil {
		data.Tasks = []models.Task{}
	}
	if data.Activities == nil {
		data.Activities = []models.Activity{}
	}

	blob, err := json.Marshal(data)
	if err != nil {
		slog.Error("failed to encode board state", "error", err)
		return
	}
	if err := s.storage.Set(StorageKey, blob); err != nil {
		slog.Error("failed to persist board state", "error", err)
	}
}

func validateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return models.ErrEmptyTitle
	}
	if utf8.RuneCountInString(trimmed) > models.MaxTitleLength {
		return models.ErrTitleTooLong
	}
	return nil
}

func validateDescription(desc string) error {
	if utf8.RuneCountInString(strings.TrimSpace(desc)) > models.MaxDescriptionLength {
		return models.ErrDescriptionTooLong
	}
	return nil
}

func validateDueDate(due string) error {
	if due == "" {
		return nil
	}
	if _, err := time.Parse(models.DueDateLayout, due); err != nil {
		return models.ErrInvalidDueDate
	}
	return nil
}

// normalizeTags drops empty entries but keeps order and duplicates.
func normalizeTags(tags []string) []string {
	out := []string{}
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
