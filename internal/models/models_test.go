package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
		ok    bool
	}{
		{"todo", StatusTodo, true},
		{"doing", StatusDoing, true},
		{"done", StatusDone, true},
		{"archived", "", false},
		{"", "", false},
		{"Todo", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseStatus(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseStatus(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input string
		want  Priority
		ok    bool
	}{
		{"low", PriorityLow, true},
		{"medium", PriorityMedium, true},
		{"high", PriorityHigh, true},
		{"critical", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParsePriority(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePriority(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDueTime(t *testing.T) {
	task := Task{DueDate: "2024-03-15"}
	due, ok := task.DueTime()
	if !ok {
		t.Fatal("Expected a parseable due date")
	}
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !due.Equal(want) {
		t.Errorf("Expected %v, got %v", want, due)
	}
}

func TestDueTimeAbsentOrInvalid(t *testing.T) {
	for _, due := range []string{"", "soon", "15-03-2024"} {
		task := Task{DueDate: due}
		if _, ok := task.DueTime(); ok {
			t.Errorf("Expected DueTime to reject %q", due)
		}
	}
}

func TestStatusTitles(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusTodo, "To Do"},
		{StatusDoing, "Doing"},
		{StatusDone, "Done"},
	}
	for _, tt := range tests {
		if got := tt.status.Title(); got != tt.want {
			t.Errorf("Title(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestTaskJSONShape(t *testing.T) {
	task := Task{
		ID:        "id-1",
		Title:     "ship it",
		Priority:  PriorityHigh,
		Status:    StatusDoing,
		Tags:      []string{"infra"},
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	blob, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(blob, &fields); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	for _, key := range []string{"id", "title", "description", "priority", "status", "tags", "createdAt"} {
		if _, present := fields[key]; !present {
			t.Errorf("Expected field %q in the persisted shape", key)
		}
	}
	if _, present := fields["dueDate"]; present {
		t.Error("Expected dueDate to be omitted when empty")
	}
}
