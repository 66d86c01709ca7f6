package config

// Theme defines all configurable color values (hex strings).
type Theme struct {
	// Primary accent color (selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Column header colors
	TodoColor  string `yaml:"todo_color"`
	DoingColor string `yaml:"doing_color"`
	DoneColor  string `yaml:"done_color"`

	// Priority badge colors
	PriorityLow    string `yaml:"priority_low"`
	PriorityMedium string `yaml:"priority_medium"`
	PriorityHigh   string `yaml:"priority_high"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	SelectedBorder string `yaml:"selected_border"`
	GrabbedBorder  string `yaml:"grabbed_border"`

	// Text colors
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`
	Error  string `yaml:"error"`
}

// DefaultTheme returns the built-in color scheme. The column colors mirror
// the indigo/amber/emerald palette of the original board.
func DefaultTheme() Theme {
	return Theme{
		Accent: "#6366F1",

		TodoColor:  "#6366F1",
		DoingColor: "#F59E0B",
		DoneColor:  "#10B981",

		PriorityLow:    "#22C55E",
		PriorityMedium: "#EAB308",
		PriorityHigh:   "#EF4444",

		ColumnBorder:   "#585858",
		SelectedBorder: "#6366F1",
		GrabbedBorder:  "#F59E0B",

		Subtle: "#585858",
		Normal: "#D0D0D0",
		Error:  "#EF4444",
	}
}

func (t *Theme) applyDefaults() {
	defaults := DefaultTheme()

	if t.Accent == "" {
		t.Accent = defaults.Accent
	}
	if t.TodoColor == "" {
		t.TodoColor = defaults.TodoColor
	}
	if t.DoingColor == "" {
		t.DoingColor = defaults.DoingColor
	}
	if t.DoneColor == "" {
		t.DoneColor = defaults.DoneColor
	}
	if t.PriorityLow == "" {
		t.PriorityLow = defaults.PriorityLow
	}
	if t.PriorityMedium == "" {
		t.PriorityMedium = defaults.PriorityMedium
	}
	if t.PriorityHigh == "" {
		t.PriorityHigh = defaults.PriorityHigh
	}
	if t.ColumnBorder == "" {
		t.ColumnBorder = defaults.ColumnBorder
	}
	if t.SelectedBorder == "" {
		t.SelectedBorder = defaults.SelectedBorder
	}
	if t.GrabbedBorder == "" {
		t.GrabbedBorder = defaults.GrabbedBorder
	}
	if t.Subtle == "" {
		t.Subtle = defaults.Subtle
	}
	if t.Normal == "" {
		t.Normal = defaults.Normal
	}
	if t.Error == "" {
		t.Error = defaults.Error
	}
}

// StatusColor returns the header color for a column id.
func (t Theme) StatusColor(status string) string {
	switch status {
	case "todo":
		return t.TodoColor
	case "doing":
		return t.DoingColor
	case "done":
		return t.DoneColor
	}
	return t.Normal
}

// PriorityColor returns the badge color for a priority value.
func (t Theme) PriorityColor(priority string) string {
	switch priority {
	case "low":
		return t.PriorityLow
	case "medium":
		return t.PriorityMedium
	case "high":
		return t.PriorityHigh
	}
	return t.Normal
}
