package config

// KeyMappings defines all configurable key bindings.
type KeyMappings struct {
	// Tasks
	AddTask    string `yaml:"add_task"`
	EditTask   string `yaml:"edit_task"`
	DeleteTask string `yaml:"delete_task"`
	GrabTask   string `yaml:"grab_task"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Board
	Search         string `yaml:"search"`
	CyclePriority  string `yaml:"cycle_priority"`
	ToggleSort     string `yaml:"toggle_sort"`
	ToggleActivity string `yaml:"toggle_activity"`
	ResetBoard     string `yaml:"reset_board"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Logout   string `yaml:"logout"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings.
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:    "a",
		EditTask:   "e",
		DeleteTask: "d",
		GrabTask:   " ",

		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		Search:         "/",
		CyclePriority:  "p",
		ToggleSort:     "s",
		ToggleActivity: "o",
		ResetBoard:     "X",

		ShowHelp: "?",
		Logout:   "Q",
		Quit:     "q",
	}
}

func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.EditTask == "" {
		k.EditTask = defaults.EditTask
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.GrabTask == "" {
		k.GrabTask = defaults.GrabTask
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.Search == "" {
		k.Search = defaults.Search
	}
	if k.CyclePriority == "" {
		k.CyclePriority = defaults.CyclePriority
	}
	if k.ToggleSort == "" {
		k.ToggleSort = defaults.ToggleSort
	}
	if k.ToggleActivity == "" {
		k.ToggleActivity = defaults.ToggleActivity
	}
	if k.ResetBoard == "" {
		k.ResetBoard = defaults.ResetBoard
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Logout == "" {
		k.Logout = defaults.Logout
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
