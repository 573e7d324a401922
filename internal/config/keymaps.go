package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Navigation
	PrevRow     string `yaml:"prev_row"`
	NextRow     string `yaml:"next_row"`
	ScrollLeft  string `yaml:"scroll_left"`
	ScrollRight string `yaml:"scroll_right"`

	// Rows
	InsertRow         string `yaml:"insert_row"`
	RenameTask        string `yaml:"rename_task"`
	SetStart          string `yaml:"set_start"`
	SetEnd            string `yaml:"set_end"`
	StartEarlier      string `yaml:"start_earlier"`
	StartLater        string `yaml:"start_later"`
	EndEarlier        string `yaml:"end_earlier"`
	EndLater          string `yaml:"end_later"`
	ToggleWorkPackage string `yaml:"toggle_work_package"`
	RemoveRow         string `yaml:"remove_row"`
	MoveRowUp         string `yaml:"move_row_up"`
	MoveRowDown       string `yaml:"move_row_down"`

	// Project
	Save           string `yaml:"save"`
	Export         string `yaml:"export"`
	YankCSV        string `yaml:"yank_csv"`
	NewProject     string `yaml:"new_project"`
	ChangeDuration string `yaml:"change_duration"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevRow:     "k",
		NextRow:     "j",
		ScrollLeft:  "h",
		ScrollRight: "l",

		InsertRow:         "o",
		RenameTask:        "e",
		SetStart:          "s",
		SetEnd:            "f",
		StartEarlier:      "[",
		StartLater:        "]",
		EndEarlier:        "{",
		EndLater:          "}",
		ToggleWorkPackage: "w",
		RemoveRow:         "d",
		MoveRowUp:         "K",
		MoveRowDown:       "J",

		Save:           "ctrl+s",
		Export:         "x",
		YankCSV:        "y",
		NewProject:     "n",
		ChangeDuration: "D",

		ShowHelp: "?",
		Quit:     "q",
	}
}

func (k *KeyMappings) fields() []*string {
	return []*string{
		&k.PrevRow, &k.NextRow, &k.ScrollLeft, &k.ScrollRight,
		&k.InsertRow, &k.RenameTask, &k.SetStart, &k.SetEnd,
		&k.StartEarlier, &k.StartLater, &k.EndEarlier, &k.EndLater,
		&k.ToggleWorkPackage, &k.RemoveRow, &k.MoveRowUp, &k.MoveRowDown,
		&k.Save, &k.Export, &k.YankCSV, &k.NewProject, &k.ChangeDuration,
		&k.ShowHelp, &k.Quit,
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	base := defaults.fields()
	for i, f := range k.fields() {
		if *f == "" {
			*f = *base[i]
		}
	}
}
