package huhforms

import (
	"fmt"

	"charm.land/huh/v2"
)

// CreateNewProjectForm creates a huh form that replaces the open project
// with an empty one
func CreateNewProjectForm(duration *string, maxDuration int, dirty bool, confirm *bool) *huh.Form {
	title := "Create this project?"
	if dirty {
		title = "Discard unsaved changes and create this project?"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("duration").
			Title("Number of periods").
			Description(fmt.Sprintf("1 to %d", maxDuration)).
			Placeholder("20").
			Validate(ValidateDuration(maxDuration)).
			Value(duration),

		huh.NewConfirm().
			Key("confirm").
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMap())
}

// CreateDurationForm creates a huh form for changing the number of periods.
// Spans are clamped into the new range.
func CreateDurationForm(duration *string, maxDuration int) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("duration").
			Title("Number of periods").
			Description("Spans past the new end are shortened").
			Validate(ValidateDuration(maxDuration)).
			Value(duration),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMap())
}

// CreateQuitForm asks before quitting with unsaved changes
func CreateQuitForm(confirm *bool) *huh.Form {
	fields := []huh.Field{
		huh.NewConfirm().
			Key("confirm").
			Title("Quit without saving?").
			Affirmative("Quit").
			Negative("Cancel").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMap())
}
