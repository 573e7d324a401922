package huhforms

import "charm.land/huh/v2"

// Export formats offered by the export form
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// CreateExportForm creates a huh form for exporting the project
func CreateExportForm(format *string, path *string, includeStartEnd *bool) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("format").
				Title("Format").
				Options(
					huh.NewOption("CSV (task rows with period markers)", FormatCSV),
					huh.NewOption("PDF (landscape A4 chart)", FormatPDF),
				).
				Value(format),

			huh.NewInput().
				Key("path").
				Title("File").
				Placeholder("plan.pdf").
				Validate(ValidatePath).
				Value(path),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Key("start_end").
				Title("Include Start and End columns?").
				Affirmative("Yes").
				Negative("No").
				Value(includeStartEnd),
		).WithHideFunc(func() bool { return *format != FormatPDF }),
	)
	return form.WithKeyMap(CreateKeyMap())
}
