package theme

import "github.com/thenoetrevino/tramo/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent     string
	Title      string
	Subtle     string
	Normal     string
	SelectedBg string
	Summary    string

	TaskBar        string
	WorkPackageBar string
	WorkPackageRow string
	Grid           string

	InfoFg  string
	InfoBg  string
	ErrorFg string
	ErrorBg string
)

func init() {
	Init(config.DefaultTheme())
}

// Init initializes the theme colors from the configured theme
func Init(t config.Theme) {
	Accent = t.Accent
	Title = t.Title
	Subtle = t.Subtle
	Normal = t.Normal
	SelectedBg = t.SelectedBg
	Summary = t.Summary

	TaskBar = t.TaskBar
	WorkPackageBar = t.WorkPackageBar
	WorkPackageRow = t.WorkPackageRow
	Grid = t.Grid

	InfoFg = t.InfoFg
	InfoBg = t.InfoBg
	ErrorFg = t.ErrorFg
	ErrorBg = t.ErrorBg
}
