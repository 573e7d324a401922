package config

import "github.com/thenoetrevino/tramo/internal/export"

// Theme defines all configurable colours. The chart colours are shared by
// the terminal editor and the PDF export.
type Theme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Chart
	TaskBar        string `yaml:"task_bar"`
	WorkPackageBar string `yaml:"work_package_bar"`
	WorkPackageRow string `yaml:"work_package_row"`
	TextHeader     string `yaml:"text_header"`
	PeriodHeader   string `yaml:"period_header"`
	Grid           string `yaml:"grid"`

	// Editor
	Accent     string `yaml:"accent"`
	Title      string `yaml:"title"`
	Subtle     string `yaml:"subtle"`
	Normal     string `yaml:"normal"`
	SelectedBg string `yaml:"selected_bg"`
	Summary    string `yaml:"summary"`

	// Notifications
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// DefaultTheme returns the stock colours
func DefaultTheme() Theme {
	p := export.DefaultPalette()
	return Theme{
		Preset: "default",

		TaskBar:        p.TaskBar,
		WorkPackageBar: p.WorkPackageBar,
		WorkPackageRow: p.WorkPackageRow,
		TextHeader:     p.TextHeader,
		PeriodHeader:   p.PeriodHeader,
		Grid:           p.Grid,

		Accent:     "#1976D2",
		Title:      "#64B5F6",
		Subtle:     "#585858",
		Normal:     "#D0D0D0",
		SelectedBg: "#3A3A3A",
		Summary:    "#FFD54F",

		InfoFg:  "#00AFFF",
		InfoBg:  "#00005F",
		ErrorFg: "#FF0000",
		ErrorBg: "#5F0000",
	}
}

// MonochromeTheme returns a black and white theme
func MonochromeTheme() Theme {
	return Theme{
		Preset: "monochrome",

		TaskBar:        "#000000",
		WorkPackageBar: "#555555",
		WorkPackageRow: "#EEEEEE",
		TextHeader:     "#DDDDDD",
		PeriodHeader:   "#DDDDDD",
		Grid:           "#000000",

		Accent:     "#FFFFFF",
		Title:      "#FFFFFF",
		Subtle:     "#808080",
		Normal:     "#FFFFFF",
		SelectedBg: "#303030",
		Summary:    "#FFFFFF",

		InfoFg:  "#FFFFFF",
		InfoBg:  "#303030",
		ErrorFg: "#FFFFFF",
		ErrorBg: "#000000",
	}
}

// GetPreset returns a preset theme by name
func GetPreset(name string) Theme {
	switch name {
	case "monochrome":
		return MonochromeTheme()
	default:
		return DefaultTheme()
	}
}

// fields lists every colour so defaults and merges stay in step
func (t *Theme) fields() []*string {
	return []*string{
		&t.TaskBar, &t.WorkPackageBar, &t.WorkPackageRow, &t.TextHeader, &t.PeriodHeader, &t.Grid,
		&t.Accent, &t.Title, &t.Subtle, &t.Normal, &t.SelectedBg, &t.Summary,
		&t.InfoFg, &t.InfoBg, &t.ErrorFg, &t.ErrorBg,
	}
}

// ApplyDefaults fills in missing colours from the preset
func (t *Theme) ApplyDefaults() {
	preset := GetPreset(t.Preset)
	if t.Preset == "" {
		t.Preset = preset.Preset
	}
	base := preset.fields()
	for i, f := range t.fields() {
		if *f == "" {
			*f = *base[i]
		}
	}
}

// MergeFrom overrides colours with the non-empty values of other
func (t *Theme) MergeFrom(other Theme) {
	if other.Preset != "" {
		t.Preset = other.Preset
	}
	src := other.fields()
	for i, f := range t.fields() {
		if *src[i] != "" {
			*f = *src[i]
		}
	}
}

// Palette returns the chart colours for the PDF export
func (t Theme) Palette() export.Palette {
	return export.Palette{
		TaskBar:        t.TaskBar,
		WorkPackageBar: t.WorkPackageBar,
		WorkPackageRow: t.WorkPackageRow,
		TextHeader:     t.TextHeader,
		PeriodHeader:   t.PeriodHeader,
		Grid:           t.Grid,
	}
}
