package export

import (
	"strconv"
	"strings"
)

// Palette holds the hex colours used by the PDF. The editor reads the same
// values from the theme, so bars and work-package shading look alike in both.
type Palette struct {
	TaskBar        string
	WorkPackageBar string
	WorkPackageRow string
	TextHeader     string
	PeriodHeader   string
	Grid           string
}

// DefaultPalette returns the stock colours
func DefaultPalette() Palette {
	return Palette{
		TaskBar:        "#1976d2",
		WorkPackageBar: "#8d6e63",
		WorkPackageRow: "#efebe9",
		TextHeader:     "#eceff1",
		PeriodHeader:   "#e8eaf6",
		Grid:           "#333333",
	}
}

// withDefaults fills empty or unparseable entries from DefaultPalette
func (p Palette) withDefaults() Palette {
	d := DefaultPalette()
	pick := func(v, fallback string) string {
		if _, _, _, ok := parseHex(v); ok {
			return v
		}
		return fallback
	}
	return Palette{
		TaskBar:        pick(p.TaskBar, d.TaskBar),
		WorkPackageBar: pick(p.WorkPackageBar, d.WorkPackageBar),
		WorkPackageRow: pick(p.WorkPackageRow, d.WorkPackageRow),
		TextHeader:     pick(p.TextHeader, d.TextHeader),
		PeriodHeader:   pick(p.PeriodHeader, d.PeriodHeader),
		Grid:           pick(p.Grid, d.Grid),
	}
}

// parseHex reads "#rrggbb"
func parseHex(s string) (r, g, b int, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
