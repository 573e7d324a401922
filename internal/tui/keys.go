package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tramo/internal/config"
)

// keyMap describes the configured bindings for the help bubble. Dispatch
// itself switches on the configured key strings in handleNormalMode.
type keyMap struct {
	up, down, left, right   key.Binding
	insert, rename          key.Binding
	setStart, setEnd        key.Binding
	startEarlier, startLate key.Binding
	endEarlier, endLater    key.Binding
	toggle, remove          key.Binding
	moveUp, moveDown        key.Binding
	save, export, yank      key.Binding
	newProject, duration    key.Binding
	help, quit              key.Binding
}

func binding(keys, help string, extra ...string) key.Binding {
	label := keys
	for _, e := range extra {
		label += "/" + e
	}
	return key.NewBinding(
		key.WithKeys(append([]string{keys}, extra...)...),
		key.WithHelp(label, help),
	)
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		up:           binding(km.PrevRow, "up", "↑"),
		down:         binding(km.NextRow, "down", "↓"),
		left:         binding(km.ScrollLeft, "earlier periods", "←"),
		right:        binding(km.ScrollRight, "later periods", "→"),
		insert:       binding(km.InsertRow, "insert row below"),
		rename:       binding(km.RenameTask, "rename", "enter"),
		setStart:     binding(km.SetStart, "set start"),
		setEnd:       binding(km.SetEnd, "set end"),
		startEarlier: binding(km.StartEarlier, "start earlier"),
		startLate:    binding(km.StartLater, "start later"),
		endEarlier:   binding(km.EndEarlier, "end earlier"),
		endLater:     binding(km.EndLater, "end later"),
		toggle:       binding(km.ToggleWorkPackage, "toggle work package"),
		remove:       binding(km.RemoveRow, "remove row"),
		moveUp:       binding(km.MoveRowUp, "move row up"),
		moveDown:     binding(km.MoveRowDown, "move row down"),
		save:         binding(km.Save, "save"),
		export:       binding(km.Export, "export CSV/PDF"),
		yank:         binding(km.YankCSV, "copy export CSV"),
		newProject:   binding(km.NewProject, "new project"),
		duration:     binding(km.ChangeDuration, "change periods"),
		help:         binding(km.ShowHelp, "help"),
		quit:         binding(km.Quit, "quit"),
	}
}

// ShortHelp returns the bindings shown under the grid
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.insert, k.rename, k.setStart, k.setEnd, k.save, k.help, k.quit}
}

// FullHelp returns the bindings shown on the help screen, grouped by column
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.left, k.right},
		{k.insert, k.rename, k.setStart, k.setEnd, k.toggle},
		{k.startEarlier, k.startLate, k.endEarlier, k.endLater},
		{k.remove, k.moveUp, k.moveDown},
		{k.save, k.export, k.yank, k.newProject, k.duration},
		{k.help, k.quit},
	}
}
