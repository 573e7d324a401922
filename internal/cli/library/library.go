// Package library implements the `tramo library` commands, which move
// projects between files and the project library.
package library

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tramo/internal/cli/styles"
	"github.com/thenoetrevino/tramo/internal/database"
)

// LibraryCmd returns the library parent command
func LibraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "library",
		Aliases: []string{"lib"},
		Short:   "Store projects by name in the local library",
	}

	cmd.AddCommand(SaveCmd())
	cmd.AddCommand(OpenCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// EntryView is the output form of a library entry
type EntryView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Duration  int       `json:"duration"`
	TaskCount int       `json:"task_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newEntryView(e database.Entry) EntryView {
	return EntryView(e)
}

// QuietValue returns the entry name
func (v EntryView) QuietValue() string { return v.Name }

// PrintHuman prints a one-line confirmation
func (v EntryView) PrintHuman(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Saved %q to the library (%d periods, %d tasks)\n", v.Name, v.Duration, v.TaskCount)
	return err
}

// entryList is the output form of library list
type entryList []EntryView

// QuietValue returns the names, one per line
func (l entryList) QuietValue() string {
	var s string
	for i, e := range l {
		if i > 0 {
			s += "\n"
		}
		s += e.Name
	}
	return s
}

// PrintHuman prints a table of entries
func (l entryList) PrintHuman(w io.Writer) error {
	if len(l) == 0 {
		_, err := fmt.Fprintln(w, "No projects in the library")
		return err
	}

	nameWidth := len("Name")
	for _, e := range l {
		nameWidth = max(nameWidth, len([]rune(e.Name)))
	}

	header := fmt.Sprintf("%-*s  %8s  %5s  %s", nameWidth, "Name", "Periods", "Tasks", "Updated")
	if _, err := fmt.Fprintln(w, styles.HeaderStyle.Render(header)); err != nil {
		return err
	}
	for _, e := range l {
		if _, err := fmt.Fprintf(w, "%-*s  %8s  %5s  %s\n",
			nameWidth, e.Name,
			strconv.Itoa(e.Duration), strconv.Itoa(e.TaskCount),
			e.UpdatedAt.Local().Format("2006-01-02 15:04")); err != nil {
			return err
		}
	}
	return nil
}
