package printer

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/agentbox/agentbox/internal/model"
)

// TablePrinter prints sandbox information in a table format.
type TablePrinter struct {
	writer io.Writer
}

// NewTablePrinter creates a new table printer.
func NewTablePrinter(w io.Writer) *TablePrinter {
	return &TablePrinter{writer: w}
}

// PrintList prints sandbox records in a table format.
func (t *TablePrinter) PrintList(records []model.SandboxRecord) error {
	if len(records) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(t.writer, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tPROVIDER\tPROJECT\tCREATED\tLAST RESOLVED")

	for _, r := range records {
		lastResolved := "never"
		if r.LastResolvedAt != nil {
			lastResolved = TimeAgo(*r.LastResolvedAt)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Provider, r.ProjectID, TimeAgo(r.CreatedAt), lastResolved)
	}

	return nil
}

// PrintHandle prints a resolved sandbox handle.
func (t *TablePrinter) PrintHandle(handle model.SandboxHandle) error {
	fmt.Fprintf(t.writer, "ID:        %s\n", handle.Sandbox.ID)
	fmt.Fprintf(t.writer, "Provider:  %s\n", handle.Provider)
	fmt.Fprintf(t.writer, "State:     %s\n", handle.Sandbox.State)
	fmt.Fprintf(t.writer, "Usable:    %t\n", handle.Usable)

	if id, ok := handle.Sandbox.Labels["id"]; ok {
		fmt.Fprintf(t.writer, "Project:   %s\n", id)
	}

	return nil
}

// PrintMessage prints a simple text message.
func (t *TablePrinter) PrintMessage(msg string) error {
	fmt.Fprintln(t.writer, msg)
	return nil
}
