package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table renders scan output rows in aligned columns. Cell values go
// through %v, so bools and counts can be passed directly.
type Table struct {
	w       *tabwriter.Writer
	headers []string
}

// NewTable creates a table writer with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	t := &Table{w: tw, headers: headers}
	_, _ = fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return t
}

// Row appends a row of values, one per header.
func (t *Table) Row(values ...any) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

// Flush writes the buffered output.
func (t *Table) Flush() error {
	return t.w.Flush()
}

// Mark renders a presence cell: "yes" when the file or property exists,
// "-" otherwise.
func Mark(present bool) string {
	if present {
		return "yes"
	}
	return "-"
}
