package ui

import (
	"fmt"
	"io"
)

// Progress reports per-file pipeline progress. The pipelines are
// sequential, so there is no locking; the counter advances once per
// changed file.
type Progress struct {
	out       io.Writer
	total     int
	completed int
}

// NewProgress creates a progress reporter for n files.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Done marks one file as changed and prints the current progress.
func (p *Progress) Done(label string) {
	p.completed++
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %s\n", p.completed, p.total, label)
}

// Action prints an indented per-entry line, e.g. one removed or added
// classpath entry.
func (p *Progress) Action(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, "  "+format+"\n", args...)
}

// Log prints an informational message within the progress context.
func (p *Progress) Log(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// Completed returns the number of files marked done so far.
func (p *Progress) Completed() int {
	return p.completed
}
