// Package batch segments raw SQL text into individually executable
// statements. Engines such as SQL Server reject multiple statements
// sent as one command, so scripts mark statement boundaries with a GO
// line and each segment is submitted separately.
package batch

import (
	"strings"
)

// Separator is the reserved batch-separator token. A line equal to it,
// ignoring case and surrounding whitespace, ends the current statement.
const Separator = "GO"

// Split scans sql line by line and returns the statements it contains.
// Trimmed lines accumulate into the pending statement; a separator line
// flushes it. The separator line itself never appears in any statement,
// and empty statements are dropped.
func Split(sql string) []string {
	var statements []string
	var pending []string

	flush := func() {
		stmt := strings.TrimSpace(strings.Join(pending, "\n"))
		if stmt != "" {
			statements = append(statements, stmt)
		}
		pending = pending[:0]
	}

	// The payload is already in memory, so split directly: a length-capped
	// scanner would truncate statements carrying large inline data.
	for _, raw := range strings.Split(strings.TrimSuffix(sql, "\n"), "\n") {
		line := strings.TrimSpace(raw)
		if strings.EqualFold(line, Separator) {
			flush()
			continue
		}
		pending = append(pending, line)
	}
	flush()

	return statements
}

// Writer composes a multi-statement script. When the target engine
// requires per-statement isolation the writer terminates each statement
// with a separator line, so Split recovers the original statement list.
type Writer struct {
	buf       strings.Builder
	separated bool
}

// NewWriter returns a Writer. separated should be true when the target
// engine's dialect reports BatchSeparatorRequired.
func NewWriter(separated bool) *Writer {
	return &Writer{separated: separated}
}

// WriteStatement appends one statement to the script.
func (w *Writer) WriteStatement(stmt string) {
	stmt = strings.TrimSpace(stmt)
	if stmt == "" {
		return
	}
	if w.buf.Len() > 0 {
		w.buf.WriteString("\n")
	}
	w.buf.WriteString(stmt)
	if w.separated {
		w.buf.WriteString("\n")
		w.buf.WriteString(Separator)
	}
}

// String returns the composed script.
func (w *Writer) String() string {
	return w.buf.String()
}
