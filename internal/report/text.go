package report

import (
	"fmt"
	"io"
	"strings"
)

// writeText renders the human-readable summary: a header line, the
// formatted rows, then diagnostics and skipped names when present.
func writeText(w io.Writer, r *Report) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "formatted %d of %d rows (%s)\n", r.Counts.Formatted, r.Counts.Input, r.Settings.summary())
	if len(r.Rows) > 0 {
		sb.WriteString("\n")
		for _, row := range r.Rows {
			sb.WriteString(row.Text)
			sb.WriteString("\n")
		}
	}
	if len(r.Diagnostics) > 0 {
		sb.WriteString("\ndiagnostics:\n")
		for _, d := range r.Diagnostics {
			fmt.Fprintf(&sb, "  row %d: %s\n", d.Row, d.Message)
		}
	}
	if len(r.Skipped) > 0 {
		sb.WriteString("\nskipped names:\n")
		for _, name := range r.Skipped {
			fmt.Fprintf(&sb, "  %s\n", name)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
