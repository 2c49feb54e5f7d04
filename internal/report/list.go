package report

import (
	"io"
	"strings"
)

// writeList emits the formatted texts only, one per line, ready to paste
// into the layout application.
func writeList(w io.Writer, r *Report) error {
	if len(r.Rows) == 0 {
		return nil
	}
	lines := make([]string, len(r.Rows))
	for i, row := range r.Rows {
		lines[i] = row.Text
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
