package report

import (
	"fmt"
	"html"
	"io"

	"github.com/toma4423/dtpsupport"
)

func writeHTML(w io.Writer, r *Report) error {
	aligns := rowAligns()

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	caption := fmt.Sprintf("formatted %d of %d rows (%s)", r.Counts.Formatted, r.Counts.Input, r.Settings.summary())
	if _, err := fmt.Fprintf(w, "  <caption>%s</caption>\n", html.EscapeString(caption)); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
		return err
	}
	for i, col := range rowHeader() {
		if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", alignStyle(aligns, i), html.EscapeString(col)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range r.Rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for i, cell := range rowCells(row) {
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", alignStyle(aligns, i), html.EscapeString(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}

func alignStyle(aligns []dtpsupport.Alignment, col int) string {
	if col >= len(aligns) {
		return ""
	}
	switch aligns[col] {
	case dtpsupport.AlignRight:
		return ` style="text-align: right"`
	case dtpsupport.AlignCenter:
		return ` style="text-align: center"`
	default:
		return ""
	}
}
