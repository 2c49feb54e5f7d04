package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/toma4423/dtpsupport"
)

func writeMarkdown(w io.Writer, r *Report) error {
	header := rowHeader()
	rows := r.rowTable()
	aligns := rowAligns()

	// Column widths, minimum 3 for the alignment markers.
	widths := columnWidths(header, rows)
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		switch aligns[i] {
		case dtpsupport.AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case dtpsupport.AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, cells := range rows {
		if err := writeMarkdownRow(w, cells, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []dtpsupport.Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cells[i], width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
