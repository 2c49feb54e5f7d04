package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/toma4423/dtpsupport"
)

// Rounded border set for the terminal table.
var border = struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}{
	topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
	horizontal: "─", vertical: "│",
	topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
	cross: "┼",
}

func writeTable(w io.Writer, r *Report) error {
	header := rowHeader()
	rows := r.rowTable()
	widths := columnWidths(header, rows)
	aligns := rowAligns()

	if err := drawHLine(w, widths, border.topLeft, border.topTee, border.topRight); err != nil {
		return err
	}
	if err := drawBorderedRow(w, header, widths, aligns); err != nil {
		return err
	}
	if err := drawHLine(w, widths, border.leftTee, border.cross, border.rightTee); err != nil {
		return err
	}
	for _, cells := range rows {
		if err := drawBorderedRow(w, cells, widths, aligns); err != nil {
			return err
		}
	}
	if err := drawHLine(w, widths, border.bottomLeft, border.bottomTee, border.bottomRight); err != nil {
		return err
	}

	caption := fmt.Sprintf("formatted %d of %d rows (%s)", r.Counts.Formatted, r.Counts.Input, r.Settings.summary())
	_, err := fmt.Fprintln(w, caption)
	return err
}

func drawHLine(w io.Writer, widths []int, left, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(border.horizontal, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, cells []string, widths []int, aligns []dtpsupport.Alignment) error {
	var sb strings.Builder
	sb.WriteString(border.vertical)
	for i, width := range widths {
		sb.WriteString(" ")
		sb.WriteString(alignCell(cells[i], width, aligns[i]))
		sb.WriteString(" ")
		if i < len(widths)-1 {
			sb.WriteString(border.vertical)
		}
	}
	sb.WriteString(border.vertical)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

// columnWidths sizes each column to its widest cell by display width, so
// full-width characters line up under ASCII headers.
func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// alignCell pads s with ASCII spaces to the given display width. Center
// puts the shorter run of spaces on the left, like the cell padder.
func alignCell(s string, width int, align dtpsupport.Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case dtpsupport.AlignRight:
		return strings.Repeat(" ", pad) + s
	case dtpsupport.AlignLeft:
		return s + strings.Repeat(" ", pad)
	default:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	}
}
