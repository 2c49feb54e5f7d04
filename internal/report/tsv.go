package report

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV(w io.Writer, r *Report) error {
	if _, err := fmt.Fprintln(w, strings.Join(rowHeader(), "\t")); err != nil {
		return err
	}
	for _, row := range r.Rows {
		if _, err := fmt.Fprintln(w, strings.Join(rowCells(row), "\t")); err != nil {
			return err
		}
	}
	return nil
}
