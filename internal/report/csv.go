package report

import (
	"encoding/csv"
	"io"
)

func writeCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rowHeader()); err != nil {
		return err
	}
	for _, row := range r.Rows {
		if err := cw.Write(rowCells(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
